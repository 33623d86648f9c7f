// Package site holds the application state of the NMBK site: which page is
// selected and whether the splash loader is still showing.
package site

import (
	"fmt"
	"time"
)

// Page identifies one of the top-level sections.
type Page int

const (
	Solutions Page = iota
	Enrichment
	Contact
)

// Pages lists every page in navigation order.
var Pages = []Page{Solutions, Enrichment, Contact}

func (p Page) String() string {
	switch p {
	case Solutions:
		return "solutions"
	case Enrichment:
		return "enrichment"
	case Contact:
		return "contact"
	}
	return fmt.Sprintf("page(%d)", int(p))
}

// Label is the navigation caption.
func (p Page) Label() string {
	switch p {
	case Solutions:
		return "Solutions"
	case Enrichment:
		return "Enrichment"
	case Contact:
		return "Contact"
	}
	return p.String()
}

// Valid reports whether p is one of the known pages.
func (p Page) Valid() bool { return p >= Solutions && p <= Contact }

// ParsePage parses a page identifier such as "enrichment".
func ParsePage(s string) (Page, error) {
	for _, p := range Pages {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown page %q", s)
}

// State is the whole of the mutable application state.
type State struct {
	Page         Page
	Loading      bool
	LoadingUntil time.Time
}

// Initial returns the state at startup: the solutions page behind the
// splash loader, which hides once splash has elapsed from now.
func Initial(now time.Time, splash time.Duration) State {
	return State{
		Page:         Solutions,
		Loading:      splash > 0,
		LoadingUntil: now.Add(splash),
	}
}

// Navigate returns the state after selecting target and whether the page
// changed. Selecting the current page, or an unknown one, changes nothing.
func Navigate(s State, target Page) (State, bool) {
	if !target.Valid() || target == s.Page {
		return s, false
	}
	s.Page = target
	return s, true
}

// FinishLoading clears the loading flag once its deadline has passed.
func FinishLoading(s State, now time.Time) State {
	if s.Loading && !now.Before(s.LoadingUntil) {
		s.Loading = false
	}
	return s
}
