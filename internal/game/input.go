package game

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/iburimskiy/nmbk-site/internal/config"
	"github.com/iburimskiy/nmbk-site/internal/contact"
	"github.com/iburimskiy/nmbk-site/internal/site"
)

// frameInput is the input gathered for one frame.
type frameInput struct {
	cursorX, cursorY int
	clicked          bool
	wheelY           float64
	chars            []rune
	backspace        bool
	tab              bool
	enter            bool
	escape           bool
	pageUp, pageDown bool
	home, end        bool
	up, down         bool
}

// keyRepeat reports a key press, repeating while held like a text field.
func keyRepeat(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || d >= 30 && d%3 == 0
}

func pollInput() frameInput {
	x, y := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	return frameInput{
		cursorX:   x,
		cursorY:   y,
		clicked:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		wheelY:    wy,
		chars:     ebiten.AppendInputChars(nil),
		backspace: keyRepeat(ebiten.KeyBackspace),
		tab:       inpututil.IsKeyJustPressed(ebiten.KeyTab),
		enter:     inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		escape:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		pageUp:    inpututil.IsKeyJustPressed(ebiten.KeyPageUp),
		pageDown:  inpututil.IsKeyJustPressed(ebiten.KeyPageDown),
		home:      inpututil.IsKeyJustPressed(ebiten.KeyHome),
		end:       inpututil.IsKeyJustPressed(ebiten.KeyEnd),
		up:        keyRepeat(ebiten.KeyArrowUp),
		down:      keyRepeat(ebiten.KeyArrowDown),
	}
}

func (g *game) navLabels() []string {
	labels := make([]string, len(site.Pages))
	for i, p := range site.Pages {
		labels[i] = p.Label()
	}
	return labels
}

func (g *game) navAdvance(s string) float64 {
	return textAdvance(s, g.fonts.face(16, true))
}

func (g *game) handleInput(now time.Time, in frameInput) error {
	g.cursorX, g.cursorY = float64(in.cursorX), float64(in.cursorY)
	wasFocused := g.formFocused
	pageY := g.cursorY + g.scroll.pos

	// Header sits above the page and takes clicks first.
	logo, items := navRects(g.width, g.navLabels(), g.navAdvance)
	g.hoverNav = -1
	for i, r := range items {
		if contains(r, g.cursorX, g.cursorY) {
			g.hoverNav = i
		}
	}
	overHeader := g.cursorY <= config.HeaderHeight
	if in.clicked && overHeader {
		switch {
		case contains(logo, g.cursorX, g.cursorY):
			g.coord.Navigate(site.Solutions)
		case g.hoverNav >= 0:
			g.coord.Navigate(site.Pages[g.hoverNav])
		}
		return nil
	}

	switch g.coord.Page() {
	case site.Solutions:
		if in.clicked {
			g.clickHero(pageY)
		}
	case site.Enrichment:
		g.hoverActivities(pageY)
	case site.Contact:
		if err := g.contactInput(now, in, pageY); err != nil {
			return err
		}
	}

	if in.escape && !wasFocused {
		return ebiten.Termination
	}
	if g.formFocused {
		return nil
	}

	view := float64(g.height) - config.HeaderHeight
	switch {
	case in.wheelY != 0:
		g.scroll.scrollBy(-in.wheelY * config.ScrollStep)
	case in.pageDown:
		g.scroll.scrollBy(view)
	case in.pageUp:
		g.scroll.scrollBy(-view)
	case in.down:
		g.scroll.scrollBy(config.ScrollStep)
	case in.up:
		g.scroll.scrollBy(-config.ScrollStep)
	case in.home:
		g.scroll.scrollTo(0)
	case in.end:
		g.scroll.scrollTo(g.layout.height)
	}
	return nil
}

func (g *game) clickHero(pageY float64) {
	b := g.layout.find(heroContent)
	if b == nil {
		return
	}
	if contains(heroButtonRect(b.rect, 0), g.cursorX, pageY) {
		g.coord.Navigate(site.Contact)
		return
	}
	if contains(heroButtonRect(b.rect, 1), g.cursorX, pageY) {
		g.scroll.scrollTo(g.layout.hero.H - config.HeaderHeight)
	}
}

func (g *game) hoverActivities(pageY float64) {
	g.activeBg = -1
	for _, b := range g.layout.blocks {
		if b.kind == activityCard && contains(b.rect, g.cursorX, pageY) {
			if _, ok := g.trigger.Revealed(b.handle); ok {
				g.activeBg = b.item
			}
		}
	}
}

func (g *game) contactInput(now time.Time, in frameInput, pageY float64) error {
	b := g.layout.find(contactForm)
	if b == nil {
		return nil
	}
	if in.clicked {
		g.formFocused = false
		for _, f := range contact.Fields {
			if contains(formInputRect(b.rect, f), g.cursorX, pageY) {
				g.form.SetFocus(f)
				g.formFocused = true
			}
		}
		if contains(formSubmitRect(b.rect), g.cursorX, pageY) {
			g.submit(now)
		}
	}
	if !g.formFocused {
		return nil
	}
	switch {
	case in.escape:
		g.formFocused = false
	case in.tab:
		g.form.FocusNext()
	case in.enter:
		g.submit(now)
	case in.backspace:
		g.form.Backspace()
	default:
		g.form.Type(in.chars)
	}
	return nil
}

func (g *game) submit(now time.Time) {
	err := g.form.Submit(now)
	switch {
	case err == nil:
		g.formErr = nil
		g.formFocused = false
	case errors.Is(err, contact.ErrBusy):
		// The button is disabled; ignore.
	default:
		g.formErr = err
		g.log.Debug("contact form rejected", zap.Error(err))
	}
}
