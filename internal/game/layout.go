package game

import (
	"time"

	"github.com/iburimskiy/nmbk-site/internal/config"
	"github.com/iburimskiy/nmbk-site/internal/contact"
	"github.com/iburimskiy/nmbk-site/internal/content"
	"github.com/iburimskiy/nmbk-site/internal/reveal"
	"github.com/iburimskiy/nmbk-site/internal/site"
)

type blockKind int

const (
	heroContent blockKind = iota
	solutionCard
	activityCard
	contactInfo
	contactForm
)

// block is a page element that fades in when first scrolled into view.
type block struct {
	handle reveal.Handle
	kind   blockKind
	item   int
	rect   reveal.Rect
	delay  time.Duration
}

func (b *block) bounds() reveal.Rect { return b.rect }

// pageLayout positions one page in page coordinates (y grows down from the
// top of the page, which scrolls under the fixed header).
type pageLayout struct {
	page    site.Page
	width   float64
	height  float64
	hero    reveal.Rect
	heading float64 // baseline area of the section title
	section reveal.Rect
	blocks  []*block
	footer  reveal.Rect
}

const (
	sectionPadding = 96.0
	headingHeight  = 120.0
	gridGap        = 32.0
	footerHeight   = 160.0
	stackBelow     = 760.0

	solutionCardHeight = 260.0
	activityCardHeight = 330.0
	activityImage      = 200.0
	contactInfoHeight  = 300.0
	contactFormHeight  = 380.0
	heroBlockWidth     = 760.0
	heroBlockHeight    = 330.0
)

// container returns the horizontal extent of centred page content.
func container(w float64) (x, width float64) {
	width = min(w-2*config.ContentSidePadding, config.ContentMaxWidth)
	width = max(width, 1)
	return (w - width) / 2, width
}

// heroContainer maps the window size to the hero background size.
func heroContainer(w, h int) (int, int) {
	return w, max(h, config.HeaderHeight*2)
}

// columns lays n equally sized cells out in a row, or stacks them when the
// window is narrow.
func columns(x, width, y, height float64, n int) []reveal.Rect {
	rects := make([]reveal.Rect, n)
	if width < stackBelow {
		for i := range rects {
			rects[i] = reveal.Rect{X: x, Y: y + float64(i)*(height+gridGap), W: width, H: height}
		}
		return rects
	}
	cw := (width - gridGap*float64(n-1)) / float64(n)
	for i := range rects {
		rects[i] = reveal.Rect{X: x + float64(i)*(cw+gridGap), Y: y, W: cw, H: height}
	}
	return rects
}

func bottom(rs []reveal.Rect) float64 {
	b := 0.0
	for _, r := range rs {
		b = max(b, r.Y+r.H)
	}
	return b
}

// layoutPage positions every element of page for a w×h window. Handles are
// taken from the previous layout of the same page so that relayouts keep
// reveal state; newHandle allocates the rest.
func layoutPage(page site.Page, cat *content.Catalog, w, h int, prev *pageLayout, newHandle func() reveal.Handle) *pageLayout {
	fw, fh := float64(w), float64(h)
	cx, cw := container(fw)
	l := &pageLayout{page: page, width: fw}

	var old []*block
	if prev != nil && prev.page == page {
		old = prev.blocks
	}
	add := func(kind blockKind, item int, r reveal.Rect, delay time.Duration) {
		b := &block{kind: kind, item: item, rect: r, delay: delay}
		for _, o := range old {
			if o.kind == kind && o.item == item {
				b.handle = o.handle
				break
			}
		}
		if b.handle == 0 {
			b.handle = newHandle()
		}
		l.blocks = append(l.blocks, b)
	}

	y := 0.0
	switch page {
	case site.Solutions:
		_, hh := heroContainer(w, h)
		l.hero = reveal.Rect{W: fw, H: float64(hh)}
		bw := min(heroBlockWidth, cw)
		add(heroContent, 0, reveal.Rect{
			X: (fw - bw) / 2,
			Y: (float64(hh)-heroBlockHeight)/2 + config.HeaderHeight/2,
			W: bw,
			H: heroBlockHeight,
		}, 0)
		y = l.hero.H + sectionPadding
		l.heading = y
		y += headingHeight
		cards := columns(cx, cw, y, solutionCardHeight, len(cat.Solutions.Items))
		for i, r := range cards {
			add(solutionCard, i, r, reveal.Stagger(i))
		}
		y = max(bottom(cards), y) + sectionPadding
		l.section = reveal.Rect{Y: l.hero.H, W: fw, H: y - l.hero.H}

	case site.Enrichment:
		y = config.HeaderHeight + sectionPadding
		l.heading = y
		y += headingHeight
		cards := columns(cx, cw, y, activityCardHeight, len(cat.Enrichment.Items))
		for i, r := range cards {
			add(activityCard, i, r, reveal.Stagger(i))
		}
		y = max(bottom(cards), y) + sectionPadding
		l.section = reveal.Rect{W: fw, H: y}

	case site.Contact:
		y = config.HeaderHeight + sectionPadding
		l.heading = y
		y += headingHeight
		var info, form reveal.Rect
		if cw < stackBelow {
			info = reveal.Rect{X: cx, Y: y, W: cw, H: contactInfoHeight}
			form = reveal.Rect{X: cx, Y: y + contactInfoHeight + gridGap, W: cw, H: contactFormHeight}
		} else {
			half := (cw - gridGap) / 2
			info = reveal.Rect{X: cx, Y: y, W: half, H: contactInfoHeight}
			form = reveal.Rect{X: cx + half + gridGap, Y: y, W: half, H: contactFormHeight}
		}
		add(contactInfo, 0, info, 0)
		add(contactForm, 0, form, 200*time.Millisecond)
		y = max(info.Y+info.H, form.Y+form.H) + sectionPadding
		l.section = reveal.Rect{W: fw, H: y}
	}

	l.footer = reveal.Rect{Y: y, W: fw, H: footerHeight}
	l.height = max(y+footerHeight, fh)
	return l
}

// handles returns the reveal handles of every block.
func (l *pageLayout) handles() []reveal.Handle {
	hs := make([]reveal.Handle, len(l.blocks))
	for i, b := range l.blocks {
		hs[i] = b.handle
	}
	return hs
}

func (l *pageLayout) find(kind blockKind) *block {
	for _, b := range l.blocks {
		if b.kind == kind {
			return b
		}
	}
	return nil
}

// heroButtonRect returns button i (0 primary, 1 outline) inside the hero
// block.
func heroButtonRect(b reveal.Rect, i int) reveal.Rect {
	const bw, bh, gap = 170.0, 52.0, 16.0
	x := b.X + (b.W-2*bw-gap)/2 + float64(i)*(bw+gap)
	return reveal.Rect{X: x, Y: b.Y + b.H - bh, W: bw, H: bh}
}

// formInputRect returns the rectangle of a contact form input.
func formInputRect(form reveal.Rect, f contact.Field) reveal.Rect {
	const pad, ih, gap = 32.0, 56.0, 20.0
	return reveal.Rect{X: form.X + pad, Y: form.Y + pad + float64(f)*(ih+gap), W: form.W - 2*pad, H: ih}
}

// formSubmitRect returns the rectangle of the submit button.
func formSubmitRect(form reveal.Rect) reveal.Rect {
	last := formInputRect(form, contact.Message)
	return reveal.Rect{X: last.X, Y: last.Y + last.H + 28, W: last.W, H: 52}
}

// navRects lays out the logo and the navigation items in the header.
func navRects(w int, labels []string, advance func(string) float64) (logo reveal.Rect, items []reveal.Rect) {
	cx, cw := container(float64(w))
	logo = reveal.Rect{X: cx, Y: 0, W: 120, H: config.HeaderHeight}
	x := cx + cw
	items = make([]reveal.Rect, len(labels))
	for i := len(labels) - 1; i >= 0; i-- {
		iw := advance(labels[i]) + 8
		x -= iw
		items[i] = reveal.Rect{X: x, Y: 0, W: iw, H: config.HeaderHeight}
		x -= config.NavItemGap
	}
	return logo, items
}

func contains(r reveal.Rect, x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}
