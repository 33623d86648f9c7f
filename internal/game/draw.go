package game

import (
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/nmbk-site/internal/config"
	"github.com/iburimskiy/nmbk-site/internal/contact"
	"github.com/iburimskiy/nmbk-site/internal/content"
	"github.com/iburimskiy/nmbk-site/internal/reveal"
	"github.com/iburimskiy/nmbk-site/internal/site"
)

func textAdvance(s string, face text.Face) float64 {
	return text.Advance(s, face)
}

// wrap breaks s into lines no wider than width.
func wrap(s string, face text.Face, width float64) []string {
	var lines []string
	var line string
	for _, word := range strings.Fields(s) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if line != "" && textAdvance(candidate, face) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

func (g *game) drawText(dst *ebiten.Image, s string, size float64, bold bool, x, y float64, clr color.RGBA, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(dst, s, g.fonts.face(size, bold), op)
}

// drawParagraph draws wrapped text and returns the y below it.
func (g *game) drawParagraph(dst *ebiten.Image, s string, size float64, x, y, width float64, clr color.RGBA, align text.Align) float64 {
	face := g.fonts.face(size, false)
	lh := size * 1.5
	ax := x
	if align == text.AlignCenter {
		ax = x + width/2
	}
	for _, line := range wrap(s, face, width) {
		g.drawText(dst, line, size, false, ax, y, clr, align)
		y += lh
	}
	return y
}

func initial(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

func fillRect(dst *ebiten.Image, r reveal.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func strokeRect(dst *ebiten.Image, r reveal.Rect, width float32, clr color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, clr, true)
}

// Draw implements ebiten.Game.
func (g *game) Draw(screen *ebiten.Image) {
	now := g.now()
	if g.layout == nil {
		screen.Fill(colorDark)
		return
	}
	screen.Fill(colorPage)

	cat := g.content.Get()
	sy := g.scroll.pos
	l := g.layout

	switch l.page {
	case site.Solutions:
		g.drawHero(screen, sy)
		g.drawHeading(screen, cat.Solutions.Title, cat.Solutions.Subtitle, l.heading-sy)
	case site.Enrichment:
		g.drawBackdrop(screen, cat, l.section, sy)
		g.drawHeading(screen, cat.Enrichment.Title, cat.Enrichment.Subtitle, l.heading-sy)
	case site.Contact:
		g.drawHeading(screen, cat.Contact.Title, cat.Contact.Subtitle, l.heading-sy)
	}

	for _, b := range l.blocks {
		r := b.rect
		r.Y -= sy
		if r.Y > float64(g.height) || r.Y+r.H+config.RevealRise < 0 {
			continue
		}
		at, ok := g.trigger.Revealed(b.handle)
		alpha, offset := reveal.Fade(at, ok, now, b.delay)
		if alpha <= 0 {
			continue
		}
		r.Y += offset
		switch b.kind {
		case heroContent:
			g.drawHeroContent(screen, cat.Hero, r, alpha)
		case solutionCard:
			if b.item < len(cat.Solutions.Items) {
				g.drawSolution(screen, cat.Solutions.Items[b.item], r, alpha)
			}
		case activityCard:
			if b.item < len(cat.Enrichment.Items) {
				g.drawActivity(screen, cat.Enrichment.Items[b.item], r, alpha, b.item == g.activeBg)
			}
		case contactInfo:
			g.drawContactInfo(screen, cat.Contact.Info, r, alpha)
		case contactForm:
			g.drawForm(screen, r, alpha, now)
		}
	}

	g.drawFooter(screen, cat, l.footer, sy)
	g.drawHeader(screen, cat)
	g.drawLoader(screen, now)
}

func (g *game) drawHero(dst *ebiten.Image, sy float64) {
	r := g.layout.hero
	r.Y -= sy
	if r.Y+r.H < 0 {
		return
	}
	fillRect(dst, r, colorDark)
	g.hero.DrawTo(dst, r.X, r.Y)

	// Fade the bottom edge into the page.
	const bands = 24
	const depth = 140.0
	for i := 0; i < bands; i++ {
		t := float64(i+1) / bands
		band := reveal.Rect{X: r.X, Y: r.Y + r.H - depth + float64(i)*depth/bands, W: r.W, H: depth / bands}
		fillRect(dst, band, fade(colorDark, t*0.6))
	}
}

func (g *game) drawHeading(dst *ebiten.Image, title, subtitle string, y float64) {
	if y > float64(g.height) || y+headingHeight < 0 {
		return
	}
	cx := float64(g.width) / 2
	g.drawText(dst, title, 36, true, cx, y, colorHeading, text.AlignCenter)
	_, cw := container(float64(g.width))
	x := cx - min(cw, 640)/2
	g.drawParagraph(dst, subtitle, 18, x, y+56, min(cw, 640), colorMuted, text.AlignCenter)
}

func (g *game) drawHeroContent(dst *ebiten.Image, h content.Hero, r reveal.Rect, alpha float64) {
	cx := r.X + r.W/2

	badgeFace := g.fonts.face(14, true)
	bw := textAdvance(h.Badge, badgeFace) + 32
	badge := reveal.Rect{X: cx - bw/2, Y: r.Y, W: bw, H: 32}
	fillRect(dst, badge, fade(colorTeal, 0.15*alpha))
	strokeRect(dst, badge, 1, fade(colorTeal, 0.6*alpha))
	g.drawText(dst, h.Badge, 14, true, cx, r.Y+7, fade(colorTealLight, alpha), text.AlignCenter)

	g.drawText(dst, h.Title, 60, true, cx, r.Y+48, fade(colorWhite, alpha), text.AlignCenter)

	// Gradient highlight, one rune at a time.
	face := g.fonts.face(60, true)
	x := cx - textAdvance(h.Highlight, face)/2
	runes := []rune(h.Highlight)
	for i, ch := range runes {
		s := string(ch)
		t := float64(i) / math.Max(float64(len(runes)-1), 1)
		g.drawText(dst, s, 60, true, x, r.Y+118, fade(lerpColor(colorTeal, colorBlue, t), alpha), text.AlignStart)
		x += textAdvance(s, face)
	}

	g.drawParagraph(dst, h.Description, 18, r.X+40, r.Y+200, r.W-80, fade(hex(0xd1d5db), alpha), text.AlignCenter)

	primary := heroButtonRect(r, 0)
	fillRect(dst, primary, fade(colorTeal, alpha))
	g.drawText(dst, h.Primary, 16, true, primary.X+primary.W/2, primary.Y+16, fade(colorWhite, alpha), text.AlignCenter)
	outline := heroButtonRect(r, 1)
	strokeRect(dst, outline, 2, fade(colorWhite, 0.8*alpha))
	g.drawText(dst, h.Secondary, 16, true, outline.X+outline.W/2, outline.Y+16, fade(colorWhite, alpha), text.AlignCenter)
}

func (g *game) cardFrame(dst *ebiten.Image, r reveal.Rect, alpha float64) {
	hovered := contains(r, g.cursorX, g.cursorY)
	if hovered {
		r.Y -= 4
	}
	shadow := r
	shadow.Y += 6
	fillRect(dst, shadow, fade(colorDark, 0.06*alpha))
	fillRect(dst, r, fade(colorPage, alpha))
	border := colorBorder
	if hovered {
		border = colorTeal
	}
	strokeRect(dst, r, 1, fade(border, alpha))
}

func (g *game) drawSolution(dst *ebiten.Image, s content.Solution, r reveal.Rect, alpha float64) {
	g.cardFrame(dst, r, alpha)
	ac := accent(s.Color)
	vector.DrawFilledCircle(dst, float32(r.X+64), float32(r.Y+68), 32, fade(ac, 0.15*alpha), true)
	g.drawText(dst, s.Icon, 20, true, r.X+64, r.Y+56, fade(ac, alpha), text.AlignCenter)
	g.drawText(dst, s.Title, 24, true, r.X+32, r.Y+124, fade(colorHeading, alpha), text.AlignStart)
	g.drawParagraph(dst, s.Description, 16, r.X+32, r.Y+168, r.W-64, fade(colorMuted, alpha), text.AlignStart)
}

func (g *game) drawActivity(dst *ebiten.Image, a content.Activity, r reveal.Rect, alpha float64, active bool) {
	g.cardFrame(dst, r, alpha)
	ac := accent(a.Color)
	img := reveal.Rect{X: r.X, Y: r.Y, W: r.W, H: activityImage}
	const bands = 16
	for i := 0; i < bands; i++ {
		t := float64(i) / bands
		band := reveal.Rect{X: img.X, Y: img.Y + t*img.H, W: img.W, H: img.H/bands + 1}
		fillRect(dst, band, fade(lerpColor(ac, colorDark, t*0.7), alpha))
	}
	if active {
		strokeRect(dst, img, 3, fade(colorWhite, alpha))
	}
	g.drawText(dst, a.Alt, 16, false, img.X+img.W/2, img.Y+img.H/2-10, fade(colorWhite, 0.85*alpha), text.AlignCenter)
	g.drawText(dst, a.Title, 20, true, r.X+24, r.Y+activityImage+24, fade(colorHeading, alpha), text.AlignStart)
	g.drawParagraph(dst, a.Description, 14, r.X+24, r.Y+activityImage+60, r.W-48, fade(colorMuted, alpha), text.AlignStart)
}

func (g *game) drawBackdrop(dst *ebiten.Image, cat *content.Catalog, section reveal.Rect, sy float64) {
	section.Y -= sy
	fillRect(dst, section, colorGray)
	if g.activeBg >= 0 {
		g.lastBg = g.activeBg
	}
	if g.bgFade <= 0 || g.lastBg < 0 || g.lastBg >= len(cat.Enrichment.Items) {
		return
	}
	fillRect(dst, section, fade(accent(cat.Enrichment.Items[g.lastBg].Color), 0.18*g.bgFade))
}

func (g *game) drawContactInfo(dst *ebiten.Image, info []content.InfoItem, r reveal.Rect, alpha float64) {
	y := r.Y
	for _, it := range info {
		vector.DrawFilledCircle(dst, float32(r.X+28), float32(y+28), 28, fade(colorTeal, 0.15*alpha), true)
		g.drawText(dst, initial(it.Label), 20, true, r.X+28, y+16, fade(colorTealDark, alpha), text.AlignCenter)
		g.drawText(dst, it.Label, 18, true, r.X+76, y+6, fade(colorHeading, alpha), text.AlignStart)
		g.drawText(dst, it.Value, 16, false, r.X+76, y+32, fade(colorMuted, alpha), text.AlignStart)
		y += 96
	}
}

func (g *game) drawForm(dst *ebiten.Image, r reveal.Rect, alpha float64, now time.Time) {
	fillRect(dst, r, fade(colorGray, 0.9*alpha))
	strokeRect(dst, r, 1, fade(colorBorder, alpha))

	caretOn := now.UnixMilli()/500%2 == 0
	for _, f := range contact.Fields {
		in := formInputRect(r, f)
		focused := g.formFocused && g.form.Focus() == f
		fillRect(dst, in, fade(colorPage, alpha))
		border := colorBorder
		if focused {
			border = colorTeal
		}
		strokeRect(dst, in, 2, fade(border, alpha))

		value := g.form.Value(f)
		if value == "" && !focused {
			g.drawText(dst, f.Label(), 16, false, in.X+16, in.Y+18, fade(colorMuted, alpha), text.AlignStart)
			continue
		}
		g.drawText(dst, f.Label(), 12, true, in.X+16, in.Y+6, fade(colorTealDark, alpha), text.AlignStart)
		shown := value
		if focused && caretOn {
			shown += "|"
		}
		g.drawText(dst, shown, 16, false, in.X+16, in.Y+26, fade(colorHeading, alpha), text.AlignStart)
	}

	btn := formSubmitRect(r)
	status := g.form.Status()
	bg := colorTeal
	if status != contact.Idle {
		bg = colorDisabled
	} else if g.hovering(btn) {
		bg = colorTealDark
	}
	fillRect(dst, btn, fade(bg, alpha))
	g.drawText(dst, status.ButtonLabel(), 16, true, btn.X+btn.W/2, btn.Y+16, fade(colorWhite, alpha), text.AlignCenter)

	if g.formErr != nil {
		g.drawParagraph(dst, g.formErr.Error(), 14, btn.X, btn.Y+btn.H+8, btn.W, fade(colorError, alpha), text.AlignStart)
	}
}

func (g *game) drawFooter(dst *ebiten.Image, cat *content.Catalog, r reveal.Rect, sy float64) {
	r.Y -= sy
	if r.Y > float64(g.height) {
		return
	}
	fillRect(dst, r, colorDark)
	cx := r.X + r.W/2
	g.drawText(dst, cat.Brand, 24, true, cx, r.Y+48, colorWhite, text.AlignCenter)
	g.drawText(dst, cat.Copyright, 14, false, cx, r.Y+92, fade(colorWhite, 0.5), text.AlignCenter)
}

func (g *game) drawHeader(dst *ebiten.Image, cat *content.Catalog) {
	scrolled := g.scroll.pos > config.HeaderScrolledAt
	overHero := g.coord.Page() == site.Solutions && !scrolled
	fg := colorHeading
	if overHero {
		fg = colorWhite
	} else {
		bar := reveal.Rect{W: float64(g.width), H: config.HeaderHeight}
		fillRect(dst, bar, fade(colorPage, 0.95))
		vector.StrokeLine(dst, 0, config.HeaderHeight, float32(g.width), config.HeaderHeight, 1, colorBorder, false)
	}

	logo, items := navRects(g.width, g.navLabels(), g.navAdvance)
	g.drawText(dst, cat.Brand, 26, true, logo.X, logo.Y+20, colorTeal, text.AlignStart)
	for i, r := range items {
		p := site.Pages[i]
		clr := fg
		if p == g.coord.Page() || i == g.hoverNav {
			clr = colorTeal
		}
		g.drawText(dst, p.Label(), 16, true, r.X+r.W/2, r.Y+26, clr, text.AlignCenter)
		if p == g.coord.Page() {
			vector.StrokeLine(dst, float32(r.X+4), float32(r.Y+52), float32(r.X+r.W-4), float32(r.Y+52), 2, colorTeal, true)
		}
	}
}

// hovering reports whether the cursor is over a screen-space rect.
func (g *game) hovering(r reveal.Rect) bool {
	return contains(r, g.cursorX, g.cursorY)
}

// loaderAlpha is the splash overlay opacity: opaque while loading, then
// fading out. Zero when the splash is disabled.
func (g *game) loaderAlpha(now time.Time) float64 {
	if !g.splash {
		return 0
	}
	st := g.coord.State()
	if st.Loading {
		return 1
	}
	return clamp01(1 - float64(now.Sub(st.LoadingUntil))/float64(config.SplashFadeOut))
}

// drawLoader draws the splash screen while loading and fades it out after.
func (g *game) drawLoader(dst *ebiten.Image, now time.Time) {
	alpha := g.loaderAlpha(now)
	if alpha <= 0 {
		return
	}
	fillRect(dst, reveal.Rect{W: float64(g.width), H: float64(g.height)}, fade(colorDark, alpha))

	letters := []string{"N", "M", "B", "K"}
	face := g.fonts.face(56, true)
	const gap = 12.0
	total := -gap
	for _, s := range letters {
		total += textAdvance(s, face) + gap
	}
	x := (float64(g.width) - total) / 2
	y := float64(g.height)/2 - 36
	for i, s := range letters {
		phase := float64(now.UnixMilli()-int64(i*100)) / 1200 * 2 * math.Pi
		lift := 14 * math.Max(0, math.Sin(phase))
		r, gg, b := hsvToRgb(170+20*math.Sin(phase), 0.75, 0.85)
		g.drawText(dst, s, 56, true, x, y-lift, fade(color.RGBA{R: r, G: gg, B: b, A: 255}, alpha), text.AlignStart)
		x += textAdvance(s, face) + gap
	}
}
