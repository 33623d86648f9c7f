package game

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/nmbk-site/internal/config"
	"github.com/iburimskiy/nmbk-site/internal/contact"
	"github.com/iburimskiy/nmbk-site/internal/content"
	"github.com/iburimskiy/nmbk-site/internal/lifecycle"
	"github.com/iburimskiy/nmbk-site/internal/particles"
	"github.com/iburimskiy/nmbk-site/internal/reveal"
	"github.com/iburimskiy/nmbk-site/internal/site"
	"github.com/iburimskiy/nmbk-site/internal/sound"
)

type stubSurface struct{ w, h, renders int }

func (s *stubSurface) SetSize(w, h int)                               { s.w, s.h = w, h }
func (s *stubSurface) Size() (int, int)                               { return s.w, s.h }
func (s *stubSurface) Render(*particles.Geometry, particles.Material) { s.renders++ }
func (s *stubSurface) Release()                                       {}

type stubMaterial struct{}

func (stubMaterial) Release() {}

type stubBackend struct{ surfaces []*stubSurface }

func (b *stubBackend) NewSurface(w, h int) (particles.Surface, error) {
	s := &stubSurface{w: w, h: h}
	b.surfaces = append(b.surfaces, s)
	return s, nil
}

func (b *stubBackend) NewMaterial() (particles.Material, error) { return stubMaterial{}, nil }

type recordingNotifier struct{ messages []string }

func (n *recordingNotifier) Notify(msg string)   { n.messages = append(n.messages, msg) }
func (n *recordingNotifier) Error(_, msg string) { n.messages = append(n.messages, msg) }

type recordingSound struct{ tones []sound.Tone }

func (s *recordingSound) Play(t sound.Tone) { s.tones = append(s.tones, t) }

type harness struct {
	g        *game
	clock    time.Time
	backend  *stubBackend
	counter  *lifecycle.Counter
	notifier *recordingNotifier
	sound    *recordingSound
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		clock:    time.Unix(1_700_000_000, 0),
		backend:  &stubBackend{},
		counter:  &lifecycle.Counter{},
		notifier: &recordingNotifier{},
		sound:    &recordingSound{},
	}
	g, err := New(Options{
		Content:   content.NewStore(content.Default()),
		Backend:   h.backend,
		Sound:     h.sound,
		Notifier:  h.notifier,
		Particles: 100,
		Now:       func() time.Time { return h.clock },
		Counter:   h.counter,
	})
	require.NoError(t, err)
	h.g = g
	w, ht := g.Layout(1200, 800)
	require.Equal(t, [2]int{1200, 800}, [2]int{w, ht})
	return h
}

func (h *harness) step(t *testing.T, in frameInput) {
	t.Helper()
	h.clock = h.clock.Add(time.Second / config.TPS)
	require.NoError(t, h.g.step(h.clock, in))
}

func (h *harness) clickNav(t *testing.T, p site.Page) {
	t.Helper()
	_, items := navRects(h.g.width, h.g.navLabels(), h.g.navAdvance)
	r := items[p]
	h.step(t, frameInput{cursorX: int(r.X + r.W/2), cursorY: int(r.H / 2), clicked: true})
}

func TestGame_MountsSolutionsWithHero(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, site.Solutions, h.g.coord.Page())
	assert.True(t, h.g.hero.Active())
	require.Len(t, h.backend.surfaces, 1)
	assert.Equal(t, [2]int{1200, 800}, [2]int{h.backend.surfaces[0].w, h.backend.surfaces[0].h})
	assert.Equal(t, 4, h.g.trigger.Watched(), "hero content and three cards")

	h.step(t, frameInput{})
	hero := h.g.layout.find(heroContent)
	_, revealed := h.g.trigger.Revealed(hero.handle)
	assert.True(t, revealed)
	assert.Equal(t, 3, h.g.trigger.Watched(), "cards are below the fold")
	assert.Equal(t, 1, h.backend.surfaces[0].renders)
}

func TestGame_ScrollRevealsCards(t *testing.T) {
	h := newHarness(t)
	for i := 0; i < 120; i++ {
		h.step(t, frameInput{wheelY: -1})
	}
	for _, b := range h.g.layout.blocks {
		_, ok := h.g.trigger.Revealed(b.handle)
		assert.True(t, ok, "block %d", b.kind)
	}
	assert.Zero(t, h.g.trigger.Watched())
}

func TestGame_NavigationSwitchesPagesAndReleasesHero(t *testing.T) {
	h := newHarness(t)
	h.step(t, frameInput{})

	h.clickNav(t, site.Enrichment)
	assert.Equal(t, site.Enrichment, h.g.coord.Page())
	assert.False(t, h.g.hero.Active())
	assert.Equal(t, 1, h.g.scroll.tops)
	assert.Equal(t, h.counter.Acquired(), h.counter.Releases())
	assert.Equal(t, []sound.Tone{sound.Click}, h.sound.tones)

	h.clickNav(t, site.Enrichment)
	assert.Equal(t, 1, h.g.scroll.tops, "same page does not scroll")

	h.clickNav(t, site.Solutions)
	assert.True(t, h.g.hero.Active())
	assert.Len(t, h.backend.surfaces, 2, "a new point cloud per mount")
	assert.Equal(t, 2, h.g.scroll.tops)
	assert.Equal(t, 1, h.g.sched.Len())
}

func TestGame_ContactFormFlow(t *testing.T) {
	h := newHarness(t)
	h.clickNav(t, site.Contact)
	require.Equal(t, site.Contact, h.g.coord.Page())

	form := h.g.layout.find(contactForm)
	require.NotNil(t, form)
	name := formInputRect(form.rect, contact.Name)
	h.step(t, frameInput{cursorX: int(name.X + 10), cursorY: int(name.Y + 10), clicked: true})
	require.True(t, h.g.formFocused)

	h.step(t, frameInput{chars: []rune("Ada")})
	h.step(t, frameInput{tab: true})
	h.step(t, frameInput{chars: []rune("ada@example.com")})
	h.step(t, frameInput{tab: true})
	h.step(t, frameInput{chars: []rune("Hi")})
	h.step(t, frameInput{escape: true})
	assert.False(t, h.g.formFocused, "escape leaves the form without quitting")

	submit := formSubmitRect(form.rect)
	h.step(t, frameInput{cursorX: int(submit.X + 10), cursorY: int(submit.Y + 10), clicked: true})
	assert.Equal(t, contact.Loading, h.g.form.Status())

	h.clock = h.clock.Add(config.ContactLoading)
	h.step(t, frameInput{})
	assert.Equal(t, contact.Success, h.g.form.Status())
	assert.Equal(t, []string{"Thanks Ada, your message was sent."}, h.notifier.messages)
	assert.Contains(t, h.sound.tones, sound.Chime)
}

func TestGame_InvalidSubmitShowsError(t *testing.T) {
	h := newHarness(t)
	h.clickNav(t, site.Contact)
	form := h.g.layout.find(contactForm)
	submit := formSubmitRect(form.rect)

	h.step(t, frameInput{cursorX: int(submit.X + 10), cursorY: int(submit.Y + 10), clicked: true})

	assert.ErrorIs(t, h.g.formErr, contact.ErrInvalidField)
	assert.Equal(t, contact.Idle, h.g.form.Status())
}

func TestGame_EscapeQuits(t *testing.T) {
	h := newHarness(t)
	h.clock = h.clock.Add(time.Second)
	assert.ErrorIs(t, h.g.step(h.clock, frameInput{escape: true}), ebiten.Termination)
}

func TestGame_ResizeRelaysOutAndKeepsHandles(t *testing.T) {
	h := newHarness(t)
	before := h.g.layout.handles()

	h.g.Layout(640, 480)

	assert.Equal(t, before, h.g.layout.handles())
	assert.Equal(t, [2]int{640, 480}, [2]int{h.backend.surfaces[0].w, h.backend.surfaces[0].h})
	cards := 0
	for _, b := range h.g.layout.blocks {
		if b.kind == solutionCard {
			cards++
			assert.Equal(t, h.g.layout.blocks[1].rect.X, b.rect.X, "narrow windows stack cards")
		}
	}
	assert.Equal(t, 3, cards)
}

func TestGame_ContentReloadRelaysOut(t *testing.T) {
	h := newHarness(t)
	c := content.Default()
	c.Solutions.Items = c.Solutions.Items[:1]
	h.g.content.Set(c)

	h.step(t, frameInput{})

	n := 0
	for _, b := range h.g.layout.blocks {
		if b.kind == solutionCard {
			n++
		}
	}
	assert.Equal(t, 1, n)
}

func TestGame_CloseReleasesEverything(t *testing.T) {
	h := newHarness(t)
	h.step(t, frameInput{})

	h.g.Close()
	h.g.Close()

	assert.False(t, h.g.hero.Active())
	assert.Zero(t, h.g.sched.Len())
	assert.Zero(t, h.g.trigger.Watched())
	assert.Empty(t, h.counter.Live())
	assert.Error(t, h.g.step(h.clock, frameInput{}))
}

func TestGame_SplashBlocksInput(t *testing.T) {
	clock := time.Unix(0, 0)
	g, err := New(Options{
		Backend: &stubBackend{},
		Splash:  config.SplashDuration,
		Now:     func() time.Time { return clock },
	})
	require.NoError(t, err)
	g.Layout(1200, 800)

	require.NoError(t, g.step(clock, frameInput{escape: true}))
	assert.True(t, g.coord.State().Loading)

	clock = clock.Add(config.SplashDuration)
	assert.Error(t, g.step(clock, frameInput{escape: true}))
}

func TestGame_LoaderAlpha(t *testing.T) {
	clock := time.Unix(0, 0)
	g, err := New(Options{
		Backend: &stubBackend{},
		Splash:  config.SplashDuration,
		Now:     func() time.Time { return clock },
	})
	require.NoError(t, err)
	g.Layout(1200, 800)

	assert.Equal(t, 1.0, g.loaderAlpha(clock))
	clock = clock.Add(config.SplashDuration)
	require.NoError(t, g.step(clock, frameInput{}))
	assert.InDelta(t, 0.5, g.loaderAlpha(clock.Add(config.SplashFadeOut/2)), 1e-9)
	assert.Zero(t, g.loaderAlpha(clock.Add(config.SplashFadeOut)))
}

func TestGame_NoSplashSkipsLoader(t *testing.T) {
	h := newHarness(t)
	assert.False(t, h.g.coord.State().Loading)
	assert.Zero(t, h.g.loaderAlpha(h.clock))
	h.step(t, frameInput{})
	assert.Zero(t, h.g.loaderAlpha(h.clock))
}

func TestGame_SubmitHoverUsesScreenSpace(t *testing.T) {
	h := newHarness(t)
	h.clickNav(t, site.Contact)
	form := h.g.layout.find(contactForm)
	require.NotNil(t, form)

	h.g.scroll.pos = 150
	btn := formSubmitRect(form.rect)
	btn.Y -= h.g.scroll.pos
	h.g.cursorX, h.g.cursorY = btn.X+btn.W/2, btn.Y+btn.H/2
	assert.True(t, h.g.hovering(btn))

	h.g.cursorY += h.g.scroll.pos
	assert.False(t, h.g.hovering(btn))
}

func TestLayoutPage_Pages(t *testing.T) {
	cat := content.Default()
	var next reveal.Handle
	newHandle := func() reveal.Handle { next++; return next }

	sol := layoutPage(site.Solutions, cat, 1200, 800, nil, newHandle)
	assert.Equal(t, 800.0, sol.hero.H)
	assert.Len(t, sol.blocks, 4)
	assert.Greater(t, sol.height, 800.0)
	assert.Equal(t, sol.height, sol.footer.Y+sol.footer.H)

	enr := layoutPage(site.Enrichment, cat, 1200, 800, sol, newHandle)
	assert.Len(t, enr.blocks, 3)
	assert.Zero(t, enr.hero.H)
	for _, b := range enr.blocks {
		assert.Greater(t, b.handle, reveal.Handle(4), "handles are not shared across pages")
	}

	con := layoutPage(site.Contact, cat, 1200, 800, nil, newHandle)
	info, form := con.find(contactInfo), con.find(contactForm)
	require.NotNil(t, info)
	require.NotNil(t, form)
	assert.Equal(t, info.rect.Y, form.rect.Y)
	assert.Equal(t, 200*time.Millisecond, form.delay)

	narrow := layoutPage(site.Contact, cat, 500, 800, nil, newHandle)
	assert.Greater(t, narrow.find(contactForm).rect.Y, narrow.find(contactInfo).rect.Y)
}

func TestLayoutPage_Stagger(t *testing.T) {
	var next reveal.Handle
	l := layoutPage(site.Enrichment, content.Default(), 1200, 800, nil, func() reveal.Handle { next++; return next })
	for i, b := range l.blocks {
		assert.Equal(t, reveal.Stagger(i), b.delay)
	}
}

func TestNavRects(t *testing.T) {
	logo, items := navRects(1200, []string{"a", "bb", "ccc"}, func(s string) float64 { return float64(len(s)) * 10 })
	require.Len(t, items, 3)
	assert.Less(t, logo.X, items[0].X)
	for i := 1; i < len(items); i++ {
		assert.InDelta(t, items[i-1].X+items[i-1].W+config.NavItemGap, items[i].X, 1e-9)
	}
	cx, cw := container(1200)
	assert.InDelta(t, cx+cw, items[2].X+items[2].W, 1e-9)
}
