// Package game composes the site into an ebiten.Game: the fixed header,
// the three pages, the particle hero, reveal-on-scroll and the contact form.
package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/iburimskiy/nmbk-site/internal/config"
	"github.com/iburimskiy/nmbk-site/internal/contact"
	"github.com/iburimskiy/nmbk-site/internal/content"
	"github.com/iburimskiy/nmbk-site/internal/frame"
	"github.com/iburimskiy/nmbk-site/internal/lifecycle"
	"github.com/iburimskiy/nmbk-site/internal/logging"
	"github.com/iburimskiy/nmbk-site/internal/notify"
	"github.com/iburimskiy/nmbk-site/internal/particles"
	"github.com/iburimskiy/nmbk-site/internal/reveal"
	"github.com/iburimskiy/nmbk-site/internal/site"
	"github.com/iburimskiy/nmbk-site/internal/sound"
	"github.com/iburimskiy/nmbk-site/internal/viewport"
)

// Options wires a Game to its collaborators. Zero fields get defaults.
type Options struct {
	Content   *content.Store
	Backend   particles.Backend
	Sound     sound.Player
	Notifier  notify.Notifier
	Particles int
	Splash    time.Duration
	Now       func() time.Time
	Rand      *rand.Rand
	Counter   *lifecycle.Counter
	Logger    *zap.Logger
}

type game struct {
	log      *zap.Logger
	now      func() time.Time
	content  *content.Store
	sound    sound.Player
	notifier notify.Notifier
	fonts    *fonts

	sched    frame.Scheduler
	viewport viewport.Notifier
	hero     *particles.Hero
	trigger  *reveal.Trigger
	coord    *site.Coordinator
	scroll   scroller
	form     *contact.Form

	width, height  int
	layout         *pageLayout
	contentVersion uint64

	// hover and focus
	cursorX, cursorY float64
	hoverNav         int
	activeBg         int
	lastBg           int
	bgFade           float64
	formFocused      bool
	formErr          error
	backspaceHeld    int

	splash bool
	closed bool
}

// New builds the game. The first page is mounted on the first Layout call.
func New(opts Options) (*game, error) {
	if opts.Content == nil {
		opts.Content = content.NewStore(content.Default())
	}
	if opts.Backend == nil {
		opts.Backend = particles.EbitenBackend{}
	}
	if opts.Sound == nil {
		opts.Sound = sound.Nop{}
	}
	opts.Logger = logging.OrNop(opts.Logger)
	if opts.Notifier == nil {
		opts.Notifier = notify.Log{L: opts.Logger}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	f, err := loadFonts()
	if err != nil {
		return nil, err
	}

	g := &game{
		log:      opts.Logger,
		now:      opts.Now,
		content:  opts.Content,
		sound:    opts.Sound,
		notifier: opts.Notifier,
		fonts:    f,
		hoverNav: -1,
		activeBg: -1,
		lastBg:   -1,
		splash:   opts.Splash > 0,
	}
	g.hero = particles.NewHero(opts.Backend, &g.sched, &g.viewport, particles.HeroOptions{
		Count:     opts.Particles,
		HalfWidth: config.ParticleHalfWidth,
		Container: heroContainer,
		Rand:      opts.Rand,
		Counter:   opts.Counter,
		Logger:    opts.Logger.Named("hero"),
	})
	g.trigger = reveal.NewTrigger(config.RevealThreshold, g.now, opts.Logger.Named("reveal"))
	g.coord = site.NewCoordinator(site.Initial(g.now(), opts.Splash), &g.scroll, opts.Logger.Named("site"))
	g.coord.OnChange(g.switchPage)
	g.form = contact.NewForm(g.messageSent, opts.Logger.Named("contact"))
	g.viewport.Subscribe(g.resized)
	return g, nil
}

func (g *game) messageSent(name, email string) {
	g.sound.Play(sound.Chime)
	g.notifier.Notify(fmt.Sprintf("Thanks %s, your message was sent.", name))
}

// resized relays out the current page for a new window size.
func (g *game) resized(w, h int) {
	first := g.width == 0
	g.width, g.height = w, h
	if first {
		g.mount(g.coord.Page())
		return
	}
	g.relayout()
}

// relayout keeps the handles of blocks that survive and re-registers them
// with their new bounds; blocks that disappeared stop being observed.
func (g *game) relayout() {
	prev := g.layout
	g.layout = layoutPage(g.coord.Page(), g.content.Get(), g.width, g.height, prev, g.trigger.NewHandle)
	g.contentVersion = g.content.Version()
	g.scroll.setLimit(g.layout.height, float64(g.height))

	kept := make(map[reveal.Handle]bool, len(g.layout.blocks))
	for _, b := range g.layout.blocks {
		kept[b.handle] = true
		g.trigger.Register(b.handle, b.bounds)
	}
	if prev == nil {
		return
	}
	for _, h := range prev.handles() {
		if !kept[h] {
			g.trigger.Forget(h)
		}
	}
}

// mount builds the page, registers its blocks for reveal and activates the
// hero on the solutions page.
func (g *game) mount(p site.Page) {
	g.layout = nil
	g.relayout()
	if p == site.Solutions {
		if err := g.hero.Activate(); err != nil {
			g.log.Warn("rendering solutions without background", zap.Error(err))
		}
	}
	g.log.Debug("mounted", zap.Stringer("page", p), zap.Int("blocks", len(g.layout.blocks)))
}

func (g *game) unmount() {
	if g.layout == nil {
		return
	}
	g.trigger.Forget(g.layout.handles()...)
	g.hero.Deactivate()
	g.activeBg, g.lastBg, g.bgFade = -1, -1, 0
	g.formFocused = false
	g.formErr = nil
	g.layout = nil
}

func (g *game) switchPage(from, to site.Page) {
	g.sound.Play(sound.Click)
	g.unmount()
	if g.width > 0 {
		g.mount(to)
	}
}

// Close releases the hero, the reveal observer and every frame task.
func (g *game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.unmount()
	g.trigger.Teardown()
	g.sched.CancelAll()
}

// Update implements ebiten.Game.
func (g *game) Update() error {
	return g.step(g.now(), pollInput())
}

func (g *game) step(now time.Time, in frameInput) error {
	if g.closed {
		return ebiten.Termination
	}
	g.coord.Advance(now)
	if g.layout == nil {
		g.sched.Tick(now)
		return nil
	}
	if g.content.Version() != g.contentVersion {
		g.relayout()
	}

	if !g.coord.State().Loading {
		if err := g.handleInput(now, in); err != nil {
			return err
		}
	}

	g.scroll.step()
	g.trigger.Check(reveal.Rect{Y: g.scroll.pos, W: float64(g.width), H: float64(g.height)})
	g.form.Advance(now)
	g.updateBackdrop()
	g.sched.Tick(now)
	return nil
}

func (g *game) updateBackdrop() {
	const speed = 0.08
	if g.activeBg >= 0 {
		g.bgFade = min(g.bgFade+speed, 1)
	} else {
		g.bgFade = max(g.bgFade-speed, 0)
	}
}

// Layout implements ebiten.Game. The outside size is the page viewport; a
// change is broadcast to the hero and the page layout.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(outsideWidth, 1), max(outsideHeight, 1)
	g.viewport.Notify(w, h)
	return w, h
}
