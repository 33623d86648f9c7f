package particles

import (
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/iburimskiy/nmbk-site/internal/frame"
	"github.com/iburimskiy/nmbk-site/internal/lifecycle"
	"github.com/iburimskiy/nmbk-site/internal/logging"
	"github.com/iburimskiy/nmbk-site/internal/viewport"
)

// Backend allocates the GPU-side resources of the hero background.
type Backend interface {
	NewSurface(w, h int) (Surface, error)
	NewMaterial() (Material, error)
}

// HeroOptions configures a Hero.
type HeroOptions struct {
	Count     int
	HalfWidth float64
	// Container maps a window size to the hero container size.
	Container func(w, h int) (int, int)
	Rand      *rand.Rand
	Counter   *lifecycle.Counter
	Logger    *zap.Logger
}

// Hero is the animated background component. Activate and Deactivate
// bracket one mount of the owning page section.
type Hero struct {
	backend  Backend
	sched    *frame.Scheduler
	viewport *viewport.Notifier
	opts     HeroOptions
	log      *zap.Logger

	bundle   *lifecycle.Bundle
	surface  Surface
	material Material
	geometry *Geometry
	field    *Field
	binder   *Binder
	task     *frame.Handle
}

// NewHero returns an inactive Hero.
func NewHero(backend Backend, sched *frame.Scheduler, vp *viewport.Notifier, opts HeroOptions) *Hero {
	if opts.Container == nil {
		opts.Container = func(w, h int) (int, int) { return w, h }
	}
	log := opts.Logger
	log = logging.OrNop(log)
	return &Hero{
		backend:  backend,
		sched:    sched,
		viewport: vp,
		opts:     opts,
		log:      log,
	}
}

// Active reports whether the hero holds resources.
func (h *Hero) Active() bool { return h.bundle != nil }

// Activate acquires the surface, geometry buffer, material and scene,
// subscribes to resize notifications and starts the frame task. On error
// everything acquired so far is released and the hero stays inactive.
// Activating an active hero is a no-op.
func (h *Hero) Activate() (err error) {
	if h.Active() {
		return nil
	}
	bundle := lifecycle.NewBundle(h.opts.Counter, h.log)
	defer func() {
		if err != nil {
			bundle.Release()
			h.reset()
			h.log.Warn("hero background disabled", zap.Error(err))
		}
	}()

	w, ht := 1, 1
	if size, ok := h.viewport.Last(); ok {
		w, ht = h.opts.Container(size.W, size.H)
	}

	surface, err := h.backend.NewSurface(max(w, 1), max(ht, 1))
	if err != nil {
		return fmt.Errorf("acquire surface: %w", err)
	}
	bundle.Acquire("surface", surface.Release)
	h.surface = surface

	cloud := Generate(h.opts.Count, h.opts.HalfWidth, h.opts.Rand)
	h.geometry = &Geometry{}
	bundle.Acquire("geometry", func() { h.geometry = nil })

	material, err := h.backend.NewMaterial()
	if err != nil {
		return fmt.Errorf("acquire material: %w", err)
	}
	bundle.Acquire("material", material.Release)
	h.material = material

	camera := NewCamera()
	h.field = NewField(cloud, camera)
	h.binder = NewBinder(camera, surface)
	h.binder.Resize(w, ht)
	bundle.Acquire("scene", func() {
		h.field = nil
		h.binder = nil
	})

	unsubscribe := h.viewport.Subscribe(func(w, ht int) {
		h.binder.Resize(h.opts.Container(w, ht))
	})
	bundle.Acquire("resize-listener", unsubscribe)

	task := h.sched.Start("hero", h.tick)
	bundle.Acquire("frame-task", task.Cancel)
	h.task = task

	h.bundle = bundle
	h.log.Debug("hero activated",
		zap.Int("particles", cloud.Len()),
		zap.Int("width", w),
		zap.Int("height", ht))
	return nil
}

// Deactivate releases every resource and cancels the frame task and the
// resize listener. It is a no-op when the hero is inactive.
func (h *Hero) Deactivate() {
	if !h.Active() {
		return
	}
	h.bundle.Release()
	h.reset()
	h.log.Debug("hero deactivated")
}

func (h *Hero) reset() {
	h.bundle = nil
	h.surface = nil
	h.material = nil
	h.geometry = nil
	h.field = nil
	h.binder = nil
	h.task = nil
}

func (h *Hero) tick(now time.Time) {
	h.field.Step(now)
	h.field.Build(h.geometry)
	h.surface.Render(h.geometry, h.material)
}

// Surface returns the draw surface, or nil when inactive.
func (h *Hero) Surface() Surface { return h.surface }

// Field returns the animated field, or nil when inactive.
func (h *Hero) Field() *Field { return h.field }
