package particles

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrSurfaceUnavailable is returned when the backend cannot allocate a
// draw surface.
var ErrSurfaceUnavailable = errors.New("draw surface unavailable")

// EbitenBackend allocates offscreen ebiten images.
type EbitenBackend struct{}

// NewSurface allocates an offscreen image of the given size.
func (EbitenBackend) NewSurface(w, h int) (Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrSurfaceUnavailable
	}
	return &canvas{img: ebiten.NewImage(w, h), w: w, h: h}, nil
}

// NewMaterial allocates the white point sprite.
func (EbitenBackend) NewMaterial() (Material, error) {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &sprite{img: img}, nil
}

type sprite struct {
	img *ebiten.Image
}

func (s *sprite) Release() {
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
}

type canvas struct {
	img  *ebiten.Image
	w, h int
}

func (c *canvas) Size() (int, int) { return c.w, c.h }

func (c *canvas) SetSize(w, h int) {
	if c.img != nil {
		c.img.Deallocate()
	}
	c.w, c.h = w, h
	c.img = ebiten.NewImage(w, h)
}

func (c *canvas) Render(g *Geometry, m Material) {
	if c.img == nil {
		return
	}
	c.img.Clear()
	s, ok := m.(*sprite)
	if !ok || s.img == nil {
		return
	}
	op := &ebiten.DrawTrianglesOptions{Blend: ebiten.BlendLighter}
	for _, b := range g.Batches[:g.Len()] {
		c.img.DrawTriangles(b.Vertices, b.Indices, s.img, op)
	}
}

func (c *canvas) Release() {
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
}

// Image returns the rendered frame for compositing, or nil.
func (c *canvas) Image() *ebiten.Image { return c.img }

// DrawTo composites the hero surface onto dst at (x, y). It draws nothing
// when the hero is inactive or was not built on an EbitenBackend.
func (h *Hero) DrawTo(dst *ebiten.Image, x, y float64) {
	c, ok := h.surface.(*canvas)
	if !ok || c.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.Blend = ebiten.BlendLighter
	dst.DrawImage(c.img, op)
}
