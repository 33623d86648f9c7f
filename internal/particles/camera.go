package particles

import (
	"math"

	"github.com/iburimskiy/nmbk-site/internal/config"
)

// Camera is a perspective camera on the +Z axis looking at the origin.
type Camera struct {
	FOV      float64 // vertical, degrees
	Near     float64
	Far      float64
	Distance float64

	aspect float64
	focal  float64
	width  int
	height int
}

// NewCamera returns the hero camera with a square aspect.
func NewCamera() *Camera {
	c := &Camera{
		FOV:      config.CameraFOV,
		Near:     config.CameraNear,
		Far:      config.CameraFar,
		Distance: config.CameraDistance,
	}
	c.SetAspect(1, 1)
	return c
}

// SetAspect sets the aspect ratio from a surface size and updates the
// projection. Dimensions below 1 are clamped to 1.
func (c *Camera) SetAspect(w, h int) {
	w, h = max(w, 1), max(h, 1)
	c.width, c.height = w, h
	c.aspect = float64(w) / float64(h)
	c.updateProjection()
}

func (c *Camera) updateProjection() {
	c.focal = 1 / math.Tan(c.FOV*math.Pi/360)
}

// Aspect returns width/height of the last SetAspect call.
func (c *Camera) Aspect() float64 { return c.aspect }

// Viewport returns the surface size the projection is set up for.
func (c *Camera) Viewport() (w, h int) { return c.width, c.height }

// Project maps a world point to surface pixels. depth is the distance in
// front of the camera; ok is false when the point is clipped.
func (c *Camera) Project(p Vec3) (x, y, depth float64, ok bool) {
	depth = c.Distance - p.Z
	if depth < c.Near || depth > c.Far {
		return 0, 0, depth, false
	}
	nx := c.focal / c.aspect * p.X / depth
	ny := c.focal * p.Y / depth
	if nx < -1 || nx > 1 || ny < -1 || ny > 1 {
		return 0, 0, depth, false
	}
	x = (nx + 1) / 2 * float64(c.width)
	y = (1 - ny) / 2 * float64(c.height)
	return x, y, depth, true
}
