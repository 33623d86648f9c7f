package particles

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/nmbk-site/internal/config"
)

// maxQuadsPerBatch keeps vertex indices within uint16.
const maxQuadsPerBatch = math.MaxUint16 / 4

// Teal particle colour (#2dd4bf).
var (
	particleR float32 = 0x2d / 255.0
	particleG float32 = 0xd4 / 255.0
	particleB float32 = 0xbf / 255.0
)

// Orientation is the aggregate transform applied to the cloud at draw time.
type Orientation struct {
	RotX float64 // about the horizontal axis
	RotY float64 // about the vertical axis
	Tilt float64 // scene wobble about the view axis
}

// Batch is one DrawTriangles call worth of point quads.
type Batch struct {
	Vertices []ebiten.Vertex
	Indices  []uint16
}

// Geometry is the per-frame vertex buffer. It is reused across frames.
type Geometry struct {
	Batches []Batch
	n       int
}

// Len returns the number of batches in use.
func (g *Geometry) Len() int { return g.n }

// Quads returns the number of point quads across all batches in use.
func (g *Geometry) Quads() int {
	q := 0
	for _, b := range g.Batches[:g.n] {
		q += len(b.Vertices) / 4
	}
	return q
}

func (g *Geometry) reset() {
	for i := range g.Batches {
		g.Batches[i].Vertices = g.Batches[i].Vertices[:0]
		g.Batches[i].Indices = g.Batches[i].Indices[:0]
	}
	g.n = 0
}

func (g *Geometry) current() *Batch {
	if g.n == 0 || len(g.Batches[g.n-1].Vertices)/4 >= maxQuadsPerBatch {
		if g.n == len(g.Batches) {
			g.Batches = append(g.Batches, Batch{})
		}
		g.n++
	}
	return &g.Batches[g.n-1]
}

// Field animates a Cloud. Positions are never modified; every frame only
// the Orientation advances.
type Field struct {
	cloud  Cloud
	camera *Camera
	orient Orientation
	ticks  uint64
}

// NewField returns a Field that projects cloud through camera.
func NewField(cloud Cloud, camera *Camera) *Field {
	return &Field{cloud: cloud, camera: camera}
}

// Step advances the rotation by one frame and sets the wobble for now.
func (f *Field) Step(now time.Time) {
	f.orient.RotY += config.RotationSpeedY
	f.orient.RotX += config.RotationSpeedX
	f.orient.Tilt = Wobble(now)
	f.ticks++
}

// Wobble returns the scene tilt for a wall-clock instant.
func Wobble(now time.Time) float64 {
	return math.Sin(float64(now.UnixMilli())*config.WobbleFrequency) * config.WobbleAmplitude
}

// Orientation returns the current transform.
func (f *Field) Orientation() Orientation { return f.orient }

// Ticks returns how many times Step has run.
func (f *Field) Ticks() uint64 { return f.ticks }

// Cloud returns the point positions.
func (f *Field) Cloud() Cloud { return f.cloud }

// Build fills g with one quad per visible particle.
func (f *Field) Build(g *Geometry) {
	g.reset()
	_, h := f.camera.Viewport()
	scale := float64(h) / 2
	m := rotZ(f.orient.Tilt).mul(rotX(f.orient.RotX)).mul(rotY(f.orient.RotY))

	for i := 0; i < f.cloud.Len(); i++ {
		p := m.apply(f.cloud.At(i))
		x, y, depth, ok := f.camera.Project(p)
		if !ok {
			continue
		}
		size := max(config.ParticleSize*scale/depth, 1)
		fog := config.FogDensity * depth
		alpha := float32(config.ParticleOpacity * math.Exp(-fog*fog))
		appendQuad(g.current(), float32(x), float32(y), float32(size/2), alpha)
	}
}

// appendQuad adds one point sprite with premultiplied colour.
func appendQuad(b *Batch, x, y, r, alpha float32) {
	base := uint16(len(b.Vertices))
	corners := [4][2]float32{{-r, -r}, {r, -r}, {-r, r}, {r, r}}
	for _, c := range corners {
		b.Vertices = append(b.Vertices, ebiten.Vertex{
			DstX:   x + c[0],
			DstY:   y + c[1],
			SrcX:   1,
			SrcY:   1,
			ColorR: particleR * alpha,
			ColorG: particleG * alpha,
			ColorB: particleB * alpha,
			ColorA: alpha,
		})
	}
	b.Indices = append(b.Indices, base, base+1, base+2, base+1, base+3, base+2)
}
