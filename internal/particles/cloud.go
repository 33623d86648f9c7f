// Package particles renders the decorative point-cloud background of the
// hero section.
package particles

import (
	"math"
	"math/rand/v2"
)

// Vec3 holds a 3D coordinate.
type Vec3 struct{ X, Y, Z float64 }

// Cloud is an immutable set of points stored as packed x,y,z triples.
type Cloud struct {
	pos []float32
}

// Generate returns n points with every coordinate drawn uniformly from
// [-halfWidth, halfWidth]. A nil rng uses the unseeded global source.
func Generate(n int, halfWidth float64, rng *rand.Rand) Cloud {
	if n < 0 {
		n = 0
	}
	halfWidth = math.Abs(halfWidth)
	sample := rand.Float64
	if rng != nil {
		sample = rng.Float64
	}
	pos := make([]float32, 3*n)
	for i := range pos {
		pos[i] = float32((sample()*2 - 1) * halfWidth)
	}
	return Cloud{pos: pos}
}

// Len returns the number of points.
func (c Cloud) Len() int { return len(c.pos) / 3 }

// At returns point i.
func (c Cloud) At(i int) Vec3 {
	j := i * 3
	return Vec3{X: float64(c.pos[j]), Y: float64(c.pos[j+1]), Z: float64(c.pos[j+2])}
}

// Bytes returns the size of the position buffer in bytes.
func (c Cloud) Bytes() int { return len(c.pos) * 4 }

// mat3 is a row-major rotation matrix.
type mat3 [9]float64

func rotX(a float64) mat3 {
	s, c := math.Sincos(a)
	return mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

func rotY(a float64) mat3 {
	s, c := math.Sincos(a)
	return mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

func rotZ(a float64) mat3 {
	s, c := math.Sincos(a)
	return mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

func (m mat3) mul(n mat3) mat3 {
	var r mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i*3+j] = m[i*3]*n[j] + m[i*3+1]*n[3+j] + m[i*3+2]*n[6+j]
		}
	}
	return r
}

func (m mat3) apply(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}
