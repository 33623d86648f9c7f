package particles

// Surface is the draw target the point cloud is rendered into.
type Surface interface {
	SetSize(w, h int)
	Size() (w, h int)
	Render(g *Geometry, m Material)
	Release()
}

// Material is the point sprite shared by every particle.
type Material interface {
	Release()
}

// Binder keeps the camera projection and surface size in step with the
// hero container.
type Binder struct {
	camera  *Camera
	surface Surface
}

// NewBinder returns a Binder for the camera and surface.
func NewBinder(camera *Camera, surface Surface) *Binder {
	return &Binder{camera: camera, surface: surface}
}

// Resize applies a container size. Calling it again with the same size
// leaves the projection and surface unchanged.
func (b *Binder) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	b.camera.SetAspect(w, h)
	if sw, sh := b.surface.Size(); sw == w && sh == h {
		return
	}
	b.surface.SetSize(w, h)
}
