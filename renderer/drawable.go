package renderer

import (
	"fireball/scene"
)

// Drawable owns the device buffers for one mesh: positions, normals,
// optional colors and indices.
type Drawable struct {
	ctx *Context

	positions Buffer
	normals   Buffer
	colors    Buffer
	indices   Buffer

	hasPositions bool
	hasNormals   bool
	hasColors    bool
	hasIndices   bool

	count int32
	mode  Primitive
}

func NewDrawable(ctx *Context) *Drawable {
	return &Drawable{ctx: ctx, mode: Triangles}
}

// Upload replaces the entire contents of every buffer with mesh data. The
// mesh is not retained.
func (d *Drawable) Upload(mesh *scene.Mesh) {
	dev := d.ctx.Device

	d.hasPositions = d.uploadFloats(&d.positions, mesh.Positions())
	d.hasNormals = d.uploadFloats(&d.normals, mesh.Normals())
	d.hasColors = d.uploadFloats(&d.colors, mesh.ColorData())

	indices := mesh.Indices()
	if len(indices) > 0 {
		if d.indices == 0 {
			d.indices = dev.CreateBuffer()
		}
		dev.BindBuffer(ElementArrayBuffer, d.indices)
		dev.BufferIndices(indices)
		d.hasIndices = true
	} else {
		d.release(&d.indices)
		d.hasIndices = false
	}

	d.count = int32(len(indices))
	d.mode = primitiveFor(mesh.DrawMode)
}

// uploadFloats fills *buf with data, creating it on first use and freeing
// it when data is empty. It reports whether the buffer is now populated.
func (d *Drawable) uploadFloats(buf *Buffer, data []float32) bool {
	if len(data) == 0 {
		d.release(buf)
		return false
	}
	dev := d.ctx.Device
	if *buf == 0 {
		*buf = dev.CreateBuffer()
	}
	dev.BindBuffer(ArrayBuffer, *buf)
	dev.BufferFloats(ArrayBuffer, data)
	return true
}

func (d *Drawable) release(buf *Buffer) {
	if *buf != 0 {
		d.ctx.Device.DeleteBuffer(*buf)
		*buf = 0
	}
}

// BindPositions makes the position buffer the current array buffer. It
// returns false when the drawable has no positions.
func (d *Drawable) BindPositions() bool {
	return d.bind(ArrayBuffer, d.positions, d.hasPositions)
}

func (d *Drawable) BindNormals() bool {
	return d.bind(ArrayBuffer, d.normals, d.hasNormals)
}

func (d *Drawable) BindColors() bool {
	return d.bind(ArrayBuffer, d.colors, d.hasColors)
}

func (d *Drawable) BindIndices() bool {
	return d.bind(ElementArrayBuffer, d.indices, d.hasIndices)
}

func (d *Drawable) bind(target BufferTarget, b Buffer, ok bool) bool {
	if ok {
		d.ctx.Device.BindBuffer(target, b)
	}
	return ok
}

func (d *Drawable) DrawMode() Primitive {
	return d.mode
}

// ElementCount is the number of indices submitted per draw.
func (d *Drawable) ElementCount() int32 {
	return d.count
}

// Destroy frees all device buffers. The drawable can be uploaded again.
func (d *Drawable) Destroy() {
	d.release(&d.positions)
	d.release(&d.normals)
	d.release(&d.colors)
	d.release(&d.indices)
	d.hasPositions, d.hasNormals, d.hasColors, d.hasIndices = false, false, false, false
	d.count = 0
}

func primitiveFor(mode scene.DrawMode) Primitive {
	switch mode {
	case scene.DrawLines:
		return Lines
	case scene.DrawPoints:
		return Points
	}
	return Triangles
}
