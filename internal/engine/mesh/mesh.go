// Package mesh provides CPU-side vertex data and GPU buffer management for
// interleaved position+color geometry.
package mesh

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Vertex is one interleaved vertex: position followed by color.
type Vertex struct {
	Position [3]float32
	Color    [3]float32
}

// Stride is the byte size of one Vertex as laid out in the GPU buffer.
const Stride = int(unsafe.Sizeof(Vertex{}))

// Mesh is CPU-side geometry. Indices may be nil for non-indexed meshes.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Buffer wraps a VAO/VBO (and optional EBO) holding uploaded geometry.
type Buffer struct {
	vao uint32
	vbo uint32
	ebo uint32

	count    int32 // vertices for DrawArrays, indices for DrawElements
	capacity int   // vertex capacity for dynamic buffers
	indexed  bool
}

// UploadStatic uploads the mesh once with STATIC_DRAW usage.
// The buffer's draw count is fixed to the uploaded geometry.
func UploadStatic(m *Mesh) *Buffer {
	b := &Buffer{}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	if len(m.Vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*Stride, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)
	}

	setAttribPointers()

	if len(m.Indices) > 0 {
		gl.GenBuffers(1, &b.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)
		b.indexed = true
		b.count = int32(len(m.Indices))
	} else {
		b.count = int32(len(m.Vertices))
	}

	gl.BindVertexArray(0)
	return b
}

// NewDynamic allocates an empty DYNAMIC_DRAW buffer holding at most
// maxVertices vertices. Fill it per frame with Update.
func NewDynamic(maxVertices int) *Buffer {
	b := &Buffer{capacity: maxVertices}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, maxVertices*Stride, nil, gl.DYNAMIC_DRAW)

	setAttribPointers()

	gl.BindVertexArray(0)
	return b
}

// Update replaces the buffer contents with the given vertices.
// Vertices beyond the buffer capacity are dropped.
func (b *Buffer) Update(vertices []Vertex) {
	if len(vertices) > b.capacity {
		vertices = vertices[:b.capacity]
	}
	b.count = int32(len(vertices))
	if len(vertices) == 0 {
		return
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*Stride, unsafe.Pointer(&vertices[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Draw issues one draw call for the whole buffer with the given primitive mode.
func (b *Buffer) Draw(mode uint32) {
	if b.count == 0 {
		return
	}

	gl.BindVertexArray(b.vao)
	if b.indexed {
		gl.DrawElements(mode, b.count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(mode, 0, b.count)
	}
	gl.BindVertexArray(0)
}

// Count returns the current draw count (vertices or indices).
func (b *Buffer) Count() int32 {
	return b.count
}

// Destroy releases the GL objects.
func (b *Buffer) Destroy() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
		b.ebo = 0
	}
	b.count = 0
}

func setAttribPointers() {
	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(Stride), 0)
	gl.EnableVertexAttribArray(0)

	// Color (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(Stride), 3*4)
	gl.EnableVertexAttribArray(1)
}
