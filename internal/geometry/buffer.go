package geometry

// Buffer is the cube flattened for upload to the GPU once: three floats per position
// and normal, two per texcoord, and two counter-clockwise triangles per face.
type Buffer struct {
	Positions []float32
	Normals   []float32
	Texcoords []float32
	Indices   []uint16
}

// quadUV maps the four corners of every face onto the unit square.
var quadUV = [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// NewBuffer lays out faces as an indexed triangle list. Each quad a,b,c,d becomes
// (a,b,c) and (a,c,d) so the winding seen from outside is preserved.
func NewBuffer(faces []Face) Buffer {
	n := len(faces) * 4
	b := Buffer{
		Positions: make([]float32, 0, n*3),
		Normals:   make([]float32, 0, n*3),
		Texcoords: make([]float32, 0, n*2),
		Indices:   make([]uint16, 0, len(faces)*6),
	}
	for i, f := range faces {
		for j, v := range f.Vertices {
			b.Positions = append(b.Positions, v[0], v[1], v[2])
			b.Normals = append(b.Normals, f.Normal[0], f.Normal[1], f.Normal[2])
			b.Texcoords = append(b.Texcoords, quadUV[j][0], quadUV[j][1])
		}
		base := uint16(i * 4)
		b.Indices = append(b.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return b
}

// VertexCount is the number of distinct vertices in the buffer.
func (b Buffer) VertexCount() int {
	return len(b.Positions) / 3
}

// TriangleCount is the number of triangles described by Indices.
func (b Buffer) TriangleCount() int {
	return len(b.Indices) / 3
}

// Attributes points into the buffer's slices the way a GPU mesh descriptor expects.
// Indices is non-nil whenever the buffer has triangles, so a renderer draws the
// indexed triangle list rather than consecutive vertex triples.
type Attributes struct {
	VertexCount   int32
	TriangleCount int32
	Vertices      *float32
	Normals       *float32
	Texcoords     *float32
	Indices       *uint16
}

// Attributes returns pointers to the first element of each slice. The buffer must
// outlive every use of the result.
func (b *Buffer) Attributes() Attributes {
	a := Attributes{
		VertexCount:   int32(b.VertexCount()),
		TriangleCount: int32(b.TriangleCount()),
	}
	if len(b.Positions) > 0 {
		a.Vertices = &b.Positions[0]
		a.Normals = &b.Normals[0]
		a.Texcoords = &b.Texcoords[0]
	}
	if len(b.Indices) > 0 {
		a.Indices = &b.Indices[0]
	}
	return a
}
