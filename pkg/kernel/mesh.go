package kernel

import (
	"github.com/chazu/benchdraw/pkg/geom"
)

// BoxTriangles is the triangulation of a box in the panel corner order:
// two triangles per face, wound counter-clockwise seen from outside so
// normals point outward. I, J and K are the three corner slots.
//
// Every face appears exactly once and with the same orientation, which STL
// consumers need for a closed solid.
var BoxTriangles = struct {
	I, J, K [12]int
}{
	//   bottom  top     front   back    left    right
	I: [12]int{0, 0, 4, 4, 0, 0, 3, 3, 0, 0, 1, 1},
	J: [12]int{2, 3, 5, 6, 1, 5, 7, 6, 4, 7, 2, 6},
	K: [12]int{1, 2, 6, 7, 5, 4, 6, 2, 7, 3, 6, 5},
}

// Mesh is a triangle mesh in the parallel-array form the 3D viewer
// consumes: X, Y and Z hold one coordinate per vertex; I, J and K hold one
// vertex index per triangle.
type Mesh struct {
	Name  string    `json:"name"`
	Color string    `json:"color"`
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
	Z     []float64 `json:"z"`
	I     []int     `json:"i"`
	J     []int     `json:"j"`
	K     []int     `json:"k"`
}

// BoxMesh builds the 8-vertex, 12-triangle mesh of an axis-aligned box
// anchored at its minimum corner.
func BoxMesh(name string, anchor geom.Point3D, width, depth, thickness float64, color string) *Mesh {
	x, y, z := anchor.X, anchor.Y, anchor.Z
	m := &Mesh{
		Name:  name,
		Color: color,
		X:     []float64{x, x + width, x + width, x, x, x + width, x + width, x},
		Y:     []float64{y, y, y + depth, y + depth, y, y, y + depth, y + depth},
		Z:     []float64{z, z, z, z, z + thickness, z + thickness, z + thickness, z + thickness},
		I:     append([]int(nil), BoxTriangles.I[:]...),
		J:     append([]int(nil), BoxTriangles.J[:]...),
		K:     append([]int(nil), BoxTriangles.K[:]...),
	}
	return m
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.X)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.I)
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.X) == 0
}

// Vertex returns vertex i.
func (m *Mesh) Vertex(i int) geom.Point3D {
	return geom.Pt(m.X[i], m.Y[i], m.Z[i])
}

// Triangle returns the corners of triangle n.
func (m *Mesh) Triangle(n int) [3]geom.Point3D {
	return [3]geom.Point3D{m.Vertex(m.I[n]), m.Vertex(m.J[n]), m.Vertex(m.K[n])}
}

// Centroid returns the mean of the vertices.
func (m *Mesh) Centroid() geom.Point3D {
	pts := make([]geom.Point3D, m.VertexCount())
	for i := range pts {
		pts[i] = m.Vertex(i)
	}
	return geom.Centroid(pts)
}
