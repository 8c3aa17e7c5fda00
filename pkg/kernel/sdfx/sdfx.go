// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx CAD library for triangle handling and STL output.
package sdfx

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/benchdraw/pkg/geom"
	"github.com/chazu/benchdraw/pkg/kernel"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct{}

// New returns a new SdfxKernel.
func New() *SdfxKernel {
	return &SdfxKernel{}
}

func toVec(p geom.Point3D) v3.Vec {
	return v3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// Triangles converts meshes into sdfx triangles, in mesh order.
func (k *SdfxKernel) Triangles(meshes []*kernel.Mesh) []*sdf.Triangle3 {
	var out []*sdf.Triangle3
	for _, m := range meshes {
		if m.IsEmpty() {
			continue
		}
		for n := 0; n < m.TriangleCount(); n++ {
			t := m.Triangle(n)
			out = append(out, &sdf.Triangle3{toVec(t[0]), toVec(t[1]), toVec(t[2])})
		}
	}
	return out
}

// SaveSTL writes every triangle of meshes to an STL file at path.
func (k *SdfxKernel) SaveSTL(path string, meshes []*kernel.Mesh) error {
	tris := k.Triangles(meshes)
	if len(tris) == 0 {
		return fmt.Errorf("sdfx: no triangles to write to %s", path)
	}
	if err := render.SaveSTL(path, tris); err != nil {
		return fmt.Errorf("sdfx: save %s: %w", path, err)
	}
	return nil
}
