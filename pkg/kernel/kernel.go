// Package kernel turns panels into triangle meshes and defines the
// interface for writing those meshes to fabrication formats. The mesh
// topology of a panel never varies, so triangulation is a fixed table.
package kernel

// Kernel writes meshes to a solid-model file. Implementations (sdfx) sit
// behind this interface so the rest of the system never sees their types.
type Kernel interface {
	// SaveSTL writes every triangle of meshes to path.
	SaveSTL(path string, meshes []*Mesh) error
}
