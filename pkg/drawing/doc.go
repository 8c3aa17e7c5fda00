// Package drawing projects bench assemblies into 2D drawing primitives.
//
// The engine knows three projections: orthographic (top, front, side),
// isometric, and exploded isometric. Each produces plain data (polygons,
// lines, circles, text) collected on a Sheet; emitters such as render/svg
// turn a Sheet into markup without doing any geometry of their own.
//
// # Face visibility
//
// Isometric views draw a fixed set of faces per panel in panel order. There
// is no depth sorting or back-face culling. This is only correct for the
// fixed camera and the shipped bench layouts, where panels never occlude
// each other ambiguously. Arbitrary assemblies would need a painter's sort.
package drawing
