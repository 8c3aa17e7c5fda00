// Package geom holds the coordinate primitives shared by every output path:
// 3D points with rotation and translation, screen points, and axis-aligned
// bounds. All values are immutable; operations return new values.
//
// Rotations are delegated to the sdfx transform matrices so the drawing
// path and the mesh path agree on handedness.
package geom

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Isometric camera angles. The X tilt is arctan(1/sqrt(2)) rounded the way
// drafting tables quote it.
var (
	IsoYaw  = 45.0 * math.Pi / 180.0
	IsoTilt = 35.264 * math.Pi / 180.0
)

// Point3D is a position in inches.
type Point3D struct {
	X, Y, Z float64
}

// Pt is shorthand for Point3D{x, y, z}.
func Pt(x, y, z float64) Point3D {
	return Point3D{X: x, Y: y, Z: z}
}

func (p Point3D) vec() v3.Vec {
	return v3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

func fromVec(v v3.Vec) Point3D {
	return Point3D{X: v.X, Y: v.Y, Z: v.Z}
}

// RotateY rotates about the Y axis by a radians:
// x' = x cos a + z sin a, z' = -x sin a + z cos a.
func (p Point3D) RotateY(a float64) Point3D {
	return fromVec(sdf.RotateY(a).MulPosition(p.vec()))
}

// RotateX rotates about the X axis by a radians:
// y' = y cos a - z sin a, z' = y sin a + z cos a.
func (p Point3D) RotateX(a float64) Point3D {
	return fromVec(sdf.RotateX(a).MulPosition(p.vec()))
}

// Translate returns p shifted by (dx, dy, dz).
func (p Point3D) Translate(dx, dy, dz float64) Point3D {
	return Point3D{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
}

// Add returns p + q.
func (p Point3D) Add(q Point3D) Point3D {
	return fromVec(p.vec().Add(q.vec()))
}

// Sub returns p - q.
func (p Point3D) Sub(q Point3D) Point3D {
	return fromVec(p.vec().Sub(q.vec()))
}

// Scale returns p * k.
func (p Point3D) Scale(k float64) Point3D {
	return fromVec(p.vec().MulScalar(k))
}

// ToIsometric projects p to screen space: rotate 45° about Y, then 35.264°
// about X, then take (x, -y) scaled. Screen Y grows downward, hence the
// sign flip. The order of the two rotations matters.
func (p Point3D) ToIsometric(scale float64) Point2D {
	r := p.RotateY(IsoYaw).RotateX(IsoTilt)
	return Point2D{X: r.X * scale, Y: -r.Y * scale}
}

// Centroid returns the mean of pts, or the origin for an empty slice.
func Centroid(pts []Point3D) Point3D {
	if len(pts) == 0 {
		return Point3D{}
	}
	var sum Point3D
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(pts)))
}

// Point2D is a screen-space position in pixels.
type Point2D struct {
	X, Y float64
}

// Offset returns p shifted by (dx, dy).
func (p Point2D) Offset(dx, dy float64) Point2D {
	return Point2D{X: p.X + dx, Y: p.Y + dy}
}

// Centroid2D returns the mean of pts, or the origin for an empty slice.
func Centroid2D(pts []Point2D) Point2D {
	if len(pts) == 0 {
		return Point2D{}
	}
	var c Point2D
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
	}
	n := float64(len(pts))
	return Point2D{X: c.X / n, Y: c.Y / n}
}
