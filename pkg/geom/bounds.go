package geom

import (
	"github.com/deadsy/sdfx/sdf"
)

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max Point3D
}

func (b Bounds) box() sdf.Box3 {
	return sdf.Box3{Min: b.Min.vec(), Max: b.Max.vec()}
}

func fromBox(b sdf.Box3) Bounds {
	return Bounds{Min: fromVec(b.Min), Max: fromVec(b.Max)}
}

// BoundsOf returns the elementwise min/max over pts. An empty slice yields
// the zero box.
func BoundsOf(pts []Point3D) Bounds {
	if len(pts) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b = b.Include(p)
	}
	return b
}

// Include returns b grown to contain p.
func (b Bounds) Include(p Point3D) Bounds {
	return b.Extend(Bounds{Min: p, Max: p})
}

// Extend returns the smallest box containing both b and o.
func (b Bounds) Extend(o Bounds) Bounds {
	return fromBox(b.box().Extend(o.box()))
}

// Size returns the extent along each axis.
func (b Bounds) Size() Point3D {
	return fromVec(b.box().Size())
}
