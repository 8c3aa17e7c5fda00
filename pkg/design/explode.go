package design

// ExplodeOffset is the signed step count for panel i of n: i - floor(n/2).
func ExplodeOffset(i, n int) float64 {
	return float64(i - n/2)
}

// Explode returns a copy of a whose panel i is shifted by
// distance * (i - floor(n/2)) along axis. Sizes, holes and connections are
// carried over unchanged and a itself is not modified.
//
// Exploding by -distance undoes the shift. The round trip is exact when
// positions and steps are exactly representable (integers, halves); other
// values can come back off by an ulp, e.g. z=0.7 with distance 5.
func Explode(a *Assembly, distance float64, axis Axis) *Assembly {
	out := *a
	out.Panels = make([]*Panel, len(a.Panels))
	u := axis.Unit()
	n := len(a.Panels)
	for i, p := range a.Panels {
		out.Panels[i] = p.Moved(u.Scale(distance * ExplodeOffset(i, n)))
	}
	out.Connections = append([]Connection(nil), a.Connections...)
	return &out
}

// ExplodeWith applies spec.
func ExplodeWith(a *Assembly, spec ExplodeSpec) *Assembly {
	return Explode(a, spec.Distance, spec.Axis)
}
