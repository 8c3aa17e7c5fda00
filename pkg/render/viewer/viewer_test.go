package viewer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/benchdraw/pkg/design"
	"github.com/chazu/benchdraw/pkg/geom"
)

func slabLegs() *design.Assembly {
	return &design.Assembly{
		Key:  "concept-4",
		Name: "Concept 4: Thin Slab Legs",
		Panels: []*design.Panel{
			{Name: "Seat Panel", Width: 60, Depth: 11, Thickness: 0.125, Position: geom.Pt(0, 0, 16), Color: "white", ExplodedColor: "#d4d4d4"},
			{Name: "Left Leg", Width: 11, Depth: 16, Thickness: 0.25, Color: "white", ExplodedColor: "#a0a0a0"},
			{Name: "Right Leg", Width: 11, Depth: 16, Thickness: 0.25, Position: geom.Pt(49, 0, 0), Color: "white"},
		},
		Connections:   []design.Connection{{A: 0, B: 1}, {A: 0, B: 2}},
		ViewerExplode: design.ExplodeSpec{Axis: design.AxisX, Distance: 8},
	}
}

func TestBuildSceneTraces(t *testing.T) {
	s := BuildScene(slabLegs())
	require.Len(t, s.Traces, 8, "3 assembled, 3 exploded, 2 connection lines")

	for i := 0; i < 3; i++ {
		tr := s.Traces[i]
		assert.Equal(t, "mesh3d", tr.Type)
		assert.True(t, tr.Visible)
		assert.Equal(t, "white", tr.Color)
		assert.False(t, strings.HasSuffix(tr.Name, ExplodedSuffix))
	}
	for i := 3; i < 6; i++ {
		tr := s.Traces[i]
		assert.Equal(t, "mesh3d", tr.Type)
		assert.False(t, tr.Visible)
		assert.True(t, strings.HasSuffix(tr.Name, ExplodedSuffix))
	}
	for i := 6; i < 8; i++ {
		tr := s.Traces[i]
		assert.Equal(t, "scatter3d", tr.Type)
		assert.Equal(t, "lines", tr.Mode)
		assert.Equal(t, "dash", tr.Line.Dash)
		assert.False(t, tr.Visible)
	}

	assert.Equal(t, "Seat Panel (Exploded)", s.Traces[3].Name)
	assert.Equal(t, "#d4d4d4", s.Traces[3].Color)
	assert.Equal(t, "#a0a0a0", s.Traces[4].Color)
	assert.Equal(t, "white", s.Traces[5].Color, "falls back to the assembled color")
}

func TestBuildSceneExplodePositions(t *testing.T) {
	s := BuildScene(slabLegs())
	// Offsets along X are -1, 0, +1 steps of 8.
	assert.Equal(t, -8.0, s.Traces[3].X[0])
	assert.Equal(t, 0.0, s.Traces[4].X[0])
	assert.Equal(t, 57.0, s.Traces[5].X[0])
	// Assembled copies stay put.
	assert.Equal(t, 0.0, s.Traces[0].X[0])
	assert.Equal(t, 16.0, s.Traces[0].Z[0])
}

func TestBuildSceneConnectionCentroids(t *testing.T) {
	s := BuildScene(slabLegs())
	line := s.Traces[6]
	// Exploded seat spans x -8..52, leg 0..11.
	assert.InDelta(t, 22.0, line.X[0], 1e-9)
	assert.InDelta(t, 5.5, line.Y[0], 1e-9)
	assert.InDelta(t, 16.0625, line.Z[0], 1e-9)
	assert.InDelta(t, 5.5, line.X[1], 1e-9)
	assert.InDelta(t, 8.0, line.Y[1], 1e-9)
	assert.InDelta(t, 0.125, line.Z[1], 1e-9)
}

func TestBuildSceneVisibility(t *testing.T) {
	s := BuildScene(slabLegs())
	assert.Equal(t, []bool{true, true, true, false, false, false, false, false}, s.Assembled)
	assert.Equal(t, []bool{false, false, false, true, true, true, true, true}, s.Exploded)
}

func TestBuildSceneNoLinesUnlessThreePanels(t *testing.T) {
	a := slabLegs()
	a.Panels = append(a.Panels, &design.Panel{Name: "Brace", Width: 1, Depth: 1, Thickness: 1})
	s := BuildScene(a)
	require.Len(t, s.Traces, 8, "4 assembled, 4 exploded, no lines")
	for _, tr := range s.Traces {
		assert.Equal(t, "mesh3d", tr.Type)
	}
	assert.Len(t, s.Assembled, 8)
	assert.Len(t, s.Exploded, 8)
}

func TestBuildSceneDoesNotMutate(t *testing.T) {
	a := slabLegs()
	BuildScene(a)
	assert.Equal(t, geom.Pt(0, 0, 16), a.Panels[0].Position)
	assert.Equal(t, geom.Pt(49, 0, 0), a.Panels[2].Position)
}

func TestMeshTraceShading(t *testing.T) {
	s := BuildScene(slabLegs())
	tr := s.Traces[0]
	require.NotNil(t, tr.Lighting)
	assert.Equal(t, DefaultLighting, *tr.Lighting)
	assert.Equal(t, Position{X: 100, Y: 200, Z: 300}, *tr.LightPosition)
	assert.Equal(t, "black", tr.Contour.Color)
	assert.Equal(t, 1.0, tr.Opacity)
	assert.Len(t, tr.I, 12)
	assert.Len(t, tr.X, 8)
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, BuildScene(slabLegs())))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Concept 4: Thin Slab Legs</title>")
	assert.Contains(t, out, PlotlyURL)
	assert.Contains(t, out, `"type":"mesh3d"`)
	assert.Contains(t, out, `"type":"scatter3d"`)
	assert.Contains(t, out, `"Seat Panel (Exploded)"`)
	assert.Contains(t, out, `label: "Assembled"`)
	assert.Contains(t, out, `label: "Exploded"`)
	assert.Contains(t, out, "Plotly.newPlot")
}

func TestWriteHTMLEscapesTitle(t *testing.T) {
	a := slabLegs()
	a.Name = "</script><b>x</b>"
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, BuildScene(a)))
	assert.NotContains(t, buf.String(), "</script><b>")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concept-4-3d.html")
	require.NoError(t, WriteFile(path, BuildScene(slabLegs())))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Plotly.newPlot")

	assert.Error(t, WriteFile(filepath.Join(t.TempDir(), "nope", "x.html"), BuildScene(slabLegs())))
}
