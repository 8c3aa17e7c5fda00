package dxf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/benchdraw/pkg/design"
	"github.com/chazu/benchdraw/pkg/geom"
)

func bench() *design.Assembly {
	return &design.Assembly{
		Key: "slab",
		Panels: []*design.Panel{
			{Name: "Seat Panel", Width: 60, Depth: 11, Thickness: 0.125, Material: "304 Stainless Steel",
				Holes: []geom.Point3D{geom.Pt(2, 2, 0), geom.Pt(58, 9, 0)}},
			{Name: "Left Leg", Width: 11, Depth: 16, Thickness: 0.25},
			{Name: "Right Leg", Width: 11, Depth: 16, Thickness: 0.25},
		},
	}
}

func TestArrange(t *testing.T) {
	got := Arrange(bench().Panels)
	require.Len(t, got, 3)
	assert.Equal(t, geom.Point2D{X: 0}, got[0].Origin)
	assert.Equal(t, geom.Point2D{X: 62}, got[1].Origin)
	assert.Equal(t, geom.Point2D{X: 75}, got[2].Origin)
	assert.Equal(t, "Left Leg", got[1].Panel.Name)
}

func TestArrangeEmpty(t *testing.T) {
	assert.Empty(t, Arrange(nil))
}

func TestBuild(t *testing.T) {
	d, err := Build(bench())
	require.NoError(t, err)
	require.NotNil(t, d)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slab-flat.dxf")
	require.NoError(t, WriteFile(path, bench()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	for _, want := range []string{LayerOutline, LayerHoles, LayerNotes, "Seat Panel", "Left Leg", "CIRCLE", "LINE"} {
		assert.Contains(t, out, want)
	}
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "EOF"))
}

func TestWriteFileBadPath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "x.dxf"), bench())
	assert.Error(t, err)
}
