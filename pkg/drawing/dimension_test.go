package drawing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/benchdraw/pkg/geom"
)

func TestDimensionDegenerate(t *testing.T) {
	p := geom.Point2D{X: 5, Y: 5}
	assert.Empty(t, Dimension(p, p, "0.0\"", 20))
}

func TestDimensionHorizontal(t *testing.T) {
	els := Dimension(geom.Point2D{X: 100, Y: 200}, geom.Point2D{X: 190, Y: 200}, "60.0\"", -15)
	require.Len(t, els, 4)

	dim, ok := els[2].(Line)
	require.True(t, ok)
	assert.Equal(t, geom.Point2D{X: 100, Y: 185}, dim.From)
	assert.Equal(t, geom.Point2D{X: 190, Y: 185}, dim.To)
	assert.Equal(t, MarkerArrowStart, dim.Style.MarkerStart)
	assert.Equal(t, MarkerArrow, dim.Style.MarkerEnd)

	w1 := els[0].(Line)
	assert.Equal(t, geom.Point2D{X: 100, Y: 200}, w1.From)
	assert.Equal(t, geom.Point2D{X: 100, Y: 185}, w1.To)

	lbl, ok := els[3].(Text)
	require.True(t, ok)
	assert.Equal(t, "60.0\"", lbl.Body)
	assert.Equal(t, geom.Point2D{X: 145, Y: 182}, lbl.At)
	require.NotNil(t, lbl.Rotate)
	assert.Equal(t, 0.0, lbl.Rotate.Degrees)
	assert.Equal(t, geom.Point2D{X: 145, Y: 185}, lbl.Rotate.Center)
}

func TestDimensionVertical(t *testing.T) {
	els := Dimension(geom.Point2D{X: 0, Y: 0}, geom.Point2D{X: 0, Y: 10}, "lbl", -15)
	require.Len(t, els, 4)
	dim := els[2].(Line)
	assert.InDelta(t, 15, dim.From.X, 1e-12)
	assert.InDelta(t, 15, dim.To.X, 1e-12)
	assert.InDelta(t, 90, els[3].(Text).Rotate.Degrees, 1e-12)
}

func TestDimensionLabelFolding(t *testing.T) {
	tests := []struct {
		name string
		to   geom.Point2D
		want float64
	}{
		{"right", geom.Point2D{X: 10, Y: 0}, 0},
		{"left folds", geom.Point2D{X: -10, Y: 0}, 360},
		{"down-left folds", geom.Point2D{X: -10, Y: -10}, 45},
		{"up", geom.Point2D{X: 0, Y: -10}, -90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			els := Dimension(geom.Point2D{}, tt.to, "x", 5)
			require.Len(t, els, 4)
			assert.InDelta(t, tt.want, els[3].(Text).Rotate.Degrees, 1e-9)
		})
	}
}
