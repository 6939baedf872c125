package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lt2svg/lt2svg/pkg/ltspice"
)

func testConfig() Config {
	return DefaultConfig()
}

func TestEmitLine(t *testing.T) {
	cfg := testConfig()
	p, err := EmitLine(ltspice.Line{X1: 0, Y1: 16, X2: 32, Y2: 48, Style: "4,2"}, cfg)
	require.NoError(t, err)
	line := p.(Line)
	assert.Equal(t, 32.0, line.X2)
	assert.Equal(t, cfg.StrokeWidth, line.StrokeWidth)
	assert.Equal(t, "12,6", line.Dash)
}

func TestEmitLineScaled(t *testing.T) {
	cfg := testConfig()
	cfg.Scale = 2
	p, err := EmitLine(ltspice.Line{X1: 1, Y1: 2, X2: 3, Y2: 4}, cfg)
	require.NoError(t, err)
	line := p.(Line)
	assert.Equal(t, Line{X1: 2, Y1: 4, X2: 6, Y2: 8, StrokeWidth: cfg.StrokeWidth}, line)
}

func TestEmitCircleRoundBox(t *testing.T) {
	p, err := EmitCircle(ltspice.Circle{X1: -8, Y1: -8, X2: 8, Y2: 8}, testConfig())
	require.NoError(t, err)
	c, ok := p.(Circle)
	require.True(t, ok, "square bounding box must emit a circle")
	assert.Equal(t, 0.0, c.CX)
	assert.Equal(t, 8.0, c.R)
}

func TestEmitCircleOblongBox(t *testing.T) {
	p, err := EmitCircle(ltspice.Circle{X1: 0, Y1: 0, X2: 40, Y2: 20}, testConfig())
	require.NoError(t, err)
	e, ok := p.(Ellipse)
	require.True(t, ok, "oblong bounding box must emit an ellipse")
	assert.Equal(t, 20.0, e.CX)
	assert.Equal(t, 10.0, e.CY)
	assert.Equal(t, 20.0, e.RX)
	assert.Equal(t, 10.0, e.RY)
}

func TestEmitCircleNearSquareWithinTolerance(t *testing.T) {
	// Radii differ by less than the tolerance; still a circle.
	p, err := EmitCircle(ltspice.Circle{X1: 0, Y1: 0, X2: 16, Y2: 16.01}, testConfig())
	require.NoError(t, err)
	_, ok := p.(Circle)
	assert.True(t, ok)
}

func TestEmitRectSolid(t *testing.T) {
	p, err := EmitRect(ltspice.Rect{X1: 30, Y1: 40, X2: 10, Y2: 20}, testConfig())
	require.NoError(t, err)
	r := p.(Rect)
	// Corners normalize regardless of record order.
	assert.Equal(t, Rect{X: 10, Y: 20, W: 20, H: 20, StrokeWidth: 3}, r)
}

func TestEmitRectStyledBecomesPath(t *testing.T) {
	p, err := EmitRect(ltspice.Rect{X1: 0, Y1: 0, X2: 10, Y2: 20, Style: "4,2"}, testConfig())
	require.NoError(t, err)
	path, ok := p.(Path)
	require.True(t, ok, "styled rectangle must emit a closed path")
	assert.Equal(t, "M 0,0 L 10,0 L 10,20 L 0,20 Z", path.D)
	assert.Equal(t, "12,6", path.Dash)
}

func TestEmitArc(t *testing.T) {
	p, err := EmitArc(ltspice.Arc{
		X1: 0, Y1: 0, X2: 100, Y2: 100,
		StartAngle: 270, EndAngle: 0,
	}, testConfig())
	require.NoError(t, err)
	path := p.(Path)
	// Quarter turn clockwise on a 50-radius circle: small arc, sweep set.
	assert.Contains(t, path.D, "A 50,50 0 0 1")
	assert.True(t, strings.HasPrefix(path.D, "M "))
}

func TestEmitShapesCollectsErrors(t *testing.T) {
	shapes := ltspice.Shapes{
		Lines: []ltspice.Line{
			{X1: 0, Y1: 0, X2: 10, Y2: 0, Style: "bad"},
			{X1: 0, Y1: 0, X2: 0, Y2: 10},
		},
	}
	prims, errs := EmitShapes(shapes, testConfig())
	assert.Len(t, errs, 1, "bad dash pattern is a per-shape failure")
	assert.Len(t, prims, 1, "valid siblings still render")
}
