package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lt2svg/lt2svg/pkg/ltspice"
)

func TestComputeViewBoxEmpty(t *testing.T) {
	vb := ComputeViewBox(&ltspice.Schematic{}, testConfig())
	assert.Equal(t, ViewBox{0, 0, 100, 100}, vb)
}

func TestComputeViewBoxWires(t *testing.T) {
	sch := &ltspice.Schematic{
		Wires: []ltspice.Wire{
			{X1: 0, Y1: 0, X2: 200, Y2: 0},
			{X1: 200, Y1: 0, X2: 200, Y2: 100},
		},
	}
	vb := ComputeViewBox(sch, testConfig())
	// Bounds 0..200 x 0..100, padding 10% of 200 = 20 on every side.
	assert.InDelta(t, -20, vb.MinX, 1e-9)
	assert.InDelta(t, -20, vb.MinY, 1e-9)
	assert.InDelta(t, 240, vb.Width, 1e-9)
	assert.InDelta(t, 140, vb.Height, 1e-9)
}

func TestComputeViewBoxSymbolExtent(t *testing.T) {
	sch := &ltspice.Schematic{
		Symbols: []ltspice.SymbolInstance{{Symbol: "res", X: 0, Y: 0}},
	}
	vb := ComputeViewBox(sch, testConfig())
	// Symbol extent 100 on each side, padding 10% of 200.
	assert.InDelta(t, -120, vb.MinX, 1e-9)
	assert.InDelta(t, 240, vb.Width, 1e-9)
}

func TestComputeViewBoxDegenerateDimension(t *testing.T) {
	// A single horizontal wire has zero height before padding.
	sch := &ltspice.Schematic{
		Wires: []ltspice.Wire{{X1: 0, Y1: 50, X2: 100, Y2: 50}},
	}
	vb := ComputeViewBox(sch, testConfig())
	assert.Greater(t, vb.Height, 0.0)
	assert.InDelta(t, 120, vb.Width, 1e-9)
}

func TestComputeViewBoxPointSchematic(t *testing.T) {
	// Zero-size bounds with zero padding still get the floor.
	cfg := testConfig()
	cfg.ViewBoxPadding = 0
	sch := &ltspice.Schematic{
		Wires: []ltspice.Wire{{X1: 10, Y1: 10, X2: 10, Y2: 10}},
	}
	vb := ComputeViewBox(sch, cfg)
	assert.Equal(t, 100.0, vb.Width)
	assert.Equal(t, 100.0, vb.Height)
}

func TestComputeViewBoxScaled(t *testing.T) {
	cfg := testConfig()
	cfg.Scale = 2
	sch := &ltspice.Schematic{
		Wires: []ltspice.Wire{{X1: 0, Y1: 0, X2: 100, Y2: 100}},
	}
	vb := ComputeViewBox(sch, cfg)
	assert.InDelta(t, -20, vb.MinX, 1e-9)
	assert.InDelta(t, 240, vb.Width, 1e-9)
}

func TestComputeViewBoxContainsTexts(t *testing.T) {
	sch := &ltspice.Schematic{
		Texts: []ltspice.Text{{X: 0, Y: 0, Content: "note"}},
	}
	vb := ComputeViewBox(sch, testConfig())
	assert.Less(t, vb.MinX, -50.0+1e-9)
	assert.Less(t, vb.MinY, -20.0+1e-9)
}
