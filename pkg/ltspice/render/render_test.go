package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lt2svg/lt2svg/pkg/ltspice"
)

// testSchematic builds the canonical end-to-end fixture: one transistor
// rotated R90, a ground flag at the bottom wire, and three wires meeting at
// a single point.
func testSchematic(t *testing.T) (*ltspice.Schematic, map[string]*ltspice.SymbolDefinition) {
	t.Helper()
	sch := &ltspice.Schematic{
		Version: 4,
		Wires: []ltspice.Wire{
			{X1: 0, Y1: 100, X2: 100, Y2: 100},
			{X1: 100, Y1: 100, X2: 200, Y2: 100},
			{X1: 100, Y1: 100, X2: 100, Y2: 200},
		},
		Symbols: []ltspice.SymbolInstance{
			{
				Symbol: "nmos", InstanceName: "M1", Value: "2N7002",
				X: 300, Y: 100, Rotation: mustRotation(t, "R90"),
			},
		},
		Flags: []ltspice.Flag{
			{X: 100, Y: 200, Net: ltspice.GroundNet},
		},
	}
	lib := map[string]*ltspice.SymbolDefinition{
		"nmos": {
			Name: "nmos",
			Shapes: ltspice.Shapes{
				Lines: []ltspice.Line{{X1: 16, Y1: 8, X2: 16, Y2: 88}},
			},
			Pins: []ltspice.Point{{X: 16, Y: 0}, {X: 16, Y: 96}},
		},
	}
	return sch, lib
}

func TestRenderEndToEnd(t *testing.T) {
	sch, lib := testSchematic(t)
	doc, err := Render(sch, lib, testConfig())
	require.NoError(t, err)
	require.Empty(t, doc.Warnings)

	// Wires first.
	for i := 0; i < 3; i++ {
		_, ok := doc.Primitives[i].(Line)
		require.True(t, ok, "primitive %d should be a wire", i)
	}

	// Exactly one junction dot, filled, right after the wires.
	dot, ok := doc.Primitives[3].(Circle)
	require.True(t, ok, "expected junction dot")
	assert.True(t, dot.Filled)
	assert.Equal(t, 100.0, dot.CX)
	assert.Equal(t, 100.0, dot.CY)
	assert.Equal(t, 4.5, dot.R) // stroke width 3 times multiplier 1.5

	// One translated and rotated symbol group.
	var symbolGroups, groundGroups int
	for _, p := range doc.Primitives {
		g, ok := p.(Group)
		if !ok {
			continue
		}
		switch g.Class {
		case "symbol":
			symbolGroups++
			assert.Equal(t, "translate(300,100) rotate(90)", g.Transform)
		case "ground":
			groundGroups++
			assert.Len(t, g.Children, 3)
		}
	}
	assert.Equal(t, 1, symbolGroups)
	assert.Equal(t, 1, groundGroups)

	// The viewbox covers everything with padding to spare.
	assert.Less(t, doc.ViewBox.MinX, 0.0)
	assert.Greater(t, doc.ViewBox.MinX+doc.ViewBox.Width, 400.0)
	assert.Greater(t, doc.ViewBox.MinY+doc.ViewBox.Height, 200.0)
}

func TestRenderIdempotent(t *testing.T) {
	sch, lib := testSchematic(t)
	cfg := testConfig()
	first, err := Render(sch, lib, cfg)
	require.NoError(t, err)
	second, err := Render(sch, lib, cfg)
	require.NoError(t, err)
	assert.Equal(t, first.Primitives, second.Primitives)
	assert.Equal(t, first.ViewBox, second.ViewBox)
}

func TestRenderMissingSymbolWarns(t *testing.T) {
	sch, _ := testSchematic(t)
	doc, err := Render(sch, nil, testConfig())
	require.NoError(t, err, "a missing symbol is a warning, not a failure")
	require.Len(t, doc.Warnings, 1)

	var missing *MissingSymbolError
	require.True(t, errors.As(doc.Warnings[0], &missing))
	assert.Equal(t, "nmos", missing.Symbol)
	assert.Equal(t, "M1", missing.Instance)

	for _, p := range doc.Primitives {
		if g, ok := p.(Group); ok {
			assert.NotEqual(t, "symbol", g.Class, "missing symbol must not render")
		}
	}
}

func TestRenderBadStyleFails(t *testing.T) {
	sch, lib := testSchematic(t)
	sch.Shapes.Lines = append(sch.Shapes.Lines, ltspice.Line{X1: 0, Y1: 0, X2: 1, Y2: 1, Style: "nope"})
	doc, err := Render(sch, lib, testConfig())
	require.Error(t, err)
	var styleErr *StyleError
	assert.True(t, errors.As(err, &styleErr))
	assert.NotNil(t, doc, "partial document still returned")
}

func TestRenderTextGates(t *testing.T) {
	sch := &ltspice.Schematic{
		Texts: []ltspice.Text{
			{X: 0, Y: 0, Content: "a note", Kind: ltspice.CommentText},
			{X: 0, Y: 50, Content: ".tran 1m", Kind: ltspice.DirectiveText},
		},
	}

	countRuns := func(cfg Config) int {
		doc, err := Render(sch, nil, cfg)
		require.NoError(t, err)
		n := 0
		for _, p := range doc.Primitives {
			if _, ok := p.(TextRun); ok {
				n++
			}
		}
		return n
	}

	cfg := testConfig()
	assert.Equal(t, 2, countRuns(cfg))

	cfg.NoSchematicComment = true
	assert.Equal(t, 1, countRuns(cfg))

	cfg.NoSpiceDirective = true
	assert.Equal(t, 0, countRuns(cfg))
}

func TestRenderNetLabelGate(t *testing.T) {
	sch := &ltspice.Schematic{
		Flags: []ltspice.Flag{
			{X: 0, Y: 0, Net: "VOUT"},
			{X: 100, Y: 0, Net: ltspice.GroundNet},
		},
	}
	cfg := testConfig()
	cfg.NoNetLabel = true
	doc, err := Render(sch, nil, cfg)
	require.NoError(t, err)

	var grounds, labels int
	for _, p := range doc.Primitives {
		if g, ok := p.(Group); ok {
			switch g.Class {
			case "ground":
				grounds++
			case "netlabel":
				labels++
			}
		}
	}
	assert.Equal(t, 1, grounds, "ground flags are not net labels")
	assert.Equal(t, 0, labels)
}

func TestRenderIOPins(t *testing.T) {
	sch := &ltspice.Schematic{
		Wires:  []ltspice.Wire{{X1: 0, Y1: 0, X2: 100, Y2: 0}},
		IOPins: []ltspice.IOPin{{X: 0, Y: 0, Net: "IN", Direction: ltspice.DirIn}},
	}
	doc, err := Render(sch, nil, testConfig())
	require.NoError(t, err)

	var pinGroups int
	for _, p := range doc.Primitives {
		if g, ok := p.(Group); ok && g.Class == "iopin" {
			pinGroups++
			// Horizontal wire at the pin: glyph hangs at 90.
			assert.Contains(t, g.Transform, "rotate(90)")
		}
	}
	assert.Equal(t, 1, pinGroups)
}
