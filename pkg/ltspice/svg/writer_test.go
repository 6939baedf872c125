package svg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lt2svg/lt2svg/pkg/ltspice/render"
)

func TestWriteBasicDocument(t *testing.T) {
	doc := &render.Document{
		ViewBox: render.ViewBox{MinX: -20, MinY: -20, Width: 240, Height: 140},
		Primitives: []render.Primitive{
			render.Line{X1: 0, Y1: 0, X2: 200, Y2: 0, StrokeWidth: 3},
			render.Circle{CX: 100, CY: 0, R: 4.5, Filled: true},
			render.TextRun{X: 10, Y: 20, Content: "R1", Anchor: render.AnchorMiddle, FontSize: 24},
		},
	}

	var buf strings.Builder
	Write(&buf, doc)
	out := buf.String()

	assert.Contains(t, out, `viewBox="-20`)
	assert.Contains(t, out, "<line")
	assert.Contains(t, out, `stroke-width="3"`)
	assert.Contains(t, out, `stroke-linecap="round"`)
	assert.Contains(t, out, `fill="black" stroke="none"`)
	assert.Contains(t, out, `text-anchor="middle"`)
	assert.Contains(t, out, ">R1</text>")
	assert.Contains(t, out, "</svg>")
}

func TestWriteGroupNesting(t *testing.T) {
	doc := &render.Document{
		ViewBox: render.ViewBox{Width: 100, Height: 100},
		Primitives: []render.Primitive{
			render.Group{
				Transform: "translate(300,100) rotate(90)",
				Class:     "symbol",
				Children: []render.Primitive{
					render.Line{X1: 16, Y1: 8, X2: 16, Y2: 88, StrokeWidth: 3},
				},
			},
		},
	}

	var buf strings.Builder
	Write(&buf, doc)
	out := buf.String()

	assert.Contains(t, out, `transform="translate(300,100) rotate(90)"`)
	assert.Contains(t, out, `class="symbol"`)
	gOpen := strings.Index(out, "<g ")
	line := strings.Index(out, "<line")
	gClose := strings.Index(out, "</g>")
	assert.True(t, gOpen >= 0 && gOpen < line && line < gClose, "line nests inside the group")
}

func TestWriteDashArray(t *testing.T) {
	doc := &render.Document{
		ViewBox: render.ViewBox{Width: 100, Height: 100},
		Primitives: []render.Primitive{
			render.Line{X1: 0, Y1: 0, X2: 10, Y2: 0, StrokeWidth: 3, Dash: "12,6"},
		},
	}
	var buf strings.Builder
	Write(&buf, doc)
	assert.Contains(t, buf.String(), `stroke-dasharray="12,6"`)
}

func TestWriteEscapesText(t *testing.T) {
	doc := &render.Document{
		ViewBox: render.ViewBox{Width: 100, Height: 100},
		Primitives: []render.Primitive{
			render.TextRun{X: 0, Y: 0, Content: "a<b & c", Anchor: render.AnchorStart, FontSize: 16},
		},
	}
	var buf strings.Builder
	Write(&buf, doc)
	out := buf.String()
	assert.NotContains(t, out, ">a<b")
	assert.Contains(t, out, "&lt;")
}
