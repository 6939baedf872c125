package render

import (
	"fmt"
	"strings"

	"github.com/lt2svg/lt2svg/pkg/ltspice"
)

// lineSpacing stacks multi-line text at 120% of the font size.
const lineSpacing = 1.2

// Baseline nudges by justification, as fractions of the font size. The
// legacy tool has no true dominant-baseline support, so Left/Center/Right
// text drops by 0.3 font sizes to sit optically centered on its anchor.
const (
	offsetMiddle = 0.3
	offsetTop    = 0.6
	offsetBottom = 0.0
)

// TextContext carries the frame a text run is emitted inside of, so the
// run can counter-rotate and keep its glyphs upright and readable.
type TextContext struct {
	// Angle is the parent frame's rotation in degrees (0, 90, 180, 270).
	Angle int
	// Mirrored is set when the parent frame flips across its Y axis.
	Mirrored bool
}

// LayoutText lays out a standalone text record into positioned runs, one
// per line. Empty content produces no runs.
func LayoutText(t ltspice.Text, cfg Config) []TextRun {
	return LayoutTextIn(t, cfg, TextContext{})
}

// LayoutTextIn lays out a text record inside a rotated or mirrored parent
// frame. The anchor point, anchor side and baseline offset follow the
// record's justification; the context adds counter-rotation about the
// anchor so baselines stay level, and an anchor flip plus local horizontal
// flip when the parent is mirrored, so the glyphs still read left to right.
func LayoutTextIn(t ltspice.Text, cfg Config, ctx TextContext) []TextRun {
	if t.Content == "" {
		return nil
	}

	fontSize := cfg.fontSize(t.SizeIndex)
	x := t.X * cfg.Scale
	y := t.Y * cfg.Scale

	var transforms []string
	if ctx.Angle != 0 {
		transforms = append(transforms, fmt.Sprintf("rotate(%d %s %s)", -ctx.Angle, num(x), num(y)))
	}

	just := t.Justification
	if just.Vertical() {
		transforms = append(transforms, fmt.Sprintf("rotate(90 %s %s)", num(x), num(y)))
		just = just.Base()
	}

	var anchor Anchor
	switch just {
	case ltspice.Left:
		anchor = AnchorStart
	case ltspice.Right:
		anchor = AnchorEnd
	default: // Center, Top, Bottom
		anchor = AnchorMiddle
	}

	var offset float64
	switch just {
	case ltspice.Top:
		offset = fontSize * offsetTop
	case ltspice.Bottom:
		offset = fontSize * offsetBottom
	default: // Left, Center, Right
		offset = fontSize * offsetMiddle
	}

	if t.Mirrored || ctx.Mirrored {
		switch anchor {
		case AnchorStart:
			anchor = AnchorEnd
		case AnchorEnd:
			anchor = AnchorStart
		}
		// Reflect across the vertical line through the anchor.
		transforms = append(transforms, fmt.Sprintf("translate(%s 0) scale(-1 1)", num(2*x)))
	}

	transform := strings.Join(transforms, " ")
	lines := strings.Split(t.Content, "\n")
	runs := make([]TextRun, 0, len(lines))
	for i, line := range lines {
		runs = append(runs, TextRun{
			X:         x,
			Y:         y + offset + float64(i)*lineSpacing*fontSize,
			Content:   line,
			Anchor:    anchor,
			FontSize:  fontSize,
			Transform: transform,
		})
	}
	return runs
}
