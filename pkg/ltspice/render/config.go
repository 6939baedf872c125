// Package render turns parsed schematic records and symbol definitions
// into positioned, styled drawing primitives ready for SVG serialization.
// Rendering is a pure function of its inputs plus a Config value: there is
// no shared mutable state, so concurrent renders of different schematics
// are safe.
package render

// Config carries the style settings for one render. It is immutable for
// the duration of a render call; nothing downstream mutates it.
type Config struct {
	// StrokeWidth is the width of every stroked primitive, in output units.
	StrokeWidth float64
	// BaseFontSize is the font size multiplied by the per-text size table.
	BaseFontSize float64
	// DotSizeMultiplier scales junction dots relative to the stroke width.
	DotSizeMultiplier float64
	// Scale converts schematic grid units to output units.
	Scale float64
	// NetLabelDistance is how far above its origin a net label's text sits,
	// in grid units.
	NetLabelDistance float64
	// ViewBoxPadding expands the viewbox by this fraction of the larger
	// dimension on every side.
	ViewBoxPadding float64

	// Emission gates. Each one disables exactly one emission path.
	NoSchematicComment bool
	NoSpiceDirective   bool
	NoNestedSymbolText bool
	NoComponentName    bool
	NoComponentValue   bool
	NoNetLabel         bool
	NoPinName          bool
}

// DefaultConfig returns the render settings the CLI starts from.
func DefaultConfig() Config {
	return Config{
		StrokeWidth:       3.0,
		BaseFontSize:      16.0,
		DotSizeMultiplier: 1.5,
		Scale:             1.0,
		NetLabelDistance:  52.0,
		ViewBoxPadding:    0.1,
	}
}

// sizeMultipliers is the fixed table behind text size indexes 0-7.
var sizeMultipliers = [8]float64{0.625, 1.0, 1.5, 2.0, 2.5, 3.5, 5.0, 7.0}

// defaultSizeIndex is used when a record carries an out-of-range index.
const defaultSizeIndex = 2

// FontScale maps a size index to its font size multiplier. Out-of-range
// indexes fall back to the default 1.5x entry.
func FontScale(index int) float64 {
	if index < 0 || index >= len(sizeMultipliers) {
		index = defaultSizeIndex
	}
	return sizeMultipliers[index]
}

// fontSize resolves the final font size for a size index.
func (c Config) fontSize(index int) float64 {
	return c.BaseFontSize * FontScale(index)
}
