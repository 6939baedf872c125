package render

import (
	"math"
	"strconv"
	"strings"
)

// ScaleDashArray multiplies every token of a comma-separated dash pattern
// by the stroke width. An empty pattern stays empty, meaning solid. A
// non-numeric token is a *StyleError.
func ScaleDashArray(pattern string, strokeWidth float64) (string, error) {
	if pattern == "" {
		return "", nil
	}
	tokens := strings.Split(pattern, ",")
	scaled := make([]string, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			return "", &StyleError{Pattern: pattern, Token: tok}
		}
		scaled[i] = num(v * strokeWidth)
	}
	return strings.Join(scaled, ","), nil
}

// ArcFlags derives the SVG large-arc and sweep flags from start and end
// angles in degrees. The sweep is always clockwise in the y-down output
// space.
func ArcFlags(startAngle, endAngle float64) (largeArc, sweep bool) {
	delta := math.Mod(endAngle-startAngle, 360)
	if delta < 0 {
		delta += 360
	}
	return delta > 180, true
}

// num formats a coordinate without trailing zero noise.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
