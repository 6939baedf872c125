package ltspice

// Line style codes carried by LTspice shape records.
const (
	StyleSolid      = 0
	StyleDash       = 1
	StyleDot        = 2
	StyleDashDot    = 3
	StyleDashDotDot = 4
)

// dashPatterns maps style codes to dash patterns in unit lengths. The
// renderer scales each token by the stroke width before emission. Dots use
// a near-zero segment so round line caps draw them as dots.
var dashPatterns = map[int]string{
	StyleDash:       "4,2",
	StyleDot:        "0.001,2",
	StyleDashDot:    "4,2,0.001,2",
	StyleDashDotDot: "4,2,0.001,2,0.001,2",
}

// DashPattern returns the dash pattern for a style code. Solid and unknown
// codes return the empty string, meaning no dash attribute is emitted.
func DashPattern(code int) string {
	return dashPatterns[code]
}
