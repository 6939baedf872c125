package ltspice

import "encoding/json"

// Justification is a text anchor/alignment mode. The V-prefixed variants
// are the same anchors rendered rotated 90 degrees about the anchor point.
type Justification int

const (
	Left Justification = iota
	Center
	Right
	Top
	Bottom
	VLeft
	VCenter
	VRight
	VTop
	VBottom
)

var justificationNames = [...]string{
	Left:    "Left",
	Center:  "Center",
	Right:   "Right",
	Top:     "Top",
	Bottom:  "Bottom",
	VLeft:   "VLeft",
	VCenter: "VCenter",
	VRight:  "VRight",
	VTop:    "VTop",
	VBottom: "VBottom",
}

// ParseJustification maps a justification token to its value. Unknown
// tokens return Left and false; callers warn and continue.
func ParseJustification(s string) (Justification, bool) {
	for j, name := range justificationNames {
		if name == s {
			return Justification(j), true
		}
	}
	return Left, false
}

func (j Justification) String() string {
	if j >= 0 && int(j) < len(justificationNames) {
		return justificationNames[j]
	}
	return "Left"
}

// Vertical reports whether the text is rendered rotated 90 degrees.
func (j Justification) Vertical() bool { return j >= VLeft }

// Base strips the vertical prefix, returning the justification used for
// anchor and baseline placement.
func (j Justification) Base() Justification {
	if j.Vertical() {
		return j - VLeft
	}
	return j
}

// MarshalJSON encodes the justification as its token, e.g. "VTop".
func (j Justification) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.String())
}

// UnmarshalJSON accepts the token form; unknown tokens decode to Left.
func (j *Justification) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, _ := ParseJustification(s)
	*j = parsed
	return nil
}
