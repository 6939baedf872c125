package ltspice

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Rotation is the parsed form of an LTspice rotation string such as "R90"
// or "M270". Mirroring is applied across the local Y axis before the
// rotation, matching the legacy tool's convention.
type Rotation struct {
	Mirror bool
	Angle  int // 0, 90, 180 or 270
}

// RotationError reports a rotation string that does not follow the
// R{0,90,180,270} / M{0,90,180,270} form. Callers treat it as a warning
// and fall back to R0.
type RotationError struct {
	Raw string
}

func (e *RotationError) Error() string {
	return fmt.Sprintf("invalid rotation %q, expected R or M followed by 0, 90, 180 or 270", e.Raw)
}

// ParseRotation parses a rotation string. On failure it returns the
// identity rotation R0 together with a *RotationError; the returned
// rotation is always usable.
func ParseRotation(s string) (Rotation, error) {
	if len(s) < 2 || (s[0] != 'R' && s[0] != 'M') {
		return Rotation{}, &RotationError{Raw: s}
	}
	angle, err := strconv.Atoi(s[1:])
	if err != nil {
		return Rotation{}, &RotationError{Raw: s}
	}
	switch angle {
	case 0, 90, 180, 270:
	default:
		return Rotation{}, &RotationError{Raw: s}
	}
	return Rotation{Mirror: s[0] == 'M', Angle: angle}, nil
}

// String renders the rotation back into its file form.
func (r Rotation) String() string {
	kind := "R"
	if r.Mirror {
		kind = "M"
	}
	return kind + strconv.Itoa(r.Angle)
}

// Apply transforms a point by the rotation: mirror across the Y axis
// first when the kind is M, then rotate by the fixed 90-degree-step table.
// The table is the legacy tool's convention, not a general rotation matrix.
func (r Rotation) Apply(p Point) Point {
	x, y := p.X, p.Y
	if r.Mirror {
		x = -x
	}
	switch r.Angle {
	case 90:
		x, y = -y, x
	case 180:
		x, y = -x, -y
	case 270:
		x, y = y, -x
	}
	return Point{X: x, Y: y}
}

// MarshalJSON encodes the rotation as its file form, e.g. "M90".
func (r Rotation) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON accepts the file form. Invalid values decode to R0,
// mirroring the parser's warn-and-default behavior.
func (r *Rotation) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseRotation(s)
	if err != nil {
		*r = Rotation{}
		return nil
	}
	*r = parsed
	return nil
}
