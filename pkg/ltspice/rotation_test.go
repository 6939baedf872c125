package ltspice

import "testing"

func TestParseRotation(t *testing.T) {
	tests := []struct {
		in   string
		want Rotation
	}{
		{"R0", Rotation{false, 0}},
		{"R90", Rotation{false, 90}},
		{"R180", Rotation{false, 180}},
		{"R270", Rotation{false, 270}},
		{"M0", Rotation{true, 0}},
		{"M90", Rotation{true, 90}},
		{"M180", Rotation{true, 180}},
		{"M270", Rotation{true, 270}},
	}
	for _, tt := range tests {
		got, err := ParseRotation(tt.in)
		if err != nil {
			t.Errorf("ParseRotation(%q) returned error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRotation(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
		if got.String() != tt.in {
			t.Errorf("Rotation.String() = %q, want %q", got.String(), tt.in)
		}
	}
}

func TestParseRotationInvalid(t *testing.T) {
	for _, in := range []string{"", "R", "X90", "R45", "M360", "R90x"} {
		got, err := ParseRotation(in)
		if err == nil {
			t.Errorf("ParseRotation(%q) succeeded, want error", in)
		}
		if got != (Rotation{}) {
			t.Errorf("ParseRotation(%q) = %+v, want identity fallback", in, got)
		}
	}
}

func TestRotationApply(t *testing.T) {
	// One asymmetric probe point exercises the whole transform table.
	p := Point{X: 2, Y: 1}
	tests := []struct {
		rot  string
		want Point
	}{
		{"R0", Point{2, 1}},
		{"R90", Point{-1, 2}},
		{"R180", Point{-2, -1}},
		{"R270", Point{1, -2}},
		{"M0", Point{-2, 1}},
		{"M90", Point{-1, -2}},
		{"M180", Point{2, -1}},
		{"M270", Point{1, 2}},
	}
	for _, tt := range tests {
		r, err := ParseRotation(tt.rot)
		if err != nil {
			t.Fatalf("ParseRotation(%q): %v", tt.rot, err)
		}
		if got := r.Apply(p); got != tt.want {
			t.Errorf("%s.Apply(%+v) = %+v, want %+v", tt.rot, p, got, tt.want)
		}
	}
}

func TestRotationApplyOrigin(t *testing.T) {
	for _, rot := range []string{"R0", "R90", "R180", "R270", "M0", "M90", "M180", "M270"} {
		r, _ := ParseRotation(rot)
		if got := r.Apply(Point{}); got != (Point{}) {
			t.Errorf("%s.Apply(origin) = %+v, want origin", rot, got)
		}
	}
}
