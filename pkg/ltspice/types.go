// Package ltspice provides the shared record types for LTspice schematic
// (.asc) and symbol (.asy) files. The format parsers in the schematic and
// symbol subpackages produce these records; the render package consumes them.
package ltspice

import "encoding/json"

// Point represents a 2D coordinate on the LTspice unit grid.
// The coordinate system is y-down, matching both LTspice and SVG.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Wire represents a single wire segment between two grid points.
// Wires are undirected for connectivity purposes, but endpoint order is
// preserved because junction detection compares directions per endpoint.
type Wire struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// P1 returns the first endpoint of the wire.
func (w Wire) P1() Point { return Point{w.X1, w.Y1} }

// P2 returns the second endpoint of the wire.
func (w Wire) P2() Point { return Point{w.X2, w.Y2} }

// Line is a straight stroke between two points.
// Style holds the dash pattern in unit lengths, empty for solid.
type Line struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Style string  `json:"style,omitempty"`
}

// Circle is a circle or ellipse described by its bounding box corners.
type Circle struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Style string  `json:"style,omitempty"`
}

// Rect is an axis-aligned rectangle described by two opposite corners.
type Rect struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Style string  `json:"style,omitempty"`
}

// Arc is an elliptical arc on the circle/ellipse inscribed in the bounding
// box (X1,Y1)-(X2,Y2). Angles are in degrees, normalized to [0,360), in the
// y-down coordinate system.
type Arc struct {
	X1         float64 `json:"x1"`
	Y1         float64 `json:"y1"`
	X2         float64 `json:"x2"`
	Y2         float64 `json:"y2"`
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
	Style      string  `json:"style,omitempty"`
}

// Shapes groups the drawable shape records of a schematic or symbol.
type Shapes struct {
	Lines      []Line   `json:"lines,omitempty"`
	Circles    []Circle `json:"circles,omitempty"`
	Rectangles []Rect   `json:"rectangles,omitempty"`
	Arcs       []Arc    `json:"arcs,omitempty"`
}

// Empty reports whether the group contains no shapes at all.
func (s Shapes) Empty() bool {
	return len(s.Lines) == 0 && len(s.Circles) == 0 &&
		len(s.Rectangles) == 0 && len(s.Arcs) == 0
}

// TextKind distinguishes schematic comments from SPICE directives.
// LTspice marks comments with ';' and directives with '!' in TEXT records.
type TextKind int

const (
	// CommentText is an annotation with no simulation meaning.
	CommentText TextKind = iota
	// DirectiveText is a SPICE directive (e.g. ".tran 1m").
	DirectiveText
)

func (k TextKind) String() string {
	if k == DirectiveText {
		return "spice"
	}
	return "comment"
}

// MarshalJSON encodes the kind as "comment" or "spice".
func (k TextKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON accepts the string form; unknown values decode to comment.
func (k *TextKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "spice" {
		*k = DirectiveText
	} else {
		*k = CommentText
	}
	return nil
}

// Text represents a positioned text record from a schematic or symbol.
type Text struct {
	X             float64       `json:"x"`
	Y             float64       `json:"y"`
	Content       string        `json:"text"`
	Justification Justification `json:"justification"`
	SizeIndex     int           `json:"size_multiplier"`
	Kind          TextKind      `json:"type"`
	Mirrored      bool          `json:"is_mirrored,omitempty"`
}

// Window property IDs for the two text slots every symbol may define.
const (
	WindowInstanceName = 0 // placement of the instance name
	WindowValue        = 3 // placement of the value
)

// Window describes where a symbol property is drawn relative to the
// symbol origin.
type Window struct {
	X             float64       `json:"x"`
	Y             float64       `json:"y"`
	Justification Justification `json:"justification"`
	SizeIndex     int           `json:"size_multiplier"`
}

// SymbolInstance is a placement of a library symbol on the schematic.
type SymbolInstance struct {
	Symbol          string         `json:"symbol_name"`
	InstanceName    string         `json:"instance_name,omitempty"`
	Value           string         `json:"value,omitempty"`
	X               float64        `json:"x"`
	Y               float64        `json:"y"`
	Rotation        Rotation       `json:"rotation"`
	WindowOverrides map[int]Window `json:"window_overrides,omitempty"`
}

// SymbolDefinition is a reusable symbol loaded from a .asy file.
// Definitions are immutable once loaded and shared across instances.
type SymbolDefinition struct {
	Name    string         `json:"name"`
	Shapes  Shapes         `json:"shapes"`
	Texts   []Text         `json:"texts,omitempty"`
	Windows map[int]Window `json:"windows,omitempty"`
	Pins    []Point        `json:"pins,omitempty"`
}

// PinDirection is the direction of an IO pin.
type PinDirection int

const (
	DirIn PinDirection = iota
	DirOut
	DirBiDir
)

var pinDirectionNames = map[PinDirection]string{
	DirIn:    "In",
	DirOut:   "Out",
	DirBiDir: "BiDir",
}

// ParsePinDirection maps the IOPIN direction token to a PinDirection.
// The second return value is false for unknown tokens.
func ParsePinDirection(s string) (PinDirection, bool) {
	for d, name := range pinDirectionNames {
		if name == s {
			return d, true
		}
	}
	return DirBiDir, false
}

func (d PinDirection) String() string {
	if name, ok := pinDirectionNames[d]; ok {
		return name
	}
	return "BiDir"
}

// MarshalJSON encodes the direction as its token, e.g. "BiDir".
func (d PinDirection) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts the token form; unknown tokens decode to BiDir.
func (d *PinDirection) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, _ := ParsePinDirection(s)
	*d = parsed
	return nil
}

// GroundNet is the net name LTspice reserves for ground flags.
const GroundNet = "0"

// Flag marks a net identity at a point: a ground symbol or a net label.
// Orientation is not authored in the file format; the renderer derives it
// from the wires incident on the flag's position.
type Flag struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	Net string  `json:"net_name"`
}

// Ground reports whether the flag is a ground flag rather than a net label.
func (f Flag) Ground() bool { return f.Net == GroundNet }

// Pos returns the flag's position.
func (f Flag) Pos() Point { return Point{f.X, f.Y} }

// IOPin is a directional port marker with an attached net name.
type IOPin struct {
	X         float64      `json:"x"`
	Y         float64      `json:"y"`
	Net       string       `json:"net_name"`
	Direction PinDirection `json:"direction"`
}

// Pos returns the pin's position.
func (p IOPin) Pos() Point { return Point{p.X, p.Y} }

// Schematic is a fully parsed .asc file. All fields are read-only inputs
// to the renderer; rendering never mutates a schematic.
type Schematic struct {
	Version     int              `json:"version,omitempty"`
	SheetWidth  float64          `json:"sheet_width,omitempty"`
	SheetHeight float64          `json:"sheet_height,omitempty"`
	Wires       []Wire           `json:"wires"`
	Symbols     []SymbolInstance `json:"symbols"`
	Texts       []Text           `json:"texts"`
	Flags       []Flag           `json:"flags"`
	IOPins      []IOPin          `json:"io_pins"`
	Shapes      Shapes           `json:"shapes"`
}
