package render

// Anchor is an SVG text-anchor value.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Primitive is one positioned drawing element. The writer serializes the
// concrete types below; everything is monochrome line art (black stroke,
// no fill) except filled junction dots.
type Primitive interface {
	primitive()
}

// Line is a stroked segment with round caps.
type Line struct {
	X1, Y1, X2, Y2 float64
	StrokeWidth    float64
	Dash           string
}

// Circle is a stroked circle, or a filled dot when Filled is set.
type Circle struct {
	CX, CY, R   float64
	StrokeWidth float64
	Dash        string
	Filled      bool
}

// Ellipse is a stroked ellipse with distinct radii.
type Ellipse struct {
	CX, CY, RX, RY float64
	StrokeWidth    float64
	Dash           string
}

// Rect is a stroked axis-aligned rectangle.
type Rect struct {
	X, Y, W, H  float64
	StrokeWidth float64
}

// Path is a stroked SVG path with round caps.
type Path struct {
	D           string
	StrokeWidth float64
	Dash        string
}

// TextRun is one line of positioned text. Transform, when non-empty, is an
// SVG transform applied to this run only (counter-rotation, vertical text,
// mirror compensation).
type TextRun struct {
	X, Y      float64
	Content   string
	Anchor    Anchor
	FontSize  float64
	Transform string
}

// Group nests primitives under a shared transform.
type Group struct {
	Transform string
	Class     string
	Children  []Primitive
}

func (Line) primitive()    {}
func (Circle) primitive()  {}
func (Ellipse) primitive() {}
func (Rect) primitive()    {}
func (Path) primitive()    {}
func (TextRun) primitive() {}
func (Group) primitive()   {}
