package ltspice

import (
	"fmt"
	"math"
	"strconv"
)

// Shape record parsing shared by the .asc and .asy parsers. Both formats
// use the same line-oriented records:
//
//	LINE      Normal x1 y1 x2 y2 [style]
//	CIRCLE    Normal x1 y1 x2 y2 [style]
//	RECTANGLE Normal x1 y1 x2 y2 [style]
//	ARC       Normal x1 y1 x2 y2 x3 y3 x4 y4 [style]
//
// For arcs, (x1,y1)-(x2,y2) is the bounding box of the full ellipse,
// (x3,y3) the arc's end point and (x4,y4) its start point.

// RecordError reports a record line that could not be parsed.
type RecordError struct {
	Keyword string
	Reason  string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("malformed %s record: %s", e.Keyword, e.Reason)
}

func parseCoords(keyword string, fields []string, n int) ([]float64, error) {
	if len(fields) < 2+n {
		return nil, &RecordError{Keyword: keyword, Reason: fmt.Sprintf("want %d coordinates, have %d fields", n, len(fields))}
	}
	if fields[1] != "Normal" {
		return nil, &RecordError{Keyword: keyword, Reason: fmt.Sprintf("unknown mode %q", fields[1])}
	}
	coords := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(fields[2+i], 64)
		if err != nil {
			return nil, &RecordError{Keyword: keyword, Reason: fmt.Sprintf("coordinate %q is not numeric", fields[2+i])}
		}
		coords[i] = v
	}
	return coords, nil
}

// parseStyle resolves the optional trailing style code into a dash pattern.
// Unknown or non-numeric codes are ignored, matching the legacy tool.
func parseStyle(fields []string, idx int) string {
	if len(fields) <= idx {
		return ""
	}
	code, err := strconv.Atoi(fields[idx])
	if err != nil {
		return ""
	}
	return DashPattern(code)
}

// ParseLineRecord parses a LINE record.
func ParseLineRecord(fields []string) (Line, error) {
	c, err := parseCoords("LINE", fields, 4)
	if err != nil {
		return Line{}, err
	}
	return Line{X1: c[0], Y1: c[1], X2: c[2], Y2: c[3], Style: parseStyle(fields, 6)}, nil
}

// ParseCircleRecord parses a CIRCLE record.
func ParseCircleRecord(fields []string) (Circle, error) {
	c, err := parseCoords("CIRCLE", fields, 4)
	if err != nil {
		return Circle{}, err
	}
	return Circle{X1: c[0], Y1: c[1], X2: c[2], Y2: c[3], Style: parseStyle(fields, 6)}, nil
}

// ParseRectRecord parses a RECTANGLE record.
func ParseRectRecord(fields []string) (Rect, error) {
	c, err := parseCoords("RECTANGLE", fields, 4)
	if err != nil {
		return Rect{}, err
	}
	return Rect{X1: c[0], Y1: c[1], X2: c[2], Y2: c[3], Style: parseStyle(fields, 6)}, nil
}

// ParseArcRecord parses an ARC record, converting the two literal arc
// points into start and end angles about the bounding box center.
func ParseArcRecord(fields []string) (Arc, error) {
	c, err := parseCoords("ARC", fields, 8)
	if err != nil {
		return Arc{}, err
	}
	cx := (c[0] + c[2]) / 2
	cy := (c[1] + c[3]) / 2
	start := normalizeAngle(math.Atan2(c[7]-cy, c[6]-cx) * 180 / math.Pi)
	end := normalizeAngle(math.Atan2(c[5]-cy, c[4]-cx) * 180 / math.Pi)
	return Arc{
		X1: c[0], Y1: c[1], X2: c[2], Y2: c[3],
		StartAngle: start, EndAngle: end,
		Style: parseStyle(fields, 10),
	}, nil
}

// AppendShapeRecord parses one shape record line into the shape group.
// It reports false when the keyword is not a shape record at all.
func AppendShapeRecord(s *Shapes, fields []string) (bool, error) {
	switch fields[0] {
	case "LINE":
		rec, err := ParseLineRecord(fields)
		if err != nil {
			return true, err
		}
		s.Lines = append(s.Lines, rec)
	case "CIRCLE":
		rec, err := ParseCircleRecord(fields)
		if err != nil {
			return true, err
		}
		s.Circles = append(s.Circles, rec)
	case "RECTANGLE":
		rec, err := ParseRectRecord(fields)
		if err != nil {
			return true, err
		}
		s.Rectangles = append(s.Rectangles, rec)
	case "ARC":
		rec, err := ParseArcRecord(fields)
		if err != nil {
			return true, err
		}
		s.Arcs = append(s.Arcs, rec)
	default:
		return false, nil
	}
	return true, nil
}

// ParseWindowRecord parses a WINDOW record: WINDOW prop x y justification [size].
// It returns the property id alongside the window placement.
func ParseWindowRecord(fields []string) (int, Window, error) {
	if len(fields) < 5 {
		return 0, Window{}, &RecordError{Keyword: "WINDOW", Reason: "want property id, coordinates and justification"}
	}
	prop, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, Window{}, &RecordError{Keyword: "WINDOW", Reason: fmt.Sprintf("property id %q is not numeric", fields[1])}
	}
	x, errX := strconv.ParseFloat(fields[2], 64)
	y, errY := strconv.ParseFloat(fields[3], 64)
	if errX != nil || errY != nil {
		return 0, Window{}, &RecordError{Keyword: "WINDOW", Reason: "coordinates are not numeric"}
	}
	just, _ := ParseJustification(fields[4])
	size := 2
	if len(fields) > 5 {
		if v, err := strconv.Atoi(fields[5]); err == nil {
			size = v
		}
	}
	return prop, Window{X: x, Y: y, Justification: just, SizeIndex: size}, nil
}

func normalizeAngle(deg float64) float64 {
	return math.Mod(math.Mod(deg, 360)+360, 360)
}
