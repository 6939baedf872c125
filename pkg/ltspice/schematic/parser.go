// Package schematic parses LTspice schematic files (.asc).
package schematic

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lt2svg/lt2svg/pkg/ltspice"
)

// Parse reads a schematic from r. Malformed records never abort the parse:
// each is skipped and reported in the returned warning list. The error
// return is reserved for read failures.
func Parse(r io.Reader) (*ltspice.Schematic, []error, error) {
	p := &parser{sch: &ltspice.Schematic{}, curSymbol: -1}
	scanner := bufio.NewScanner(ltspice.DecodeText(r))
	for scanner.Scan() {
		p.line(strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, p.warnings, fmt.Errorf("reading schematic: %w", err)
	}
	return p.sch, p.warnings, nil
}

// ParseFile reads a schematic from disk, handling LTspice's UTF-16 output.
func ParseFile(path string) (*ltspice.Schematic, []error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return Parse(f)
}

type parser struct {
	sch       *ltspice.Schematic
	curSymbol int // index into sch.Symbols, -1 outside a SYMBOL block
	warnings  []error
}

func (p *parser) warnf(format string, args ...any) {
	p.warnings = append(p.warnings, fmt.Errorf(format, args...))
}

func (p *parser) line(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	switch fields[0] {
	case "Version":
		if len(fields) > 1 {
			p.sch.Version, _ = strconv.Atoi(fields[1])
		}
	case "SHEET":
		p.parseSheet(fields)
	case "WIRE":
		p.parseWire(line, fields)
	case "SYMBOL":
		p.parseSymbol(line, fields)
	case "SYMATTR":
		p.parseSymAttr(line, fields)
	case "WINDOW":
		p.parseWindow(line, fields)
	case "FLAG":
		p.parseFlag(line, fields)
	case "IOPIN":
		p.parseIOPin(line, fields)
	case "TEXT":
		p.parseText(line, fields)
	case "LINE", "CIRCLE", "RECTANGLE", "ARC":
		if _, err := ltspice.AppendShapeRecord(&p.sch.Shapes, fields); err != nil {
			p.warnf("skipping shape in line %q: %w", line, err)
		}
	}
}

func (p *parser) parseSheet(fields []string) {
	// SHEET number width height
	if len(fields) < 4 {
		return
	}
	p.sch.SheetWidth, _ = strconv.ParseFloat(fields[2], 64)
	p.sch.SheetHeight, _ = strconv.ParseFloat(fields[3], 64)
}

func (p *parser) parseWire(line string, fields []string) {
	// WIRE x1 y1 x2 y2
	coords, ok := p.floats(line, fields, 1, 4)
	if !ok {
		return
	}
	p.sch.Wires = append(p.sch.Wires, ltspice.Wire{
		X1: coords[0], Y1: coords[1], X2: coords[2], Y2: coords[3],
	})
}

func (p *parser) parseSymbol(line string, fields []string) {
	// SYMBOL name x y [rotation]
	if len(fields) < 4 {
		p.warnf("skipping symbol in line %q: want name and coordinates", line)
		return
	}
	coords, ok := p.floats(line, fields, 2, 2)
	if !ok {
		return
	}
	rot := ltspice.Rotation{}
	if len(fields) > 4 {
		parsed, err := ltspice.ParseRotation(fields[4])
		if err != nil {
			p.warnf("symbol %s: %w, using R0", fields[1], err)
		}
		rot = parsed
	}
	p.sch.Symbols = append(p.sch.Symbols, ltspice.SymbolInstance{
		Symbol:   fields[1],
		X:        coords[0],
		Y:        coords[1],
		Rotation: rot,
	})
	p.curSymbol = len(p.sch.Symbols) - 1
}

func (p *parser) parseSymAttr(line string, fields []string) {
	// SYMATTR key value... (value keeps embedded spaces)
	if p.curSymbol < 0 {
		p.warnf("SYMATTR outside a SYMBOL block: %q", line)
		return
	}
	if len(fields) < 3 {
		return
	}
	parts := strings.SplitN(line, " ", 3)
	value := strings.TrimSpace(parts[2])
	sym := &p.sch.Symbols[p.curSymbol]
	switch fields[1] {
	case "InstName":
		sym.InstanceName = value
	case "Value":
		sym.Value = value
	}
}

func (p *parser) parseWindow(line string, fields []string) {
	// In a schematic, WINDOW records follow a SYMBOL and override that
	// instance's text slot placement.
	if p.curSymbol < 0 {
		p.warnf("WINDOW outside a SYMBOL block: %q", line)
		return
	}
	prop, win, err := ltspice.ParseWindowRecord(fields)
	if err != nil {
		p.warnf("skipping window in line %q: %w", line, err)
		return
	}
	sym := &p.sch.Symbols[p.curSymbol]
	if sym.WindowOverrides == nil {
		sym.WindowOverrides = make(map[int]ltspice.Window)
	}
	sym.WindowOverrides[prop] = win
}

func (p *parser) parseFlag(line string, fields []string) {
	// FLAG x y net
	if len(fields) < 4 {
		p.warnf("skipping flag in line %q: want coordinates and net name", line)
		return
	}
	coords, ok := p.floats(line, fields, 1, 2)
	if !ok {
		return
	}
	p.sch.Flags = append(p.sch.Flags, ltspice.Flag{
		X: coords[0], Y: coords[1],
		Net: strings.Join(fields[3:], " "),
	})
}

func (p *parser) parseIOPin(line string, fields []string) {
	// IOPIN x y direction. Promotes the flag at the same point to a port.
	if len(fields) < 4 {
		p.warnf("skipping io pin in line %q: want coordinates and direction", line)
		return
	}
	coords, ok := p.floats(line, fields, 1, 2)
	if !ok {
		return
	}
	dir, ok := ltspice.ParsePinDirection(fields[3])
	if !ok {
		p.warnf("io pin at (%g,%g): unknown direction %q, using BiDir", coords[0], coords[1], fields[3])
	}
	for i := len(p.sch.Flags) - 1; i >= 0; i-- {
		f := p.sch.Flags[i]
		if f.X == coords[0] && f.Y == coords[1] {
			p.sch.IOPins = append(p.sch.IOPins, ltspice.IOPin{
				X: f.X, Y: f.Y, Net: f.Net, Direction: dir,
			})
			p.sch.Flags = append(p.sch.Flags[:i], p.sch.Flags[i+1:]...)
			return
		}
	}
	p.warnf("io pin at (%g,%g) has no matching flag", coords[0], coords[1])
}

func (p *parser) parseText(line string, fields []string) {
	// TEXT x y justification [size] ;comment  or  !directive
	if len(fields) < 4 {
		p.warnf("skipping text in line %q: want coordinates and justification", line)
		return
	}
	coords, ok := p.floats(line, fields, 1, 2)
	if !ok {
		return
	}
	just, known := ltspice.ParseJustification(fields[3])
	if !known {
		p.warnf("text at (%g,%g): unknown justification %q, using Left", coords[0], coords[1], fields[3])
	}
	marker := strings.IndexAny(line, ";!")
	if marker < 0 {
		p.warnf("skipping text in line %q: no content marker", line)
		return
	}
	kind := ltspice.CommentText
	if line[marker] == '!' {
		kind = ltspice.DirectiveText
	}
	size := 2
	if len(fields) > 4 {
		if v, err := strconv.Atoi(fields[4]); err == nil {
			size = v
		}
	}
	p.sch.Texts = append(p.sch.Texts, ltspice.Text{
		X: coords[0], Y: coords[1],
		Content:       decodeContent(line[marker+1:]),
		Justification: just,
		SizeIndex:     size,
		Kind:          kind,
	})
}

// decodeContent unescapes the literal "\n" sequences LTspice uses for
// multi-line text.
func decodeContent(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), `\n`, "\n")
}

// floats parses n consecutive numeric fields starting at offset, warning
// and reporting false when any field is missing or not numeric.
func (p *parser) floats(line string, fields []string, offset, n int) ([]float64, bool) {
	if len(fields) < offset+n {
		p.warnf("skipping %s in line %q: want %d coordinates", fields[0], line, n)
		return nil, false
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(fields[offset+i], 64)
		if err != nil {
			p.warnf("skipping %s in line %q: %q is not numeric", fields[0], line, fields[offset+i])
			return nil, false
		}
		out[i] = v
	}
	return out, true
}
