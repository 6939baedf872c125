// Package symbol parses LTspice symbol files (.asy) and loads symbol
// libraries for the renderer.
package symbol

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lt2svg/lt2svg/pkg/ltspice"
)

// Parse reads a symbol definition from r. The name is recorded on the
// definition; by convention it is the .asy base filename. Malformed
// records are skipped and reported as warnings, matching the schematic
// parser's behavior.
func Parse(r io.Reader, name string) (*ltspice.SymbolDefinition, []error, error) {
	def := &ltspice.SymbolDefinition{Name: name}
	var warnings []error
	warnf := func(format string, args ...any) {
		warnings = append(warnings, fmt.Errorf(format, args...))
	}

	scanner := bufio.NewScanner(ltspice.DecodeText(r))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "LINE", "CIRCLE", "RECTANGLE", "ARC":
			if _, err := ltspice.AppendShapeRecord(&def.Shapes, fields); err != nil {
				warnf("symbol %s: skipping shape in line %q: %w", name, line, err)
			}
		case "WINDOW":
			prop, win, err := ltspice.ParseWindowRecord(fields)
			if err != nil {
				warnf("symbol %s: skipping window in line %q: %w", name, line, err)
				continue
			}
			if def.Windows == nil {
				def.Windows = make(map[int]ltspice.Window)
			}
			def.Windows[prop] = win
		case "PIN":
			// PIN x y justification offset. Only the terminal point matters
			// for rendering; it feeds junction terminal exclusion.
			if len(fields) < 3 {
				warnf("symbol %s: skipping pin in line %q: want coordinates", name, line)
				continue
			}
			x, errX := strconv.ParseFloat(fields[1], 64)
			y, errY := strconv.ParseFloat(fields[2], 64)
			if errX != nil || errY != nil {
				warnf("symbol %s: skipping pin in line %q: coordinates are not numeric", name, line)
				continue
			}
			def.Pins = append(def.Pins, ltspice.Point{X: x, Y: y})
		case "TEXT":
			// TEXT x y justification size content... (no comment marker in .asy)
			if len(fields) < 6 {
				continue
			}
			x, errX := strconv.ParseFloat(fields[1], 64)
			y, errY := strconv.ParseFloat(fields[2], 64)
			if errX != nil || errY != nil {
				warnf("symbol %s: skipping text in line %q: coordinates are not numeric", name, line)
				continue
			}
			just, _ := ltspice.ParseJustification(fields[3])
			size := 2
			if v, err := strconv.Atoi(fields[4]); err == nil {
				size = v
			}
			def.Texts = append(def.Texts, ltspice.Text{
				X: x, Y: y,
				Content:       strings.Join(fields[5:], " "),
				Justification: just,
				SizeIndex:     size,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, warnings, fmt.Errorf("reading symbol %s: %w", name, err)
	}
	return def, warnings, nil
}

// ParseFile reads a symbol definition from disk, naming it after the file.
func ParseFile(path string) (*ltspice.SymbolDefinition, []error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Parse(f, name)
}
