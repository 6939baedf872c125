package render

import (
	"errors"
	"strings"

	"github.com/lt2svg/lt2svg/pkg/ltspice"
)

// Document is the result of one render call.
type Document struct {
	Primitives []Primitive
	ViewBox    ViewBox

	// Warnings are recoverable problems the render worked around, such
	// as symbol instances whose definition is missing from the library.
	Warnings []error
}

// Render converts a schematic into a document. Library keys are lowercase
// symbol names. Per-shape failures (malformed dash patterns) abort the
// render with a joined error; a missing symbol definition only skips that
// instance and records a warning.
//
// Primitives are emitted in drawing order: wires, junction dots, free
// shapes, symbols, texts, ground flags and net labels, IO pins. Later
// entries paint over earlier ones.
func Render(sch *ltspice.Schematic, lib map[string]*ltspice.SymbolDefinition, cfg Config) (*Document, error) {
	doc := &Document{}
	var hard []error
	s := cfg.Scale

	for _, w := range sch.Wires {
		doc.Primitives = append(doc.Primitives, Line{
			X1: w.X1 * s, Y1: w.Y1 * s, X2: w.X2 * s, Y2: w.Y2 * s,
			StrokeWidth: cfg.StrokeWidth,
		})
	}

	terminals := SymbolTerminals(sch.Symbols, lib)
	for _, p := range FindTJunctions(sch.Wires, terminals) {
		doc.Primitives = append(doc.Primitives, Circle{
			CX: p.X * s, CY: p.Y * s,
			R:      cfg.StrokeWidth * cfg.DotSizeMultiplier,
			Filled: true,
		})
	}

	prims, errs := EmitShapes(sch.Shapes, cfg)
	doc.Primitives = append(doc.Primitives, prims...)
	hard = append(hard, errs...)

	for _, inst := range sch.Symbols {
		def, ok := lib[strings.ToLower(inst.Symbol)]
		if !ok {
			doc.Warnings = append(doc.Warnings, &MissingSymbolError{
				Symbol:   inst.Symbol,
				Instance: inst.InstanceName,
			})
			continue
		}
		g, errs := Instantiate(inst, def, cfg)
		hard = append(hard, errs...)
		doc.Primitives = append(doc.Primitives, g)
	}

	for _, t := range sch.Texts {
		if t.Kind == ltspice.CommentText && cfg.NoSchematicComment {
			continue
		}
		if t.Kind == ltspice.DirectiveText && cfg.NoSpiceDirective {
			continue
		}
		for _, run := range LayoutText(t, cfg) {
			doc.Primitives = append(doc.Primitives, run)
		}
	}

	for _, f := range sch.Flags {
		orientation := DeriveOrientation(f.Pos(), sch.Wires)
		if f.Ground() {
			doc.Primitives = append(doc.Primitives, EmitGroundFlag(f, orientation, cfg))
			continue
		}
		if cfg.NoNetLabel {
			continue
		}
		doc.Primitives = append(doc.Primitives, EmitNetLabel(f, orientation, cfg))
	}

	for _, pin := range sch.IOPins {
		orientation := DeriveOrientation(pin.Pos(), sch.Wires)
		doc.Primitives = append(doc.Primitives, EmitIOPin(pin, orientation, cfg)...)
	}

	doc.ViewBox = ComputeViewBox(sch, cfg)

	if len(hard) > 0 {
		return doc, errors.Join(hard...)
	}
	return doc, nil
}
