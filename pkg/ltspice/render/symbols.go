package render

import (
	"fmt"
	"strings"

	"github.com/lt2svg/lt2svg/pkg/ltspice"
)

// Built-in fallback placement for the two property text slots, used when
// neither the instance nor the symbol definition provides a window.
var defaultWindows = map[int]ltspice.Window{
	ltspice.WindowInstanceName: {X: 0, Y: -16, Justification: ltspice.Center, SizeIndex: 2},
	ltspice.WindowValue:        {X: 0, Y: 16, Justification: ltspice.Center, SizeIndex: 2},
}

// Instantiate places a symbol definition at an instance's position,
// rotation and mirror, emitting its shapes and texts into one group. The
// returned errors are per-shape hard failures; the rest of the symbol
// still renders. The definition must not be nil; missing definitions are
// the caller's warning case.
func Instantiate(inst ltspice.SymbolInstance, def *ltspice.SymbolDefinition, cfg Config) (Group, []error) {
	g := Group{
		Transform: instanceTransform(inst, cfg.Scale),
		Class:     "symbol",
	}

	prims, errs := EmitShapes(def.Shapes, cfg)
	g.Children = append(g.Children, prims...)

	// Texts inside the group inherit the instance frame, so they carry the
	// counter-rotation context.
	ctx := TextContext{Angle: inst.Rotation.Angle, Mirrored: inst.Rotation.Mirror}

	if !cfg.NoNestedSymbolText {
		for _, t := range def.Texts {
			for _, run := range LayoutTextIn(t, cfg, ctx) {
				g.Children = append(g.Children, run)
			}
		}
	}

	if !cfg.NoComponentName && inst.InstanceName != "" {
		win := resolveWindow(inst, def, ltspice.WindowInstanceName)
		for _, run := range LayoutTextIn(windowText(win, inst.InstanceName), cfg, ctx) {
			g.Children = append(g.Children, run)
		}
	}
	if !cfg.NoComponentValue && inst.Value != "" {
		win := resolveWindow(inst, def, ltspice.WindowValue)
		for _, run := range LayoutTextIn(windowText(win, inst.Value), cfg, ctx) {
			g.Children = append(g.Children, run)
		}
	}

	return g, errs
}

// instanceTransform builds the group transform: translate to the instance
// position, mirror across Y if the rotation kind is M, then rotate.
// Mirror-before-rotate matches the per-point convention of
// ltspice.Rotation.Apply.
func instanceTransform(inst ltspice.SymbolInstance, scale float64) string {
	parts := []string{fmt.Sprintf("translate(%s,%s)", num(inst.X*scale), num(inst.Y*scale))}
	if inst.Rotation.Mirror {
		parts = append(parts, "scale(-1,1)")
	}
	if inst.Rotation.Angle != 0 {
		parts = append(parts, fmt.Sprintf("rotate(%d)", inst.Rotation.Angle))
	}
	return strings.Join(parts, " ")
}

// resolveWindow picks the placement for a property text slot: the
// instance's override wins, then the definition's window, then the
// built-in default.
func resolveWindow(inst ltspice.SymbolInstance, def *ltspice.SymbolDefinition, prop int) ltspice.Window {
	if win, ok := inst.WindowOverrides[prop]; ok {
		return win
	}
	if win, ok := def.Windows[prop]; ok {
		return win
	}
	return defaultWindows[prop]
}

// windowText builds the text record for a property rendered at a window.
func windowText(win ltspice.Window, content string) ltspice.Text {
	return ltspice.Text{
		X:             win.X,
		Y:             win.Y,
		Content:       content,
		Justification: win.Justification,
		SizeIndex:     win.SizeIndex,
	}
}

// SymbolTerminals collects the absolute positions of every symbol pin,
// transformed by its instance's rotation. The topology analyzer excludes
// these points from junction detection. Library keys are lowercase symbol
// names, as produced by symbol.LoadDir.
func SymbolTerminals(symbols []ltspice.SymbolInstance, lib map[string]*ltspice.SymbolDefinition) map[ltspice.Point]struct{} {
	terminals := make(map[ltspice.Point]struct{})
	for _, inst := range symbols {
		def, ok := lib[strings.ToLower(inst.Symbol)]
		if !ok {
			continue
		}
		for _, pin := range def.Pins {
			p := inst.Rotation.Apply(pin)
			terminals[ltspice.Point{X: inst.X + p.X, Y: inst.Y + p.Y}] = struct{}{}
		}
	}
	return terminals
}
