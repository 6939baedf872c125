package render

import (
	"math"

	"github.com/lt2svg/lt2svg/pkg/ltspice"
)

// dirKey is a unit direction rounded to 6 decimals, enough to absorb
// floating point error while keeping genuinely distinct angles apart.
type dirKey struct {
	dx, dy float64
}

// FindTJunctions returns every point where at least three wire ends meet
// in at least three distinct directions. Two collinear wires sharing an
// endpoint with a third wire contribute only two directions and do not
// qualify. Points in the terminal set (symbol pins) are excluded; pass nil
// when no terminal metadata is available. Results are in first-seen wire
// order, so repeated renders are deterministic.
func FindTJunctions(wires []ltspice.Wire, terminals map[ltspice.Point]struct{}) []ltspice.Point {
	counts := make(map[ltspice.Point]int)
	var order []ltspice.Point
	tally := func(p ltspice.Point) {
		if _, seen := counts[p]; !seen {
			order = append(order, p)
		}
		counts[p]++
	}
	for _, w := range wires {
		tally(w.P1())
		tally(w.P2())
	}

	var junctions []ltspice.Point
	for _, p := range order {
		if counts[p] < 3 {
			continue
		}
		if _, isTerminal := terminals[p]; isTerminal {
			continue
		}
		if len(incidentDirections(p, wires)) >= 3 {
			junctions = append(junctions, p)
		}
	}
	return junctions
}

// incidentDirections gathers the distinct unit directions of every wire
// touching p, seen from p.
func incidentDirections(p ltspice.Point, wires []ltspice.Wire) map[dirKey]struct{} {
	dirs := make(map[dirKey]struct{})
	for _, w := range wires {
		var dx, dy float64
		switch {
		case w.P1() == p:
			dx, dy = w.X2-w.X1, w.Y2-w.Y1
		case w.P2() == p:
			dx, dy = w.X1-w.X2, w.Y1-w.Y2
		default:
			continue
		}
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		dirs[dirKey{round6(dx / length), round6(dy / length)}] = struct{}{}
	}
	return dirs
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
