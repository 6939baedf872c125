package render

import "fmt"

// MissingSymbolError reports a symbol instance whose definition is not in
// the library. It is a warning: the instance is skipped and rendering
// continues.
type MissingSymbolError struct {
	Symbol   string
	Instance string
}

func (e *MissingSymbolError) Error() string {
	if e.Instance != "" {
		return fmt.Sprintf("no symbol definition for %q (instance %s)", e.Symbol, e.Instance)
	}
	return fmt.Sprintf("no symbol definition for %q", e.Symbol)
}

// StyleError reports a dash pattern with a non-numeric token. It is a hard
// failure for the shape that carries the pattern; sibling shapes still
// render.
type StyleError struct {
	Pattern string
	Token   string
}

func (e *StyleError) Error() string {
	return fmt.Sprintf("dash pattern %q: token %q is not numeric", e.Pattern, e.Token)
}
