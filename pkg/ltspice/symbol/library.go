package symbol

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/lt2svg/lt2svg/pkg/ltspice"
)

// Library maps symbol names to their definitions. Keys are stored
// lowercase; SYMBOL references in schematics are matched case-insensitively
// because LTspice itself is not consistent about symbol name casing.
type Library map[string]*ltspice.SymbolDefinition

// Add inserts a definition under its name.
func (l Library) Add(def *ltspice.SymbolDefinition) {
	l[strings.ToLower(def.Name)] = def
}

// Lookup resolves a symbol name case-insensitively.
func (l Library) Lookup(name string) (*ltspice.SymbolDefinition, bool) {
	def, ok := l[strings.ToLower(name)]
	return def, ok
}

// LoadDir walks a directory tree and loads every .asy file into the
// library. Files that fail to open or decode are skipped and reported in
// the warning list; earlier entries win on duplicate names so callers
// should pass higher-priority directories first.
func LoadDir(lib Library, dir string) []error {
	var warnings []error
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			warnings = append(warnings, err)
			return nil
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".asy") {
			return nil
		}
		name := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
		if _, exists := lib[name]; exists {
			return nil
		}
		def, warns, err := ParseFile(path)
		warnings = append(warnings, warns...)
		if err != nil {
			warnings = append(warnings, err)
			return nil
		}
		lib[name] = def
		return nil
	})
	if walkErr != nil {
		warnings = append(warnings, walkErr)
	}
	return warnings
}
