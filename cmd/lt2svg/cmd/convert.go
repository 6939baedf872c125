package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lt2svg/lt2svg/pkg/ltspice/render"
	"github.com/lt2svg/lt2svg/pkg/ltspice/schematic"
	"github.com/lt2svg/lt2svg/pkg/ltspice/svg"
	"github.com/lt2svg/lt2svg/pkg/ltspice/symbol"
)

// libPathEnv holds extra symbol library directories, separated like PATH.
const libPathEnv = "LTSPICE_LIB_PATH"

var convertOpts struct {
	strokeWidth float64
	fontSize    float64
	dotSize     float64
	scale       float64
	pad         float64
	libDirs     []string
	configPath  string
	output      string
	exportJSON  bool

	noComment    bool
	noDirective  bool
	noNestedText bool
	noName       bool
	noValue      bool
	noNetLabel   bool
	noPinName    bool
}

var convertCmd = &cobra.Command{
	Use:   "convert <schematic.asc> [output.svg]",
	Short: "Convert an LTspice schematic to SVG",
	Long: `Convert an LTspice schematic file to an SVG image.

Symbol definitions (.asy) are resolved from the schematic's own directory,
then from --lib directories in order, then from $LTSPICE_LIB_PATH.
Without an output argument the SVG is written next to the input.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	f := convertCmd.Flags()
	f.Float64Var(&convertOpts.strokeWidth, "stroke-width", 3.0, "line stroke width in output units")
	f.Float64Var(&convertOpts.fontSize, "font-size", 16.0, "base font size in pixels")
	f.Float64Var(&convertOpts.dotSize, "dot-size", 1.5, "junction dot radius as a multiple of stroke width")
	f.Float64Var(&convertOpts.scale, "scale", 1.0, "coordinate scale factor")
	f.Float64Var(&convertOpts.pad, "pad", 0.1, "viewbox padding as a fraction of the larger dimension")
	f.StringArrayVar(&convertOpts.libDirs, "lib", nil, "symbol library directory (repeatable, highest priority first)")
	f.StringVar(&convertOpts.configPath, "config", "", "YAML file supplying option defaults")
	f.StringVarP(&convertOpts.output, "output", "o", "", "output SVG path (default: input with .svg extension)")
	f.BoolVar(&convertOpts.exportJSON, "export-json", false, "also write the parsed schematic as JSON next to the output")

	f.BoolVar(&convertOpts.noComment, "no-schematic-comment", false, "skip comment texts")
	f.BoolVar(&convertOpts.noDirective, "no-spice-directive", false, "skip SPICE directive texts")
	f.BoolVar(&convertOpts.noNestedText, "no-nested-symbol-text", false, "skip texts defined inside symbols")
	f.BoolVar(&convertOpts.noName, "no-component-name", false, "skip component instance names")
	f.BoolVar(&convertOpts.noValue, "no-component-value", false, "skip component values")
	f.BoolVar(&convertOpts.noNetLabel, "no-net-label", false, "skip net name labels")
	f.BoolVar(&convertOpts.noPinName, "no-pin-name", false, "skip IO pin net names")
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := strings.TrimSuffix(input, filepath.Ext(input)) + ".svg"
	if len(args) >= 2 {
		output = args[1]
	}
	if convertOpts.output != "" {
		output = convertOpts.output
	}

	if convertOpts.configPath != "" {
		if err := applyConfigFile(cmd, convertOpts.configPath); err != nil {
			return err
		}
	}

	logf("parsing %s", input)
	sch, warnings, err := schematic.ParseFile(input)
	if err != nil {
		return fmt.Errorf("parsing schematic: %w", err)
	}
	reportWarnings(warnings)

	lib := symbol.Library{}
	for _, dir := range libraryDirs(input) {
		logf("loading symbols from %s", dir)
		reportWarnings(symbol.LoadDir(lib, dir))
	}
	logf("loaded %d symbol definitions", len(lib))

	cfg := render.DefaultConfig()
	cfg.StrokeWidth = convertOpts.strokeWidth
	cfg.BaseFontSize = convertOpts.fontSize
	cfg.DotSizeMultiplier = convertOpts.dotSize
	cfg.Scale = convertOpts.scale
	cfg.ViewBoxPadding = convertOpts.pad
	cfg.NoSchematicComment = convertOpts.noComment
	cfg.NoSpiceDirective = convertOpts.noDirective
	cfg.NoNestedSymbolText = convertOpts.noNestedText
	cfg.NoComponentName = convertOpts.noName
	cfg.NoComponentValue = convertOpts.noValue
	cfg.NoNetLabel = convertOpts.noNetLabel
	cfg.NoPinName = convertOpts.noPinName

	doc, err := render.Render(sch, lib, cfg)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", input, err)
	}
	reportWarnings(doc.Warnings)

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	svg.Write(out, doc)
	if err := out.Close(); err != nil {
		return err
	}
	logf("wrote %s", output)

	if convertOpts.exportJSON {
		jsonPath := strings.TrimSuffix(output, filepath.Ext(output)) + ".json"
		data, err := json.MarshalIndent(sch, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding schematic: %w", err)
		}
		if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
			return err
		}
		logf("wrote %s", jsonPath)
	}
	return nil
}

// libraryDirs returns the symbol search path in priority order: the
// schematic's own directory, the --lib directories, then $LTSPICE_LIB_PATH.
func libraryDirs(input string) []string {
	dirs := []string{filepath.Dir(input)}
	dirs = append(dirs, convertOpts.libDirs...)
	if env := os.Getenv(libPathEnv); env != "" {
		dirs = append(dirs, filepath.SplitList(env)...)
	}
	return dirs
}

func reportWarnings(warnings []error) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %v\n", w)
	}
}

// fileConfig mirrors the convert flags in a YAML file. Pointer fields
// distinguish "absent" from zero; explicit command-line flags always win.
type fileConfig struct {
	StrokeWidth *float64 `yaml:"stroke_width"`
	FontSize    *float64 `yaml:"font_size"`
	DotSize     *float64 `yaml:"dot_size"`
	Scale       *float64 `yaml:"scale"`
	Pad         *float64 `yaml:"pad"`
	LibDirs     []string `yaml:"lib_dirs"`

	NoSchematicComment *bool `yaml:"no_schematic_comment"`
	NoSpiceDirective   *bool `yaml:"no_spice_directive"`
	NoNestedSymbolText *bool `yaml:"no_nested_symbol_text"`
	NoComponentName    *bool `yaml:"no_component_name"`
	NoComponentValue   *bool `yaml:"no_component_value"`
	NoNetLabel         *bool `yaml:"no_net_label"`
	NoPinName          *bool `yaml:"no_pin_name"`
}

func applyConfigFile(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	setFloat := func(flag string, dst *float64, src *float64) {
		if src != nil && !cmd.Flags().Changed(flag) {
			*dst = *src
		}
	}
	setBool := func(flag string, dst *bool, src *bool) {
		if src != nil && !cmd.Flags().Changed(flag) {
			*dst = *src
		}
	}
	setFloat("stroke-width", &convertOpts.strokeWidth, fc.StrokeWidth)
	setFloat("font-size", &convertOpts.fontSize, fc.FontSize)
	setFloat("dot-size", &convertOpts.dotSize, fc.DotSize)
	setFloat("scale", &convertOpts.scale, fc.Scale)
	setFloat("pad", &convertOpts.pad, fc.Pad)
	if len(fc.LibDirs) > 0 && !cmd.Flags().Changed("lib") {
		convertOpts.libDirs = fc.LibDirs
	}
	setBool("no-schematic-comment", &convertOpts.noComment, fc.NoSchematicComment)
	setBool("no-spice-directive", &convertOpts.noDirective, fc.NoSpiceDirective)
	setBool("no-nested-symbol-text", &convertOpts.noNestedText, fc.NoNestedSymbolText)
	setBool("no-component-name", &convertOpts.noName, fc.NoComponentName)
	setBool("no-component-value", &convertOpts.noValue, fc.NoComponentValue)
	setBool("no-net-label", &convertOpts.noNetLabel, fc.NoNetLabel)
	setBool("no-pin-name", &convertOpts.noPinName, fc.NoPinName)
	return nil
}
