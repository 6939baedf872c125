package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lt2svg/lt2svg/pkg/ltspice/render"
	"github.com/lt2svg/lt2svg/pkg/ltspice/schematic"
)

var infoCmd = &cobra.Command{
	Use:   "info <schematic.asc>",
	Short: "Show schematic information",
	Long:  `Display a summary of an LTspice schematic file.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]
	sch, warnings, err := schematic.ParseFile(filename)
	if err != nil {
		return fmt.Errorf("parsing schematic: %w", err)
	}
	reportWarnings(warnings)

	fmt.Printf("Schematic: %s\n", filename)
	fmt.Printf("Version: %d\n", sch.Version)
	if sch.SheetWidth > 0 || sch.SheetHeight > 0 {
		fmt.Printf("Sheet: %gx%g\n", sch.SheetWidth, sch.SheetHeight)
	}
	fmt.Println()

	fmt.Println("Statistics:")
	fmt.Printf("  Wires: %d\n", len(sch.Wires))
	fmt.Printf("  Components: %d\n", len(sch.Symbols))
	fmt.Printf("  Texts: %d\n", len(sch.Texts))
	fmt.Printf("  Flags: %d\n", len(sch.Flags))
	fmt.Printf("  IO pins: %d\n", len(sch.IOPins))
	shapes := len(sch.Shapes.Lines) + len(sch.Shapes.Circles) +
		len(sch.Shapes.Rectangles) + len(sch.Shapes.Arcs)
	fmt.Printf("  Shapes: %d\n", shapes)
	// Junction count without symbol pin metadata; the convert path refines
	// this with terminal exclusion once libraries are loaded.
	fmt.Printf("  Junctions: %d\n", len(render.FindTJunctions(sch.Wires, nil)))
	fmt.Println()

	if len(sch.Symbols) > 0 {
		fmt.Println("Components:")
		bySymbol := make(map[string][]string)
		for _, inst := range sch.Symbols {
			name := inst.InstanceName
			if name == "" {
				name = "?"
			}
			bySymbol[inst.Symbol] = append(bySymbol[inst.Symbol], name)
		}
		var symbols []string
		for s := range bySymbol {
			symbols = append(symbols, s)
		}
		sort.Strings(symbols)
		for _, s := range symbols {
			names := bySymbol[s]
			sort.Strings(names)
			fmt.Printf("  %s: %s\n", s, strings.Join(names, ", "))
		}
		fmt.Println()
	}

	var nets []string
	seen := make(map[string]bool)
	for _, f := range sch.Flags {
		if !f.Ground() && !seen[f.Net] {
			seen[f.Net] = true
			nets = append(nets, f.Net)
		}
	}
	for _, p := range sch.IOPins {
		if !seen[p.Net] {
			seen[p.Net] = true
			nets = append(nets, p.Net+" ("+p.Direction.String()+")")
		}
	}
	if len(nets) > 0 {
		fmt.Println("Named Nets:")
		sort.Strings(nets)
		for _, n := range nets {
			fmt.Printf("  %s\n", n)
		}
	}
	grounds := 0
	for _, f := range sch.Flags {
		if f.Ground() {
			grounds++
		}
	}
	if grounds > 0 {
		fmt.Printf("Ground flags: %d\n", grounds)
	}
	return nil
}
