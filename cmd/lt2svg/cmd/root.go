package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lt2svg",
	Short: "lt2svg - LTspice schematic to SVG converter",
	Long: `lt2svg converts LTspice schematic files (.asc) into SVG images,
resolving symbol definitions (.asy) from library directories.

Examples:
  lt2svg convert amplifier.asc                 # Write amplifier.svg
  lt2svg convert amplifier.asc out.svg --scale 2
  lt2svg convert filter.asc --lib ~/ltspice/lib/sym
  lt2svg info amplifier.asc                    # Show schematic summary`,
	Version: "0.9.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// logf prints progress to stderr when --verbose is set.
func logf(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
