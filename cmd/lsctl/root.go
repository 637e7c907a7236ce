package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/lsartifact/internal/printer"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose      bool
	quiet        bool
	noColor      bool
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "lsctl",
	Short: "Inspect Larian-style PKG archives and TBT/HBT tree resources",
	Long: `lsctl is a tool for inspecting PKG archives and the TBT/HBT tree
resources packed inside them. It supports listing archive members, unpacking
them to disk, and rendering parsed trees as structure, yaml, json, or xml.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output-format", "structure",
		"Output format: structure, yaml, json, xml")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func selectedFormat() (printer.Format, error) {
	switch printer.Format(outputFormat) {
	case printer.FormatStructure, printer.FormatYAML, printer.FormatJSON, printer.FormatXML:
		return printer.Format(outputFormat), nil
	default:
		return "", fmt.Errorf("unknown --output-format %q", outputFormat)
	}
}

func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

func checkArgs(args []string, expected int, usage string) error {
	if len(args) != expected {
		return fmt.Errorf("expected %d argument(s), got %d\nUsage: %s", expected, len(args), usage)
	}
	return nil
}
