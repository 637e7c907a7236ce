package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/lsartifact/internal/printer"
	"github.com/joshuapare/lsartifact/pkg/resource"
	"github.com/spf13/cobra"
)

func init() {
	tbtCmd := &cobra.Command{
		Use:   "tbt",
		Short: "Inspect TBT (LSFM/LSFW) tree resources",
	}
	tbtCmd.AddCommand(newTBTListCmd())
	tbtCmd.AddCommand(newTBTShowCmd())
	rootCmd.AddCommand(tbtCmd)
}

func newTBTListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <file.tbt>",
		Short: "List region root names in a TBT resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTBTList(args)
		},
	}
}

func runTBTList(args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open %q: %w", args[0], err)
	}
	defer f.Close()

	res, err := resource.OpenTBT(f, resource.DefaultOptions())
	if err != nil {
		return fmt.Errorf("parse %q: %w", args[0], err)
	}
	for _, root := range res.Doc.RootIndexes() {
		printInfo("%s\n", res.FullPath(root))
	}
	return nil
}

func newTBTShowCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "show <file.tbt>",
		Short: "Render a TBT subtree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTBTShow(args, path)
		},
	}
	cmd.Flags().StringVar(&path, "path", "/", "Node path to render")
	return cmd
}

func runTBTShow(args []string, path string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open %q: %w", args[0], err)
	}
	defer f.Close()

	res, err := resource.OpenTBT(f, resource.DefaultOptions())
	if err != nil {
		return fmt.Errorf("parse %q: %w", args[0], err)
	}
	if len(res.Doc.RootIndexes()) == 0 {
		return fmt.Errorf("%q has no root nodes", args[0])
	}

	format, err := selectedFormat()
	if err != nil {
		return err
	}
	opts := printer.DefaultOptions()
	opts.Format = format
	p := printer.New(res.Doc, os.Stdout, opts)
	return p.PrintTree(res.Doc.RootIndexes()[0], path)
}
