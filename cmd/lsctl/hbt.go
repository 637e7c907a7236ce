package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/lsartifact/internal/printer"
	"github.com/joshuapare/lsartifact/pkg/resource"
	"github.com/spf13/cobra"
)

func init() {
	hbtCmd := &cobra.Command{
		Use:   "hbt",
		Short: "Inspect HBT (LSOF) tree resources",
	}
	hbtCmd.AddCommand(newHBTListCmd())
	hbtCmd.AddCommand(newHBTShowCmd())
	rootCmd.AddCommand(hbtCmd)
}

func newHBTListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <file.hbt>",
		Short: "List root node names in an HBT resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHBTList(args)
		},
	}
}

func runHBTList(args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open %q: %w", args[0], err)
	}
	defer f.Close()

	res, err := resource.OpenHBT(f, resource.DefaultOptions())
	if err != nil {
		return fmt.Errorf("parse %q: %w", args[0], err)
	}
	for _, root := range res.Doc.RootIndexes() {
		printInfo("%s\n", res.FullPath(root))
	}
	return nil
}

func newHBTShowCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "show <file.hbt>",
		Short: "Render an HBT subtree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHBTShow(args, path)
		},
	}
	cmd.Flags().StringVar(&path, "path", "/", "Node path to render")
	return cmd
}

func runHBTShow(args []string, path string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open %q: %w", args[0], err)
	}
	defer f.Close()

	res, err := resource.OpenHBT(f, resource.DefaultOptions())
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
