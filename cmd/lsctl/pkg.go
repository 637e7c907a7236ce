package main

import (
	"fmt"

	"github.com/joshuapare/lsartifact/pkg/vfs"
	"github.com/spf13/cobra"
)

func init() {
	pkgCmd := &cobra.Command{
		Use:   "pkg",
		Short: "Inspect PKG archives",
	}
	pkgCmd.AddCommand(newPkgListCmd())
	pkgCmd.AddCommand(newPkgUnpackCmd())
	rootCmd.AddCommand(pkgCmd)
}

func newPkgListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <archive.pkg>",
		Short: "List every member path in a PKG archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPkgList(args)
		},
	}
}

func runPkgList(args []string) error {
	if err := checkArgs(args, 1, "pkg list <archive.pkg>"); err != nil {
		return err
	}
	h, err := vfs.Open(args[0])
	if err != nil {
		return fmt.Errorf("open %q: %w", args[0], err)
	}
	defer h.Close()

	for _, path := range h.Files() {
		printInfo("%s\n", path)
	}
	return nil
}

func newPkgUnpackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpack <archive.pkg> <target-dir>",
		Short: "Unpack every member of a PKG archive to a directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPkgUnpack(args)
		},
	}
}

func runPkgUnpack(args []string) error {
	if err := checkArgs(args, 2, "pkg unpack <archive.pkg> <target-dir>"); err != nil {
		return err
	}
	h, err := vfs.Open(args[0])
	if err != nil {
		return fmt.Errorf("open %q: %w", args[0], err)
	}
	defer h.Close()

	printVerbose("Unpacking %d member(s) to %s\n", len(h.Files()), args[1])
	if err := h.Unpack(args[1]); err != nil {
		return fmt.Errorf("unpack %q: %w", args[0], err)
	}
	printInfo("Unpacked %s to %s\n", args[0], args[1])
	return nil
}
