package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <addr>",
		Short: "Print one block",
		Long: `The get command prints a single block of the tag image.

Example:
  srixctl get -i tag.srix 0x10
  srixctl get -i tag.srix 255 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd, args)
		},
	}
	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
	addr, err := parseAddr(args[0])
	if err != nil {
		return err
	}
	c, closeFn, err := openImage(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	b, err := blockAt(c, addr)
	if err != nil {
		return err
	}
	line := newBlockLine(addr, b)
	if jsonOut {
		return printJSON(line)
	}
	printInfo("%s\n", line)
	return nil
}
