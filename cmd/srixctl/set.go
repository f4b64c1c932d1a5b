package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/srixkit/pkg/srix4k"
	"github.com/joshuapare/srixkit/tag"
)

func init() {
	rootCmd.AddCommand(newSetCmd())
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <addr> <value> [<addr> <value>...]",
		Short: "Write blocks and sync them to the image",
		Long: `The set command changes one or more blocks in the cache and then syncs,
writing only the blocks that were modified.

Example:
  srixctl set -i tag.srix 0x10 0xDEADBEEF
  srixctl set -i tag.srix 0x10 1 0x11 2
  srixctl set -i tag.srix 255 0xFFFFFFFE`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || len(args)%2 != 0 {
				return fmt.Errorf("expected <addr> <value> pairs, got %d argument(s)", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(cmd, args)
		},
	}
	return cmd
}

func runSet(cmd *cobra.Command, args []string) (err error) {
	type edit struct {
		addr tag.Addr
		val  tag.Block
	}
	var edits []edit
	for i := 0; i < len(args); i += 2 {
		addr, err := parseAddr(args[i])
		if err != nil {
			return err
		}
		val, err := parseBlock(args[i+1])
		if err != nil {
			return err
		}
		edits = append(edits, edit{addr, val})
	}

	c, closeFn, err := openImage(cmd.Context())
	if err != nil {
		return err
	}
	closed := false
	defer func() {
		if !closed {
			err = errors.Join(err, closeFn())
		}
	}()

	for _, e := range edits {
		if err := setBlock(c, e.addr, e.val); err != nil {
			return err
		}
	}
	dirty := c.Dirty()
	if err := c.Sync(cmd.Context()); err != nil {
		return fmt.Errorf("failed to sync: %w", err)
	}

	// The image only reaches the disk on close
	closed = true
	if err := closeFn(); err != nil {
		return fmt.Errorf("failed to flush image: %w", err)
	}
	printInfo("Wrote %d block(s)\n", len(dirty))
	return nil
}

func setBlock(c *srix4k.Cached, addr tag.Addr, val tag.Block) error {
	if tag.SRIX4K.System.Contains(addr) {
		return c.SystemSet(val)
	}
	return c.EEPROMSet(addr, val)
}
