package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/srixkit/tag"
	"github.com/joshuapare/srixkit/transport/dumpfile"
)

var (
	createUID   string
	createFill  string
	createForce bool
)

func init() {
	cmd := newCreateCmd()
	cmd.Flags().StringVar(&createUID, "uid", "", "Tag UID as 16 hex digits (required)")
	cmd.Flags().StringVar(&createFill, "fill", "0xFFFFFFFF", "Initial value of every block")
	cmd.Flags().BoolVar(&createForce, "force", false, "Overwrite an existing image")
	_ = cmd.MarkFlagRequired("uid")
	rootCmd.AddCommand(cmd)
}

func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a blank tag image",
		Long: `The create command writes a new tag image with the given UID and every
block set to the fill value (erased EEPROM by default).

Example:
  srixctl create -i tag.srix --uid D0021A0011223344
  srixctl create -i tag.srix --uid D0021A0011223344 --fill 0 --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate()
		},
	}
	return cmd
}

func runCreate() error {
	if cfg.Image == "" {
		return errNoImage
	}
	uid, err := tag.ParseUID(createUID)
	if err != nil {
		return err
	}
	fill, err := parseBlock(createFill)
	if err != nil {
		return err
	}
	if _, err := os.Stat(cfg.Image); err == nil && !createForce {
		return fmt.Errorf("image %q already exists (use --force to overwrite)", cfg.Image)
	}

	if err := dumpfile.Create(cfg.Image, uid, fill); err != nil {
		return err
	}
	log.Info("image created", "path", cfg.Image, "uid", uid.String())
	printInfo("Created %s (uid %s)\n", cfg.Image, uid)
	return nil
}
