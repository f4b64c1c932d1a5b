package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/srixkit/tag"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the UID and memory layout of a tag image",
		Long: `The info command connects to a tag image and reports its UID and the
SRIX4K memory map.

Example:
  srixctl info -i tag.srix
  srixctl info -i tag.srix --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd)
		},
	}
	return cmd
}

type rangeInfo struct {
	Name  string `json:"name"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type imageInfo struct {
	Image      string      `json:"image"`
	UID        string      `json:"uid"`
	BlockCount int         `json:"block_count"` //nolint:tagliatelle
	Mapped     int         `json:"mapped"`
	Regions    []rangeInfo `json:"regions"`
}

func runInfo(cmd *cobra.Command) error {
	c, closeFn, err := openImage(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	info := imageInfo{
		Image:      cfg.Image,
		UID:        c.UID().String(),
		BlockCount: tag.SRIX4K.BlockCount,
		Mapped:     tag.SRIX4K.MappedCount(),
	}
	for _, nr := range []struct {
		name string
		r    tag.Range
	}{
		{"otp", tag.OTP},
		{"countdown", tag.Countdown},
		{"lockable", tag.Lockable},
		{"generic", tag.Generic},
		{"system", tag.SRIX4K.System},
	} {
		info.Regions = append(info.Regions, rangeInfo{Name: nr.name, Start: int(nr.r.Start), End: int(nr.r.End)})
	}

	if jsonOut {
		return printJSON(info)
	}

	printInfo("\nTag Information:\n")
	printInfo("  Image: %s\n", info.Image)
	printInfo("  UID: %s\n", info.UID)
	printInfo("  Blocks: %d mapped of %d addresses\n", info.Mapped, info.BlockCount)
	printInfo("\nRegions:\n")
	for _, r := range info.Regions {
		printInfo("  %-10s [0x%02X, 0x%02X)\n", r.Name, r.Start, r.End)
	}
	return nil
}
