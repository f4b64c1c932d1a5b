package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/srixkit/tag"
)

// regionFlag is the --region value: which ranges of the tag to dump.
type regionFlag string

var _ pflag.Value = (*regionFlag)(nil)

func (f *regionFlag) String() string { return string(*f) }

func (f *regionFlag) Set(s string) error {
	if _, err := dumpRange(s); err != nil {
		return err
	}
	*f = regionFlag(s)
	return nil
}

func (f *regionFlag) Type() string { return "region" }

var dumpRegion = regionFlag("all")

func init() {
	cmd := newDumpCmd()
	cmd.Flags().VarP(&dumpRegion, "region", "r", "Blocks to dump: eeprom, system or all")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Dump the blocks of a tag image",
		Long: `The dump command prints one line per block: address, region, raw bytes,
the little-endian 32-bit value and the bytes rendered as CP437 glyphs.

Example:
  srixctl dump -i tag.srix
  srixctl dump -i tag.srix --region system
  srixctl dump -i tag.srix --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd)
		},
	}
	return cmd
}

type blockLine struct {
	Addr   string `json:"addr"`
	Region string `json:"region"`
	Hex    string `json:"hex"`
	Value  uint32 `json:"value"`
	Text   string `json:"text"`
}

func newBlockLine(addr tag.Addr, b tag.Block) blockLine {
	return blockLine{
		Addr:   addr.String(),
		Region: region(addr),
		Hex:    fmt.Sprintf("% X", b[:]),
		Value:  b.Uint32(),
		Text:   glyphs(b),
	}
}

func (l blockLine) String() string {
	return fmt.Sprintf("%s  %-9s  %s  0x%08X  |%s|", l.Addr, l.Region, l.Hex, l.Value, l.Text)
}

// glyphs decodes the block as code page 437, replacing control characters.
func glyphs(b tag.Block) string {
	var sb strings.Builder
	for _, c := range b {
		r := charmap.CodePage437.DecodeByte(c)
		if !unicode.IsPrint(r) {
			r = '.'
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func dumpRange(name string) ([]tag.Range, error) {
	switch name {
	case "all", "":
		return []tag.Range{tag.SRIX4K.EEPROM, tag.SRIX4K.System}, nil
	case "eeprom":
		return []tag.Range{tag.SRIX4K.EEPROM}, nil
	case "system":
		return []tag.Range{tag.SRIX4K.System}, nil
	default:
		return nil, fmt.Errorf("unknown region %q (want eeprom, system or all)", name)
	}
}

func runDump(cmd *cobra.Command) error {
	ranges, err := dumpRange(string(dumpRegion))
	if err != nil {
		return err
	}
	c, closeFn, err := openImage(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	var lines []blockLine
	for _, r := range ranges {
		for a := range r.All() {
			b, err := blockAt(c, a)
			if err != nil {
				return err
			}
			lines = append(lines, newBlockLine(a, b))
		}
	}

	if jsonOut {
		return printJSON(lines)
	}
	printVerbose("UID %s\n", c.UID())
	for _, l := range lines {
		printInfo("%s\n", l)
	}
	return nil
}
