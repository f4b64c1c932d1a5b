package tag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/srixkit/internal/format"
)

// Addr is a block address.
type Addr int

func (a Addr) String() string {
	return fmt.Sprintf("0x%02X", int(a))
}

// Block is the 4-byte contents of one block, in the order the tag sends it.
type Block [format.BlockSize]byte

// BlockFromUint32 builds a block from its little-endian 32-bit value.
func BlockFromUint32(v uint32) Block {
	var b Block
	format.PutU32(b[:], 0, v)
	return b
}

// Uint32 returns the little-endian 32-bit value of the block.
func (b Block) Uint32() uint32 {
	return format.ReadU32(b[:], 0)
}

func (b Block) String() string {
	return fmt.Sprintf("0x%08X", b.Uint32())
}

// UID is the 8-byte tag identifier as returned by GET_UID.
type UID [format.UIDSize]byte

// Uint64 returns the little-endian 64-bit value of the UID.
func (u UID) Uint64() uint64 {
	return format.ReadU64(u[:], 0)
}

func (u UID) String() string {
	return fmt.Sprintf("%016X", u.Uint64())
}

// ParseUID parses the hex form printed by UID.String, with or without a 0x prefix.
func ParseUID(s string) (UID, error) {
	var u UID
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return u, fmt.Errorf("parse uid %q: %w", s, err)
	}
	format.PutU64(u[:], 0, v)
	return u, nil
}
