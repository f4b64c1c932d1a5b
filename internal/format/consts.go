// Package format houses the low-level constants and command codec for the
// SRIX4K tag. It knows nothing about caching; higher-level packages build on
// it to talk to a reader and to lay out tag images on disk.
package format

const (
	// BlockSize is the size of one tag block in bytes.
	BlockSize = 4

	// UIDSize is the size of the tag UID in bytes.
	UIDSize = 8

	// AddressSpace is the number of block addresses reachable by the one-byte
	// address field of READ_BLOCK / WRITE_BLOCK.
	AddressSpace = 256

	// EEPROMBlocks is the number of EEPROM blocks (addresses 0x00-0x7F).
	EEPROMBlocks = 128

	// SystemAddr is the address of the System OTP bits block.
	SystemAddr = 0xFF
)

// EEPROM sub-region boundaries, in block addresses.
const (
	OTPStart       = 0x00 // Resettable OTP bits
	CountdownStart = 0x05 // Count down counter
	LockableStart  = 0x07 // Lockable EEPROM
	GenericStart   = 0x10 // Generic EEPROM, up to EEPROMBlocks
)

// Command opcodes understood by an SRIX4K in the selected state.
const (
	CmdReadBlock  byte = 0x08
	CmdWriteBlock byte = 0x09
	CmdGetUID     byte = 0x0B
)

// Image file layout used by the dumpfile transport.
//
//	0x00  'S' 'R' 'I' 'X' '4' 'K'
//	0x06  version
//	0x07  reserved (0)
//	0x08  UID, 8 bytes as returned by GET_UID
//	0x10  block data, BlockSize bytes per address, AddressSpace addresses
const (
	ImageVersion      byte = 0x01
	ImageHeaderSize        = 0x10
	ImageVersionOffset     = 0x06
	ImageUIDOffset         = 0x08
	ImageSize              = ImageHeaderSize + AddressSpace*BlockSize
)

// ImageSignature is the magic at the start of every image file.
var ImageSignature = []byte{'S', 'R', 'I', 'X', '4', 'K'}
