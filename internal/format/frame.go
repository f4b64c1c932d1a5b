package format

import "fmt"

// EncodeReadBlock builds a READ_BLOCK frame: opcode, address.
func EncodeReadBlock(addr int) ([]byte, error) {
	a, err := addrByte(addr)
	if err != nil {
		return nil, err
	}
	return []byte{CmdReadBlock, a}, nil
}

// EncodeWriteBlock builds a WRITE_BLOCK frame: opcode, address, 4 data bytes.
func EncodeWriteBlock(addr int, data [BlockSize]byte) ([]byte, error) {
	a, err := addrByte(addr)
	if err != nil {
		return nil, err
	}
	frame := make([]byte, 0, 2+BlockSize)
	frame = append(frame, CmdWriteBlock, a)
	frame = append(frame, data[:]...)
	return frame, nil
}

// EncodeGetUID builds a GET_UID frame.
func EncodeGetUID() []byte {
	return []byte{CmdGetUID}
}

// DecodeBlock validates a READ_BLOCK response.
func DecodeBlock(resp []byte) ([BlockSize]byte, error) {
	var out [BlockSize]byte
	if len(resp) != BlockSize {
		return out, fmt.Errorf("block response %d bytes, want %d: %w", len(resp), BlockSize, ErrTruncated)
	}
	copy(out[:], resp)
	return out, nil
}

// DecodeUID validates a GET_UID response.
func DecodeUID(resp []byte) ([UIDSize]byte, error) {
	var out [UIDSize]byte
	if len(resp) != UIDSize {
		return out, fmt.Errorf("uid response %d bytes, want %d: %w", len(resp), UIDSize, ErrTruncated)
	}
	copy(out[:], resp)
	return out, nil
}

func addrByte(addr int) (byte, error) {
	if addr < 0 || addr >= AddressSpace {
		return 0, fmt.Errorf("address %d: %w", addr, ErrAddress)
	}
	return byte(addr), nil
}
