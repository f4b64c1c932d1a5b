// Package tag describes the memory of an SRIX4K contactless tag and owns all
// I/O against it.
//
// # Memory Layout
//
// An SRIX4K exposes 4-byte blocks addressed by a single byte:
//
//	0x00-0x04  Resettable OTP bits
//	0x05-0x06  Count down counter
//	0x07-0x0F  Lockable EEPROM
//	0x10-0x7F  Generic EEPROM
//	0x80-0xFE  reserved (no storage)
//	0xFF       System OTP bits
//
// SRIX4K is the Layout for this part. Addresses outside EEPROM and System are
// rejected with ErrOutOfRange before any transport call is made.
//
// # Transport and Session
//
// Transport is the reader collaborator: it selects a tag and moves single
// blocks. Session wraps one Transport, keeps the UID read at connect time,
// validates every address and wraps failures in *TransportError so callers
// know which operation and block failed.
//
//	s, err := tag.Connect(ctx, transport, tag.SRIX4K, nil)
//	if err != nil {
//	    return err
//	}
//	b, err := s.ReadBlock(ctx, 0x10)
//
// # Thread Safety
//
// Session is not thread-safe. Callers must serialize access externally.
//
// # Related Packages
//
//   - github.com/joshuapare/srixkit/tag/cache: dirty-tracked mirror of tag memory
//   - github.com/joshuapare/srixkit/pkg/srix4k: cached tag access with Sync
package tag
