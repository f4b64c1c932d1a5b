package tag

import "context"

// Transport is the reader/writer collaborator. Implementations own anticollision,
// framing, checksums and retries; a timeout is reported as an ordinary error.
//
// Addresses handed to a Transport have already been validated against the layout.
type Transport interface {
	// Select selects the tag in the field and returns its UID.
	Select(ctx context.Context) (UID, error)
	// ReadBlock reads one block.
	ReadBlock(ctx context.Context, addr Addr) (Block, error)
	// WriteBlock writes one block.
	WriteBlock(ctx context.Context, addr Addr, data Block) error
}
