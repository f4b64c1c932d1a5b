package tag

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOutOfRange indicates an address outside the valid, mapped address space
	// or outside the region an accessor is bound to. It never wraps a transport
	// failure and is always reported before any I/O.
	ErrOutOfRange = errors.New("tag: address out of range")

	// ErrOutsideRegion is matched in addition to ErrOutOfRange when an address
	// is rejected by a region-bound accessor (EEPROM or System).
	ErrOutsideRegion = errors.New("tag: address outside region")
)

// RangeError reports a rejected address.
type RangeError struct {
	Addr   Addr
	Region Region // empty for whole-address-space checks
	Bounds Range
}

func (e *RangeError) Error() string {
	if e.Region != "" {
		return fmt.Sprintf("tag: address %s outside %s range %s", e.Addr, e.Region, e.Bounds)
	}
	return fmt.Sprintf("tag: address %s out of range %s or reserved", e.Addr, e.Bounds)
}

// Is matches ErrOutOfRange, and ErrOutsideRegion for region checks.
func (e *RangeError) Is(target error) bool {
	switch target {
	case ErrOutOfRange:
		return true
	case ErrOutsideRegion:
		return e.Region != ""
	default:
		return false
	}
}

// Op is the transport operation that failed.
type Op int

const (
	OpSelect Op = iota
	OpRead
	OpWrite
)

func (o Op) String() string {
	switch o {
	case OpSelect:
		return "select"
	case OpRead:
		return "read"
	case OpWrite:
		return "write"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// TransportError is one failed transport call. Addr is meaningless for OpSelect.
type TransportError struct {
	Op   Op
	Addr Addr
	Err  error
}

func (e *TransportError) Error() string {
	if e.Op == OpSelect {
		return "tag: select: " + e.Err.Error()
	}
	return fmt.Sprintf("tag: %s block %s: %v", e.Op, e.Addr, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ConnectError reports a failed connect. Stage is "select" or "populate".
type ConnectError struct {
	Stage string
	Err   error
}

const (
	StageSelect   = "select"
	StagePopulate = "populate"
)

func (e *ConnectError) Error() string {
	return "tag: connect (" + e.Stage + "): " + e.Err.Error()
}

func (e *ConnectError) Unwrap() error { return e.Err }

// SyncError reports an aborted write-back. Written holds the addresses that
// were flushed before the failure; Remaining holds every address still dirty
// after the abort, including the one that failed.
type SyncError struct {
	Err       *TransportError
	Written   []Addr
	Remaining []Addr
}

func (e *SyncError) Error() string {
	var cause error = errors.New("unknown failure")
	if e.Err != nil {
		cause = e.Err
	}
	parts := make([]string, len(e.Remaining))
	for i, a := range e.Remaining {
		parts[i] = a.String()
	}
	return fmt.Sprintf("tag: sync aborted after %d writes (still dirty: %s): %v",
		len(e.Written), strings.Join(parts, ","), cause)
}

func (e *SyncError) Unwrap() error {
	if e.Err == nil {
		return nil
	}
	return e.Err
}

// Addr returns the address whose write failed. Without a transport error it
// falls back to the first remaining address, or -1 when there is none.
func (e *SyncError) Addr() Addr {
	switch {
	case e.Err != nil:
		return e.Err.Addr
	case len(e.Remaining) > 0:
		return e.Remaining[0]
	default:
		return -1
	}
}
