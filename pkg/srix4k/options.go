package srix4k

import "log/slog"

// Options controls connect and sync behavior. A nil *Options means defaults.
type Options struct {
	// Logger receives connect, block I/O and sync messages.
	// If nil, logging is discarded.
	Logger *slog.Logger

	// SkipUnchanged lets Sync mark a dirty block clean without writing it when
	// its value equals the value last read from or written to the tag.
	// Default false: every dirty block is written.
	SkipUnchanged bool
}

func (o *Options) logger() *slog.Logger {
	if o == nil {
		return nil
	}
	return o.Logger
}

func (o *Options) skipUnchanged() bool {
	return o != nil && o.SkipUnchanged
}
