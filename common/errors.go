package common

import "errors"

// Error kinds a caller can test for with errors.Is. The codec never
// returns a bare error outside of this taxonomy.
var (
	// ErrShortInput: decode was given fewer bytes than a fixed layout or
	// a declared length requires.
	ErrShortInput = errors.New("short input")

	// ErrLengthMismatch: a declared length field disagrees with the
	// bytes that actually follow it.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrUnknownTag: an enumeration reverse-lookup failed.
	ErrUnknownTag = errors.New("unknown tag")

	// ErrBadMessage: a frame's version byte is not the version the decoder
	// handles (or, for ofcodec.Decode, not a version any package handles).
	// No encode path returns it: each message type belongs to exactly one
	// version package, and encoding never checks a body against a version.
	ErrBadMessage = errors.New("bad message")

	// ErrInvariantViolation: a caller-provided field does not fit the wire
	// format (a flag whose bit lies beyond the bitmap width, an OXM field
	// body longer than 255 bytes, or a stats type with no request body).
	// Over-wide OXM values and masks are truncated, not rejected.
	ErrInvariantViolation = errors.New("invariant violation")
)
