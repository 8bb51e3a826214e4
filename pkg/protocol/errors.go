package protocol

import "errors"

// Framing errors reported by Parse. ErrTruncated means the buffer does not
// yet hold a complete frame and the caller should read more bytes; the
// others mark the buffered bytes as corrupt.
var (
	ErrBadHeader = errors.New("frame header not found")
	ErrBadFooter = errors.New("bad frame footer")
	ErrBadLength = errors.New("bad frame length")
	ErrTruncated = errors.New("truncated frame")
)

// Value errors reported by the transcoders and the command table.
var (
	ErrOutOfRange     = errors.New("value out of range")
	ErrUnknownCommand = errors.New("unknown command")
)
