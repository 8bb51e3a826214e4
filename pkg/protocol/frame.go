// Package protocol implements the myCobot serial wire format: frame
// marshalling and parsing, the command table, and the fixed-point value
// encodings used in command payloads.
package protocol

import (
	"bytes"
	"fmt"
)

// Frame delimiters, fixed by the controller firmware.
const (
	HeaderByte = 0xFE
	Footer     = 0xFA
)

var header = []byte{HeaderByte, HeaderByte}

// Frame is one delimited unit of wire data:
//
//	FE FE <len> <cmd> <payload...> FA
//
// The length byte counts the command byte, the payload and the footer, so a
// whole frame occupies len+3 bytes.
type Frame struct {
	Cmd     Command
	Payload []byte
}

// minFrameLen is the smallest well-formed frame: header + length + cmd + footer.
const minFrameLen = 5

// Bytes marshals the frame for the wire.
func (f *Frame) Bytes() []byte {
	buf := make([]byte, 0, len(f.Payload)+minFrameLen)
	buf = append(buf, header...)
	buf = append(buf, byte(2+len(f.Payload)))
	buf = append(buf, byte(f.Cmd))
	buf = append(buf, f.Payload...)
	buf = append(buf, Footer)
	return buf
}

func (f *Frame) String() string {
	return fmt.Sprintf("%s % X", f.Cmd, f.Payload)
}

// Parse extracts the first frame from buf. Leading bytes that cannot start a
// frame (line noise, remnants of an aborted exchange) are skipped, so consumed
// counts the skipped prefix plus the frame itself.
//
// ErrTruncated means buf may still grow into a full frame and the caller
// should read more bytes before retrying. ErrBadHeader means no header pair
// can appear in the buffered bytes at all. ErrBadLength and ErrBadFooter mark
// a corrupt frame starting at the reported consumed offset.
func Parse(buf []byte) (f *Frame, consumed int, err error) {
	start := bytes.Index(buf, header)
	if start < 0 {
		// A single trailing 0xFE may pair with the next byte to arrive.
		if len(buf) < len(header) || buf[len(buf)-1] == HeaderByte {
			return nil, 0, ErrTruncated
		}
		return nil, 0, ErrBadHeader
	}

	rest := buf[start:]
	if len(rest) < 3 {
		return nil, start, ErrTruncated
	}

	// Length counts cmd + payload + footer.
	length := int(rest[2])
	if length < 2 {
		return nil, start, ErrBadLength
	}
	total := length + 3
	if len(rest) < total {
		return nil, start, ErrTruncated
	}
	if rest[total-1] != Footer {
		return nil, start, ErrBadFooter
	}

	f = &Frame{
		Cmd:     Command(rest[3]),
		Payload: append([]byte(nil), rest[4:total-1]...),
	}
	return f, start + total, nil
}
