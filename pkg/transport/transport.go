// Package transport provides the byte channel the driver talks through:
// a small Port interface, a serial implementation for real hardware, and a
// scripted mock for tests.
package transport

import "time"

// Port is a duplex byte channel to the controller. The driver only reads
// and writes; opening and configuring the device belongs to whoever
// constructs the Port. Read returns 0 bytes without error when the read
// timeout elapses with nothing to deliver.
type Port interface {
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
	SetReadTimeout(t time.Duration) error
	Close() error
}
