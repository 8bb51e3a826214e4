package transport

import (
	"sync"
	"time"
)

// Mock is a scripted Port for tests. Reads drain a queued buffer in chunks
// of at most ChunkSize bytes (to exercise fragmented delivery); once the
// queue is empty, Read returns 0 bytes, which a Port defines as a read
// timeout. Writes are captured for inspection.
type Mock struct {
	mu        sync.Mutex
	readBuf   []byte
	written   []byte
	closed    bool
	ChunkSize int   // max bytes per Read; 0 means unlimited
	ReadErr   error // returned by every Read when set
	WriteErr  error // returned by every Write when set
}

// QueueRead appends bytes for subsequent reads to deliver.
func (m *Mock) QueueRead(p []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readBuf = append(m.readBuf, p...)
}

// Writes returns everything written so far.
func (m *Mock) Writes() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.written...)
}

// Reset clears the read queue and the write capture.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readBuf = nil
	m.written = nil
}

func (m *Mock) Read(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return 0, m.ReadErr
	}
	if len(m.readBuf) == 0 {
		return 0, nil // timeout with nothing to deliver
	}
	n := len(p)
	if n > len(m.readBuf) {
		n = len(m.readBuf)
	}
	if m.ChunkSize > 0 && n > m.ChunkSize {
		n = m.ChunkSize
	}
	copy(p, m.readBuf[:n])
	m.readBuf = m.readBuf[n:]
	return n, nil
}

func (m *Mock) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return 0, m.WriteErr
	}
	m.written = append(m.written, p...)
	return len(p), nil
}

func (m *Mock) SetReadTimeout(time.Duration) error { return nil }

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
