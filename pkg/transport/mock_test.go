package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockChunkedReads(t *testing.T) {
	m := &Mock{ChunkSize: 2}
	m.QueueRead([]byte{1, 2, 3, 4, 5})

	buf := make([]byte, 16)
	n, err := m.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, buf[:n])

	n, err = m.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 4}, buf[:n])

	n, err = m.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{5}, buf[:n])

	// Drained queue reads as a timeout.
	n, err = m.Read(buf)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMockWriteCapture(t *testing.T) {
	m := &Mock{}
	_, err := m.Write([]byte{0xFE, 0xFE})
	require.NoError(t, err)
	_, err = m.Write([]byte{0x02, 0x10, 0xFA})
	require.NoError(t, err)

	assert.Equal(t, []byte{0xFE, 0xFE, 0x02, 0x10, 0xFA}, m.Writes())

	m.Reset()
	assert.Empty(t, m.Writes())
}
