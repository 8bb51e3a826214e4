package robot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/progressrobotics/mycobot-go/pkg/protocol"
	"github.com/progressrobotics/mycobot-go/pkg/transport"
)

func testRobot(t *testing.T) (*Robot, *transport.Mock) {
	t.Helper()
	mock := &transport.Mock{}
	r := New(mock, WithTimeout(50*time.Millisecond))
	t.Cleanup(func() { r.Close() })
	return r, mock
}

func reply(cmd protocol.Command, payload ...byte) []byte {
	return (&protocol.Frame{Cmd: cmd, Payload: payload}).Bytes()
}

func TestPowerOnExchange(t *testing.T) {
	r, mock := testRobot(t)
	mock.QueueRead(reply(protocol.CmdPowerOn, 0x01))

	require.NoError(t, r.PowerOn(context.Background()))
	assert.Equal(t, []byte{0xFE, 0xFE, 0x02, 0x10, 0xFA}, mock.Writes())
}

func TestSetColorExchange(t *testing.T) {
	r, mock := testRobot(t)
	mock.QueueRead(reply(protocol.CmdSetLedRGB, 0x01))

	require.NoError(t, r.SetColor(context.Background(), 255, 0, 0))
	assert.Equal(t, []byte{0xFE, 0xFE, 0x05, 0x6A, 0xFF, 0x00, 0x00, 0xFA}, mock.Writes())
}

func TestGetAnglesZero(t *testing.T) {
	r, mock := testRobot(t)
	mock.QueueRead(reply(protocol.CmdGetAngles, make([]byte, 12)...))

	angles, err := r.GetAngles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, [protocol.Joints]float64{}, angles)
	assert.Equal(t, []byte{0xFE, 0xFE, 0x02, 0x20, 0xFA}, mock.Writes())
}

func TestGetAnglesValues(t *testing.T) {
	r, mock := testRobot(t)
	payload, err := protocol.AppendAngles(nil, [protocol.Joints]float64{-90, 45, 0, 10.5, -0.01, 179.99})
	require.NoError(t, err)
	mock.QueueRead(reply(protocol.CmdGetAngles, payload...))

	angles, err := r.GetAngles(context.Background())
	require.NoError(t, err)
	want := [protocol.Joints]float64{-90, 45, 0, 10.5, -0.01, 179.99}
	for i := range want {
		assert.InDelta(t, want[i], angles[i], 0.01, "joint %d", i+1)
	}
}

func TestTimeout(t *testing.T) {
	r, mock := testRobot(t)
	// Nothing queued: every read delivers 0 bytes until the deadline.

	_, err := r.GetAngles(context.Background())
	assert.ErrorIs(t, err, ErrTimeout)
	// The request still went out.
	assert.Equal(t, []byte{0xFE, 0xFE, 0x02, 0x20, 0xFA}, mock.Writes())
}

func TestFragmentedReply(t *testing.T) {
	r, mock := testRobot(t)
	mock.ChunkSize = 1
	mock.QueueRead(reply(protocol.CmdGetCoords, make([]byte, 12)...))

	coords, err := r.GetCoords(context.Background())
	require.NoError(t, err)
	assert.Equal(t, [protocol.Joints]float64{}, coords)
}

func TestNoisyLineBeforeReply(t *testing.T) {
	r, mock := testRobot(t)
	mock.QueueRead([]byte{0x00, 0x42, 0x13})
	mock.QueueRead(reply(protocol.CmdIsPoweredOn, 0x01))

	on, err := r.IsPoweredOn(context.Background())
	require.NoError(t, err)
	assert.True(t, on)
}

func TestCorruptFooterReply(t *testing.T) {
	r, mock := testRobot(t)
	raw := reply(protocol.CmdPowerOn, 0x01)
	raw[len(raw)-1] ^= 0xFF
	mock.QueueRead(raw)

	err := r.PowerOn(context.Background())
	assert.ErrorIs(t, err, ErrDecode)
	assert.ErrorIs(t, err, protocol.ErrBadFooter)
}

func TestUnexpectedOpcodeReply(t *testing.T) {
	r, mock := testRobot(t)
	mock.QueueRead(reply(protocol.CmdGetCoords, make([]byte, 12)...))

	_, err := r.GetAngles(context.Background())
	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestShortPayloadReply(t *testing.T) {
	r, mock := testRobot(t)
	mock.QueueRead(reply(protocol.CmdGetAngles, make([]byte, 6)...))

	_, err := r.GetAngles(context.Background())
	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestFailedAck(t *testing.T) {
	r, mock := testRobot(t)
	mock.QueueRead(reply(protocol.CmdPowerOn, 0x00))

	err := r.PowerOn(context.Background())
	assert.ErrorIs(t, err, ErrCommandFailed)
}

func TestInvalidArgumentsBeforeIO(t *testing.T) {
	r, mock := testRobot(t)

	err := r.WriteAngles(context.Background(), [protocol.Joints]float64{}, 101)
	assert.ErrorIs(t, err, ErrInvalidArguments)

	err = r.WriteAngle(context.Background(), 7, 0, 50)
	assert.ErrorIs(t, err, ErrInvalidArguments)

	err = r.WriteAngle(context.Background(), 1, 500, 50)
	assert.ErrorIs(t, err, ErrInvalidArguments)

	assert.Empty(t, mock.Writes(), "no bytes may reach the wire on bad arguments")
}

func TestWriteOnlyCommand(t *testing.T) {
	r, mock := testRobot(t)

	// No reply queued; the command must not wait for one.
	require.NoError(t, r.ReleaseAllServos(context.Background()))
	assert.Equal(t, []byte{0xFE, 0xFE, 0x02, 0x13, 0xFA}, mock.Writes())
}

func TestWriteCoordsFrame(t *testing.T) {
	r, mock := testRobot(t)
	mock.QueueRead(reply(protocol.CmdWriteCoords, 0x01))

	coords := [protocol.Joints]float64{10, 20, 30, 0, 0, 0}
	require.NoError(t, r.WriteCoords(context.Background(), coords, 50))

	written := mock.Writes()
	require.Len(t, written, 19)
	assert.Equal(t, byte(0xFE), written[0])
	assert.Equal(t, byte(0xFE), written[1])
	assert.Equal(t, byte(0x10), written[2]) // cmd + 14 payload bytes + footer
	assert.Equal(t, byte(protocol.CmdWriteCoords), written[3])
	assert.Equal(t, byte(50), written[16]) // speed
	assert.Equal(t, byte(2), written[17])  // motion mode
	assert.Equal(t, byte(0xFA), written[18])
}

func TestWriteAnglesFrame(t *testing.T) {
	r, mock := testRobot(t)
	mock.QueueRead(reply(protocol.CmdWriteAngles, 0x01))

	require.NoError(t, r.WriteAngles(context.Background(), [protocol.Joints]float64{}, 30))

	written := mock.Writes()
	require.Len(t, written, 18)
	assert.Equal(t, byte(0x0F), written[2]) // cmd + 13 payload bytes + footer
	assert.Equal(t, byte(protocol.CmdWriteAngles), written[3])
	assert.Equal(t, byte(30), written[16]) // speed
}

func TestGetBasicIn(t *testing.T) {
	r, mock := testRobot(t)
	mock.QueueRead(reply(protocol.CmdGetBasicIn, 0x05, 0x01))

	v, err := r.GetBasicIn(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, []byte{0xFE, 0xFE, 0x03, 0xA1, 0x05, 0xFA}, mock.Writes())
}

func TestGetBasicInWrongPinEcho(t *testing.T) {
	r, mock := testRobot(t)
	mock.QueueRead(reply(protocol.CmdGetBasicIn, 0x06, 0x01))

	_, err := r.GetBasicIn(context.Background(), 5)
	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestTransportWriteError(t *testing.T) {
	r, mock := testRobot(t)
	mock.WriteErr = errors.New("device unplugged")

	err := r.PowerOn(context.Background())
	assert.ErrorIs(t, err, ErrTransport)
}

func TestTransportReadError(t *testing.T) {
	r, mock := testRobot(t)
	mock.ReadErr = errors.New("device unplugged")

	_, err := r.GetAngles(context.Background())
	assert.ErrorIs(t, err, ErrTransport)
}

func TestContextCancellation(t *testing.T) {
	r, _ := testRobot(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.GetAngles(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIndependentSessions(t *testing.T) {
	r1, mock1 := testRobot(t)
	r2, mock2 := testRobot(t)
	mock1.QueueRead(reply(protocol.CmdIsPoweredOn, 0x01))
	mock2.QueueRead(reply(protocol.CmdIsPoweredOn, 0x00))

	on1, err := r1.IsPoweredOn(context.Background())
	require.NoError(t, err)
	on2, err := r2.IsPoweredOn(context.Background())
	require.NoError(t, err)
	assert.True(t, on1)
	assert.False(t, on2)
}

func TestVersion(t *testing.T) {
	r, mock := testRobot(t)
	mock.QueueRead(reply(protocol.CmdVersion, 0x02))

	ver, err := r.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, ver)
}

func TestIsInPositionFrame(t *testing.T) {
	r, mock := testRobot(t)
	mock.QueueRead(reply(protocol.CmdIsInPosition, 0x01))

	ok, err := r.IsInPosition(context.Background(), [protocol.Joints]float64{}, false)
	require.NoError(t, err)
	assert.True(t, ok)

	written := mock.Writes()
	require.Len(t, written, 18)
	assert.Equal(t, byte(protocol.CmdIsInPosition), written[3])
	assert.Equal(t, byte(0), written[16]) // angle-frame flag
}
