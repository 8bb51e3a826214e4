// Package robot provides the command session and typed API for a myCobot
// arm controller attached over a serial link.
package robot

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/progressrobotics/mycobot-go/pkg/protocol"
	"github.com/progressrobotics/mycobot-go/pkg/transport"
)

const (
	// DefaultTimeout bounds the wait for a controller response.
	DefaultTimeout = 500 * time.Millisecond

	// pollInterval is the longest single blocking read; the loop re-checks
	// the deadline and context between reads.
	pollInterval = 50 * time.Millisecond
)

// Robot is a command session over a single port. One request is in flight
// at a time: the protocol carries no request IDs, so responses correlate to
// requests purely by ordering, and Robot serializes calls to keep that
// ordering sound. Sessions over distinct ports are fully independent.
type Robot struct {
	port    transport.Port
	timeout time.Duration
	logger  *zap.Logger

	// busy guards the request/response exchange. A buffered channel of one
	// rather than a mutex so Close and transact share the same gate.
	busy chan struct{}
}

// Option configures a Robot.
type Option func(*Robot)

// WithTimeout sets the response timeout.
func WithTimeout(d time.Duration) Option {
	return func(r *Robot) { r.timeout = d }
}

// WithLogger sets the logger; frames are logged at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(r *Robot) { r.logger = l }
}

// New creates a session over an already-open port. The session takes
// ownership: Close closes the port.
func New(port transport.Port, opts ...Option) *Robot {
	r := &Robot{
		port:    port,
		timeout: DefaultTimeout,
		logger:  zap.NewNop(),
		busy:    make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Close closes the underlying port.
func (r *Robot) Close() error {
	r.busy <- struct{}{}
	defer func() { <-r.busy }()
	return r.port.Close()
}

// transact performs one request/response exchange: validate the payload
// against the command table, write the request frame, then read until a
// whole response frame assembles or the timeout expires. For write-only
// commands it returns after the write.
func (r *Robot) transact(ctx context.Context, cmd protocol.Command, payload []byte) ([]byte, error) {
	spec, err := protocol.Lookup(cmd)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	if len(payload) != spec.Payload {
		return nil, fmt.Errorf("%w: %s takes %d payload bytes, got %d",
			ErrInvalidArguments, cmd, spec.Payload, len(payload))
	}

	r.busy <- struct{}{}
	defer func() { <-r.busy }()

	frame := &protocol.Frame{Cmd: cmd, Payload: payload}
	out := frame.Bytes()
	r.logger.Debug("tx", zap.Stringer("cmd", cmd), zap.String("frame", fmt.Sprintf("% X", out)))

	n, err := r.port.Write(out)
	if err != nil {
		return nil, fmt.Errorf("%w: write %s: %w", ErrTransport, cmd, err)
	}
	if n != len(out) {
		return nil, fmt.Errorf("%w: short write for %s: %d of %d bytes", ErrTransport, cmd, n, len(out))
	}

	if spec.Response == protocol.NoResponse {
		return nil, nil
	}

	resp, err := r.readResponse(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if len(resp.Payload) != spec.Response {
		return nil, fmt.Errorf("%w: %s reply carries %d payload bytes, want %d",
			ErrUnexpectedResponse, cmd, len(resp.Payload), spec.Response)
	}
	return resp.Payload, nil
}

// readResponse assembles one frame from the port. Bytes arrive in arbitrary
// fragments; the loop accumulates them and reparses after every read. Noise
// and corrupt prefixes are dropped to resynchronize on the next header. On
// timeout any partial bytes are discarded, which leaves a late reply as a
// resynchronization hazard for the caller's next exchange.
func (r *Robot) readResponse(ctx context.Context, cmd protocol.Command) (*protocol.Frame, error) {
	deadline := time.Now().Add(r.timeout)
	buf := make([]byte, 0, 32)
	chunk := make([]byte, 32)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrTimeout, cmd)
		}
		if remaining > pollInterval {
			remaining = pollInterval
		}
		if err := r.port.SetReadTimeout(remaining); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTransport, err)
		}

		n, err := r.port.Read(chunk)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s reply: %w", ErrTransport, cmd, err)
		}
		if n == 0 {
			continue
		}
		buf = append(buf, chunk[:n]...)

		frame, _, err := protocol.Parse(buf)
		switch {
		case err == nil:
			r.logger.Debug("rx", zap.Stringer("cmd", frame.Cmd), zap.String("payload", fmt.Sprintf("% X", frame.Payload)))
			if frame.Cmd != cmd {
				return nil, fmt.Errorf("%w: got %s, want %s", ErrUnexpectedResponse, frame.Cmd, cmd)
			}
			return frame, nil
		case err == protocol.ErrTruncated:
			// wait for more bytes
		case err == protocol.ErrBadHeader:
			// Parse guarantees no header can start in these bytes.
			buf = buf[:0]
		default:
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
	}
}

// ack runs an acknowledged command and reports a zero ack byte as failure.
func (r *Robot) ack(ctx context.Context, cmd protocol.Command, payload []byte) error {
	resp, err := r.transact(ctx, cmd, payload)
	if err != nil {
		return err
	}
	if !protocol.Bool(cmd, resp[0]) {
		return fmt.Errorf("%w: %s rejected (ack 0x%02X)", ErrCommandFailed, cmd, resp[0])
	}
	return nil
}
