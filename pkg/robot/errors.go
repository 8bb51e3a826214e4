package robot

import "errors"

// Session errors. Lower-level causes (transport errors, framing errors) are
// wrapped, never swallowed, so errors.Is sees both the session variant and
// the cause.
var (
	ErrInvalidArguments   = errors.New("invalid arguments")
	ErrTransport          = errors.New("transport error")
	ErrTimeout            = errors.New("timed out waiting for response")
	ErrDecode             = errors.New("malformed response")
	ErrUnexpectedResponse = errors.New("unexpected response")
	ErrCommandFailed      = errors.New("command failed")
)
