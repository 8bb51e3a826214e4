package robot

import (
	"context"
	"fmt"

	"github.com/progressrobotics/mycobot-go/pkg/protocol"
)

// moveModeLinear is the motion mode byte appended to WriteCoords; the
// controller also accepts 1 (angular) but the stock firmware tooling always
// sends 2.
const moveModeLinear = 2

// Version reads the controller firmware version byte.
func (r *Robot) Version(ctx context.Context) (int, error) {
	resp, err := r.transact(ctx, protocol.CmdVersion, nil)
	if err != nil {
		return 0, err
	}
	return int(resp[0]), nil
}

// PowerOn powers the servos on.
func (r *Robot) PowerOn(ctx context.Context) error {
	return r.ack(ctx, protocol.CmdPowerOn, nil)
}

// PowerOff powers the servos off.
func (r *Robot) PowerOff(ctx context.Context) error {
	return r.ack(ctx, protocol.CmdPowerOff, nil)
}

// IsPoweredOn reports whether the servos are powered.
func (r *Robot) IsPoweredOn(ctx context.Context) (bool, error) {
	resp, err := r.transact(ctx, protocol.CmdIsPoweredOn, nil)
	if err != nil {
		return false, err
	}
	return protocol.Bool(protocol.CmdIsPoweredOn, resp[0]), nil
}

// ReleaseAllServos lets all joints move freely. The controller sends no
// reply for this command.
func (r *Robot) ReleaseAllServos(ctx context.Context) error {
	_, err := r.transact(ctx, protocol.CmdReleaseAllServos, nil)
	return err
}

// IsControllerConnected reports whether the Atom board answers.
func (r *Robot) IsControllerConnected(ctx context.Context) (bool, error) {
	resp, err := r.transact(ctx, protocol.CmdIsControllerConnected, nil)
	if err != nil {
		return false, err
	}
	return protocol.Bool(protocol.CmdIsControllerConnected, resp[0]), nil
}

// GetAngles reads all joint angles in degrees.
func (r *Robot) GetAngles(ctx context.Context) ([protocol.Joints]float64, error) {
	var angles [protocol.Joints]float64
	resp, err := r.transact(ctx, protocol.CmdGetAngles, nil)
	if err != nil {
		return angles, err
	}
	return protocol.Angles(resp), nil
}

// WriteAngle moves a single joint (1..6) to an angle in degrees.
func (r *Robot) WriteAngle(ctx context.Context, joint int, deg float64, speed int) error {
	if err := protocol.CheckJoint(joint); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	if err := protocol.CheckSpeed(speed); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	payload := []byte{byte(joint)}
	payload, err := protocol.AppendAngle(payload, deg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	payload = append(payload, byte(speed))
	return r.ack(ctx, protocol.CmdWriteAngle, payload)
}

// WriteAngles moves all joints to the given angles in degrees.
func (r *Robot) WriteAngles(ctx context.Context, angles [protocol.Joints]float64, speed int) error {
	if err := protocol.CheckSpeed(speed); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	payload, err := protocol.AppendAngles(make([]byte, 0, protocol.Joints*2+1), angles)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	payload = append(payload, byte(speed))
	return r.ack(ctx, protocol.CmdWriteAngles, payload)
}

// GetCoords reads the Cartesian pose: X/Y/Z in millimetres, Rx/Ry/Rz in
// degrees.
func (r *Robot) GetCoords(ctx context.Context) ([protocol.Joints]float64, error) {
	var coords [protocol.Joints]float64
	resp, err := r.transact(ctx, protocol.CmdGetCoords, nil)
	if err != nil {
		return coords, err
	}
	return protocol.Coords(resp), nil
}

// WriteCoord moves along a single axis (1..3 = X/Y/Z in millimetres,
// 4..6 = Rx/Ry/Rz in degrees).
func (r *Robot) WriteCoord(ctx context.Context, axis int, value float64, speed int) error {
	if err := protocol.CheckJoint(axis); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	if err := protocol.CheckSpeed(speed); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	payload := []byte{byte(axis)}
	var err error
	if axis <= 3 {
		payload, err = protocol.AppendCoord(payload, value)
	} else {
		payload, err = protocol.AppendAngle(payload, value)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	payload = append(payload, byte(speed))
	return r.ack(ctx, protocol.CmdWriteCoord, payload)
}

// WriteCoords moves the arm to a Cartesian pose.
func (r *Robot) WriteCoords(ctx context.Context, coords [protocol.Joints]float64, speed int) error {
	if err := protocol.CheckSpeed(speed); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	payload, err := protocol.AppendCoords(make([]byte, 0, protocol.Joints*2+2), coords)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	payload = append(payload, byte(speed), moveModeLinear)
	return r.ack(ctx, protocol.CmdWriteCoords, payload)
}

// IsInPosition reports whether the arm has reached target. With coords
// false the target is joint angles; with coords true it is a Cartesian
// pose.
func (r *Robot) IsInPosition(ctx context.Context, target [protocol.Joints]float64, coords bool) (bool, error) {
	var (
		payload []byte
		err     error
	)
	flag := byte(0)
	if coords {
		flag = 1
		payload, err = protocol.AppendCoords(make([]byte, 0, protocol.Joints*2+1), target)
	} else {
		payload, err = protocol.AppendAngles(make([]byte, 0, protocol.Joints*2+1), target)
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	payload = append(payload, flag)
	resp, err := r.transact(ctx, protocol.CmdIsInPosition, payload)
	if err != nil {
		return false, err
	}
	return protocol.Bool(protocol.CmdIsInPosition, resp[0]), nil
}

// CheckRunning reports whether the arm is still moving.
func (r *Robot) CheckRunning(ctx context.Context) (bool, error) {
	resp, err := r.transact(ctx, protocol.CmdCheckRunning, nil)
	if err != nil {
		return false, err
	}
	return protocol.Bool(protocol.CmdCheckRunning, resp[0]), nil
}

// JogDirection selects which way JogAngle moves a joint.
type JogDirection byte

const (
	JogDecrease JogDirection = 0
	JogIncrease JogDirection = 1
)

// JogAngle starts jogging a joint until JogStop. No reply is sent.
func (r *Robot) JogAngle(ctx context.Context, joint int, dir JogDirection, speed int) error {
	if err := protocol.CheckJoint(joint); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	if err := protocol.CheckSpeed(speed); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	if dir != JogDecrease && dir != JogIncrease {
		return fmt.Errorf("%w: jog direction %d", ErrInvalidArguments, dir)
	}
	_, err := r.transact(ctx, protocol.CmdJogAngle, []byte{byte(joint), byte(dir), byte(speed)})
	return err
}

// JogStop stops any jog motion. No reply is sent.
func (r *Robot) JogStop(ctx context.Context) error {
	_, err := r.transact(ctx, protocol.CmdJogStop, nil)
	return err
}

// GetSpeed reads the configured movement speed.
func (r *Robot) GetSpeed(ctx context.Context) (int, error) {
	resp, err := r.transact(ctx, protocol.CmdGetSpeed, nil)
	if err != nil {
		return 0, err
	}
	return int(resp[0]), nil
}

// SetSpeed sets the movement speed (0..100).
func (r *Robot) SetSpeed(ctx context.Context, speed int) error {
	if err := protocol.CheckSpeed(speed); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	return r.ack(ctx, protocol.CmdSetSpeed, []byte{byte(speed)})
}

// SetColor sets the Atom indicator LED. Channel range is enforced by the
// byte parameters.
func (r *Robot) SetColor(ctx context.Context, red, green, blue uint8) error {
	return r.ack(ctx, protocol.CmdSetLedRGB, []byte{red, green, blue})
}

// SetBasicOut drives a basic IO pin. No reply is sent.
func (r *Robot) SetBasicOut(ctx context.Context, pin int, high bool) error {
	if pin < 0 || pin > 0xFF {
		return fmt.Errorf("%w: pin %d", ErrInvalidArguments, pin)
	}
	state := byte(0)
	if high {
		state = 1
	}
	_, err := r.transact(ctx, protocol.CmdSetBasicOut, []byte{byte(pin), state})
	return err
}

// GetBasicIn reads a basic IO pin. The reply echoes the pin number ahead of
// the value; an echo for a different pin is an unexpected response.
func (r *Robot) GetBasicIn(ctx context.Context, pin int) (int, error) {
	if pin < 0 || pin > 0xFF {
		return 0, fmt.Errorf("%w: pin %d", ErrInvalidArguments, pin)
	}
	resp, err := r.transact(ctx, protocol.CmdGetBasicIn, []byte{byte(pin)})
	if err != nil {
		return 0, err
	}
	if resp[0] != byte(pin) {
		return 0, fmt.Errorf("%w: reply for pin %d, want %d", ErrUnexpectedResponse, resp[0], pin)
	}
	return int(resp[1]), nil
}
