package protocol

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Fixed-point scales used on the wire: angles travel as int16 hundredths of
// a degree, coordinate lengths as int16 tenths of a millimetre.
const (
	angleScale = 100
	coordScale = 10

	// MaxAngle bounds joint and rotation angles in degrees.
	MaxAngle = 180.0
	// MaxCoord bounds X/Y/Z coordinates in millimetres (int16 capacity at
	// 0.1 mm resolution).
	MaxCoord = math.MaxInt16 / float64(coordScale)
	// MaxSpeed is the highest movement speed the controller accepts.
	MaxSpeed = 100

	// Joints is the number of joints on the arm; joints and coordinate
	// axes are numbered 1..Joints on the wire.
	Joints = 6
)

// AppendAngle appends an angle in degrees as a big-endian int16 in
// hundredths of a degree. Angles beyond ±MaxAngle do not fit the protocol
// and are rejected rather than wrapped.
func AppendAngle(buf []byte, deg float64) ([]byte, error) {
	if deg < -MaxAngle || deg > MaxAngle {
		return nil, fmt.Errorf("%w: angle %.2f°", ErrOutOfRange, deg)
	}
	return binary.BigEndian.AppendUint16(buf, uint16(int16(math.Round(deg*angleScale)))), nil
}

// Angle decodes two big-endian bytes into degrees.
func Angle(b []byte) float64 {
	return float64(int16(binary.BigEndian.Uint16(b))) / angleScale
}

// AppendCoord appends a coordinate length in millimetres as a big-endian
// int16 in tenths of a millimetre.
func AppendCoord(buf []byte, mm float64) ([]byte, error) {
	if mm < -MaxCoord || mm > MaxCoord {
		return nil, fmt.Errorf("%w: coordinate %.1f mm", ErrOutOfRange, mm)
	}
	return binary.BigEndian.AppendUint16(buf, uint16(int16(math.Round(mm*coordScale)))), nil
}

// Coord decodes two big-endian bytes into millimetres.
func Coord(b []byte) float64 {
	return float64(int16(binary.BigEndian.Uint16(b))) / coordScale
}

// AppendAngles appends six joint angles (12 bytes).
func AppendAngles(buf []byte, angles [Joints]float64) ([]byte, error) {
	var err error
	for i, deg := range angles {
		if buf, err = AppendAngle(buf, deg); err != nil {
			return nil, fmt.Errorf("joint %d: %w", i+1, err)
		}
	}
	return buf, nil
}

// Angles decodes a 12-byte block into six joint angles.
func Angles(b []byte) [Joints]float64 {
	var angles [Joints]float64
	for i := range angles {
		angles[i] = Angle(b[i*2:])
	}
	return angles
}

// AppendCoords appends a Cartesian pose (12 bytes): X/Y/Z in millimetres
// followed by Rx/Ry/Rz in degrees.
func AppendCoords(buf []byte, coords [Joints]float64) ([]byte, error) {
	var err error
	for i := 0; i < 3; i++ {
		if buf, err = AppendCoord(buf, coords[i]); err != nil {
			return nil, fmt.Errorf("axis %d: %w", i+1, err)
		}
	}
	for i := 3; i < Joints; i++ {
		if buf, err = AppendAngle(buf, coords[i]); err != nil {
			return nil, fmt.Errorf("axis %d: %w", i+1, err)
		}
	}
	return buf, nil
}

// Coords decodes a 12-byte pose block: three lengths, three rotations.
func Coords(b []byte) [Joints]float64 {
	var coords [Joints]float64
	for i := 0; i < 3; i++ {
		coords[i] = Coord(b[i*2:])
	}
	for i := 3; i < Joints; i++ {
		coords[i] = Angle(b[i*2:])
	}
	return coords
}

// CheckSpeed validates a movement speed byte (0..MaxSpeed).
func CheckSpeed(speed int) error {
	if speed < 0 || speed > MaxSpeed {
		return fmt.Errorf("%w: speed %d", ErrOutOfRange, speed)
	}
	return nil
}

// CheckJoint validates a 1-based joint or axis number.
func CheckJoint(joint int) error {
	if joint < 1 || joint > Joints {
		return fmt.Errorf("%w: joint %d", ErrOutOfRange, joint)
	}
	return nil
}

// Bool decodes a status byte for cmd: zero is false, anything else true,
// unless the command table reverses the polarity.
func Bool(cmd Command, b byte) bool {
	v := b != 0
	if spec, ok := specs[cmd]; ok && spec.AckLowTrue {
		v = !v
	}
	return v
}
