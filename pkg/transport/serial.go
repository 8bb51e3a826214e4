package transport

import (
	"fmt"
	"time"

	"go.bug.st/serial"
)

// DefaultBaudRate is the rate the controller ships with.
const DefaultBaudRate = 1_000_000

// Serial is a Port backed by a real serial device.
type Serial struct {
	device string
	port   serial.Port
}

// Open opens a serial device at the given baud rate.
func Open(device string, baudRate int) (*Serial, error) {
	if baudRate <= 0 {
		baudRate = DefaultBaudRate
	}
	port, err := serial.Open(device, &serial.Mode{BaudRate: baudRate})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", device, err)
	}
	return &Serial{device: device, port: port}, nil
}

// Device returns the device path the port was opened with.
func (s *Serial) Device() string { return s.device }

func (s *Serial) Read(p []byte) (int, error)  { return s.port.Read(p) }
func (s *Serial) Write(p []byte) (int, error) { return s.port.Write(p) }

func (s *Serial) SetReadTimeout(t time.Duration) error {
	return s.port.SetReadTimeout(t)
}

func (s *Serial) Close() error { return s.port.Close() }

// ListPorts returns the serial device paths present on the system.
func ListPorts() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("list serial ports: %w", err)
	}
	return ports, nil
}
