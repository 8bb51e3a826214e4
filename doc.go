// Package mycobot provides a driver for myCobot robotic arms connected
// over a serial link.
//
// The driver speaks the controller's framed byte protocol and exposes a
// typed command API: joint angles, Cartesian coordinates, power state,
// speed, basic IO and the Atom indicator LED.
//
// # Installation
//
//	go install github.com/progressrobotics/mycobot-go/cmd/mycobot@latest
//
// # Usage
//
// First, run setup to find the arm's serial port:
//
//	mycobot setup
//
// Then, for example:
//
//	mycobot power on
//	mycobot angles
//	mycobot monitor
//
// # Packages
//
// The module is organized into the following packages:
//
//   - cmd/mycobot: CLI with setup, power, angles, coords, color and monitor commands
//   - pkg/protocol: frame codec, command table and value encodings
//   - pkg/transport: serial port abstraction and test mock
//   - pkg/robot: command session, typed API and connection config
//   - pkg/monitor: polling loop for live joint-angle display
package mycobot
