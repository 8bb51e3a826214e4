// Package monitor provides a polling loop that streams joint angles from an
// arm for live display.
package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/progressrobotics/mycobot-go/pkg/protocol"
	"github.com/progressrobotics/mycobot-go/pkg/robot"
)

// State is one sample of the arm's joints.
type State struct {
	Angles    [protocol.Joints]float64
	Timestamp time.Time
	Error     error
}

// Controller polls an arm at a fixed rate and publishes samples.
type Controller struct {
	arm *robot.Robot
	hz  int

	mu      sync.Mutex
	running bool
	stateCh chan State
	logCh   chan string
}

// Config holds configuration for the controller.
type Config struct {
	Arm *robot.Robot
	Hz  int
}

// NewController creates a monitor over an already-connected arm.
func NewController(cfg Config) *Controller {
	if cfg.Hz <= 0 {
		cfg.Hz = 10
	}
	return &Controller{
		arm:     cfg.Arm,
		hz:      cfg.Hz,
		stateCh: make(chan State, 1),
		logCh:   make(chan string, 10),
	}
}

// States returns a channel that receives angle samples.
func (c *Controller) States() <-chan State {
	return c.stateCh
}

// Logs returns a channel that receives log messages.
func (c *Controller) Logs() <-chan string {
	return c.logCh
}

// Hz returns the polling frequency.
func (c *Controller) Hz() int {
	return c.hz
}

func (c *Controller) log(format string, args ...any) {
	msg := fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), fmt.Sprintf(format, args...))
	select {
	case c.logCh <- msg:
	default:
		// Drop if channel full
	}
}

// Start runs the polling loop until the context is done.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return fmt.Errorf("already running")
	}
	c.running = true
	c.mu.Unlock()

	if on, err := c.arm.IsPoweredOn(ctx); err != nil {
		c.log("Warning: power query failed: %v", err)
	} else if !on {
		c.log("Warning: servos are powered off")
	}
	c.log("Monitoring at %d Hz", c.hz)

	ticker := time.NewTicker(time.Second / time.Duration(c.hz))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.mu.Lock()
			c.running = false
			c.mu.Unlock()
			c.log("Monitoring stopped")
			return ctx.Err()
		case <-ticker.C:
			c.step(ctx)
		}
	}
}

func (c *Controller) step(ctx context.Context) {
	angles, err := c.arm.GetAngles(ctx)
	if err != nil {
		c.log("Read error: %v", err)
		c.sendState(State{Error: err, Timestamp: time.Now()})
		return
	}
	c.sendState(State{Angles: angles, Timestamp: time.Now()})
}

func (c *Controller) sendState(s State) {
	select {
	case c.stateCh <- s:
	default:
		// Drop old state if channel full, replace with new
		select {
		case <-c.stateCh:
		default:
		}
		c.stateCh <- s
	}
}
