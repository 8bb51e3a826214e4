package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/progressrobotics/mycobot-go/pkg/robot"
)

// connect loads mycobot.json and opens a session, honoring --debug.
func connect() (*robot.Robot, error) {
	cfg, err := robot.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("no configuration found, run 'mycobot setup' first: %w", err)
	}

	var robotOpts []robot.Option
	if opts.Debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		robotOpts = append(robotOpts, robot.WithLogger(logger))
	}

	arm, err := cfg.Connect(robotOpts...)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.Port, err)
	}
	return arm, nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
