package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/progressrobotics/mycobot-go/pkg/robot"
	"github.com/progressrobotics/mycobot-go/pkg/transport"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type SetupCommand struct {
	Baud int `long:"baud" default:"1000000" description:"Serial baud rate"`
}

func (c *SetupCommand) Execute(args []string) error {
	fmt.Println(headerStyle.Render("myCobot Setup"))
	fmt.Println(dimStyle.Render("━━━━━━━━━━━━━"))
	fmt.Println()

	ports, err := transport.ListPorts()
	if err != nil {
		fatal(err)
	}

	var candidates []string
	for _, port := range ports {
		// Skip Bluetooth ports on macOS
		if strings.Contains(port, "Bluetooth") {
			continue
		}
		if ver, ok := probePort(port, c.Baud); ok {
			fmt.Printf("  Found arm on %s (firmware %d)\n", port, ver)
			candidates = append(candidates, port)
		}
	}

	if len(candidates) == 0 {
		fmt.Println("No arm found.")
		fmt.Println("Make sure the arm is connected and powered on.")
		os.Exit(1)
	}

	selected := candidates[0]
	if len(candidates) > 1 {
		options := make([]huh.Option[string], 0, len(candidates))
		for _, port := range candidates {
			options = append(options, huh.NewOption(port, port))
		}
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Which port should be used?").
					Options(options...).
					Value(&selected),
			),
		)
		if err := form.Run(); err != nil {
			fatal(err)
		}
	}

	cfg := robot.Config{Port: selected, BaudRate: c.Baud}
	if err := cfg.Save(); err != nil {
		fatal(fmt.Errorf("save config: %w", err))
	}

	fmt.Println()
	fmt.Println(successStyle.Render(fmt.Sprintf("✓ Configuration saved to %s", robot.DefaultConfigFile)))
	return nil
}

// probePort opens a port and asks for the firmware version with a short
// timeout. A port with no arm behind it simply times out.
func probePort(device string, baud int) (version int, ok bool) {
	port, err := transport.Open(device, baud)
	if err != nil {
		return 0, false
	}
	arm := robot.New(port, robot.WithTimeout(200*time.Millisecond))
	defer arm.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	ver, err := arm.Version(ctx)
	if err != nil {
		return 0, false
	}
	return ver, true
}
