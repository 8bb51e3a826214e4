package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/progressrobotics/mycobot-go/pkg/protocol"
	"github.com/progressrobotics/mycobot-go/pkg/robot"
)

type PowerCommand struct {
	Args struct {
		Action string `positional-arg-name:"on|off|status" required:"yes"`
	} `positional-args:"yes"`
}

func (c *PowerCommand) Execute(args []string) error {
	arm, err := connect()
	if err != nil {
		fatal(err)
	}
	defer arm.Close()
	ctx := context.Background()

	switch c.Args.Action {
	case "on":
		if err := arm.PowerOn(ctx); err != nil {
			fatal(err)
		}
		fmt.Println(successStyle.Render("✓ Servos powered on"))
	case "off":
		if err := arm.PowerOff(ctx); err != nil {
			fatal(err)
		}
		fmt.Println(successStyle.Render("✓ Servos powered off"))
	case "status":
		on, err := arm.IsPoweredOn(ctx)
		if err != nil {
			fatal(err)
		}
		if on {
			fmt.Println("Servos: on")
		} else {
			fmt.Println("Servos: off")
		}
	default:
		fatal(fmt.Errorf("unknown power action %q", c.Args.Action))
	}
	return nil
}

type AnglesCommand struct {
	Speed int `long:"speed" default:"50" description:"Movement speed (0-100)"`
	Args  struct {
		Angles []float64 `positional-arg-name:"J1..J6"`
	} `positional-args:"yes"`
}

func (c *AnglesCommand) Execute(args []string) error {
	arm, err := connect()
	if err != nil {
		fatal(err)
	}
	defer arm.Close()
	ctx := context.Background()

	if len(c.Args.Angles) == 0 {
		angles, err := arm.GetAngles(ctx)
		if err != nil {
			fatal(err)
		}
		for i, name := range robot.AllJoints() {
			fmt.Printf("  %-12s %8.2f°\n", name, angles[i])
		}
		return nil
	}

	target, err := sixValues(c.Args.Angles)
	if err != nil {
		fatal(err)
	}
	if err := arm.WriteAngles(ctx, target, c.Speed); err != nil {
		fatal(err)
	}
	fmt.Println(successStyle.Render("✓ Move accepted"))
	return nil
}

type CoordsCommand struct {
	Speed int `long:"speed" default:"50" description:"Movement speed (0-100)"`
	Args  struct {
		Coords []float64 `positional-arg-name:"X Y Z RX RY RZ"`
	} `positional-args:"yes"`
}

func (c *CoordsCommand) Execute(args []string) error {
	arm, err := connect()
	if err != nil {
		fatal(err)
	}
	defer arm.Close()
	ctx := context.Background()

	if len(c.Args.Coords) == 0 {
		coords, err := arm.GetCoords(ctx)
		if err != nil {
			fatal(err)
		}
		for i, axis := range robot.Axes() {
			unit := "mm"
			if i >= 3 {
				unit = "°"
			}
			fmt.Printf("  %-3s %9.2f %s\n", axis, coords[i], unit)
		}
		return nil
	}

	target, err := sixValues(c.Args.Coords)
	if err != nil {
		fatal(err)
	}
	if err := arm.WriteCoords(ctx, target, c.Speed); err != nil {
		fatal(err)
	}
	fmt.Println(successStyle.Render("✓ Move accepted"))
	return nil
}

type ColorCommand struct {
	Args struct {
		R string `positional-arg-name:"R" required:"yes"`
		G string `positional-arg-name:"G" required:"yes"`
		B string `positional-arg-name:"B" required:"yes"`
	} `positional-args:"yes"`
}

func (c *ColorCommand) Execute(args []string) error {
	channels := make([]uint8, 3)
	for i, s := range []string{c.Args.R, c.Args.G, c.Args.B} {
		v, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			fatal(fmt.Errorf("color channel %q must be 0-255", s))
		}
		channels[i] = uint8(v)
	}

	arm, err := connect()
	if err != nil {
		fatal(err)
	}
	defer arm.Close()

	if err := arm.SetColor(context.Background(), channels[0], channels[1], channels[2]); err != nil {
		fatal(err)
	}
	fmt.Println(successStyle.Render("✓ LED color set"))
	return nil
}

func sixValues(vals []float64) ([protocol.Joints]float64, error) {
	var out [protocol.Joints]float64
	if len(vals) != protocol.Joints {
		return out, fmt.Errorf("expected %d values, got %d", protocol.Joints, len(vals))
	}
	copy(out[:], vals)
	return out, nil
}
