package main

import (
	"os"

	"github.com/jessevdk/go-flags"
)

type Options struct {
	Debug bool `long:"debug" description:"Log protocol frames to stderr"`

	Setup   SetupCommand   `command:"setup" description:"Scan serial ports for an arm and save the connection config"`
	Power   PowerCommand   `command:"power" description:"Power the servos on or off, or query power state"`
	Angles  AnglesCommand  `command:"angles" description:"Read or set joint angles"`
	Coords  CoordsCommand  `command:"coords" description:"Read or set the Cartesian pose"`
	Color   ColorCommand   `command:"color" description:"Set the Atom indicator LED color"`
	Monitor MonitorCommand `command:"monitor" description:"Live joint-angle chart"`
}

var opts Options
var parser = flags.NewParser(&opts, flags.Default)

func main() {
	parser.LongDescription = "myCobot - control CLI for myCobot arms"

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
		}
		os.Exit(1)
	}
}
