package protocol

import (
	"fmt"
	"sort"
)

// Command is the single-byte opcode of a controller command.
type Command byte

// Opcodes fixed by the controller firmware.
const (
	CmdVersion Command = 0x01

	CmdPowerOn               Command = 0x10
	CmdPowerOff              Command = 0x11
	CmdIsPoweredOn           Command = 0x12
	CmdReleaseAllServos      Command = 0x13
	CmdIsControllerConnected Command = 0x14

	CmdGetAngles    Command = 0x20
	CmdWriteAngle   Command = 0x21
	CmdWriteAngles  Command = 0x22
	CmdGetCoords    Command = 0x23
	CmdWriteCoord   Command = 0x24
	CmdWriteCoords  Command = 0x25
	CmdIsInPosition Command = 0x2A
	CmdCheckRunning Command = 0x2B

	CmdJogAngle Command = 0x30
	CmdJogStop  Command = 0x34

	CmdGetSpeed Command = 0x40
	CmdSetSpeed Command = 0x41

	CmdSetLedRGB Command = 0x6A

	CmdSetBasicOut Command = 0xA0
	CmdGetBasicIn  Command = 0xA1
)

// NoResponse marks commands the controller never answers.
const NoResponse = -1

// Spec declares the wire shape of a command: how many payload bytes the
// request carries and how many the response carries. AckLowTrue flags
// commands whose ack byte reverses the usual zero=false convention; no
// current firmware command does, but the polarity is a per-command property
// of the table, not a global rule.
type Spec struct {
	Payload    int
	Response   int
	AckLowTrue bool
}

// specs is the closed command table. Payload and response sizes follow the
// controller protocol documentation.
var specs = map[Command]Spec{
	CmdVersion:               {Payload: 0, Response: 1},
	CmdPowerOn:               {Payload: 0, Response: 1},
	CmdPowerOff:              {Payload: 0, Response: 1},
	CmdIsPoweredOn:           {Payload: 0, Response: 1},
	CmdReleaseAllServos:      {Payload: 0, Response: NoResponse},
	CmdIsControllerConnected: {Payload: 0, Response: 1},
	CmdGetAngles:             {Payload: 0, Response: 12},
	CmdWriteAngle:            {Payload: 4, Response: 1},
	CmdWriteAngles:           {Payload: 13, Response: 1},
	CmdGetCoords:             {Payload: 0, Response: 12},
	CmdWriteCoord:            {Payload: 4, Response: 1},
	CmdWriteCoords:           {Payload: 14, Response: 1},
	CmdIsInPosition:          {Payload: 13, Response: 1},
	CmdCheckRunning:          {Payload: 0, Response: 1},
	CmdJogAngle:              {Payload: 3, Response: NoResponse},
	CmdJogStop:               {Payload: 0, Response: NoResponse},
	CmdGetSpeed:              {Payload: 0, Response: 1},
	CmdSetSpeed:              {Payload: 1, Response: 1},
	CmdSetLedRGB:             {Payload: 3, Response: 1},
	CmdSetBasicOut:           {Payload: 2, Response: NoResponse},
	CmdGetBasicIn:            {Payload: 1, Response: 2},
}

// Lookup returns the wire shape for cmd.
func Lookup(cmd Command) (Spec, error) {
	spec, ok := specs[cmd]
	if !ok {
		return Spec{}, fmt.Errorf("%w: 0x%02X", ErrUnknownCommand, byte(cmd))
	}
	return spec, nil
}

// Commands returns every opcode in the table, in ascending order.
func Commands() []Command {
	cmds := make([]Command, 0, len(specs))
	for cmd := range specs {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i] < cmds[j] })
	return cmds
}

var commandNames = map[Command]string{
	CmdVersion:               "Version",
	CmdPowerOn:               "PowerOn",
	CmdPowerOff:              "PowerOff",
	CmdIsPoweredOn:           "IsPoweredOn",
	CmdReleaseAllServos:      "ReleaseAllServos",
	CmdIsControllerConnected: "IsControllerConnected",
	CmdGetAngles:             "GetAngles",
	CmdWriteAngle:            "WriteAngle",
	CmdWriteAngles:           "WriteAngles",
	CmdGetCoords:             "GetCoords",
	CmdWriteCoord:            "WriteCoord",
	CmdWriteCoords:           "WriteCoords",
	CmdIsInPosition:          "IsInPosition",
	CmdCheckRunning:          "CheckRunning",
	CmdJogAngle:              "JogAngle",
	CmdJogStop:               "JogStop",
	CmdGetSpeed:              "GetSpeed",
	CmdSetSpeed:              "SetSpeed",
	CmdSetLedRGB:             "SetLedRGB",
	CmdSetBasicOut:           "SetBasicOut",
	CmdGetBasicIn:            "GetBasicIn",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(0x%02X)", byte(c))
}
