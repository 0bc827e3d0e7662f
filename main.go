package main

import (
	"github.com/go-zoox/bitpacket/command"
	"github.com/go-zoox/cli"
)

func main() {
	app := cli.NewMultipleProgram(&cli.MultipleProgramConfig{
		Name:    "bitpacket",
		Usage:   "bitpacket decodes and evaluates bit-packed hex transmissions.",
		Version: Version,
	})

	command.RegisterEval(app)
	command.RegisterServer(app)
	command.RegisterClient(app)

	app.Run()
}
