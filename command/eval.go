package command

import (
	"fmt"
	"io"
	"os"

	"github.com/go-zoox/bitpacket/protocol"
	"github.com/go-zoox/cli"
	"github.com/go-zoox/fs"
	"github.com/go-zoox/logger"
)

func RegisterEval(app *cli.MultipleProgram) {
	app.Register("eval", &cli.Command{
		Name:  "eval",
		Usage: "decode a hex transmission and print its version sum and value",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Usage:   "the filepath of the hex transmission",
				Aliases: []string{"i"},
			},
			&cli.StringFlag{
				Name:  "hex",
				Usage: "the hex transmission, takes precedence over --input",
			},
			&cli.BoolFlag{
				Name:  "tree",
				Usage: "also print the decoded expression",
			},
		},
		Action: func(ctx *cli.Context) error {
			text, err := readInput(ctx.String("hex"), ctx.String("input"))
			if err != nil {
				return err
			}

			return evaluate(os.Stdout, text, ctx.Bool("tree"))
		},
	})
}

func readInput(hex, filepath string) (string, error) {
	if hex != "" {
		return hex, nil
	}

	if filepath == "" {
		return "", fmt.Errorf("either --hex or --input is required")
	}

	if !fs.IsExist(filepath) {
		return "", fmt.Errorf("input file not found at %s", filepath)
	}

	raw, err := fs.ReadFile(filepath)
	if err != nil {
		return "", fmt.Errorf("failed to read input file at %s: %v", filepath, err)
	}

	return string(raw), nil
}

func evaluate(w io.Writer, text string, tree bool) error {
	packet, err := protocol.DecodeHex(text)
	if err != nil {
		return fmt.Errorf("failed to decode transmission: %v", err)
	}
	logger.Debugf("[eval] decoded packet: version %d, type id %d", packet.Version, packet.TypeID)

	value, err := protocol.Evaluate(packet)
	if err != nil {
		return fmt.Errorf("failed to evaluate transmission: %v", err)
	}

	if tree {
		fmt.Fprintln(w, packet.String())
	}
	fmt.Fprintln(w, protocol.SumOfVersions(packet))
	fmt.Fprintln(w, value)
	return nil
}
