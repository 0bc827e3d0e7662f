package command

import (
	"fmt"
	"os"

	"github.com/go-zoox/bitpacket/core"
	"github.com/go-zoox/cli"
	"github.com/go-zoox/logger"
)

func RegisterClient(app *cli.MultipleProgram) {
	app.Register("client", &cli.Command{
		Name:  "client",
		Usage: "evaluate a hex transmission on a remote service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "auth",
				Usage:    "auth info, format: client_id:client_secret",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "relay",
				Usage: "evaluate server, format: protocol://host:port/path",
				Value: "ws://127.0.0.1:8080",
			},
			&cli.StringFlag{
				Name:  "hex",
				Usage: "the hex transmission",
			},
			&cli.StringFlag{
				Name:    "input",
				Usage:   "the filepath of the hex transmission",
				Aliases: []string{"i"},
			},
		},
		Action: func(ctx *cli.Context) error {
			protocol, host, port, path, err := parseRelay(ctx.String("relay"))
			if err != nil {
				return fmt.Errorf("invalid relay: %v", err)
			}

			auth, err := parseAuth(ctx.String("auth"))
			if err != nil {
				return err
			}

			text, err := readInput(ctx.String("hex"), ctx.String("input"))
			if err != nil {
				return err
			}

			logger.Info("relay: %s", ctx.String("relay"))

			client, err := core.NewClient(&core.ClientConfig{
				Protocol: protocol,
				Host:     host,
				Port:     port,
				Path:     path,
				// USER
				User: auth,
			})
			if err != nil {
				return err
			}

			if err := client.Connect(); err != nil {
				return err
			}
			defer client.Close()

			response, err := client.Evaluate(text)
			if err != nil {
				return err
			}

			fmt.Fprintln(os.Stdout, response.VersionSum)
			fmt.Fprintln(os.Stdout, response.Value)
			return nil
		},
	})
}
