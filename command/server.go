package command

import (
	"fmt"

	"github.com/go-zoox/bitpacket/core"
	"github.com/go-zoox/bitpacket/protocol/authenticate"
	"github.com/go-zoox/cli"
	"github.com/go-zoox/config"
	"github.com/go-zoox/fs"
	"github.com/go-zoox/logger"
)

func RegisterServer(app *cli.MultipleProgram) {
	app.Register("server", &cli.Command{
		Name:  "server",
		Usage: "websocket evaluate service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Usage:    "the filepath for server configuration",
				Aliases:  []string{"c"},
				Required: true,
			},
		},
		Action: func(ctx *cli.Context) error {
			cfg, err := loadServerConfig(ctx.String("config"))
			if err != nil {
				return err
			}

			logger.Info("[server] %d client(s) configured", len(cfg.Users))

			server := core.NewServer(cfg)

			return server.Run()
		},
	})
}

func loadServerConfig(filepath string) (*core.ServerConfig, error) {
	if !fs.IsExist(filepath) {
		return nil, fmt.Errorf("config file not found at %s", filepath)
	}

	var cfg core.ServerConfig
	if err := config.Load(&cfg, &config.LoadOptions{
		FilePath: filepath,
	}); err != nil {
		return nil, fmt.Errorf("failed to load config file at %s: %v", filepath, err)
	}

	if cfg.Port == 0 {
		cfg.Port = core.DEFAULT_PORT
	}

	if cfg.Path == "" {
		cfg.Path = core.DEFAULT_PATH
	}

	for _, u := range cfg.Users {
		if len(u.ClientID) != authenticate.LENGTH_USER_CLIENT_ID {
			return nil, fmt.Errorf("invalid client id(%s) in %s: length %d, expect %d", u.ClientID, filepath, len(u.ClientID), authenticate.LENGTH_USER_CLIENT_ID)
		}
	}

	return &cfg, nil
}
