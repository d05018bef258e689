package api

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/transito/transito/pkg/config"
	"github.com/transito/transito/pkg/database"
	"github.com/transito/transito/pkg/journeyplanner"
	"github.com/transito/transito/pkg/redis_client"
	"github.com/transito/transito/pkg/schedulestore"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the core web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: "",
						Usage: "listen target for the web server, overrides the config file",
					},
					&cli.StringFlag{
						Name:  "config",
						Value: "config.yml",
						Usage: "path to the config file",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					if err := database.Connect(); err != nil {
						return err
					}

					store := schedulestore.NewStore(database.GlobalGorm)

					planner, err := journeyplanner.NewSessionPlanner(store, cfg.GraphConfig())
					if err != nil {
						return err
					}

					var resultCache *ResultCache
					if cfg.Cache.Enabled {
						if err := redis_client.Connect(); err != nil {
							return err
						}

						resultCache = NewResultCache(time.Duration(cfg.Cache.ExpirationMinutes) * time.Minute)
					} else {
						log.Info().Msg("Plan result cache disabled")
					}

					listen := cfg.Server.Listen
					if c.String("listen") != "" {
						listen = c.String("listen")
					}

					return SetupServer(listen, planner, store, resultCache)
				},
			},
		},
	}
}
