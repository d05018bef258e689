package journeyplanner

import (
	"errors"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/transito/transito/pkg/config"
	"github.com/transito/transito/pkg/database"
	"github.com/transito/transito/pkg/journeygraph"
	"github.com/transito/transito/pkg/schedulestore"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "planner",
		Usage: "Plan minimum travel time routes over the network graph",
		Subcommands: []*cli.Command{
			{
				Name:      "plan",
				Usage:     "plan a route between two stops",
				ArgsUsage: "<origin> <destination>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Value: "config.yml",
						Usage: "path to the config file",
					},
					&cli.BoolFlag{
						Name:  "debug",
						Usage: "dump the full route result structure",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() != 2 {
						return errors.New("expected exactly an origin and a destination stop id")
					}

					planner, err := sessionPlannerFromCLI(c)
					if err != nil {
						return err
					}

					route, err := planner.PlanRoute(c.Args().Get(0), c.Args().Get(1))
					if err != nil {
						return err
					}

					if c.Bool("debug") {
						pretty.Println(route)
					}

					printRoute(planner.Graph(), route)

					return nil
				},
			},
			{
				Name:  "matrix",
				Usage: "plan every origin/destination pair from a CSV file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "pairs",
						Usage:    "CSV file with origin,destination columns",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "config",
						Value: "config.yml",
						Usage: "path to the config file",
					},
				},
				Action: func(c *cli.Context) error {
					planner, err := sessionPlannerFromCLI(c)
					if err != nil {
						return err
					}

					queries, err := readPairsFile(c.String("pairs"))
					if err != nil {
						return err
					}

					results := planner.PlanMatrix(queries)

					planned := 0
					for _, result := range results {
						if result.Err != nil {
							log.Warn().
								Str("origin", result.Query.Origin).
								Str("destination", result.Query.Destination).
								Err(result.Err).
								Msg("Pair could not be planned")
							continue
						}

						planned += 1
						fmt.Printf("%s -> %s: %.0fs over %d stops\n",
							result.Query.Origin, result.Query.Destination,
							result.Route.TotalSeconds, len(result.Route.Stops))
					}

					log.Info().Int("planned", planned).Int("total", len(results)).Msg("Matrix complete")

					return nil
				},
			},
		},
	}
}

func sessionPlannerFromCLI(c *cli.Context) (*Planner, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if err := database.Connect(); err != nil {
		return nil, err
	}

	store := schedulestore.NewStore(database.GlobalGorm)

	return NewSessionPlanner(store, cfg.GraphConfig())
}

type pairRecord struct {
	Origin      string `csv:"origin"`
	Destination string `csv:"destination"`
}

func readPairsFile(path string) ([]MatrixQuery, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var pairs []pairRecord
	if err := gocsv.Unmarshal(file, &pairs); err != nil {
		return nil, err
	}

	queries := make([]MatrixQuery, 0, len(pairs))
	for _, pair := range pairs {
		queries = append(queries, MatrixQuery{
			Origin:      pair.Origin,
			Destination: pair.Destination,
		})
	}

	return queries, nil
}

func printRoute(graph *journeygraph.Graph, route *RouteResult) {
	fmt.Printf("Total time: %.1f minutes over %d stops\n", route.TotalSeconds/60, len(route.Stops)-1)

	for index, leg := range route.Legs {
		fromName := leg.From
		if station := graph.Station(leg.From); station != nil && station.Name != "" {
			fromName = station.Name
		}
		toName := leg.To
		if station := graph.Station(leg.To); station != nil && station.Name != "" {
			toName = station.Name
		}

		mode := "Transfer/Walk"
		if leg.Kind == journeygraph.EdgeKindTravel {
			mode = fmt.Sprintf("Take %s line", leg.Route)
		}

		fmt.Printf("  %d. %s -> %s (%s, %ds)\n", index+1, fromName, toName, mode, leg.Seconds)
	}
}
