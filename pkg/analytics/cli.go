package analytics

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/transito/transito/pkg/database"
	"github.com/transito/transito/pkg/schedulestore"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "analytics",
		Usage: "Offline analytics over the schedule store",
		Subcommands: []*cli.Command{
			{
				Name:  "export",
				Usage: "export the travel-time training dataset as CSV",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "output",
						Value: "travel_time_dataset.csv",
						Usage: "path of the CSV file to write",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					store := schedulestore.NewStore(database.GlobalGorm)

					segments, err := store.TrainingSegments()
					if err != nil {
						return err
					}

					samples := BuildDataset(segments)

					file, err := os.Create(c.String("output"))
					if err != nil {
						return err
					}
					defer file.Close()

					if err := WriteCSV(file, samples); err != nil {
						return err
					}

					log.Info().
						Int("segments", len(segments)).
						Int("samples", len(samples)).
						Str("output", c.String("output")).
						Msg("Exported training dataset")

					return nil
				},
			},
		},
	}
}
