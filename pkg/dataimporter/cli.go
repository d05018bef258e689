package dataimporter

import (
	"github.com/transito/transito/pkg/database"
	"github.com/transito/transito/pkg/schedulestore"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "data-importer",
		Usage: "Import schedule feeds into the schedule store",
		Subcommands: []*cli.Command{
			{
				Name:  "import",
				Usage: "import a zipped schedule feed",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Usage:    "path to the zipped feed",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					store := schedulestore.NewStore(database.GlobalGorm)

					return NewImporter(store).ImportFile(c.String("file"))
				},
			},
		},
	}
}
