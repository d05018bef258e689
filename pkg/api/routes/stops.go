package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/transito/transito/pkg/journeygraph"
)

// StopSource lists the stations of the current schedule snapshot.
type StopSource interface {
	Stations() ([]journeygraph.StationRecord, error)
}

type stopResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func StopsRouter(router fiber.Router, source StopSource) {
	router.Get("/", func(c *fiber.Ctx) error {
		return listStops(c, source)
	})
	router.Get("/:identifier", func(c *fiber.Ctx) error {
		return getStop(c, source)
	})
}

func listStops(c *fiber.Ctx, source StopSource) error {
	stations, err := source.Stations()
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	stops := make([]stopResponse, 0, len(stations))
	for _, station := range stations {
		stops = append(stops, stopResponse{
			ID:        station.ID,
			Name:      station.Name,
			Latitude:  station.Latitude,
			Longitude: station.Longitude,
		})
	}

	return c.JSON(stops)
}

func getStop(c *fiber.Ctx, source StopSource) error {
	identifier := c.Params("identifier")

	stations, err := source.Stations()
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	for _, station := range stations {
		if station.ID == identifier {
			return c.JSON(stopResponse{
				ID:        station.ID,
				Name:      station.Name,
				Latitude:  station.Latitude,
				Longitude: station.Longitude,
			})
		}
	}

	c.SendStatus(fiber.StatusNotFound)
	return c.JSON(fiber.Map{
		"error": "Could not find a stop matching the identifier",
	})
}
