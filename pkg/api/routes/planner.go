package routes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/transito/transito/pkg/journeyplanner"
)

// PlanCache stores serialized plan responses. Both methods must be safe on a
// nil implementation value so running without redis stays possible.
type PlanCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string)
}

func PlannerRouter(router fiber.Router, planner *journeyplanner.Planner, planCache PlanCache) {
	router.Get("/:origin/:destination", func(c *fiber.Ctx) error {
		return getPlanBetweenStops(c, planner, planCache)
	})
}

func getPlanBetweenStops(c *fiber.Ctx, planner *journeyplanner.Planner, planCache PlanCache) error {
	origin := c.Params("origin")
	destination := c.Params("destination")

	cacheKey := fmt.Sprintf("plan/%s/%s", origin, destination)
	if cached, found := planCache.Get(c.Context(), cacheKey); found {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	route, err := planner.PlanRoute(origin, destination)

	var nodeNotFound *journeyplanner.NodeNotFoundError
	switch {
	case errors.As(err, &nodeNotFound):
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": nodeNotFound.Error(),
		})
	case errors.Is(err, journeyplanner.ErrNoPathFound):
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	case err != nil:
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	body, err := json.Marshal(route)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	planCache.Set(c.Context(), cacheKey, string(body))

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}
