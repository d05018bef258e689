package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/transito/transito/pkg/api/routes"
	"github.com/transito/transito/pkg/journeyplanner"
)

func SetupApp(planner *journeyplanner.Planner, stops routes.StopSource, resultCache *ResultCache) *fiber.App {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.StopsRouter(group.Group("/stops"), stops)
	routes.PlannerRouter(group.Group("/planner"), planner, resultCache)

	return webApp
}

func SetupServer(listen string, planner *journeyplanner.Planner, stops routes.StopSource, resultCache *ResultCache) error {
	return SetupApp(planner, stops, resultCache).Listen(listen)
}
