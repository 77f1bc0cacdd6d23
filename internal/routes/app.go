package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"next-target-mock/config"
	_ "next-target-mock/docs"
	"next-target-mock/internal/controllers"
	"next-target-mock/internal/metrics"
	"next-target-mock/internal/middleware"
	"next-target-mock/internal/services"
)

type Deps struct {
	Service *services.ManpowerService
	Config  *config.Config
	Logger  *zap.Logger
	Metrics *metrics.Metrics
}

// NewApp builds the Fiber app with middleware and every route registered.
func NewApp(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "next-target-mock",
		ErrorHandler:          controllers.ErrorHandler(d.Logger),
		UnescapePath:          true,
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(d.Logger))
	app.Use(middleware.Metrics(d.Metrics))
	app.Use(cors.New(cors.Config{
		AllowOrigins: d.Config.Server.CORS.AllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(recover.New())

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Metrics.Registry, promhttp.HandlerOpts{})))

	SetupRoutesManpower(app, d.Service, d.Config.Seed)
	return app
}
