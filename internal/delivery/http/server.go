package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/annotation-microservice/internal/config"
	"github.com/annotation-microservice/internal/delivery/http/handler"
	"github.com/annotation-microservice/internal/delivery/http/middleware"
)

// Server wires the Fiber app, middleware and routes.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	substationHandler *handler.SubstationHandler
	polygonHandler    *handler.PolygonHandler
	tileHandler       *handler.TileHandler
	statsHandler      *handler.StatsHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	substationHandler *handler.SubstationHandler,
	polygonHandler *handler.PolygonHandler,
	tileHandler *handler.TileHandler,
	statsHandler *handler.StatsHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Substation Annotation Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    32 * 1024 * 1024, // whole-collection posts can be large
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		substationHandler: substationHandler,
		polygonHandler:    polygonHandler,
		tileHandler:       tileHandler,
		statsHandler:      statsHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Collection routes: whole-array GET/POST only, no partial updates.
	api.Get("/substations", s.substationHandler.List)
	api.Post("/substations", s.substationHandler.Replace)
	api.Get("/polygons", s.polygonHandler.List)
	api.Post("/polygons", s.polygonHandler.Replace)
	api.Get("/polygons/labels", s.polygonHandler.GetLabels)

	// Tile routes. The catch-all must stay behind the exact routes: it
	// turns every malformed tile path into 400 instead of the router's 404.
	api.Get("/tiles/:dataset/:z/:x/:y.png", s.tileHandler.GetTile)
	api.Get("/tiles/:dataset/:z/:x/:y/info", s.tileHandler.GetTileInfo)
	api.Get("/tiles/*", s.tileHandler.Malformed)

	// Stats
	api.Get("/stats", s.statsHandler.GetStatistics)
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the underlying Fiber app for in-process testing.
func (s *Server) App() *fiber.App {
	return s.app
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
