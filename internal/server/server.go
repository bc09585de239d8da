package server

import (
	"context"
	"io/fs"
	"net/http"

	"brokeria-dashboard-be/internal/bootstrap"
	"brokeria-dashboard-be/internal/config"
	"brokeria-dashboard-be/internal/pkg/serverutils"
	"brokeria-dashboard-be/web"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Tracing.ServiceName,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: serverutils.NewErrorHandler(container.Logger),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(serverutils.RequestLogger(container.Logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.CorsAllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	}))
	app.Use(otelfiber.Middleware())

	registerRoutes(app, container)
	registerStatic(app)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.container.Logger.Info("Server", "Listening", map[string]interface{}{"port": s.cfg.App.Port})
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	c.HealthController.RegisterRoutes(app)

	api := app.Group("/api")
	authMw := serverutils.JwtMiddleware(c.AuthService)

	c.AuthController.RegisterRoutes(api, authMw)
	c.DashboardController.RegisterRoutes(api, authMw)
	c.RecordController.RegisterRoutes(api, authMw)
}

// registerStatic serves the embedded dashboard client. It runs after the API
// routes so /api paths never reach the filesystem.
func registerStatic(app *fiber.App) {
	assets, err := fs.Sub(web.Static, "static")
	if err != nil {
		panic(err)
	}
	root := http.FS(assets)

	app.Get("/", func(ctx *fiber.Ctx) error {
		return filesystem.SendFile(ctx, root, "index.html")
	})
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   root,
		MaxAge: 3600,
	}))
}
