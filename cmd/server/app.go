package main

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-router"

	reportrouter "github.com/hchsp/go-authreport/adapters/router"
	"github.com/hchsp/go-authreport/cmd/server/config"
	"github.com/hchsp/go-authreport/report"
)

// App holds the application dependencies.
type App struct {
	Config  config.Config
	Logger  *SimpleLogger
	Service *report.Service
}

// NewApp creates and initializes the application.
func NewApp(cfg config.Config) (*App, error) {
	logger := &SimpleLogger{prefix: "authreport"}

	service := report.NewService(report.ServiceConfig{
		Logger: logger,
		Logo:   report.FileLogoSource{Path: cfg.Report.LogoPath},
	})

	return &App{
		Config:  cfg,
		Logger:  logger,
		Service: service,
	}, nil
}

// SetupRoutes registers all application routes.
func (a *App) SetupRoutes(r router.Router[*fiber.App]) {
	r.Static("/public", "./public")

	r.Get("/", a.renderHome())

	reportHandler := reportrouter.NewHandler(reportrouter.Config{
		Service:        a.Service,
		BasePath:       a.Config.Report.BasePath,
		Logger:         a.Logger,
		MaxUploadBytes: a.Config.Report.MaxUploadBytes,
	})
	reportHandler.RegisterRoutes(r)
}

// renderHome renders the upload page.
func (a *App) renderHome() router.HandlerFunc {
	return func(c router.Context) error {
		variants := a.Service.Variants().List()
		summaries := make([]map[string]any, 0, len(variants))
		for _, v := range variants {
			summaries = append(summaries, map[string]any{
				"name":  v.Name,
				"title": v.Title,
				"token": v.RequiredToken,
			})
		}
		return c.Render("home", router.ViewContext{
			"title":     "Disability Authorization Reports",
			"base_path": a.Config.Report.BasePath,
			"variants":  summaries,
		})
	}
}

// SimpleLogger is a basic logger implementation.
type SimpleLogger struct {
	prefix string
}

func (l *SimpleLogger) Debugf(format string, args ...any) {
	fmt.Printf("[DEBUG] %s: %s\n", l.prefix, fmt.Sprintf(format, args...))
}

func (l *SimpleLogger) Infof(format string, args ...any) {
	fmt.Printf("[INFO] %s: %s\n", l.prefix, fmt.Sprintf(format, args...))
}

func (l *SimpleLogger) Errorf(format string, args ...any) {
	fmt.Printf("[ERROR] %s: %s\n", l.prefix, fmt.Sprintf(format, args...))
}
