package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/goliatone/go-router"
	"github.com/joho/godotenv"

	"github.com/hchsp/go-authreport/cmd/server/config"
)

func main() {
	ctx := context.Background()

	// Load .env when present, real environment wins
	_ = godotenv.Load()

	cfg := config.Defaults()

	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if host := os.Getenv("HOST"); host != "" {
		cfg.Server.Host = host
	}
	if basePath := os.Getenv("REPORT_BASE_PATH"); basePath != "" {
		cfg.Report.BasePath = basePath
	}
	if logoPath := os.Getenv("REPORT_LOGO_PATH"); logoPath != "" {
		cfg.Report.LogoPath = logoPath
	}
	if maxUpload := os.Getenv("REPORT_MAX_UPLOAD_BYTES"); maxUpload != "" {
		if parsed, err := strconv.ParseInt(maxUpload, 10, 64); err == nil && parsed > 0 {
			cfg.Report.MaxUploadBytes = parsed
		}
	}

	app, err := NewApp(cfg)
	if err != nil {
		log.Fatalf("failed to create app: %v", err)
	}

	srv, err := buildServer()
	if err != nil {
		log.Fatalf("failed to build server: %v", err)
	}

	app.SetupRoutes(srv.Router())

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	go func() {
		log.Printf("Starting server on http://%s", addr)
		log.Printf("Report API: http://%s%s", addr, cfg.Report.BasePath)
		log.Printf("Upload UI: http://%s/", addr)
		if err := srv.Serve(addr); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func buildServer() (router.Server[*fiber.App], error) {
	viewCfg := router.NewSimpleViewConfig("./views").
		WithExt(".html").
		WithReload(true)

	engine, err := router.InitializeViewEngine(viewCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize view engine: %w", err)
	}

	srv := router.NewFiberAdapter(fiberAppInitializer(engine))

	return srv, nil
}

func fiberAppInitializer(engine fiber.Views) func(*fiber.App) *fiber.App {
	return func(*fiber.App) *fiber.App {
		fiberApp := fiber.New(fiber.Config{
			AppName:           "Disability Authorization Reports",
			PassLocalsToViews: true,
			Views:             engine,
		})

		fiberApp.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} ${method} ${path} ${latency}\n",
		}))
		fiberApp.Use(cors.New(cors.Config{
			AllowOrigins: "*",
			AllowMethods: "GET,POST,OPTIONS",
			AllowHeaders: "Content-Type,Authorization",
		}))

		return fiberApp
	}
}
