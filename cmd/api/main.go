package main

import (
	"log"
	"os"
	"time"

	"siyapi/controllers"
	"siyapi/dbhelper"
	"siyapi/engine"
	"siyapi/services"
	"siyapi/tasks"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         os.Getenv("SENTRY_DSN"),
		Environment: services.GetEnv("ENV", "local"),
		Release:     "siyapi@1.0.0",
		Debug:       false,
		// Set TracesSampleRate to 1.0 to capture 100%
		// of transactions for performance monitoring.
		// We recommend adjusting this value in production,
		TracesSampleRate: 1.0,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	defer sentry.Recover()
	defer sentry.Flush(2 * time.Second)

	db := dbhelper.SetupDB()

	asynqClient, err := tasks.NewClient()
	if err != nil {
		log.Fatalf("Failed to initialize asynq client: %v", err)
	}
	defer asynqClient.Close()

	paletteCache, err := services.NewPaletteCacheService(engine.NewHarmonyEngine())
	if err != nil {
		log.Fatalf("Failed to initialize palette cache: %v", err)
	}

	e := controllers.SetupServer(db, asynqClient, paletteCache)
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(3)))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	e.Logger.Fatal(e.Start(":8083"))
}
