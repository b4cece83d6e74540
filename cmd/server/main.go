package main

import (
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/filmhall/cinema-booking/internal/cinema"
	"github.com/filmhall/cinema-booking/internal/config"
	"github.com/filmhall/cinema-booking/internal/handler"
	"github.com/filmhall/cinema-booking/internal/middleware"
	"github.com/filmhall/cinema-booking/internal/queue"
	"github.com/filmhall/cinema-booking/internal/router"
)

func main() {
	cfg := config.Load()

	// The manager owns all cinema state for the lifetime of this run.
	manager := cinema.NewManager()
	if cfg.SeedCatalog {
		n, err := manager.SeedDefaultCatalog()
		if err != nil {
			logrus.WithError(err).Fatal("failed to seed catalog")
		}
		logrus.Infof("seeded catalog with %d movies", n)
	}

	// Booking events are optional; without a broker the service is
	// fully functional.
	var publisher *queue.Publisher
	if cfg.EventsEnabled {
		publisher = queue.NewPublisher(cfg.RabbitURL)
		go queue.StartBookingLogConsumer(cfg.RabbitURL)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLogger())

	// Rate limiting degrades to a pass-through when Redis is absent.
	rdb := config.NewRedisClient()
	if rdb == nil {
		logrus.Warn("redis unavailable, rate limiting disabled")
	}
	e.Use(middleware.RateLimiter(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e,
		handler.NewMovieHandler(manager),
		handler.NewScreeningHandler(manager),
		handler.NewBookingHandler(manager, publisher),
	)

	addr := ":" + cfg.Port
	logrus.Infof("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		logrus.Fatal(err)
	}
}
