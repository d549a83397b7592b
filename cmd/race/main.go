package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ecs-canary/ecs-canary/internal/config"
	"github.com/ecs-canary/ecs-canary/internal/logger"
	"github.com/ecs-canary/ecs-canary/internal/metrics"
	"github.com/ecs-canary/ecs-canary/internal/race"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.NewRace(os.Args[1:])
	if err != nil {
		logrus.WithError(err).Fatal("parsing configuration")
	}

	log, err := logger.New(cfg.Logger, os.Stdout)
	if err != nil {
		logrus.WithError(err).Fatal("setting up logger")
	}

	m, err := metrics.New("github.com/ecs-canary/ecs-canary/race")
	if err != nil {
		log.WithError(err).Fatal("setting up metrics")
	}

	requestMetrics, err := race.NewMetrics(m.Meter)
	if err != nil {
		log.WithError(err).Fatal("setting up request metrics")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router := race.NewRouter(log.WithField("component", "http"), requestMetrics, m.Handler())
	if err := race.NewServer(cfg.Race.Addr(), router, log).Run(ctx); err != nil {
		log.WithError(err).Fatal("race server stopped")
	}
}
