package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/ecs-canary/ecs-canary/internal/awsclient"
	"github.com/ecs-canary/ecs-canary/internal/config"
	"github.com/ecs-canary/ecs-canary/internal/cutover"
	"github.com/ecs-canary/ecs-canary/internal/lifecycle"
	"github.com/ecs-canary/ecs-canary/internal/logger"
	"github.com/ecs-canary/ecs-canary/internal/metrics"
	"github.com/ecs-canary/ecs-canary/internal/parameters"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/metric"
)

func main() {
	ctx := context.Background()
	cfg, err := config.NewHook(os.Args[1:])
	if err != nil {
		logrus.WithError(err).Fatal("parsing configuration")
	}

	log, err := logger.New(cfg.Logger, os.Stdout)
	if err != nil {
		logrus.WithError(err).Fatal("setting up logger")
	}

	m, err := metrics.New("github.com/ecs-canary/ecs-canary/cutover-hook")
	if err != nil {
		log.WithError(err).Fatal("setting up metrics")
	}

	outcomes, err := m.Meter.Int64Counter("cutover_outcomes", metric.WithDescription("reported cutover outcomes"))
	if err != nil {
		log.Fatalf("creating outcome counter: %v", err)
	}

	if cfg.MetricsBindAddress != "" {
		go func() {
			log.WithField("addr", cfg.MetricsBindAddress).Info("serving metrics")
			if err := http.ListenAndServe(cfg.MetricsBindAddress, m.Handler()); err != nil {
				log.WithError(err).Error("metrics listener stopped")
			}
		}()
	}

	clients, err := awsclient.New(ctx, cfg.AWS)
	if err != nil {
		log.WithError(err).Fatal("setting up AWS clients")
	}

	store := parameters.New(clients.SSM, log.WithField("component", "parameters"), parameters.WithDecryption(cfg.Parameters.WithDecryption))
	cutoverCfg, err := store.Resolve(ctx, cfg.Parameters)
	if err != nil {
		log.WithError(err).Fatal("resolving cutover configuration")
	}

	hook, err := cutover.New(
		cutoverCfg,
		clients.ELB,
		clients.ECS,
		lifecycle.New(clients.CodeDeploy, log.WithField("component", "lifecycle"), m.Errors),
		log.WithField("component", "cutover"),
		cutover.WithPriorities(cfg.Cutover.LatestPriority, cfg.Cutover.StablePriority),
		cutover.WithOutcomeCounter(outcomes),
	)
	if err != nil {
		log.WithError(err).Fatal("setting up cutover hook")
	}

	if cfg.Cutover.OneShot() {
		event := cutover.Event{
			DeploymentID:                  cfg.Cutover.DeploymentID,
			LifecycleEventHookExecutionID: cfg.Cutover.ExecutionID,
		}
		report, err := handler(hook, log)(ctx, event)
		if err != nil {
			log.WithError(err).Fatal("cutover hook failed")
		}
		log.WithFields(logrus.Fields{
			"status":          report.Status,
			"failed_step":     report.FailedStep,
			"completed_steps": report.CompletedSteps,
		}).Info("one-shot cutover finished")
		return
	}

	lambda.Start(handler(hook, log))
}

// handler tags every invocation with a request id, the Lambda one when available.
func handler(hook *cutover.Hook, log logrus.FieldLogger) func(context.Context, cutover.Event) (cutover.Report, error) {
	return func(ctx context.Context, event cutover.Event) (cutover.Report, error) {
		requestID := uuid.NewString()
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			requestID = lc.AwsRequestID
		}

		log.WithFields(logrus.Fields{
			"request_id":    requestID,
			"deployment_id": event.DeploymentID,
			"execution_id":  event.LifecycleEventHookExecutionID,
		}).Info("handling lifecycle event")
		return hook.Handle(ctx, event)
	}
}
