package lifecycle

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/codedeploy"
	"github.com/aws/aws-sdk-go-v2/service/codedeploy/types"
	"github.com/ecs-canary/ecs-canary/internal/metrics"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/metric"
)

// Status is the terminal outcome of a lifecycle hook execution
type Status string

const (
	StatusSucceeded Status = "Succeeded"
	StatusFailed    Status = "Failed"
)

// API is the part of the CodeDeploy client used for reporting
type API interface {
	PutLifecycleEventHookExecutionStatus(ctx context.Context, params *codedeploy.PutLifecycleEventHookExecutionStatusInput, optFns ...func(*codedeploy.Options)) (*codedeploy.PutLifecycleEventHookExecutionStatusOutput, error)
}

type Client struct {
	api    API
	log    logrus.FieldLogger
	errors metric.Int64Counter
}

func New(api API, log logrus.FieldLogger, errors metric.Int64Counter) *Client {
	return &Client{
		api:    api,
		log:    log,
		errors: errors,
	}
}

// ReportStatus tells CodeDeploy how the hook execution ended. Exactly one API call is made
// for a valid status.
func (c *Client) ReportStatus(ctx context.Context, deploymentID, executionID string, status Status) error {
	var eventStatus types.LifecycleEventStatus
	switch status {
	case StatusSucceeded:
		eventStatus = types.LifecycleEventStatusSucceeded
	case StatusFailed:
		eventStatus = types.LifecycleEventStatusFailed
	default:
		return fmt.Errorf("invalid lifecycle status: %q", status)
	}

	_, err := c.api.PutLifecycleEventHookExecutionStatus(ctx, &codedeploy.PutLifecycleEventHookExecutionStatusInput{
		DeploymentId:                  aws.String(deploymentID),
		LifecycleEventHookExecutionId: aws.String(executionID),
		Status:                        eventStatus,
	})
	if err != nil {
		return c.error(ctx, err, "putting lifecycle event hook execution status")
	}

	c.log.WithFields(logrus.Fields{
		"deployment_id": deploymentID,
		"execution_id":  executionID,
		"status":        status,
	}).Info("reported lifecycle event hook execution status")
	return nil
}

func (c *Client) error(ctx context.Context, err error, msg string) error {
	c.errors.Add(ctx, 1, metrics.Component("lifecycle"))
	c.log.WithError(err).Error(msg)
	return fmt.Errorf("%s: %w", msg, err)
}
