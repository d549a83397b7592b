// Package cutover implements the CodeDeploy lifecycle hook that moves traffic from the stable
// ECS service to the latest one.
//
// A cutover runs three calls in order: the latest listener rule is given the primary priority
// and the stable rule the secondary one, the stable service is scaled to zero tasks, and the
// outcome is reported to CodeDeploy. A failure in either of the first two calls stops the
// sequence and is reported as Failed. Nothing is rolled back.
package cutover

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
	"github.com/ecs-canary/ecs-canary/internal/lifecycle"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	DefaultLatestPriority int32 = 1
	DefaultStablePriority int32 = 10

	// maxRulePriority is the highest priority an application load balancer accepts
	maxRulePriority int32 = 50000
)

var ErrInvalidEvent = errors.New("invalid lifecycle event")

// RuleAPI is the part of the ELBv2 client used to reorder listener rules
type RuleAPI interface {
	SetRulePriorities(ctx context.Context, params *elasticloadbalancingv2.SetRulePrioritiesInput, optFns ...func(*elasticloadbalancingv2.Options)) (*elasticloadbalancingv2.SetRulePrioritiesOutput, error)
}

// ServiceAPI is the part of the ECS client used to scale the stable service
type ServiceAPI interface {
	UpdateService(ctx context.Context, params *ecs.UpdateServiceInput, optFns ...func(*ecs.Options)) (*ecs.UpdateServiceOutput, error)
}

// Reporter sends the outcome of a hook execution to the deployment orchestrator
type Reporter interface {
	ReportStatus(ctx context.Context, deploymentID, executionID string, status lifecycle.Status) error
}

// Event is the payload CodeDeploy invokes a lifecycle hook with
type Event struct {
	DeploymentID                  string `json:"DeploymentId"`
	LifecycleEventHookExecutionID string `json:"LifecycleEventHookExecutionId"`
}

func (e Event) Validate() error {
	if e.DeploymentID == "" {
		return fmt.Errorf("%w: missing DeploymentId", ErrInvalidEvent)
	}
	if e.LifecycleEventHookExecutionID == "" {
		return fmt.Errorf("%w: missing LifecycleEventHookExecutionId", ErrInvalidEvent)
	}
	return nil
}

// Config holds the resources a cutover acts on. It is resolved once at startup.
type Config struct {
	Cluster       string
	Service       string
	LatestRuleARN string
	StableRuleARN string
}

func (c Config) Validate() error {
	switch {
	case c.Cluster == "":
		return fmt.Errorf("cluster must not be empty")
	case c.Service == "":
		return fmt.Errorf("service must not be empty")
	case c.LatestRuleARN == "":
		return fmt.Errorf("latest rule ARN must not be empty")
	case c.StableRuleARN == "":
		return fmt.Errorf("stable rule ARN must not be empty")
	case c.LatestRuleARN == c.StableRuleARN:
		return fmt.Errorf("latest and stable rule ARNs must differ")
	}
	return nil
}

// Step identifies one of the mutating calls of a cutover
type Step string

const (
	StepSwapPriorities Step = "swap-priorities"
	StepScaleDown      Step = "scale-down"
)

// Result is the outcome of a single mutating call
type Result struct {
	Step Step
	Err  error
}

func (r Result) OK() bool {
	return r.Err == nil
}

// Report describes how an invocation ended. The status is what was sent to CodeDeploy.
type Report struct {
	DeploymentID                  string           `json:"DeploymentId"`
	LifecycleEventHookExecutionID string           `json:"LifecycleEventHookExecutionId"`
	Status                        lifecycle.Status `json:"Status"`
	FailedStep                    Step             `json:"FailedStep,omitempty"`
	CompletedSteps                []Step           `json:"CompletedSteps"`
}

type Hook struct {
	cfg            Config
	rules          RuleAPI
	services       ServiceAPI
	reporter       Reporter
	log            logrus.FieldLogger
	latestPriority int32
	stablePriority int32
	outcomes       metric.Int64Counter
}

// Option is a function that can be used to set custom options for the hook
type Option func(*Hook)

// WithPriorities sets the priorities given to the latest and stable listener rules
func WithPriorities(latest, stable int32) Option {
	return func(h *Hook) {
		h.latestPriority = latest
		h.stablePriority = stable
	}
}

// WithOutcomeCounter counts reported outcomes by status and failed step
func WithOutcomeCounter(counter metric.Int64Counter) Option {
	return func(h *Hook) {
		h.outcomes = counter
	}
}

func New(cfg Config, rules RuleAPI, services ServiceAPI, reporter Reporter, log logrus.FieldLogger, opts ...Option) (*Hook, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cutover config: %w", err)
	}

	h := &Hook{
		cfg:            cfg,
		rules:          rules,
		services:       services,
		reporter:       reporter,
		log:            log,
		latestPriority: DefaultLatestPriority,
		stablePriority: DefaultStablePriority,
	}

	for _, opt := range opts {
		opt(h)
	}

	if err := validPriorities(h.latestPriority, h.stablePriority); err != nil {
		return nil, fmt.Errorf("invalid cutover config: %w", err)
	}

	return h, nil
}

func validPriorities(latest, stable int32) error {
	for _, p := range []int32{latest, stable} {
		if p < 1 || p > maxRulePriority {
			return fmt.Errorf("rule priority %d out of range 1-%d", p, maxRulePriority)
		}
	}
	if latest == stable {
		return fmt.Errorf("latest and stable rule priorities must differ, both are %d", latest)
	}
	return nil
}

// Handle runs a cutover for the event and reports the outcome. Step failures are reported as
// Failed and never returned; the only returned errors are an invalid event, which cannot be
// reported, and a failure of the report itself.
func (h *Hook) Handle(ctx context.Context, event Event) (Report, error) {
	if err := event.Validate(); err != nil {
		return Report{}, err
	}

	log := h.log.WithFields(logrus.Fields{
		"deployment_id": event.DeploymentID,
		"execution_id":  event.LifecycleEventHookExecutionID,
	})

	report := Report{
		DeploymentID:                  event.DeploymentID,
		LifecycleEventHookExecutionID: event.LifecycleEventHookExecutionID,
		Status:                        lifecycle.StatusSucceeded,
		CompletedSteps:                []Step{},
	}

	for _, step := range []func(context.Context) Result{h.swapPriorities, h.scaleDown} {
		res := step(ctx)
		if !res.OK() {
			report.Status = lifecycle.StatusFailed
			report.FailedStep = res.Step
			log.WithError(res.Err).WithFields(logrus.Fields{
				"failed_step":     res.Step,
				"completed_steps": report.CompletedSteps,
			}).Error("cutover failed")
			break
		}
		report.CompletedSteps = append(report.CompletedSteps, res.Step)
	}

	if err := h.reporter.ReportStatus(ctx, event.DeploymentID, event.LifecycleEventHookExecutionID, report.Status); err != nil {
		return report, fmt.Errorf("reporting %s status: %w", report.Status, err)
	}

	h.recordOutcome(ctx, report)
	log.WithField("status", report.Status).Info("cutover hook done")
	return report, nil
}

func (h *Hook) swapPriorities(ctx context.Context) Result {
	_, err := h.rules.SetRulePriorities(ctx, &elasticloadbalancingv2.SetRulePrioritiesInput{
		RulePriorities: []types.RulePriorityPair{
			{RuleArn: aws.String(h.cfg.LatestRuleARN), Priority: aws.Int32(h.latestPriority)},
			{RuleArn: aws.String(h.cfg.StableRuleARN), Priority: aws.Int32(h.stablePriority)},
		},
	})
	if err != nil {
		err = fmt.Errorf("setting rule priorities: %w", err)
	}
	return Result{Step: StepSwapPriorities, Err: err}
}

func (h *Hook) scaleDown(ctx context.Context) Result {
	_, err := h.services.UpdateService(ctx, &ecs.UpdateServiceInput{
		Cluster:      aws.String(h.cfg.Cluster),
		Service:      aws.String(h.cfg.Service),
		DesiredCount: aws.Int32(0),
	})
	if err != nil {
		err = fmt.Errorf("scaling service %s to zero: %w", h.cfg.Service, err)
	}
	return Result{Step: StepScaleDown, Err: err}
}

func (h *Hook) recordOutcome(ctx context.Context, report Report) {
	if h.outcomes == nil {
		return
	}
	h.outcomes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("status", string(report.Status)),
		attribute.String("failed_step", string(report.FailedStep)),
	))
}
