package parameters

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/ecs-canary/ecs-canary/internal/config"
	"github.com/ecs-canary/ecs-canary/internal/cutover"
	"github.com/sirupsen/logrus"
)

// API is the part of the SSM client used to read parameters
type API interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// Store reads single values from the SSM parameter store
type Store struct {
	api            API
	log            logrus.FieldLogger
	withDecryption bool
}

// Option is a function that can be used to set custom options for the store
type Option func(*Store)

// WithDecryption makes the store decrypt SecureString parameters
func WithDecryption(decrypt bool) Option {
	return func(s *Store) {
		s.withDecryption = decrypt
	}
}

func New(api API, log logrus.FieldLogger, opts ...Option) *Store {
	s := &Store{
		api: api,
		log: log,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Get returns the value of the named parameter
func (s *Store) Get(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("parameter name must not be empty")
	}

	out, err := s.api.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(s.withDecryption),
	})
	if err != nil {
		return "", fmt.Errorf("getting parameter %q: %w", name, err)
	}

	if out.Parameter == nil || aws.ToString(out.Parameter.Value) == "" {
		return "", fmt.Errorf("parameter %q has no value", name)
	}

	s.log.WithField("parameter", name).Debug("resolved parameter")
	return aws.ToString(out.Parameter.Value), nil
}

// Resolve looks up the cutover configuration. Lookups run in order and stop at the first
// failure.
func (s *Store) Resolve(ctx context.Context, names config.Parameters) (cutover.Config, error) {
	cfg := cutover.Config{}

	for _, p := range []struct {
		name string
		dst  *string
	}{
		{names.Cluster, &cfg.Cluster},
		{names.Service, &cfg.Service},
		{names.LatestRule, &cfg.LatestRuleARN},
		{names.StableRule, &cfg.StableRuleARN},
	} {
		value, err := s.Get(ctx, p.name)
		if err != nil {
			return cutover.Config{}, err
		}
		*p.dst = value
	}

	s.log.WithFields(logrus.Fields{
		"cluster":         cfg.Cluster,
		"service":         cfg.Service,
		"latest_rule_arn": cfg.LatestRuleARN,
		"stable_rule_arn": cfg.StableRuleARN,
	}).Info("resolved cutover configuration")
	return cfg, nil
}
