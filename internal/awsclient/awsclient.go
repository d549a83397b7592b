// Package awsclient builds the AWS SDK clients used by the cutover hook.
package awsclient

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/codedeploy"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/ecs-canary/ecs-canary/internal/config"
)

// Clients holds one client per AWS service the hook talks to.
type Clients struct {
	ELB        *elasticloadbalancingv2.Client
	ECS        *ecs.Client
	CodeDeploy *codedeploy.Client
	SSM        *ssm.Client
}

// LoadConfig loads the SDK configuration from the default chain, overridden by the region,
// static credentials and endpoint in cfg when set.
func LoadConfig(ctx context.Context, cfg config.AWS) (aws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error

	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	if cfg.AccessKeyID != "" || cfg.SecretAccessKey != "" {
		if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
			return aws.Config{}, fmt.Errorf("static credentials need both an access key id and a secret access key")
		}
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	if cfg.Endpoint != "" {
		opts = append(opts, awsconfig.WithBaseEndpoint(cfg.Endpoint))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("loading AWS config: %w", err)
	}

	return awsCfg, nil
}

// New creates the service clients from cfg.
func New(ctx context.Context, cfg config.AWS) (*Clients, error) {
	awsCfg, err := LoadConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return FromConfig(awsCfg), nil
}

// FromConfig creates the service clients from an already loaded SDK config.
func FromConfig(awsCfg aws.Config) *Clients {
	return &Clients{
		ELB:        elasticloadbalancingv2.NewFromConfig(awsCfg),
		ECS:        ecs.NewFromConfig(awsCfg),
		CodeDeploy: codedeploy.NewFromConfig(awsCfg),
		SSM:        ssm.NewFromConfig(awsCfg),
	}
}
