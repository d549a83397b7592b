package config

import (
	"fmt"
	"os"
	"strconv"

	flag "github.com/spf13/pflag"
)

// AWS holds the settings used to build the SDK clients. Empty values fall back to the SDK's
// default chain.
type AWS struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

type Logger struct {
	Format string
	Level  string
}

// Parameters holds the names of the parameter store entries the cutover hook resolves at
// startup.
type Parameters struct {
	Cluster        string
	Service        string
	LatestRule     string
	StableRule     string
	WithDecryption bool
}

type Cutover struct {
	LatestPriority int32
	StablePriority int32

	// DeploymentID and ExecutionID switch the hook into one-shot mode when both are set.
	DeploymentID string
	ExecutionID  string
}

// OneShot returns true when the hook should handle a single event from the command line
// instead of serving Lambda invocations.
func (c Cutover) OneShot() bool {
	return c.DeploymentID != "" && c.ExecutionID != ""
}

type Race struct {
	BindHost string
	Port     string
}

func (r Race) Addr() string {
	return r.BindHost + ":" + r.Port
}

type Hook struct {
	AWS                AWS
	Logger             Logger
	Parameters         Parameters
	Cutover            Cutover
	MetricsBindAddress string
}

type RaceServer struct {
	Logger Logger
	Race   Race
}

// NewHook parses the cutover hook configuration from args, with environment fallbacks.
func NewHook(args []string) (*Hook, error) {
	cfg := &Hook{}
	fs := flag.NewFlagSet("cutover-hook", flag.ContinueOnError)

	fs.StringVar(&cfg.AWS.Region, "aws-region", os.Getenv("AWS_REGION"), "AWS region")
	fs.StringVar(&cfg.AWS.Endpoint, "aws-endpoint", os.Getenv("AWS_ENDPOINT_URL"), "Custom AWS endpoint, e.g. Localstack")
	fs.StringVar(&cfg.AWS.AccessKeyID, "aws-access-key-id", os.Getenv("AWS_ACCESS_KEY_ID"), "Static AWS access key id")
	fs.StringVar(&cfg.AWS.SecretAccessKey, "aws-secret-access-key", os.Getenv("AWS_SECRET_ACCESS_KEY"), "Static AWS secret access key")
	addLoggerFlags(fs, &cfg.Logger)
	fs.StringVar(&cfg.Parameters.Cluster, "cluster-parameter", envOrDefault("CLUSTER_PARAMETER", "mainClusterArn"), "Parameter holding the ECS cluster ARN")
	fs.StringVar(&cfg.Parameters.Service, "service-parameter", envOrDefault("SERVICE_PARAMETER", "stableServiceName"), "Parameter holding the stable ECS service name")
	fs.StringVar(&cfg.Parameters.LatestRule, "latest-rule-parameter", envOrDefault("LATEST_RULE_PARAMETER", "latestListenerRuleArn"), "Parameter holding the latest listener rule ARN")
	fs.StringVar(&cfg.Parameters.StableRule, "stable-rule-parameter", envOrDefault("STABLE_RULE_PARAMETER", "stableListenerRuleArn"), "Parameter holding the stable listener rule ARN")
	fs.BoolVar(&cfg.Parameters.WithDecryption, "parameter-with-decryption", envBool("PARAMETER_WITH_DECRYPTION", false), "Decrypt SecureString parameters")
	fs.Int32Var(&cfg.Cutover.LatestPriority, "latest-priority", envInt32("LATEST_PRIORITY", 1), "Priority given to the latest listener rule")
	fs.Int32Var(&cfg.Cutover.StablePriority, "stable-priority", envInt32("STABLE_PRIORITY", 10), "Priority given to the stable listener rule")
	fs.StringVar(&cfg.Cutover.DeploymentID, "deployment-id", "", "Run once for this deployment id instead of serving Lambda invocations")
	fs.StringVar(&cfg.Cutover.ExecutionID, "execution-id", "", "Lifecycle event hook execution id used with --deployment-id")
	fs.StringVar(&cfg.MetricsBindAddress, "metrics-bind-address", os.Getenv("METRICS_BIND_ADDRESS"), "Serve /metrics on this address, disabled when empty")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if (cfg.Cutover.DeploymentID == "") != (cfg.Cutover.ExecutionID == "") {
		return nil, fmt.Errorf("--deployment-id and --execution-id must be given together")
	}

	return cfg, nil
}

// NewRace parses the race demo server configuration from args, with environment fallbacks.
func NewRace(args []string) (*RaceServer, error) {
	cfg := &RaceServer{}
	fs := flag.NewFlagSet("race", flag.ContinueOnError)

	addLoggerFlags(fs, &cfg.Logger)
	fs.StringVar(&cfg.Race.BindHost, "bind-host", os.Getenv("BIND_HOST"), "Bind host")
	fs.StringVar(&cfg.Race.Port, "port", envOrDefault("PORT", "5000"), "Port to listen on")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return cfg, nil
}

func addLoggerFlags(fs *flag.FlagSet, cfg *Logger) {
	fs.StringVar(&cfg.Format, "log-format", envOrDefault("LOG_FORMAT", "json"), "which log format to use")
	fs.StringVar(&cfg.Level, "log-level", envOrDefault("LOG_LEVEL", "info"), "which log level to output")
}

func envOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func envInt32(key string, fallback int32) int32 {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(i)
		}
	}
	return fallback
}
