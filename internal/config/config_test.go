package config_test

import (
	"testing"

	"github.com/ecs-canary/ecs-canary/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHook(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.NewHook(nil)
		require.NoError(t, err)
		assert.Equal(t, "mainClusterArn", cfg.Parameters.Cluster)
		assert.Equal(t, "stableServiceName", cfg.Parameters.Service)
		assert.Equal(t, "latestListenerRuleArn", cfg.Parameters.LatestRule)
		assert.Equal(t, "stableListenerRuleArn", cfg.Parameters.StableRule)
		assert.False(t, cfg.Parameters.WithDecryption)
		assert.Equal(t, int32(1), cfg.Cutover.LatestPriority)
		assert.Equal(t, int32(10), cfg.Cutover.StablePriority)
		assert.Equal(t, "json", cfg.Logger.Format)
		assert.Equal(t, "info", cfg.Logger.Level)
		assert.False(t, cfg.Cutover.OneShot())
	})

	t.Run("environment fallbacks", func(t *testing.T) {
		t.Setenv("AWS_REGION", "eu-north-1")
		t.Setenv("CLUSTER_PARAMETER", "otherCluster")
		t.Setenv("STABLE_PRIORITY", "20")
		t.Setenv("PARAMETER_WITH_DECRYPTION", "true")
		t.Setenv("LOG_FORMAT", "text")

		cfg, err := config.NewHook(nil)
		require.NoError(t, err)
		assert.Equal(t, "eu-north-1", cfg.AWS.Region)
		assert.Equal(t, "otherCluster", cfg.Parameters.Cluster)
		assert.Equal(t, int32(20), cfg.Cutover.StablePriority)
		assert.True(t, cfg.Parameters.WithDecryption)
		assert.Equal(t, "text", cfg.Logger.Format)
	})

	t.Run("invalid numeric environment value keeps the default", func(t *testing.T) {
		t.Setenv("LATEST_PRIORITY", "first")

		cfg, err := config.NewHook(nil)
		require.NoError(t, err)
		assert.Equal(t, int32(1), cfg.Cutover.LatestPriority)
	})

	t.Run("flags win over environment", func(t *testing.T) {
		t.Setenv("SERVICE_PARAMETER", "fromEnv")

		cfg, err := config.NewHook([]string{"--service-parameter", "fromFlag", "--latest-priority=3"})
		require.NoError(t, err)
		assert.Equal(t, "fromFlag", cfg.Parameters.Service)
		assert.Equal(t, int32(3), cfg.Cutover.LatestPriority)
	})

	t.Run("one-shot mode", func(t *testing.T) {
		cfg, err := config.NewHook([]string{"--deployment-id", "d-1", "--execution-id", "e-1"})
		require.NoError(t, err)
		assert.True(t, cfg.Cutover.OneShot())
	})

	t.Run("deployment id without execution id", func(t *testing.T) {
		_, err := config.NewHook([]string{"--deployment-id", "d-1"})
		assert.EqualError(t, err, "--deployment-id and --execution-id must be given together")
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := config.NewHook([]string{"--nope"})
		assert.Error(t, err)
	})
}

func TestNewRace(t *testing.T) {
	t.Setenv("PORT", "8080")

	cfg, err := config.NewRace([]string{"--bind-host", "127.0.0.1"})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Race.Addr())
	assert.Equal(t, "json", cfg.Logger.Format)
}
