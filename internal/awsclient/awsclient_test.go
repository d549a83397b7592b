package awsclient_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/ecs-canary/ecs-canary/internal/awsclient"
	"github.com/ecs-canary/ecs-canary/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("region, endpoint and static credentials", func(t *testing.T) {
		cfg, err := awsclient.LoadConfig(ctx, config.AWS{
			Region:          "eu-north-1",
			Endpoint:        "http://localhost:4566",
			AccessKeyID:     "test",
			SecretAccessKey: "secret",
		})
		require.NoError(t, err)
		assert.Equal(t, "eu-north-1", cfg.Region)
		assert.Equal(t, "http://localhost:4566", aws.ToString(cfg.BaseEndpoint))

		creds, err := cfg.Credentials.Retrieve(ctx)
		require.NoError(t, err)
		assert.Equal(t, "test", creds.AccessKeyID)
		assert.Equal(t, "secret", creds.SecretAccessKey)
	})

	t.Run("half of a static credential pair", func(t *testing.T) {
		_, err := awsclient.LoadConfig(ctx, config.AWS{AccessKeyID: "test"})
		assert.EqualError(t, err, "static credentials need both an access key id and a secret access key")
	})
}

func TestNew(t *testing.T) {
	clients, err := awsclient.New(context.Background(), config.AWS{
		Region:          "eu-north-1",
		AccessKeyID:     "test",
		SecretAccessKey: "secret",
	})
	require.NoError(t, err)
	assert.NotNil(t, clients.ELB)
	assert.NotNil(t, clients.ECS)
	assert.NotNil(t, clients.CodeDeploy)
	assert.NotNil(t, clients.SSM)
	assert.Equal(t, "eu-north-1", clients.SSM.Options().Region)
}
