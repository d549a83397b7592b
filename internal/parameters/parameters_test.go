package parameters_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/ecs-canary/ecs-canary/internal/config"
	"github.com/ecs-canary/ecs-canary/internal/cutover"
	"github.com/ecs-canary/ecs-canary/internal/parameters"
	"github.com/ecs-canary/ecs-canary/internal/test"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var names = config.Parameters{
	Cluster:    "mainClusterArn",
	Service:    "stableServiceName",
	LatestRule: "latestListenerRuleArn",
	StableRule: "stableListenerRuleArn",
}

func input(name string, decrypt bool) *ssm.GetParameterInput {
	return &ssm.GetParameterInput{Name: aws.String(name), WithDecryption: aws.Bool(decrypt)}
}

func output(value string) *ssm.GetParameterOutput {
	return &ssm.GetParameterOutput{Parameter: &types.Parameter{Value: aws.String(value)}}
}

func TestStore_Get(t *testing.T) {
	ctx := context.Background()
	log, _ := logrustest.NewNullLogger()

	t.Run("value", func(t *testing.T) {
		api := parameters.NewMockAPI(t)
		api.EXPECT().GetParameter(mock.Anything, input("mainClusterArn", false)).Return(output("arn:cluster"), nil).Once()

		value, err := parameters.New(api, log).Get(ctx, "mainClusterArn")
		require.NoError(t, err)
		assert.Equal(t, "arn:cluster", value)
	})

	t.Run("with decryption", func(t *testing.T) {
		api := parameters.NewMockAPI(t)
		api.EXPECT().GetParameter(mock.Anything, input("secret", true)).Return(output("value"), nil).Once()

		_, err := parameters.New(api, log, parameters.WithDecryption(true)).Get(ctx, "secret")
		assert.NoError(t, err)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := parameters.New(parameters.NewMockAPI(t), log).Get(ctx, "")
		assert.EqualError(t, err, "parameter name must not be empty")
	})

	t.Run("api error", func(t *testing.T) {
		apiErr := &types.ParameterNotFound{Message: aws.String("not found")}
		api := parameters.NewMockAPI(t)
		api.EXPECT().GetParameter(mock.Anything, mock.Anything).Return(nil, apiErr).Once()

		_, err := parameters.New(api, log).Get(ctx, "missing")
		var notFound *types.ParameterNotFound
		assert.True(t, errors.As(err, &notFound))
		assert.ErrorContains(t, err, `getting parameter "missing"`)
	})

	t.Run("no value", func(t *testing.T) {
		api := parameters.NewMockAPI(t)
		api.EXPECT().GetParameter(mock.Anything, mock.Anything).Return(&ssm.GetParameterOutput{}, nil).Once()

		_, err := parameters.New(api, log).Get(ctx, "empty")
		assert.EqualError(t, err, `parameter "empty" has no value`)
	})
}

func TestStore_Resolve(t *testing.T) {
	ctx := context.Background()
	log, _ := logrustest.NewNullLogger()

	t.Run("all parameters", func(t *testing.T) {
		api := parameters.NewMockAPI(t)
		api.EXPECT().GetParameter(mock.Anything, input("mainClusterArn", false)).Return(output("arn:cluster"), nil).Once()
		api.EXPECT().GetParameter(mock.Anything, input("stableServiceName", false)).Return(output("stable"), nil).Once()
		api.EXPECT().GetParameter(mock.Anything, input("latestListenerRuleArn", false)).Return(output("arn:latest"), nil).Once()
		api.EXPECT().GetParameter(mock.Anything, input("stableListenerRuleArn", false)).Return(output("arn:stable"), nil).Once()

		cfg, err := parameters.New(api, log).Resolve(ctx, names)
		require.NoError(t, err)
		assert.Equal(t, cutover.Config{
			Cluster:       "arn:cluster",
			Service:       "stable",
			LatestRuleARN: "arn:latest",
			StableRuleARN: "arn:stable",
		}, cfg)
	})

	t.Run("stops at the first missing parameter", func(t *testing.T) {
		api := parameters.NewMockAPI(t)
		api.EXPECT().GetParameter(mock.Anything, input("mainClusterArn", false)).Return(output("arn:cluster"), nil).Once()
		api.EXPECT().GetParameter(mock.Anything, input("stableServiceName", false)).Return(nil, errors.New("not found")).Once()

		cfg, err := parameters.New(api, log).Resolve(ctx, names)
		assert.EqualError(t, err, `getting parameter "stableServiceName": not found`)
		assert.Equal(t, cutover.Config{}, cfg)
	})
}

func TestStore_Get_ssmClient(t *testing.T) {
	ctx := context.Background()
	log, _ := logrustest.NewNullLogger()

	srv := test.NewHttpServerWithHandlers(t, []http.HandlerFunc{
		func(w http.ResponseWriter, r *http.Request) {
			req := test.DecodeJSONRequest(t, r)
			assert.Equal(t, "AmazonSSM.GetParameter", req.Target)
			assert.Equal(t, "mainClusterArn", req.Body["Name"])
			test.WriteJSONResponse(w, http.StatusOK, `{"Parameter":{"Name":"mainClusterArn","Type":"String","Value":"arn:aws:ecs:eu-west-1:123456789012:cluster/main","Version":1}}`)
		},
		func(w http.ResponseWriter, r *http.Request) {
			test.WriteJSONResponse(w, http.StatusBadRequest, `{"__type":"ParameterNotFound","message":"Parameter stableServiceName not found."}`)
		},
	})

	store := parameters.New(ssm.NewFromConfig(test.AWSConfig(srv.URL)), log)

	value, err := store.Get(ctx, "mainClusterArn")
	require.NoError(t, err)
	assert.Equal(t, "arn:aws:ecs:eu-west-1:123456789012:cluster/main", value)

	_, err = store.Get(ctx, "stableServiceName")
	var notFound *types.ParameterNotFound
	assert.True(t, errors.As(err, &notFound))
}
