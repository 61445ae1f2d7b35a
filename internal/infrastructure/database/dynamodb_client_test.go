package database

import (
	"context"
	"testing"

	"cotizador_inprotar/internal/config"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDynamoDBConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults and static credentials", func(t *testing.T) {
		cfg, err := NewDynamoDBConfig(ctx, config.DynamoDBConfig{AccessKeyID: "local", SecretAccessKey: "local"})
		require.NoError(t, err)
		assert.Equal(t, "us-east-1", cfg.Region)

		creds, err := cfg.Credentials.Retrieve(ctx)
		require.NoError(t, err)
		assert.Equal(t, "local", creds.AccessKeyID)
	})

	t.Run("local endpoint", func(t *testing.T) {
		cfg, err := NewDynamoDBConfig(ctx, config.DynamoDBConfig{
			Region:          "sa-east-1",
			Endpoint:        "http://dynamodb:8000",
			AccessKeyID:     "local",
			SecretAccessKey: "local",
		})
		require.NoError(t, err)
		assert.Equal(t, "sa-east-1", cfg.Region)

		ep, err := cfg.EndpointResolverWithOptions.ResolveEndpoint(dynamodb.ServiceID, "sa-east-1")
		require.NoError(t, err)
		assert.Equal(t, "http://dynamodb:8000", ep.URL)
	})
}
