package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "customers", cfg.CustomerTable)
	assert.Equal(t, "EmailIndex", cfg.EmailIndexName)
	assert.Equal(t, "UsernameIndex", cfg.UsernameIndexName)
	assert.Equal(t, "http://localhost:8000", cfg.OfflineEndpoint)
	assert.False(t, cfg.IsOffline)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DYNAMODB_CUSTOMER_TABLE", "customers-prod")
	t.Setenv("IS_OFFLINE", "true")
	t.Setenv("USER_POOL_ID", "us-east-1_testpool")
	t.Setenv("CLIENT_ID", "testclient")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "customers-prod", cfg.CustomerTable)
	assert.True(t, cfg.IsOffline)
	assert.True(t, cfg.IsProduction())
}

func TestValidate_ProductionRequiresCognito(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "USER_POOL_ID")
}
