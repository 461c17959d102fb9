package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendant/cognito-flow/pkg/errors"
)

func TestLoad(t *testing.T) {
	t.Setenv("COGNITO_CLIENT_ID", "client-1")
	t.Setenv("COGNITO_CLIENT_SECRET", "secret-1")
	t.Setenv("COGNITO_REGION", "eu-west-1")
	t.Setenv("COGNITO_USER_POOL_ID", "eu-west-1_pool")

	cc, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "client-1", cc.ClientID)
	assert.Equal(t, "secret-1", cc.ClientSecret)
	assert.Equal(t, "eu-west-1", cc.Region)
	assert.Equal(t, "eu-west-1_pool", cc.UserPoolID)
	assert.False(t, cc.HasAdminCredentials())
}

func TestLoadAdminCredentials(t *testing.T) {
	t.Setenv("COGNITO_CLIENT_ID", "client-1")
	t.Setenv("COGNITO_CLIENT_SECRET", "secret-1")
	t.Setenv("COGNITO_ADMIN_ACCESS_KEY", "AKIAEXAMPLE")
	t.Setenv("COGNITO_ADMIN_SECRET_KEY", "shhh")

	cc, err := Load()
	require.NoError(t, err)
	assert.True(t, cc.HasAdminCredentials())
	assert.Equal(t, "AKIAEXAMPLE", cc.Admin.AccessKey)
	assert.Empty(t, cc.Admin.SessionToken)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("COGNITO_CLIENT_ID", "client-1")
	t.Setenv("COGNITO_CLIENT_SECRET", "secret-1")

	cc, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", cc.Region)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cc   ClientContext
		ok   bool
	}{
		{
			name: "valid",
			cc:   ClientContext{ClientID: "c", ClientSecret: "s", Region: "us-east-1"},
			ok:   true,
		},
		{
			name: "missing client id",
			cc:   ClientContext{ClientSecret: "s", Region: "us-east-1"},
		},
		{
			name: "missing client secret",
			cc:   ClientContext{ClientID: "c", Region: "us-east-1"},
		},
		{
			name: "missing region",
			cc:   ClientContext{ClientID: "c", ClientSecret: "s"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cc.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsKind(err, errors.KindConfiguration))
		})
	}
}
