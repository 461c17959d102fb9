package config

import (
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/tendant/cognito-flow/pkg/errors"
)

// AdminCredentials holds the elevated provider credentials used by
// admin-initiated flows. All three fields come from the same credential
// issuance; SessionToken is empty for long-lived keys.
type AdminCredentials struct {
	AccessKey    string `env:"COGNITO_ADMIN_ACCESS_KEY"`
	SecretKey    string `env:"COGNITO_ADMIN_SECRET_KEY"`
	SessionToken string `env:"COGNITO_ADMIN_SESSION_TOKEN"`
}

// IsZero reports whether no admin credentials were configured
func (a AdminCredentials) IsZero() bool {
	return a.AccessKey == "" && a.SecretKey == ""
}

// ClientContext is the immutable per-process provider configuration.
// It is created once at startup and shared read-only by every gateway
// invocation; nothing mutates it after Load returns.
type ClientContext struct {
	ClientID     string `env:"COGNITO_CLIENT_ID"`
	ClientSecret string `env:"COGNITO_CLIENT_SECRET"`
	Region       string `env:"COGNITO_REGION" env-default:"us-east-1"`
	// Endpoint overrides the provider endpoint, for local emulators
	Endpoint   string `env:"COGNITO_ENDPOINT"`
	UserPoolID string `env:"COGNITO_USER_POOL_ID"`

	Admin AdminCredentials
}

// HasAdminCredentials reports whether admin-initiated flows can run.
// Admin flows also need the user pool id; both are checked by the
// flow selector before any network call.
func (c ClientContext) HasAdminCredentials() bool {
	return !c.Admin.IsZero()
}

// Validate checks the fields every flow depends on
func (c ClientContext) Validate() error {
	if c.ClientID == "" {
		return errors.New(errors.KindConfiguration, "client id cannot be empty")
	}
	if c.ClientSecret == "" {
		return errors.New(errors.KindConfiguration, "client secret cannot be empty")
	}
	if c.Region == "" {
		return errors.New(errors.KindConfiguration, "region cannot be empty")
	}
	return nil
}

// Load reads the ClientContext from the environment and validates it
func Load() (ClientContext, error) {
	var cc ClientContext
	if err := cleanenv.ReadEnv(&cc); err != nil {
		return ClientContext{}, errors.Wrap(err, errors.KindConfiguration, "failed to read environment")
	}
	if err := cc.Validate(); err != nil {
		return ClientContext{}, err
	}
	return cc, nil
}
