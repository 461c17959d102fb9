package credflow

import (
	"github.com/tendant/cognito-flow/pkg/config"
	"github.com/tendant/cognito-flow/pkg/errors"
)

// flowTraits describes what a flow kind needs and produces. Exactly one
// flow is active per request; the table below is total over all kinds.
type flowTraits struct {
	// requiresSecretHash marks flows that send the keyed request signature
	requiresSecretHash bool

	// requiresAdmin marks flows that need admin credentials and a user pool id
	requiresAdmin bool

	// producesCredentials marks flows whose success yields a CredentialBundle
	producesCredentials bool
}

var flowTraitsByKind = map[Kind]flowTraits{
	KindSignUp:             {requiresSecretHash: true},
	KindAdminCreateUser:    {requiresAdmin: true},
	KindSignIn:             {requiresSecretHash: true, producesCredentials: true},
	KindAdminSignIn:        {requiresSecretHash: true, requiresAdmin: true, producesCredentials: true},
	KindConfirmSignUp:      {requiresSecretHash: true},
	KindAdminConfirmSignUp: {requiresAdmin: true},
	KindAdminVerifyEmail:   {requiresAdmin: true},
	KindChangePassword:     {requiresSecretHash: true, requiresAdmin: true},
	KindAdminGetUser:       {requiresAdmin: true},
	KindRefreshToken:       {requiresSecretHash: true, requiresAdmin: true, producesCredentials: true},
	KindRevokeToken:        {},
	KindPasswordlessSignIn: {requiresSecretHash: true, requiresAdmin: true, producesCredentials: true},
}

// selectFlow resolves a flow kind against the process configuration.
// Requesting an admin flow without admin context is a configuration
// failure, never a silent fallback to non-admin behavior.
func selectFlow(k Kind, cc config.ClientContext) (flowTraits, *errors.Error) {
	traits, ok := flowTraitsByKind[k]
	if !ok {
		return flowTraits{}, errors.Newf(errors.KindConfiguration, "unsupported flow kind: %s", k)
	}

	if traits.requiresAdmin {
		if !cc.HasAdminCredentials() {
			return flowTraits{}, errors.Newf(errors.KindConfiguration,
				"flow %s requires admin credentials and none are configured", k)
		}
		if cc.UserPoolID == "" {
			return flowTraits{}, errors.Newf(errors.KindConfiguration,
				"flow %s requires a user pool id and none is configured", k)
		}
	}

	return traits, nil
}
