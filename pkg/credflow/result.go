package credflow

import (
	"github.com/tendant/cognito-flow/pkg/errors"
	"github.com/tendant/cognito-flow/pkg/session"
)

// Result is the outcome of one flow execution. Execute always returns a
// Result; failures are values, never panics across the gateway boundary.
type Result struct {
	Success bool

	// Payload carries the provider response for flows that do not
	// authenticate a user (sign-up receipt, user record, challenge data)
	Payload map[string]interface{}

	// Credentials is set only when an authentication-producing flow
	// succeeded with a full token set
	Credentials *session.CredentialBundle

	// ErrorResponse is set when Success is false
	ErrorResponse *errors.Error
}

func success(payload map[string]interface{}) Result {
	return Result{
		Success: true,
		Payload: payload,
	}
}

func successCredentials(bundle session.CredentialBundle) Result {
	return Result{
		Success:     true,
		Credentials: &bundle,
	}
}

func failure(err *errors.Error) Result {
	return Result{
		ErrorResponse: err,
	}
}
