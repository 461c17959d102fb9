package credflow

import (
	"github.com/tendant/cognito-flow/pkg/errors"
)

// Kind identifies one of the mutually exclusive credential flows
type Kind string

const (
	KindSignUp             Kind = "sign_up"
	KindAdminCreateUser    Kind = "admin_create_user"
	KindSignIn             Kind = "sign_in"
	KindAdminSignIn        Kind = "admin_sign_in"
	KindConfirmSignUp      Kind = "confirm_sign_up"
	KindAdminConfirmSignUp Kind = "admin_confirm_sign_up"
	KindAdminVerifyEmail   Kind = "admin_verify_email"
	KindChangePassword     Kind = "change_password"
	KindAdminGetUser       Kind = "admin_get_user"
	KindRefreshToken       Kind = "refresh_token"
	KindRevokeToken        Kind = "revoke_token"
	KindPasswordlessSignIn Kind = "passwordless_sign_in"
)

// Request is one credential flow invocation. Each flow kind is its own
// request type so that invalid field combinations are unrepresentable;
// every field a variant declares is required.
type Request interface {
	// Kind returns the flow this request invokes
	Kind() Kind

	validate() *errors.Error
}

// SignUpRequest registers a new user self-service; the provider sends a
// confirmation code to the email address (the username)
type SignUpRequest struct {
	Username string
	Password string
}

func (SignUpRequest) Kind() Kind { return KindSignUp }

func (r SignUpRequest) validate() *errors.Error {
	if r.Username == "" {
		return errors.New(errors.KindValidation, "username cannot be empty")
	}
	if r.Password == "" {
		return errors.New(errors.KindValidation, "password cannot be empty")
	}
	return nil
}

// AdminCreateUserRequest registers a user with admin credentials: the user
// is created with the welcome message suppressed, then the password is
// force-set as permanent. Two sequential provider calls; if the second
// fails the created user remains.
type AdminCreateUserRequest struct {
	Username string
	Password string
}

func (AdminCreateUserRequest) Kind() Kind { return KindAdminCreateUser }

func (r AdminCreateUserRequest) validate() *errors.Error {
	if r.Username == "" {
		return errors.New(errors.KindValidation, "username cannot be empty")
	}
	if r.Password == "" {
		return errors.New(errors.KindValidation, "password cannot be empty")
	}
	return nil
}

// SignInRequest authenticates a user with username and password
type SignInRequest struct {
	Username string
	Password string
}

func (SignInRequest) Kind() Kind { return KindSignIn }

func (r SignInRequest) validate() *errors.Error {
	if r.Username == "" {
		return errors.New(errors.KindValidation, "username cannot be empty")
	}
	if r.Password == "" {
		return errors.New(errors.KindValidation, "password cannot be empty")
	}
	return nil
}

// AdminSignInRequest authenticates a user through the admin-initiated
// password flow
type AdminSignInRequest struct {
	Username string
	Password string
}

func (AdminSignInRequest) Kind() Kind { return KindAdminSignIn }

func (r AdminSignInRequest) validate() *errors.Error {
	if r.Username == "" {
		return errors.New(errors.KindValidation, "username cannot be empty")
	}
	if r.Password == "" {
		return errors.New(errors.KindValidation, "password cannot be empty")
	}
	return nil
}

// ConfirmSignUpRequest consumes the confirmation code the provider sent
// during self-service sign-up
type ConfirmSignUpRequest struct {
	Username string
	Code     string
}

func (ConfirmSignUpRequest) Kind() Kind { return KindConfirmSignUp }

func (r ConfirmSignUpRequest) validate() *errors.Error {
	if r.Username == "" {
		return errors.New(errors.KindValidation, "username cannot be empty")
	}
	if r.Code == "" {
		return errors.New(errors.KindValidation, "confirmation code cannot be empty")
	}
	return nil
}

// AdminConfirmSignUpRequest confirms a user without a code, using admin
// credentials. Confirming does not mark the email verified; see
// AdminVerifyEmailRequest.
type AdminConfirmSignUpRequest struct {
	Username string
}

func (AdminConfirmSignUpRequest) Kind() Kind { return KindAdminConfirmSignUp }

func (r AdminConfirmSignUpRequest) validate() *errors.Error {
	if r.Username == "" {
		return errors.New(errors.KindValidation, "username cannot be empty")
	}
	return nil
}

// AdminVerifyEmailRequest marks the user's email attribute verified.
// Distinct from confirming sign-up; callers that want to fully activate a
// user without an email round-trip invoke both.
type AdminVerifyEmailRequest struct {
	Username string
}

func (AdminVerifyEmailRequest) Kind() Kind { return KindAdminVerifyEmail }

func (r AdminVerifyEmailRequest) validate() *errors.Error {
	if r.Username == "" {
		return errors.New(errors.KindValidation, "username cannot be empty")
	}
	return nil
}

// ChangePasswordRequest re-authenticates with the old password and only
// then force-sets the new one. The old-password check failing aborts the
// whole operation.
type ChangePasswordRequest struct {
	Username    string
	OldPassword string
	NewPassword string
}

func (ChangePasswordRequest) Kind() Kind { return KindChangePassword }

func (r ChangePasswordRequest) validate() *errors.Error {
	if r.Username == "" {
		return errors.New(errors.KindValidation, "username cannot be empty")
	}
	if r.OldPassword == "" {
		return errors.New(errors.KindValidation, "old password cannot be empty")
	}
	if r.NewPassword == "" {
		return errors.New(errors.KindValidation, "new password cannot be empty")
	}
	return nil
}

// AdminGetUserRequest looks up a user's provider record
type AdminGetUserRequest struct {
	Username string
}

func (AdminGetUserRequest) Kind() Kind { return KindAdminGetUser }

func (r AdminGetUserRequest) validate() *errors.Error {
	if r.Username == "" {
		return errors.New(errors.KindValidation, "username cannot be empty")
	}
	return nil
}

// RefreshTokenRequest exchanges a refresh token for fresh credentials.
// The secret hash for this flow is keyed by the user's stable subject
// identifier, not the username; session.Subject extracts it from a bundle.
type RefreshTokenRequest struct {
	Subject      string
	RefreshToken string
}

func (RefreshTokenRequest) Kind() Kind { return KindRefreshToken }

func (r RefreshTokenRequest) validate() *errors.Error {
	if r.Subject == "" {
		return errors.New(errors.KindValidation, "subject cannot be empty")
	}
	if r.RefreshToken == "" {
		return errors.New(errors.KindValidation, "refresh token cannot be empty")
	}
	return nil
}

// RevokeTokenRequest invalidates a refresh token and the access tokens
// issued from it
type RevokeTokenRequest struct {
	RefreshToken string
}

func (RevokeTokenRequest) Kind() Kind { return KindRevokeToken }

func (r RevokeTokenRequest) validate() *errors.Error {
	if r.RefreshToken == "" {
		return errors.New(errors.KindValidation, "refresh token cannot be empty")
	}
	return nil
}

// PasswordlessSignInRequest starts the custom-challenge flow. It requires
// a challenge configuration on the user pool that this gateway does not
// manage; without one the provider rejects the call.
type PasswordlessSignInRequest struct {
	Username string
}

func (PasswordlessSignInRequest) Kind() Kind { return KindPasswordlessSignIn }

func (r PasswordlessSignInRequest) validate() *errors.Error {
	if r.Username == "" {
		return errors.New(errors.KindValidation, "username cannot be empty")
	}
	return nil
}
