package idp

import (
	"context"
	stderrors "errors"

	"github.com/aws/smithy-go"

	"github.com/tendant/cognito-flow/pkg/errors"
)

// NormalizeError converts a provider or transport error into a structured
// flow failure. The provider's declared error code picks the kind; anything
// unrecognized maps to KindUnknown with the raw code and message preserved.
func NormalizeError(err error) *errors.Error {
	if err == nil {
		return nil
	}

	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, context.Canceled) {
		return errors.Wrap(err, errors.KindTimeout, "identity provider call aborted by deadline")
	}

	var apiErr smithy.APIError
	if !stderrors.As(err, &apiErr) {
		return errors.Wrap(err, errors.KindUnknown, "identity provider call failed").
			WithDetail(err.Error())
	}

	detail := apiErr.ErrorCode() + ": " + apiErr.ErrorMessage()

	switch apiErr.ErrorCode() {
	case "UserNotFoundException":
		return errors.Wrap(err, errors.KindNotFound, "user not found").WithDetail(detail)
	case "NotAuthorizedException":
		return errors.Wrap(err, errors.KindUnauthorized, "invalid credentials").WithDetail(detail)
	case "UserNotConfirmedException":
		return errors.Wrap(err, errors.KindUnauthorized, "user is not confirmed").WithDetail(detail)
	case "PasswordResetRequiredException":
		return errors.Wrap(err, errors.KindUnauthorized, "password reset required").WithDetail(detail)
	case "UsernameExistsException", "AliasExistsException":
		return errors.Wrap(err, errors.KindConflict, "user already exists").WithDetail(detail)
	case "CodeMismatchException":
		return errors.Wrap(err, errors.KindValidation, "confirmation code does not match").WithDetail(detail)
	case "ExpiredCodeException":
		return errors.Wrap(err, errors.KindValidation, "confirmation code has expired").WithDetail(detail)
	case "InvalidParameterException":
		return errors.Wrap(err, errors.KindValidation, "invalid request parameter").WithDetail(detail)
	case "InvalidPasswordException":
		return errors.Wrap(err, errors.KindValidation, "password does not meet requirements").WithDetail(detail)
	case "TooManyRequestsException", "LimitExceededException", "TooManyFailedAttemptsException":
		return errors.Wrap(err, errors.KindRateLimited, "too many requests").WithDetail(detail)
	case "ResourceNotFoundException":
		return errors.Wrap(err, errors.KindConfiguration, "provider resource not found").WithDetail(detail)
	default:
		return errors.Wrapf(err, errors.KindUnknown, "identity provider error: %s", apiErr.ErrorCode()).
			WithDetail(detail)
	}
}
