package idp

import (
	"context"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendant/cognito-flow/pkg/errors"
)

func TestNormalizeErrorNil(t *testing.T) {
	assert.Nil(t, NormalizeError(nil))
}

func TestNormalizeErrorCategories(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errors.Kind
	}{
		{
			name: "user not found",
			err:  &types.UserNotFoundException{Message: aws.String("User does not exist.")},
			want: errors.KindNotFound,
		},
		{
			name: "invalid credentials",
			err:  &types.NotAuthorizedException{Message: aws.String("Incorrect username or password.")},
			want: errors.KindUnauthorized,
		},
		{
			name: "user not confirmed",
			err:  &types.UserNotConfirmedException{Message: aws.String("User is not confirmed.")},
			want: errors.KindUnauthorized,
		},
		{
			name: "duplicate registration",
			err:  &types.UsernameExistsException{Message: aws.String("User already exists")},
			want: errors.KindConflict,
		},
		{
			name: "alias conflict",
			err:  &types.AliasExistsException{Message: aws.String("An account with the email already exists.")},
			want: errors.KindConflict,
		},
		{
			name: "code mismatch",
			err:  &types.CodeMismatchException{Message: aws.String("Invalid verification code provided")},
			want: errors.KindValidation,
		},
		{
			name: "expired code",
			err:  &types.ExpiredCodeException{Message: aws.String("Invalid code provided, please request a code again.")},
			want: errors.KindValidation,
		},
		{
			name: "weak password",
			err:  &types.InvalidPasswordException{Message: aws.String("Password did not conform with policy")},
			want: errors.KindValidation,
		},
		{
			name: "throttled",
			err:  &types.TooManyRequestsException{Message: aws.String("Rate exceeded")},
			want: errors.KindRateLimited,
		},
		{
			name: "limit exceeded",
			err:  &types.LimitExceededException{Message: aws.String("Attempt limit exceeded")},
			want: errors.KindRateLimited,
		},
		{
			name: "pool misconfigured",
			err:  &types.ResourceNotFoundException{Message: aws.String("User pool client does not exist.")},
			want: errors.KindConfiguration,
		},
		{
			name: "deadline exceeded",
			err:  fmt.Errorf("operation error: %w", context.DeadlineExceeded),
			want: errors.KindTimeout,
		},
		{
			name: "canceled",
			err:  context.Canceled,
			want: errors.KindTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeError(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Kind)
		})
	}
}

func TestNormalizeErrorUnknownKeepsDetail(t *testing.T) {
	err := &smithy.GenericAPIError{Code: "SomethingNewException", Message: "never seen before"}

	got := NormalizeError(err)
	require.NotNil(t, got)
	assert.Equal(t, errors.KindUnknown, got.Kind)
	assert.Contains(t, got.Detail, "SomethingNewException")
	assert.Contains(t, got.Detail, "never seen before")
}

func TestNormalizeErrorNonProviderKeepsDetail(t *testing.T) {
	err := fmt.Errorf("dial tcp: connection refused")

	got := NormalizeError(err)
	require.NotNil(t, got)
	assert.Equal(t, errors.KindUnknown, got.Kind)
	assert.Equal(t, "dial tcp: connection refused", got.Detail)
}
