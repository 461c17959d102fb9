package credflow

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"github.com/tendant/cognito-flow/pkg/config"
	"github.com/tendant/cognito-flow/pkg/errors"
	"github.com/tendant/cognito-flow/pkg/idp"
	"github.com/tendant/cognito-flow/pkg/secrethash"
	"github.com/tendant/cognito-flow/pkg/session"
)

// Gateway executes credential flows against the identity provider.
// It is stateless and re-entrant: every Execute call is independent and
// only reads the immutable ClientContext, so a single Gateway serves
// arbitrarily many concurrent callers.
type Gateway struct {
	client    idp.ServiceClient
	clientCtx config.ClientContext
}

// NewGateway creates a gateway over the given provider client and the
// process ClientContext
func NewGateway(client idp.ServiceClient, cc config.ClientContext) *Gateway {
	return &Gateway{
		client:    client,
		clientCtx: cc,
	}
}

// Execute runs one credential flow: validate the request, resolve the flow
// against the configuration, sign where required, call the provider, and
// normalize the outcome. A caller deadline on ctx aborts the in-flight
// provider call and surfaces as a Timeout failure.
//
// No retries are performed here; several flows are not safely idempotent
// to blind-retry, so retry policy belongs to the caller.
func (g *Gateway) Execute(ctx context.Context, req Request) Result {
	if req == nil {
		return failure(errors.New(errors.KindValidation, "request cannot be nil"))
	}

	logger := slog.With("flow_id", uuid.New().String(), "flow", string(req.Kind()))

	if err := req.validate(); err != nil {
		logger.Warn("flow rejected", "kind", err.Kind, "err", err.Message)
		return failure(err)
	}

	if _, err := selectFlow(req.Kind(), g.clientCtx); err != nil {
		logger.Warn("flow rejected", "kind", err.Kind, "err", err.Message)
		return failure(err)
	}

	var res Result
	switch r := req.(type) {
	case SignUpRequest:
		res = g.execSignUp(ctx, r)
	case AdminCreateUserRequest:
		res = g.execAdminCreateUser(ctx, logger, r)
	case SignInRequest:
		res = g.execSignIn(ctx, r)
	case AdminSignInRequest:
		res = g.execAdminSignIn(ctx, r)
	case ConfirmSignUpRequest:
		res = g.execConfirmSignUp(ctx, r)
	case AdminConfirmSignUpRequest:
		res = g.execAdminConfirmSignUp(ctx, r)
	case AdminVerifyEmailRequest:
		res = g.execAdminVerifyEmail(ctx, r)
	case ChangePasswordRequest:
		res = g.execChangePassword(ctx, r)
	case AdminGetUserRequest:
		res = g.execAdminGetUser(ctx, r)
	case RefreshTokenRequest:
		res = g.execRefreshToken(ctx, r)
	case RevokeTokenRequest:
		res = g.execRevokeToken(ctx, r)
	case PasswordlessSignInRequest:
		res = g.execPasswordlessSignIn(ctx, r)
	default:
		res = failure(errors.Newf(errors.KindConfiguration, "unsupported request type for flow %s", req.Kind()))
	}

	if res.Success {
		logger.Info("flow completed")
	} else if res.ErrorResponse != nil {
		logger.Warn("flow failed", "kind", res.ErrorResponse.Kind, "err", res.ErrorResponse.Message)
	}
	return res
}

// secretHash derives the keyed request signature for the given identity
func (g *Gateway) secretHash(identity string) string {
	return secrethash.Compute(identity, g.clientCtx.ClientID, g.clientCtx.ClientSecret)
}

func (g *Gateway) execSignUp(ctx context.Context, r SignUpRequest) Result {
	out, err := g.client.SignUp(ctx, &cip.SignUpInput{
		ClientId:   aws.String(g.clientCtx.ClientID),
		SecretHash: aws.String(g.secretHash(r.Username)),
		Username:   aws.String(r.Username),
		Password:   aws.String(r.Password),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(r.Username)},
		},
	})
	if err != nil {
		return failure(idp.NormalizeError(err))
	}
	return success(map[string]interface{}{
		"user_sub":  aws.ToString(out.UserSub),
		"confirmed": out.UserConfirmed,
	})
}

// execAdminCreateUser creates the user (welcome message suppressed) and
// force-sets a permanent password, in that order. The provider has no
// transaction spanning the two calls: if the second fails the user exists
// without the intended password, which is reported, not rolled back.
func (g *Gateway) execAdminCreateUser(ctx context.Context, logger *slog.Logger, r AdminCreateUserRequest) Result {
	created, err := g.client.AdminCreateUser(ctx, &cip.AdminCreateUserInput{
		UserPoolId:    aws.String(g.clientCtx.UserPoolID),
		Username:      aws.String(r.Username),
		MessageAction: types.MessageActionTypeSuppress,
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(r.Username)},
		},
	})
	if err != nil {
		return failure(idp.NormalizeError(err))
	}

	_, err = g.client.AdminSetUserPassword(ctx, &cip.AdminSetUserPasswordInput{
		UserPoolId: aws.String(g.clientCtx.UserPoolID),
		Username:   aws.String(r.Username),
		Password:   aws.String(r.Password),
		Permanent:  true,
	})
	if err != nil {
		logger.Warn("user created but password not set")
		return failure(idp.NormalizeError(err))
	}

	payload := map[string]interface{}{"created": true}
	if created.User != nil {
		payload["status"] = string(created.User.UserStatus)
	}
	return success(payload)
}

func (g *Gateway) execSignIn(ctx context.Context, r SignInRequest) Result {
	out, err := g.client.InitiateAuth(ctx, &cip.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(g.clientCtx.ClientID),
		AuthParameters: map[string]string{
			"USERNAME":    r.Username,
			"PASSWORD":    r.Password,
			"SECRET_HASH": g.secretHash(r.Username),
		},
	})
	if err != nil {
		return failure(idp.NormalizeError(err))
	}
	return credentialResult(out.AuthenticationResult, out.ChallengeName, out.Session, out.ChallengeParameters, "")
}

func (g *Gateway) execAdminSignIn(ctx context.Context, r AdminSignInRequest) Result {
	out, err := g.client.AdminInitiateAuth(ctx, &cip.AdminInitiateAuthInput{
		AuthFlow:   types.AuthFlowTypeAdminUserPasswordAuth,
		ClientId:   aws.String(g.clientCtx.ClientID),
		UserPoolId: aws.String(g.clientCtx.UserPoolID),
		AuthParameters: map[string]string{
			"USERNAME":    r.Username,
			"PASSWORD":    r.Password,
			"SECRET_HASH": g.secretHash(r.Username),
		},
	})
	if err != nil {
		return failure(idp.NormalizeError(err))
	}
	return credentialResult(out.AuthenticationResult, out.ChallengeName, out.Session, out.ChallengeParameters, "")
}

func (g *Gateway) execConfirmSignUp(ctx context.Context, r ConfirmSignUpRequest) Result {
	_, err := g.client.ConfirmSignUp(ctx, &cip.ConfirmSignUpInput{
		ClientId:         aws.String(g.clientCtx.ClientID),
		SecretHash:       aws.String(g.secretHash(r.Username)),
		Username:         aws.String(r.Username),
		ConfirmationCode: aws.String(r.Code),
	})
	if err != nil {
		return failure(idp.NormalizeError(err))
	}
	return success(map[string]interface{}{"confirmed": true})
}

func (g *Gateway) execAdminConfirmSignUp(ctx context.Context, r AdminConfirmSignUpRequest) Result {
	_, err := g.client.AdminConfirmSignUp(ctx, &cip.AdminConfirmSignUpInput{
		UserPoolId: aws.String(g.clientCtx.UserPoolID),
		Username:   aws.String(r.Username),
	})
	if err != nil {
		return failure(idp.NormalizeError(err))
	}
	return success(map[string]interface{}{"confirmed": true})
}

func (g *Gateway) execAdminVerifyEmail(ctx context.Context, r AdminVerifyEmailRequest) Result {
	_, err := g.client.AdminUpdateUserAttributes(ctx, &cip.AdminUpdateUserAttributesInput{
		UserPoolId: aws.String(g.clientCtx.UserPoolID),
		Username:   aws.String(r.Username),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email_verified"), Value: aws.String("true")},
		},
	})
	if err != nil {
		return failure(idp.NormalizeError(err))
	}
	return success(map[string]interface{}{"email_verified": true})
}

// execChangePassword re-authenticates with the old password before anything
// else; a failed check aborts the flow and the new password is never sent.
func (g *Gateway) execChangePassword(ctx context.Context, r ChangePasswordRequest) Result {
	_, err := g.client.InitiateAuth(ctx, &cip.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(g.clientCtx.ClientID),
		AuthParameters: map[string]string{
			"USERNAME":    r.Username,
			"PASSWORD":    r.OldPassword,
			"SECRET_HASH": g.secretHash(r.Username),
		},
	})
	if err != nil {
		return failure(idp.NormalizeError(err))
	}

	_, err = g.client.AdminSetUserPassword(ctx, &cip.AdminSetUserPasswordInput{
		UserPoolId: aws.String(g.clientCtx.UserPoolID),
		Username:   aws.String(r.Username),
		Password:   aws.String(r.NewPassword),
		Permanent:  true,
	})
	if err != nil {
		return failure(idp.NormalizeError(err))
	}
	return success(map[string]interface{}{"password_changed": true})
}

func (g *Gateway) execAdminGetUser(ctx context.Context, r AdminGetUserRequest) Result {
	out, err := g.client.AdminGetUser(ctx, &cip.AdminGetUserInput{
		UserPoolId: aws.String(g.clientCtx.UserPoolID),
		Username:   aws.String(r.Username),
	})
	if err != nil {
		return failure(idp.NormalizeError(err))
	}

	attrs := make(map[string]string, len(out.UserAttributes))
	for _, a := range out.UserAttributes {
		attrs[aws.ToString(a.Name)] = aws.ToString(a.Value)
	}
	return success(map[string]interface{}{
		"username":   aws.ToString(out.Username),
		"status":     string(out.UserStatus),
		"enabled":    out.Enabled,
		"attributes": attrs,
	})
}

func (g *Gateway) execRefreshToken(ctx context.Context, r RefreshTokenRequest) Result {
	out, err := g.client.AdminInitiateAuth(ctx, &cip.AdminInitiateAuthInput{
		AuthFlow:   types.AuthFlowTypeRefreshTokenAuth,
		ClientId:   aws.String(g.clientCtx.ClientID),
		UserPoolId: aws.String(g.clientCtx.UserPoolID),
		AuthParameters: map[string]string{
			"REFRESH_TOKEN": r.RefreshToken,
			// the provider keys the refresh signature by the user's
			// subject, not the username
			"SECRET_HASH": g.secretHash(r.Subject),
		},
	})
	if err != nil {
		return failure(idp.NormalizeError(err))
	}
	return credentialResult(out.AuthenticationResult, out.ChallengeName, out.Session, out.ChallengeParameters, r.RefreshToken)
}

func (g *Gateway) execRevokeToken(ctx context.Context, r RevokeTokenRequest) Result {
	_, err := g.client.RevokeToken(ctx, &cip.RevokeTokenInput{
		ClientId:     aws.String(g.clientCtx.ClientID),
		ClientSecret: aws.String(g.clientCtx.ClientSecret),
		Token:        aws.String(r.RefreshToken),
	})
	if err != nil {
		return failure(idp.NormalizeError(err))
	}
	return success(map[string]interface{}{"revoked": true})
}

func (g *Gateway) execPasswordlessSignIn(ctx context.Context, r PasswordlessSignInRequest) Result {
	out, err := g.client.AdminInitiateAuth(ctx, &cip.AdminInitiateAuthInput{
		AuthFlow:   types.AuthFlowTypeCustomAuth,
		ClientId:   aws.String(g.clientCtx.ClientID),
		UserPoolId: aws.String(g.clientCtx.UserPoolID),
		AuthParameters: map[string]string{
			"USERNAME":    r.Username,
			"SECRET_HASH": g.secretHash(r.Username),
		},
	})
	if err != nil {
		return failure(idp.NormalizeError(err))
	}
	return credentialResult(out.AuthenticationResult, out.ChallengeName, out.Session, out.ChallengeParameters, "")
}

// credentialResult turns an authentication response into a Result: a full
// token set becomes a CredentialBundle, a pending challenge becomes a
// payload for the caller to answer. carryRefresh fills the bundle when the
// provider omits the refresh token, as refresh responses do.
func credentialResult(auth *types.AuthenticationResultType, challenge types.ChallengeNameType, sess *string, params map[string]string, carryRefresh string) Result {
	if auth == nil {
		if challenge != "" {
			return success(map[string]interface{}{
				"challenge":  string(challenge),
				"session":    aws.ToString(sess),
				"parameters": params,
			})
		}
		return failure(errors.New(errors.KindUnknown, "provider returned neither credentials nor a challenge"))
	}

	var bundle session.CredentialBundle
	if err := copier.Copy(&bundle, auth); err != nil {
		return failure(errors.Wrap(err, errors.KindUnknown, "failed to map provider credentials"))
	}
	if bundle.RefreshToken == "" && carryRefresh != "" {
		bundle.RefreshToken = carryRefresh
	}
	if err := bundle.Validate(); err != nil {
		return failure(errors.Wrap(err, errors.KindUnknown, "provider returned incomplete credentials"))
	}
	return successCredentials(bundle)
}
