package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/tendant/cognito-flow/pkg/config"
	"github.com/tendant/cognito-flow/pkg/credflow"
	"github.com/tendant/cognito-flow/pkg/idp"
	"github.com/tendant/cognito-flow/pkg/session"
)

func main() {
	op := flag.String("op", "signin", "Flow to run: signup, signin, admin-signin, confirm, admin-confirm, verify-email, admin-create, change-password, get-user, refresh, revoke, passwordless")
	username := flag.String("username", "", "Username (email)")
	password := flag.String("password", "", "Password")
	newPassword := flag.String("new-password", "", "New password (change-password)")
	code := flag.String("code", "", "Confirmation code (confirm)")
	sessionToken := flag.String("session", "", "Encoded session token (refresh, revoke)")
	timeout := flag.Duration("timeout", 10*time.Second, "Provider call deadline")
	flag.Parse()

	// optional .env for local development
	_ = godotenv.Load()

	cc, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client, err := idp.NewClient(ctx, cc)
	if err != nil {
		slog.Error("failed to create provider client", "err", err)
		os.Exit(1)
	}
	gateway := credflow.NewGateway(client, cc)

	req, err := buildRequest(*op, *username, *password, *newPassword, *code, *sessionToken)
	if err != nil {
		slog.Error("invalid arguments", "err", err)
		os.Exit(1)
	}

	res := gateway.Execute(ctx, req)
	if !res.Success {
		slog.Error("flow failed",
			"kind", res.ErrorResponse.Kind,
			"message", res.ErrorResponse.Message,
			"detail", res.ErrorResponse.Detail)
		os.Exit(1)
	}

	if res.Credentials != nil {
		token, err := session.Encode(*res.Credentials)
		if err != nil {
			slog.Error("failed to encode session", "err", err)
			os.Exit(1)
		}
		fmt.Printf("authenticated, expires in %ds\nsession: %s\n", res.Credentials.ExpiresIn, token)
		return
	}

	out, _ := json.MarshalIndent(res.Payload, "", "  ")
	fmt.Println(string(out))
}

func buildRequest(op, username, password, newPassword, code, sessionToken string) (credflow.Request, error) {
	switch op {
	case "signup":
		return credflow.SignUpRequest{Username: username, Password: password}, nil
	case "signin":
		return credflow.SignInRequest{Username: username, Password: password}, nil
	case "admin-signin":
		return credflow.AdminSignInRequest{Username: username, Password: password}, nil
	case "confirm":
		return credflow.ConfirmSignUpRequest{Username: username, Code: code}, nil
	case "admin-confirm":
		return credflow.AdminConfirmSignUpRequest{Username: username}, nil
	case "verify-email":
		return credflow.AdminVerifyEmailRequest{Username: username}, nil
	case "admin-create":
		return credflow.AdminCreateUserRequest{Username: username, Password: password}, nil
	case "change-password":
		return credflow.ChangePasswordRequest{Username: username, OldPassword: password, NewPassword: newPassword}, nil
	case "get-user":
		return credflow.AdminGetUserRequest{Username: username}, nil
	case "refresh":
		bundle, err := session.Decode(session.Token(sessionToken))
		if err != nil {
			return nil, err
		}
		sub, err := session.Subject(bundle)
		if err != nil {
			return nil, err
		}
		return credflow.RefreshTokenRequest{Subject: sub, RefreshToken: bundle.RefreshToken}, nil
	case "revoke":
		bundle, err := session.Decode(session.Token(sessionToken))
		if err != nil {
			return nil, err
		}
		return credflow.RevokeTokenRequest{RefreshToken: bundle.RefreshToken}, nil
	case "passwordless":
		return credflow.PasswordlessSignInRequest{Username: username}, nil
	default:
		return nil, fmt.Errorf("unknown operation: %s", op)
	}
}
