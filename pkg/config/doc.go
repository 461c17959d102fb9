// Package config loads the provider configuration for the credential flow gateway.
//
// ClientContext is the only long-lived shared state in the module: client id and
// secret, region and optional endpoint override, the user pool id, and optional
// admin credentials. It is read once from the environment at process start and
// never reloaded.
//
//	cc, err := config.Load()
//	if err != nil {
//		slog.Error("invalid configuration", "err", err)
//		os.Exit(1)
//	}
//
// Environment variables:
//   - COGNITO_CLIENT_ID: app client id (required)
//   - COGNITO_CLIENT_SECRET: app client secret (required)
//   - COGNITO_REGION: provider region (default: "us-east-1")
//   - COGNITO_ENDPOINT: endpoint override for local emulators (optional)
//   - COGNITO_USER_POOL_ID: user pool id, required by admin flows
//   - COGNITO_ADMIN_ACCESS_KEY / COGNITO_ADMIN_SECRET_KEY / COGNITO_ADMIN_SESSION_TOKEN:
//     elevated credentials for admin-initiated flows (optional)
package config
