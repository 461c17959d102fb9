// Package credflow orchestrates credential flows against the identity provider.
//
// The Gateway is the single entry point the web layer calls: it validates a
// Request, derives the secret hash where the flow needs one, dispatches the
// matching provider command, and normalizes the outcome into a Result. Each
// flow kind is its own request type, so an invalid field combination cannot be
// expressed.
//
// # Flow Kinds
//
// Self-service: SignUp, SignIn, ConfirmSignUp, RevokeToken.
//
// Admin-initiated (require admin credentials and a user pool id):
// AdminCreateUser, AdminSignIn, AdminConfirmSignUp, AdminVerifyEmail,
// ChangePassword, AdminGetUser, RefreshToken, PasswordlessSignIn.
//
// # Basic Usage
//
//	cc, _ := config.Load()
//	client, _ := idp.NewClient(ctx, cc)
//	gateway := credflow.NewGateway(client, cc)
//
//	result := gateway.Execute(ctx, credflow.SignInRequest{
//		Username: "user@example.com",
//		Password: "Passw0rd!",
//	})
//	if result.Success && result.Credentials != nil {
//		token, _ := session.Encode(*result.Credentials)
//		// store token, e.g. via session.CookieSetter
//	}
//
// # Guarantees
//
//   - Validation failures never reach the network.
//   - Admin flows without admin context fail with a Configuration error,
//     never by silently falling back to self-service behavior.
//   - ChangePassword verifies the old password before touching anything.
//   - Composite flows stop at the first failing call and report that call's
//     error; a partial effect from an earlier call is documented, not rolled
//     back, because the provider has no spanning transaction.
//   - Execute never retries; retry policy belongs to the caller, which must
//     treat Conflict after a retried sign-up as potentially-already-succeeded.
package credflow
