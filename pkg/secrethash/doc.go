// Package secrethash computes the keyed request signature ("secret hash") the
// identity provider requires on flows that use a confidential client secret.
// The hash binds a username to a specific app client and proves the caller
// knows the client secret. No I/O, no state.
package secrethash
