package secrethash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// Compute derives the secret hash the identity provider requires from
// confidential clients: HMAC-SHA-256 over username+clientID, keyed by the
// client secret, base64-encoded.
//
// The function is pure and deterministic. Inputs are assumed non-empty;
// the gateway validates them before calling.
func Compute(username, clientID, clientSecret string) string {
	mac := hmac.New(sha256.New, []byte(clientSecret))
	mac.Write([]byte(username + clientID))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
