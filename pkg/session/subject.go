package session

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/tendant/cognito-flow/pkg/errors"
)

// Subject extracts the user's stable subject identifier from the bundle's
// id token. The token is parsed without signature verification: the provider
// issued it over TLS and the gateway only needs the claim, not a trust
// decision. Refresh flows key their secret hash by this value.
func Subject(b CredentialBundle) (string, error) {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(b.IdToken, jwt.MapClaims{})
	if err != nil {
		return "", errors.Wrap(err, errors.KindMalformed, "id token is not a valid JWT")
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", errors.New(errors.KindMalformed, "id token has no subject claim")
	}
	return sub, nil
}
