package session

import (
	"encoding/base64"
	"encoding/json"

	"github.com/tendant/cognito-flow/pkg/errors"
)

// CredentialBundle is the token triple plus expiry returned by a successful
// authentication flow. It is immutable once created and never partially
// populated: every token is present or the bundle does not exist.
type CredentialBundle struct {
	AccessToken  string `json:"access_token"`
	IdToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int32  `json:"expires_in"`
}

// Validate reports whether the bundle is fully populated
func (b CredentialBundle) Validate() error {
	if b.AccessToken == "" {
		return errors.New(errors.KindValidation, "access token cannot be empty")
	}
	if b.IdToken == "" {
		return errors.New(errors.KindValidation, "id token cannot be empty")
	}
	if b.RefreshToken == "" {
		return errors.New(errors.KindValidation, "refresh token cannot be empty")
	}
	return nil
}

// Token is the opaque serialized form of a CredentialBundle. It round-trips
// exactly through Encode and Decode. No cryptographic protection is applied
// here; cookie attributes and TLS are the caller's responsibility.
type Token string

// Encode serializes a valid bundle into an opaque cookie-sized token
func Encode(b CredentialBundle) (Token, error) {
	if err := b.Validate(); err != nil {
		return "", err
	}
	raw, err := json.Marshal(b)
	if err != nil {
		return "", errors.Wrap(err, errors.KindMalformed, "failed to serialize credential bundle")
	}
	return Token(base64.RawURLEncoding.EncodeToString(raw)), nil
}

// Decode reconstructs the bundle from a token produced by Encode.
// Anything that does not decode to a fully populated bundle is Malformed.
func Decode(t Token) (CredentialBundle, error) {
	raw, err := base64.RawURLEncoding.DecodeString(string(t))
	if err != nil {
		return CredentialBundle{}, errors.Wrap(err, errors.KindMalformed, "session token is not valid base64")
	}
	var b CredentialBundle
	if err := json.Unmarshal(raw, &b); err != nil {
		return CredentialBundle{}, errors.Wrap(err, errors.KindMalformed, "session token payload is not valid")
	}
	if err := b.Validate(); err != nil {
		return CredentialBundle{}, errors.Wrap(err, errors.KindMalformed, "session token is missing credentials")
	}
	return b, nil
}
