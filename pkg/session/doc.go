// Package session serializes credential bundles for storage by the caller.
//
// A CredentialBundle is the access/id/refresh token triple plus expiry that an
// authentication-producing flow returns. Encode turns a bundle into an opaque
// Token; Decode reverses it exactly. The codec applies no encryption or signing
// of its own: transport protection (cookie attributes, TLS) belongs to the web
// layer, which can use the provided CookieSetter.
//
//	token, err := session.Encode(bundle)
//	...
//	bundle, err := session.Decode(token)   // decode(encode(b)) == b
//
// Subject reads the stable user identifier out of a bundle's id token, which
// the refresh flow needs for its secret hash.
package session
