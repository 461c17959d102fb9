package session

import (
	"net/http"
	"time"
)

// DefaultCookieName is the cookie the demo web layer stores the session in
const DefaultCookieName = "session"

// CookieSetter interface defines methods for session cookie operations
type CookieSetter interface {
	// SetSession stores an encoded session token in the response
	SetSession(w http.ResponseWriter, token Token, expire time.Time) error

	// ClearSession removes the session cookie
	ClearSession(w http.ResponseWriter) error
}

// BaseCookieSetter provides a base implementation of CookieSetter
type BaseCookieSetter struct {
	Name     string
	Path     string
	HttpOnly bool
	Secure   bool
	SameSite http.SameSite
}

// SetSession stores an encoded session token in the response
func (c *BaseCookieSetter) SetSession(w http.ResponseWriter, token Token, expire time.Time) error {
	cookie := &http.Cookie{
		Name:     c.Name,
		Path:     c.Path,
		Value:    string(token),
		Expires:  expire,
		HttpOnly: c.HttpOnly,
		Secure:   c.Secure,
		SameSite: c.SameSite,
	}

	http.SetCookie(w, cookie)
	return nil
}

// ClearSession removes the session cookie
func (c *BaseCookieSetter) ClearSession(w http.ResponseWriter) error {
	cookie := &http.Cookie{
		Name:     c.Name,
		Path:     c.Path,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: c.HttpOnly,
		Secure:   c.Secure,
	}

	http.SetCookie(w, cookie)
	return nil
}

// NewCookieSetter creates a new session cookie setter
func NewCookieSetter(httpOnly, secure bool) CookieSetter {
	return &BaseCookieSetter{
		Name:     DefaultCookieName,
		Path:     "/",
		HttpOnly: httpOnly,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
