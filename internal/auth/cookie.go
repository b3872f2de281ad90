package auth

import (
	"net/http"
	"time"
)

const CookieName = "vitalog_session"

const (
	// SessionTTL bounds a session when the user did not ask to be
	// remembered; the cookie itself ends with the browser session.
	SessionTTL = 24 * time.Hour
	// RememberTTL applies when remember=true; the cookie persists.
	RememberTTL = 30 * 24 * time.Hour
)

// TTLFor returns the server-side session lifetime for the remember flag.
func TTLFor(remember bool) time.Duration {
	if remember {
		return RememberTTL
	}
	return SessionTTL
}

// SetSessionCookie attaches the signed token. With remember=false no Max-Age
// is set, so the browser drops the cookie when its session ends.
func SetSessionCookie(w http.ResponseWriter, token string, remember bool) {
	c := &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if remember {
		c.MaxAge = int(RememberTTL / time.Second)
	}
	http.SetCookie(w, c)
}

func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
