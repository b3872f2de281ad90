package middleware

import (
	"context"
	"net/http"
	"net/url"

	"vitalog/internal/auth"
	"vitalog/internal/store"
)

type ctxKey int

const userIDKey ctxKey = iota

// WithUserID returns a context carrying the authenticated user id.
func WithUserID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFrom extracts the authenticated user id set by RequireAuth.
func UserIDFrom(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}

type AuthMiddleware struct {
	secret   []byte
	sessions store.SessionStore
	users    store.UserStore
}

func NewAuthMiddleware(secret []byte, sessions store.SessionStore, users store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{secret: secret, sessions: sessions, users: users}
}

// RequireAuth resolves the current identity from the session cookie. The
// token signature alone is not enough: the session row must still exist and
// the referenced user must still resolve. Anything short of that is treated
// as anonymous and redirected to the login page, preserving the originally
// requested path.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(auth.CookieName)
		if err != nil || cookie.Value == "" {
			redirectToLogin(w, r)
			return
		}
		claims, err := auth.ParseToken(cookie.Value, m.secret)
		if err != nil {
			redirectToLogin(w, r)
			return
		}
		sess, err := m.sessions.Get(r.Context(), claims.SessionID)
		if err != nil || sess.UserID != claims.UserID {
			redirectToLogin(w, r)
			return
		}
		user, err := m.users.GetByID(r.Context(), sess.UserID)
		if err != nil {
			redirectToLogin(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), user.ID)))
	})
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	next := r.URL.Path
	if r.URL.RawQuery != "" {
		next += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, "/login?next="+url.QueryEscape(next), http.StatusSeeOther)
}
