package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"vitalog/internal/auth"
	"vitalog/internal/store"
	"vitalog/internal/validate"
)

type AuthHandler struct {
	users    store.UserStore
	sessions store.SessionStore
	secret   []byte
}

func NewAuthHandler(users store.UserStore, sessions store.SessionStore, secret []byte) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions, secret: secret}
}

// RegisterForm describes the registration form for the external renderer.
func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"fields": []string{"username", "email", "password", "confirm_password"},
	})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form body")
		return
	}
	in := validate.RegistrationInput{
		Username:        strings.TrimSpace(r.PostFormValue("username")),
		Email:           strings.TrimSpace(strings.ToLower(r.PostFormValue("email"))),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
	}
	if errs := validate.Registration(in); !errs.OK() {
		writeFieldErrors(w, http.StatusBadRequest, errs)
		return
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not hash password")
		return
	}

	// No pre-check: the unique constraint decides, so two concurrent
	// registrations of the same email cannot both win.
	if _, err := h.users.Create(r.Context(), in.Username, in.Email, hashed); err != nil {
		var dup *store.DuplicateIdentityError
		if errors.As(err, &dup) {
			writeFieldErrors(w, http.StatusConflict, validate.FieldErrors{
				dup.Field: dup.Field + " already taken",
			})
			return
		}
		writeError(w, http.StatusInternalServerError, "could not create account")
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// LoginForm describes the login form for the external renderer.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"fields": []string{"email", "password", "remember"},
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form body")
		return
	}
	email := strings.TrimSpace(strings.ToLower(r.PostFormValue("email")))
	password := r.PostFormValue("password")
	remember := parseBool(r.PostFormValue("remember"))
	if email == "" || password == "" {
		writeError(w, http.StatusBadRequest, "email and password required")
		return
	}

	// One generic failure for unknown email and wrong password alike, so
	// the response does not reveal which accounts exist.
	user, err := h.users.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	// Opportunistic cleanup: each successful login sweeps sessions whose
	// expiry has passed, so dead rows never accumulate. Best effort only.
	_ = h.sessions.DeleteExpired(r.Context())

	ttl := auth.TTLFor(remember)
	sess, err := h.sessions.Create(r.Context(), user.ID, time.Now().Add(ttl))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not create session")
		return
	}
	token, err := auth.GenerateToken(user.ID, sess.ID, h.secret, ttl)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not issue token")
		return
	}
	auth.SetSessionCookie(w, token, remember)
	http.Redirect(w, r, safeNext(r), http.StatusSeeOther)
}

// Logout revokes the server-side session and clears the cookie. Revocation
// is what makes a replayed cookie useless afterwards. Logging out twice is
// a no-op.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.CookieName); err == nil && cookie.Value != "" {
		if claims, err := auth.ParseToken(cookie.Value, h.secret); err == nil {
			_ = h.sessions.Delete(r.Context(), claims.SessionID)
		}
	}
	auth.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func parseBool(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// safeNext honors the post-login destination but only for site-relative
// paths, so the login form cannot be used as an open redirect. "//" and
// "/\" prefixes are rejected: browsers treat both as schema-relative URLs.
func safeNext(r *http.Request) string {
	next := r.PostFormValue("next")
	if next == "" {
		next = r.URL.Query().Get("next")
	}
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") && !strings.HasPrefix(next, `/\`) {
		return next
	}
	return "/dashboard"
}
