package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"vitalog/internal/handlers"
	mw "vitalog/internal/middleware"
)

var testSecret = []byte("test-secret")

// testApp wires the real router, middleware, and handlers over in-memory
// stores, mirroring the wiring in cmd/server.
type testApp struct {
	router   *chi.Mux
	users    *memUsers
	sessions *memSessions
	records  *memRecords
}

func newTestApp() *testApp {
	app := &testApp{
		users:    newMemUsers(),
		sessions: newMemSessions(),
		records:  newMemRecords(),
	}

	authHandler := handlers.NewAuthHandler(app.users, app.sessions, testSecret)
	healthHandler := handlers.NewHealthHandler(app.records)
	profileHandler := handlers.NewProfileHandler(app.users)
	authMW := mw.NewAuthMiddleware(testSecret, app.sessions, app.users)

	r := chi.NewRouter()
	r.Get("/", handlers.Landing)
	r.Get("/register", authHandler.RegisterForm)
	r.Post("/register", authHandler.Register)
	r.Get("/login", authHandler.LoginForm)
	r.Post("/login", authHandler.Login)
	r.Group(func(pr chi.Router) {
		pr.Use(authMW.RequireAuth)
		pr.Get("/form", healthHandler.Form)
		pr.Post("/form", healthHandler.Submit)
		pr.Get("/dashboard", healthHandler.Dashboard)
		pr.Get("/me", profileHandler.Me)
		pr.Post("/logout", authHandler.Logout)
	})

	app.router = r
	return app
}

func (app *testApp) postForm(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	return rec
}

func (app *testApp) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	return rec
}

func (app *testApp) register(t *testing.T, username, email, password string) {
	t.Helper()
	rec := app.postForm("/register", url.Values{
		"username":         {username},
		"email":            {email},
		"password":         {password},
		"confirm_password": {password},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))
}

// login registers nothing; it signs in and returns the session cookie.
func (app *testApp) login(t *testing.T, email, password string) *http.Cookie {
	t.Helper()
	rec := app.postForm("/login", url.Values{
		"email":    {email},
		"password": {password},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	for _, c := range rec.Result().Cookies() {
		if c.Name == "vitalog_session" && c.Value != "" {
			return c
		}
	}
	t.Fatal("no session cookie set on login")
	return nil
}
