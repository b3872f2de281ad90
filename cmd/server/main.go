package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"vitalog/internal/db"
	"vitalog/internal/handlers"
	mw "vitalog/internal/middleware"
	"vitalog/internal/store"
)

func mustGetenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		slog.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		slog.Error("SESSION_SECRET is required")
		os.Exit(1)
	}

	port := mustGetenv("PORT", "8080")

	dbConn, err := sqlx.Open("pgx", databaseURL)
	if err != nil {
		slog.Error("failed to open db", slog.Any("err", err))
		os.Exit(1)
	}
	dbConn.SetMaxOpenConns(10)
	dbConn.SetConnMaxLifetime(2 * time.Hour)
	if err = dbConn.Ping(); err != nil {
		slog.Error("failed to ping db", slog.Any("err", err))
		os.Exit(1)
	}
	if err := db.RunMigrations(dbConn); err != nil {
		slog.Error("failed migrations", slog.Any("err", err))
		os.Exit(1)
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		slog.Error("failed to build request logger", slog.Any("err", err))
		os.Exit(1)
	}
	defer zapLogger.Sync()

	users := store.NewUsers(dbConn)
	sessions := store.NewSessions(dbConn)
	records := store.NewRecords(dbConn)

	secret := []byte(sessionSecret)
	authHandler := handlers.NewAuthHandler(users, sessions, secret)
	healthHandler := handlers.NewHealthHandler(records)
	profileHandler := handlers.NewProfileHandler(users)
	authMW := mw.NewAuthMiddleware(secret, sessions, users)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(mw.RequestLogger(zapLogger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

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

	srv := &http.Server{Addr: ":" + port, Handler: r}
	go func() {
		slog.Info("server starting", slog.String("addr", ":"+port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.Any("err", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutdown initiated")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	slog.Info("server stopped")
}
