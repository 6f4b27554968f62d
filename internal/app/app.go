package app

import (
	"letsconnect/internal/app/deps"
	"letsconnect/internal/app/services"
	login "letsconnect/internal/http/handlers/auth/log_in"
	signup "letsconnect/internal/http/handlers/auth/sign_up"
	"letsconnect/internal/http/handlers/home"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	return &http.Server{
		Handler:           NewRouter(deps.Config.AllowedOrigins, s),
		Addr:              deps.Config.Address(),
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      deps.Config.ParseRequestTimeout + 5*time.Second,
		IdleTimeout:       30 * time.Second,
	}
}

func NewRouter(allowedOrigins []string, s *services.Services) http.Handler {
	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/signup", signup.New(s.SignUp))
	authRouter.Method(http.MethodPost, "/login", login.New(s.LogIn))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)
	router.Method(http.MethodGet, "/home", home.New(s.GetCurrentUser))

	return router
}
