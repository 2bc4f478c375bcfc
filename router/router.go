// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/danielhkuo/quickly-quiz/auth"
	"github.com/danielhkuo/quickly-quiz/catalog"
	"github.com/danielhkuo/quickly-quiz/cliparse"
	"github.com/danielhkuo/quickly-quiz/credentials"
	"github.com/danielhkuo/quickly-quiz/handlers"
	"github.com/danielhkuo/quickly-quiz/middleware"
	"github.com/danielhkuo/quickly-quiz/responses"
	"github.com/danielhkuo/quickly-quiz/session"
)

// Deps are the services the handlers are built from
type Deps struct {
	Tests     *catalog.Catalog
	Responses *responses.Collection
	Accounts  *credentials.Store
	Sessions  *session.Manager
	Tokens    *auth.TokenService
}

func NewRouter(deps Deps, cfg cliparse.Config) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID, chimw.RealIP, chimw.Recoverer, middleware.WithLogging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(deps.Accounts, deps.Sessions, deps.Tokens)
	prefsHandler := handlers.NewPreferencesHandler(deps.Sessions)
	builderHandler := handlers.NewBuilderHandler(deps.Tests)
	testHandler := handlers.NewTestHandler(deps.Tests, deps.Responses)
	dashboardHandler := handlers.NewDashboardHandler(deps.Tests, deps.Responses)

	requireUser := middleware.RequireUser(deps.Tokens)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)
	r.With(requireUser).Post("/auth/logout", authHandler.Logout)
	r.With(requireUser).Get("/auth/me", authHandler.Me)

	r.Get("/preferences", prefsHandler.Get)
	r.Put("/preferences", prefsHandler.Update)

	// Authoring (signed-in authors only)
	r.Route("/builder", func(br chi.Router) {
		br.Use(requireUser)
		br.Post("/questions", builderHandler.CreateQuestion)
		br.Post("/draft/edit", builderHandler.EditDraft)
		br.Post("/publish", builderHandler.Publish)
		br.Post("/template/export", builderHandler.ExportTemplate)
		br.Post("/template/import", builderHandler.ImportTemplate)
	})

	// Taking a test (public, by test id)
	r.Route("/tests/{id}", func(tr chi.Router) {
		tr.Get("/", testHandler.GetTest)
		tr.Post("/responses", testHandler.SubmitResponse)
		tr.Post("/unlock", testHandler.Unlock)
		tr.Post("/answer-sheet", testHandler.AnswerSheet)
		tr.Get("/qr", testHandler.QRCode)
	})

	// Author dashboard
	r.Route("/dashboard/tests", func(dr chi.Router) {
		dr.Use(requireUser)
		dr.Get("/", dashboardHandler.ListTests)
		dr.Get("/{id}/stats", dashboardHandler.GetStats)
		dr.Get("/{id}/report.pdf", dashboardHandler.GetReport)
	})

	// Root endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-quiz API v1"))
	})

	return r
}
