package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/edututor/edututor/internal/auth"
	"github.com/edututor/edututor/internal/rbac"
	"github.com/edututor/edututor/internal/results"
	"github.com/edututor/edututor/internal/tutor"
)

// Deps carries everything the gateway routes need.
type Deps struct {
	AuthSvc     *auth.AuthService
	Users       *auth.UserStore
	Generator   *tutor.Generator
	Quizzes     *tutor.QuizCache
	Results     results.Store
	Checker     *rbac.Checker
	CORSOrigins []string
}

// NewRouter wires the public auth endpoints and the protected API
// (JWT → role in context → RBAC).
func NewRouter(d Deps) chi.Router {
	if d.Checker == nil {
		d.Checker = rbac.NewChecker(nil)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/register", auth.RegisterHandler(d.Users))
	r.Post("/auth/login", auth.LoginHandler(d.AuthSvc, d.Users))

	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(d.AuthSvc))

		pr.Post("/auth/password", ChangePasswordHandler(d.Users))

		pr.With(rbac.Require("notes:generate")).
			Post("/notes", NotesHandler(d.Generator))
		pr.With(rbac.Require("flashcards:generate")).
			Post("/flashcards", FlashcardsHandler(d.Generator))

		pr.With(rbac.Require("quiz:generate")).
			Post("/quizzes", GenerateQuizHandler(d.Generator, d.Quizzes))
		pr.With(rbac.Require("quiz:submit")).
			Post("/quizzes/{quizID}/submit", SubmitQuizHandler(d.Quizzes, d.Results))

		pr.With(rbac.RequireAny("results:view-own", "results:view-all")).
			Get("/results", ListResultsHandler(d.Results, d.Checker))

		pr.With(rbac.Require("analytics:view-own")).
			Get("/analytics/me", MyAnalyticsHandler(d.Results))
		pr.With(rbac.Require("analytics:view-all")).
			Get("/analytics/cohort", CohortAnalyticsHandler(d.Results))

		pr.With(rbac.Require("report:export-own")).
			Get("/reports/me.pdf", MyReportHandler(d.Results))
		pr.With(rbac.Require("report:export-all")).
			Get("/reports/{email}", StudentReportHandler(d.Results))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	return r
}
