package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/edututor/edututor/internal/api/http"
	"github.com/edututor/edututor/internal/auth"
	"github.com/edututor/edututor/internal/config"
	"github.com/edututor/edututor/internal/db"
	"github.com/edututor/edututor/internal/llm"
	"github.com/edututor/edututor/internal/results"
	"github.com/edututor/edututor/internal/tutor"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	// --- Optional text-generation collaborator ---
	provider, err := llm.FromConfig(llm.Config{
		APIKey:  cfg.LLMAPIKey,
		BaseURL: cfg.LLMBaseURL,
		Model:   cfg.LLMModel,
	})
	if err != nil {
		log.Fatalf("llm init failed: %v", err)
	}
	if provider == nil {
		log.Printf("no LLM configured; generation uses templated fallback only")
	} else {
		log.Printf("LLM collaborator enabled (model=%s)", provider.ModelID())
	}

	r := api.NewRouter(api.Deps{
		AuthSvc:     auth.NewAuthService(cfg.AuthSecret),
		Users:       auth.NewUserStore(dbh),
		Generator:   tutor.NewGenerator(provider),
		Quizzes:     tutor.NewQuizCache(cfg.QuizTTL),
		Results:     results.NewSQLStore(dbh),
		CORSOrigins: cfg.CORSOrigins,
	})

	log.Printf("listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
