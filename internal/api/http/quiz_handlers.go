package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/edututor/edututor/internal/rbac"
	"github.com/edututor/edututor/internal/results"
	"github.com/edututor/edututor/internal/tutor"
)

const quizTypeLabel = "MCQ+Short"

type generateQuizReq struct {
	generateReq
	NumMCQ   int `json:"num_mcq"`
	NumShort int `json:"num_short"`
}

// POST /quizzes
// Returns the student-safe view; the full quiz (with answer keys) stays in
// the session cache until the submission arrives.
func GenerateQuizHandler(gen *tutor.Generator, cache *tutor.QuizCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateQuizReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if !req.normalize() {
			http.Error(w, "topic and subject are required", http.StatusBadRequest)
			return
		}
		if req.NumMCQ < 1 || req.NumMCQ > 10 {
			http.Error(w, "num_mcq must be between 1 and 10", http.StatusBadRequest)
			return
		}
		if req.NumShort < 0 || req.NumShort > 10 {
			http.Error(w, "num_short must be between 0 and 10", http.StatusBadRequest)
			return
		}

		quiz := tutor.Quiz{
			ID:         uuid.NewString(),
			Subject:    req.Subject,
			Topic:      req.Topic,
			Difficulty: req.Difficulty,
			Items:      gen.GenerateQuizItems(req.Topic, req.Subject, req.Difficulty, req.NumMCQ, req.NumShort),
			CreatedAt:  time.Now().UTC(),
		}
		cache.Put(quiz)
		writeJSON(w, quiz.StudentView())
	}
}

type submitQuizReq struct {
	Answers tutor.Submission `json:"answers"`
}

// POST /quizzes/{quizID}/submit
// Grades the cached quiz and appends a result row for the caller.
func SubmitQuizHandler(cache *tutor.QuizCache, store results.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quizID := chi.URLParam(r, "quizID")
		var req submitQuizReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}

		quiz, ok := cache.Take(quizID)
		if !ok {
			http.Error(w, "quiz not found or expired", http.StatusNotFound)
			return
		}

		grade := tutor.Grade(quiz.Items, req.Answers)

		email := rbac.SubjectFromContext(r.Context())
		name := rbac.NameFromContext(r.Context())
		if name == "" {
			name = email
		}
		rec := results.NewRecord(
			email, name, quiz.Subject, quiz.Topic, quiz.Difficulty, quizTypeLabel,
			grade.Score, grade.Total, grade.WeakAreas, grade.FeedbackList, time.Now())
		if err := store.Append(r.Context(), rec); err != nil {
			// Grading succeeded but the attempt is lost; surface it rather
			// than report a score the dashboards will never show.
			http.Error(w, "save result: "+err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, grade)
	}
}
