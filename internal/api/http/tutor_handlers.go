package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/edututor/edututor/internal/tutor"
)

type generateReq struct {
	Topic      string `json:"topic"`
	Subject    string `json:"subject"`
	Difficulty string `json:"difficulty"`
	NumCards   int    `json:"num_cards,omitempty"`
	UseLLM     bool   `json:"use_llm,omitempty"`
}

// normalize applies the defaults the UI sliders used and reports whether the
// request names a topic and subject at all.
func (r *generateReq) normalize() (ok bool) {
	r.Topic = strings.TrimSpace(r.Topic)
	r.Subject = strings.TrimSpace(r.Subject)
	if r.Difficulty == "" {
		r.Difficulty = "Medium"
	}
	return r.Topic != "" && r.Subject != ""
}

// POST /notes
func NotesHandler(gen *tutor.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if !req.normalize() {
			http.Error(w, "topic and subject are required", http.StatusBadRequest)
			return
		}
		notes := gen.GenerateStudyNotes(r.Context(), req.Topic, req.Subject, req.Difficulty, req.UseLLM)
		writeJSON(w, map[string]string{"notes": notes})
	}
}

// POST /flashcards
func FlashcardsHandler(gen *tutor.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if !req.normalize() {
			http.Error(w, "topic and subject are required", http.StatusBadRequest)
			return
		}
		if req.NumCards == 0 {
			req.NumCards = 5
		}
		if req.NumCards < 1 || req.NumCards > 10 {
			http.Error(w, "num_cards must be between 1 and 10", http.StatusBadRequest)
			return
		}
		cards := gen.GenerateFlashcards(r.Context(), req.Topic, req.Subject, req.Difficulty, req.NumCards, req.UseLLM)
		writeJSON(w, map[string]any{"flashcards": cards})
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
