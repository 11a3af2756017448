package results

import (
	"strings"
	"time"
)

const (
	maxTopicLen   = 100
	maxSummaryLen = 500
)

// Record is one graded attempt. Records are immutable once written; the
// store only ever appends.
type Record struct {
	Email           string `json:"email"`
	StudentName     string `json:"student_name"`
	Subject         string `json:"subject"`
	Topic           string `json:"topic"`
	Difficulty      string `json:"difficulty"`
	QuizType        string `json:"quiz_type"`
	Score           int    `json:"score"`
	Total           int    `json:"total"`
	Timestamp       string `json:"timestamp"` // UTC, RFC 3339
	WeakAreas       string `json:"weak_areas"` // comma-joined
	FeedbackSummary string `json:"feedback_summary"`
}

// NewRecord builds a record from a graded attempt, applying the persisted
// layout rules: topic capped at 100 characters, feedback summary at 500,
// weak areas comma-joined, timestamp formatted as a UTC RFC 3339 string.
func NewRecord(email, studentName, subject, topic, difficulty, quizType string, score, total int, weakAreas, feedback []string, at time.Time) Record {
	return Record{
		Email:           email,
		StudentName:     studentName,
		Subject:         subject,
		Topic:           truncate(topic, maxTopicLen),
		Difficulty:      difficulty,
		QuizType:        quizType,
		Score:           score,
		Total:           total,
		Timestamp:       at.UTC().Format(time.RFC3339),
		WeakAreas:       strings.Join(weakAreas, ", "),
		FeedbackSummary: truncate(strings.Join(feedback, "; "), maxSummaryLen),
	}
}

// WeakAreaList splits the comma-joined field back into individual topics,
// dropping empties. No normalization: tags compare case-sensitively.
func (r Record) WeakAreaList() []string {
	var out []string
	for _, a := range strings.Split(r.WeakAreas, ",") {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}

// Percent is the attempt's percentage score, 0 when total is 0.
func (r Record) Percent() float64 {
	if r.Total == 0 {
		return 0
	}
	return 100 * float64(r.Score) / float64(r.Total)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
