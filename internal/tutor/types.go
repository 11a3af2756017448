package tutor

import "time"

// Item types.
const (
	TypeMCQ   = "mcq"
	TypeShort = "short"
)

// QuizItem is a single generated question. MCQ items carry exactly four
// options and an answer that is always one of them; short items carry an
// ideal answer and up to four keywords derived from the topic.
type QuizItem struct {
	Type        string   `json:"type"`
	Question    string   `json:"question"`
	TopicTag    string   `json:"topic_tag"`
	Options     []string `json:"options,omitempty"`
	Answer      string   `json:"answer,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
	IdealAnswer string   `json:"ideal_answer,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

// Quiz is one generated question set. It lives only for the duration of a
// quiz session: held in the session cache between generation and submit.
type Quiz struct {
	ID         string     `json:"id"`
	Subject    string     `json:"subject"`
	Topic      string     `json:"topic"`
	Difficulty string     `json:"difficulty"`
	Items      []QuizItem `json:"items"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Submission maps "q_<idx>" (0-based, matching generation order) to the raw
// answer string: the selected option text for mcq, free text for short.
type Submission map[string]string

// GradeResult is the outcome of grading one submission.
type GradeResult struct {
	Score        int      `json:"score"`
	Total        int      `json:"total"`
	FeedbackList []string `json:"feedback_list"`
	WeakAreas    []string `json:"weak_areas"`
}

// Flashcard is one Q&A pair.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// StudentView returns a copy of the quiz safe to serve to the learner:
// answer keys, explanations, keywords and ideal answers are stripped.
func (q Quiz) StudentView() Quiz {
	out := q
	out.Items = make([]QuizItem, len(q.Items))
	for i, it := range q.Items {
		it.Answer = ""
		it.Explanation = ""
		it.IdealAnswer = ""
		it.Keywords = nil
		out.Items[i] = it
	}
	return out
}
