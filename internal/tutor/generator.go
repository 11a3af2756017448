package tutor

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/edututor/edututor/internal/llm"
)

const maxKeywords = 4

var shortStarters = []string{
	"Explain the concept of",
	"Give a short definition of",
	"List two key points about",
	"Describe a real-world application of",
}

// Generator produces study notes, flashcards and quiz items for a
// topic/subject/difficulty triple. The llm provider is optional; when nil
// (or failing) every operation returns templated output instead.
type Generator struct {
	provider llm.Provider

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand replaces the random source. Tests use this to make option-letter
// and starter-phrase draws reproducible.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) { g.rng = r }
}

// NewGenerator creates a Generator. provider may be nil.
func NewGenerator(provider llm.Provider, opts ...Option) *Generator {
	g := &Generator{
		provider: provider,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// GenerateQuizItems builds numMCQ multiple-choice items followed by numShort
// short-answer items. Order matters: grading feedback indexes align with it.
func (g *Generator) GenerateQuizItems(topic, subject, difficulty string, numMCQ, numShort int) []QuizItem {
	items := make([]QuizItem, 0, numMCQ+numShort)
	for i := 0; i < numMCQ; i++ {
		items = append(items, g.mcqItem(topic, subject, difficulty))
	}
	for i := 0; i < numShort; i++ {
		items = append(items, g.shortItem(topic, subject, difficulty))
	}
	return items
}

func (g *Generator) mcqItem(topic, subject, difficulty string) QuizItem {
	// Each draw is independent; duplicate letters across items are fine.
	letter := rune('A' + g.intn(4))
	options := []string{
		fmt.Sprintf("Option A related to %s", topic),
		fmt.Sprintf("Option B about %s", subject),
		"Option C factual detail",
		"Option D common misconception",
	}
	return QuizItem{
		Type:        TypeMCQ,
		Question:    fmt.Sprintf("%s: On '%s', which option is correct? (Level: %s)", subject, topic, difficulty),
		TopicTag:    topic,
		Options:     options,
		Answer:      options[letter-'A'],
		Explanation: fmt.Sprintf("The correct answer is %c due to core concept alignment.", letter),
	}
}

func (g *Generator) shortItem(topic, subject, difficulty string) QuizItem {
	starter := shortStarters[g.intn(len(shortStarters))]
	return QuizItem{
		Type:        TypeShort,
		Question:    fmt.Sprintf("%s %s in %s. (Level: %s)", starter, topic, subject, difficulty),
		TopicTag:    topic,
		IdealAnswer: fmt.Sprintf("An ideal answer should mention the core definition, one example, and a %s nuance.", strings.ToLower(difficulty)),
		Keywords:    TopicKeywords(topic),
	}
}

// TopicKeywords derives short-answer keywords: whitespace-split topic tokens
// longer than three characters, capped at the first four.
func TopicKeywords(topic string) []string {
	var kws []string
	for _, tok := range strings.Fields(topic) {
		if utf8.RuneCountInString(tok) > 3 {
			kws = append(kws, tok)
			if len(kws) == maxKeywords {
				break
			}
		}
	}
	return kws
}

func (g *Generator) intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(n)
}
