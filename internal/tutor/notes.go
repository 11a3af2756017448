package tutor

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/edututor/edututor/internal/llm"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

func cleanText(s string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}

// GenerateStudyNotes returns study notes for the topic. When useLLM is set
// and a provider is configured, the body comes from the model; any provider
// error is swallowed and the templated fallback is returned instead, so this
// operation never fails.
func (g *Generator) GenerateStudyNotes(ctx context.Context, topic, subject, difficulty string, useLLM bool) string {
	topic = strings.TrimSpace(topic)
	header := fmt.Sprintf("Subject: %s | Difficulty: %s\nTopic: %s\n\n", subject, difficulty, topic)

	if useLLM && g.provider != nil {
		prompt := fmt.Sprintf(
			"Create concise study notes for %s on '%s'. Target level: %s. Use bullet points and short explanations.",
			subject, topic, difficulty)
		text, err := g.provider.Generate(ctx, llm.Request{Prompt: prompt, MaxTokens: 250, Temperature: 0.7})
		if err == nil && strings.TrimSpace(text) != "" {
			return header + cleanText(text)
		}
	}

	points := []string{
		fmt.Sprintf("Core concept overview of '%s'.", topic),
		fmt.Sprintf("Key formulas/definitions relevant to %s.", subject),
		"Common pitfalls and misconceptions.",
		fmt.Sprintf("Examples ranging from %s to challenging.", strings.ToLower(difficulty)),
		"Mini checklist for quick revision.",
	}
	var b strings.Builder
	b.WriteString(header)
	for i, p := range points {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(p)
	}
	return b.String()
}

// GenerateFlashcards returns n Q&A pairs. The model path parses
// "Q: ... | A: ..." lines; output with no parsable line falls back to the
// template set, cycled to length n.
func (g *Generator) GenerateFlashcards(ctx context.Context, topic, subject, difficulty string, n int, useLLM bool) []Flashcard {
	if n <= 0 {
		return nil
	}

	if useLLM && g.provider != nil {
		prompt := fmt.Sprintf(
			"Create %d flashcards as Q&A for %s on '%s', level %s. Format as 'Q: ... | A: ...' per line.",
			n, subject, topic, difficulty)
		text, err := g.provider.Generate(ctx, llm.Request{Prompt: prompt, MaxTokens: 300, Temperature: 0.7})
		if err == nil {
			if cards := ParseFlashcards(text); len(cards) > 0 {
				if len(cards) > n {
					cards = cards[:n]
				}
				return cards
			}
		}
	}

	base := []Flashcard{
		{fmt.Sprintf("Define the main idea of %s in %s.", topic, subject), fmt.Sprintf("The main idea is ... (level %s).", difficulty)},
		{fmt.Sprintf("Give an example related to %s.", topic), fmt.Sprintf("An example is ... relevant to %s.", subject)},
		{fmt.Sprintf("State a common misconception about %s.", topic), "A misconception is ... and the correction is ..."},
		{fmt.Sprintf("Provide a key formula/theorem for %s.", topic), "One key formula/theorem is ..."},
		{fmt.Sprintf("Explain how to apply %s in practice.", topic), "Apply it by ..."},
	}
	cards := make([]Flashcard, n)
	for i := range cards {
		cards[i] = base[i%len(base)]
	}
	return cards
}

// ParseFlashcards extracts Q&A pairs from model output. A line qualifies
// when it contains a '|'; the question is the text after the first ':' on
// the left side, the answer the text after the first ':' on the right.
// Pairs with an empty side are dropped.
func ParseFlashcards(text string) []Flashcard {
	var cards []Flashcard
	for _, line := range strings.Split(text, "\n") {
		q, a, ok := strings.Cut(line, "|")
		if !ok {
			continue
		}
		q = strings.TrimSpace(afterColon(q))
		a = strings.TrimSpace(afterColon(a))
		if q != "" && a != "" {
			cards = append(cards, Flashcard{Question: q, Answer: a})
		}
	}
	return cards
}

func afterColon(s string) string {
	if _, rest, ok := strings.Cut(s, ":"); ok {
		return rest
	}
	return s
}
