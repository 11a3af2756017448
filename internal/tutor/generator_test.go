package tutor

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

func seededGenerator(seed int64) *Generator {
	return NewGenerator(nil, WithRand(rand.New(rand.NewSource(seed))))
}

func TestGenerateQuizItems_CountsAndOrder(t *testing.T) {
	g := seededGenerator(1)
	items := g.GenerateQuizItems("Linear Equations", "Mathematics", "Medium", 3, 2)

	if len(items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(items))
	}
	for i := 0; i < 3; i++ {
		if items[i].Type != TypeMCQ {
			t.Errorf("item %d: expected type %q, got %q", i, TypeMCQ, items[i].Type)
		}
	}
	for i := 3; i < 5; i++ {
		if items[i].Type != TypeShort {
			t.Errorf("item %d: expected type %q, got %q", i, TypeShort, items[i].Type)
		}
	}
}

func TestGenerateQuizItems_MCQInvariants(t *testing.T) {
	g := seededGenerator(42)
	items := g.GenerateQuizItems("Photosynthesis", "Science", "Easy", 10, 0)

	for i, it := range items {
		if len(it.Options) != 4 {
			t.Fatalf("item %d: expected 4 options, got %d", i, len(it.Options))
		}
		found := false
		for _, o := range it.Options {
			if o == it.Answer {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("item %d: answer %q not among options %v", i, it.Answer, it.Options)
		}
		if it.TopicTag != "Photosynthesis" {
			t.Errorf("item %d: topic tag = %q", i, it.TopicTag)
		}
		if !strings.Contains(it.Explanation, "The correct answer is") {
			t.Errorf("item %d: unexpected explanation %q", i, it.Explanation)
		}
	}
}

func TestGenerateQuizItems_ShortUsesStarterSet(t *testing.T) {
	g := seededGenerator(7)
	items := g.GenerateQuizItems("Derivatives and Integrals", "Mathematics", "Hard", 0, 8)

	for i, it := range items {
		ok := false
		for _, s := range shortStarters {
			if strings.HasPrefix(it.Question, s+" ") {
				ok = true
				break
			}
		}
		if !ok {
			t.Errorf("item %d: question %q does not begin with a known starter", i, it.Question)
		}
		if !strings.HasSuffix(it.Question, "(Level: Hard)") {
			t.Errorf("item %d: question %q missing level suffix", i, it.Question)
		}
	}
}

func TestTopicKeywords(t *testing.T) {
	tests := []struct {
		topic string
		want  []string
	}{
		{"Derivatives and Integrals", []string{"Derivatives", "Integrals"}},
		{"a an the of", nil},
		{"", nil},
		{"one two three four five six seven", []string{"three", "four", "five", "seven"}},
		{"photosynthesis", []string{"photosynthesis"}},
	}
	for _, tt := range tests {
		got := TopicKeywords(tt.topic)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("TopicKeywords(%q) = %v, want %v", tt.topic, got, tt.want)
		}
	}
}

func TestTopicKeywords_CapAtFour(t *testing.T) {
	got := TopicKeywords("alpha beta gamma delta epsilon zeta")
	if len(got) != 4 {
		t.Fatalf("expected 4 keywords, got %d: %v", len(got), got)
	}
}

func TestStudentView_StripsKeys(t *testing.T) {
	g := seededGenerator(3)
	q := Quiz{
		ID:    "q1",
		Items: g.GenerateQuizItems("Fractions", "Mathematics", "Easy", 2, 2),
	}
	view := q.StudentView()

	for i, it := range view.Items {
		if it.Answer != "" || it.Explanation != "" || it.IdealAnswer != "" || it.Keywords != nil {
			t.Errorf("item %d: sensitive fields leaked: %+v", i, it)
		}
		if it.Question == "" {
			t.Errorf("item %d: question stripped", i)
		}
	}
	// The original quiz keeps its keys.
	if q.Items[0].Answer == "" {
		t.Error("StudentView mutated the source quiz")
	}
}
