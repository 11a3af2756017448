package tutor

import (
	"testing"
	"time"
)

func TestQuizCache_TakeConsumes(t *testing.T) {
	c := NewQuizCache(time.Minute)
	c.Put(Quiz{ID: "abc", Topic: "algebra"})

	q, ok := c.Take("abc")
	if !ok || q.Topic != "algebra" {
		t.Fatalf("Take = (%+v, %v)", q, ok)
	}
	if _, ok := c.Take("abc"); ok {
		t.Error("second Take should miss")
	}
}

func TestQuizCache_MissingID(t *testing.T) {
	c := NewQuizCache(time.Minute)
	if _, ok := c.Take("nope"); ok {
		t.Error("expected miss for unknown id")
	}
}

func TestQuizCache_Expiry(t *testing.T) {
	c := NewQuizCache(time.Minute)
	base := time.Now()
	c.now = func() time.Time { return base }
	c.Put(Quiz{ID: "old"})

	c.now = func() time.Time { return base.Add(2 * time.Minute) }
	if _, ok := c.Take("old"); ok {
		t.Error("expired quiz should not be returned")
	}
}
