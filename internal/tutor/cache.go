package tutor

import (
	"sync"
	"time"
)

// QuizCache holds generated quizzes between generation and submission so
// answer keys never leave the server. Entries are ephemeral: one quiz
// session each, consumed on submit or dropped after the TTL.
type QuizCache struct {
	mu   sync.Mutex
	ttl  time.Duration
	byID map[string]cacheEntry
	now  func() time.Time
}

type cacheEntry struct {
	quiz    Quiz
	expires time.Time
}

// NewQuizCache creates a cache with the given TTL (1h when zero).
func NewQuizCache(ttl time.Duration) *QuizCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &QuizCache{ttl: ttl, byID: make(map[string]cacheEntry), now: time.Now}
}

// Put stores a quiz under its ID.
func (c *QuizCache) Put(q Quiz) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sweepLocked()
	c.byID[q.ID] = cacheEntry{quiz: q, expires: c.now().Add(c.ttl)}
}

// Take returns the quiz and removes it, so each session grades at most once.
func (c *QuizCache) Take(id string) (Quiz, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sweepLocked()
	e, ok := c.byID[id]
	if !ok {
		return Quiz{}, false
	}
	delete(c.byID, id)
	return e.quiz, true
}

// sweepLocked drops expired entries. Called with the lock held; the cache
// has no background goroutine.
func (c *QuizCache) sweepLocked() {
	now := c.now()
	for id, e := range c.byID {
		if now.After(e.expires) {
			delete(c.byID, id)
		}
	}
}
