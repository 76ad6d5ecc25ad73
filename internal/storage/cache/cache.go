package cache

import (
	"sync"

	"github.com/DanRulev/vocabdrill/internal/models"
)

const shardCount = 32

// Action is a pending free-text input the user was asked for.
type Action int

const (
	ActionNone Action = iota
	ActionAddWord
	ActionDeleteWord
)

type shard struct {
	mu      sync.Mutex
	quiz    map[int64]models.QuizCard
	pending map[int64]Action
}

// Cache keeps per-user conversational state. Users are spread over shards so
// that unrelated users never contend for the same lock.
type Cache struct {
	shards [shardCount]*shard
}

func NewCache() *Cache {
	c := &Cache{}
	for i := range c.shards {
		c.shards[i] = &shard{
			quiz:    make(map[int64]models.QuizCard),
			pending: make(map[int64]Action),
		}
	}
	return c
}

func (c *Cache) shard(userID int64) *shard {
	idx := userID % shardCount
	if idx < 0 {
		idx = -idx
	}
	return c.shards[idx]
}

func (c *Cache) SetQuiz(userID int64, quiz models.QuizCard) {
	s := c.shard(userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quiz[userID] = quiz
}

// TakeQuiz returns the pending question and removes it in one step.
func (c *Cache) TakeQuiz(userID int64) (models.QuizCard, bool) {
	s := c.shard(userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	quiz, exists := s.quiz[userID]
	if exists {
		delete(s.quiz, userID)
	}
	return quiz, exists
}

func (c *Cache) SetPending(userID int64, action Action) {
	s := c.shard(userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	if action == ActionNone {
		delete(s.pending, userID)
		return
	}
	s.pending[userID] = action
}

func (c *Cache) TakePending(userID int64) Action {
	s := c.shard(userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	action := s.pending[userID]
	delete(s.pending, userID)
	return action
}
