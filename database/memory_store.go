package database

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/anjiri1684/faq_board/models"
	"github.com/google/uuid"
)

// MemoryQuestionStore keeps questions in a map. Records are copied on the
// way in and out so callers never share state with the store.
type MemoryQuestionStore struct {
	mu        sync.RWMutex
	questions map[string]models.Question
}

func NewMemoryQuestionStore() *MemoryQuestionStore {
	return &MemoryQuestionStore{questions: make(map[string]models.Question)}
}

func (s *MemoryQuestionStore) ListAnswered(ctx context.Context) ([]models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Question, 0, len(s.questions))
	for _, q := range s.questions {
		if q.Status == models.StatusAnswered {
			out = append(out, cloneQuestion(q))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return answeredAt(out[i]).After(answeredAt(out[j]))
	})
	return out, nil
}

func (s *MemoryQuestionStore) ListAll(ctx context.Context) ([]models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Question, 0, len(s.questions))
	for _, q := range s.questions {
		out = append(out, cloneQuestion(q))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryQuestionStore) Create(ctx context.Context, q *models.Question) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	s.questions[q.ID] = cloneQuestion(*q)
	return q.ID, nil
}

func (s *MemoryQuestionStore) GetByID(ctx context.Context, id string) (*models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.questions[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	c := cloneQuestion(q)
	return &c, nil
}

func (s *MemoryQuestionStore) Update(ctx context.Context, id string, upd models.QuestionUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.questions[id]
	if !ok {
		return models.ErrNotFound
	}
	upd.Apply(&q)
	s.questions[id] = q
	return nil
}

func (s *MemoryQuestionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.questions, id)
	return nil
}

func (s *MemoryQuestionStore) Close() error { return nil }

func cloneQuestion(q models.Question) models.Question {
	c := q
	if q.Email != nil {
		v := *q.Email
		c.Email = &v
	}
	if q.Answer != nil {
		v := *q.Answer
		c.Answer = &v
	}
	if q.AnsweredAt != nil {
		v := *q.AnsweredAt
		c.AnsweredAt = &v
	}
	return c
}

func answeredAt(q models.Question) time.Time {
	if q.AnsweredAt != nil {
		return *q.AnsweredAt
	}
	return time.Time{}
}
