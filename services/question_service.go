package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/anjiri1684/faq_board/models"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

type QuestionStore interface {
	ListAnswered(ctx context.Context) ([]models.Question, error)
	ListAll(ctx context.Context) ([]models.Question, error)
	Create(ctx context.Context, q *models.Question) (string, error)
	GetByID(ctx context.Context, id string) (*models.Question, error)
	Update(ctx context.Context, id string, upd models.QuestionUpdate) error
	Delete(ctx context.Context, id string) error
}

type Notifier interface {
	NotifyAdmin(ctx context.Context, q models.Question) error
	NotifySubmitter(ctx context.Context, q models.Question) error
}

type EventPublisher interface {
	Publish(evt models.BoardEvent)
}

// ValidationError reports a required field that was blank after trimming.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

type Submission struct {
	Question string `json:"question" validate:"notblank"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

type answerInput struct {
	Answer string `validate:"notblank"`
}

type QuestionService struct {
	store     QuestionStore
	notifier  Notifier
	publisher EventPublisher
	validate  *validator.Validate
	now       func() time.Time
}

type Option func(*QuestionService)

func WithClock(now func() time.Time) Option {
	return func(s *QuestionService) { s.now = now }
}

func WithPublisher(p EventPublisher) Option {
	return func(s *QuestionService) { s.publisher = p }
}

func NewQuestionService(store QuestionStore, notifier Notifier, opts ...Option) *QuestionService {
	v := validator.New()
	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("notblank", validators.NotBlank)

	s := &QuestionService{
		store:    store,
		notifier: notifier,
		validate: v,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit stores a new pending question and tells the admin about it. The
// admin email is best effort.
func (s *QuestionService) Submit(ctx context.Context, sub Submission) (string, error) {
	if err := s.validate.Struct(sub); err != nil {
		return "", &ValidationError{Field: "question"}
	}

	q := models.Question{
		Question:  strings.TrimSpace(sub.Question),
		Name:      strings.TrimSpace(sub.Name),
		Status:    models.StatusPending,
		CreatedAt: s.now().UTC(),
	}
	if q.Name == "" {
		q.Name = models.AnonymousName
	}
	if email := strings.TrimSpace(sub.Email); email != "" {
		q.Email = &email
	}

	id, err := s.store.Create(ctx, &q)
	if err != nil {
		return "", err
	}
	q.ID = id

	s.publish(models.BoardEvent{Type: models.EventQuestionCreated, ID: id, Question: &q})

	if s.notifier != nil {
		if err := s.notifier.NotifyAdmin(ctx, q); err != nil {
			log.Printf("🔥 Failed to notify admin about question %s: %v", id, err)
		}
	}
	return id, nil
}

// Answer moves a question to answered, overwriting any previous answer, and
// emails the submitter when an address was left.
func (s *QuestionService) Answer(ctx context.Context, id, answer string) error {
	if err := s.validate.Struct(answerInput{Answer: answer}); err != nil {
		return &ValidationError{Field: "answer"}
	}

	q, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}

	upd := models.QuestionUpdate{
		Answer:     strings.TrimSpace(answer),
		Status:     models.StatusAnswered,
		AnsweredAt: s.now().UTC(),
	}
	if err := s.store.Update(ctx, id, upd); err != nil {
		return err
	}
	upd.Apply(q)

	s.publish(models.BoardEvent{Type: models.EventQuestionAnswered, ID: id, Question: q})

	if s.notifier != nil && q.Email != nil {
		if err := s.notifier.NotifySubmitter(ctx, *q); err != nil {
			log.Printf("🔥 Failed to notify submitter of question %s: %v", id, err)
		}
	}
	return nil
}

func (s *QuestionService) Remove(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(models.BoardEvent{Type: models.EventQuestionDeleted, ID: id})
	return nil
}

func (s *QuestionService) PublicList(ctx context.Context) ([]models.Question, error) {
	return nonNil(s.store.ListAnswered(ctx))
}

func (s *QuestionService) FullList(ctx context.Context) ([]models.Question, error) {
	return nonNil(s.store.ListAll(ctx))
}

// PendingQuestions returns pending questions, newest first.
func (s *QuestionService) PendingQuestions(ctx context.Context) ([]models.Question, error) {
	all, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	pending := make([]models.Question, 0, len(all))
	for _, q := range all {
		if q.Status == models.StatusPending {
			pending = append(pending, q)
		}
	}
	return pending, nil
}

func (s *QuestionService) publish(evt models.BoardEvent) {
	if s.publisher != nil {
		s.publisher.Publish(evt)
	}
}

func nonNil(qs []models.Question, err error) ([]models.Question, error) {
	if err != nil {
		return nil, err
	}
	if qs == nil {
		qs = []models.Question{}
	}
	return qs, nil
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
