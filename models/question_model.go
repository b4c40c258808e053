package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAnswered Status = "answered"
)

// AnonymousName is stored when a submitter leaves the name blank.
const AnonymousName = "Anonymous"

// TimestampLayout matches ISO 8601 with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

var ErrNotFound = errors.New("question not found")

type Question struct {
	ID         string     `gorm:"type:varchar(64);primaryKey" json:"id" firestore:"-"`
	Question   string     `gorm:"type:text;not null" json:"question" firestore:"question"`
	Name       string     `gorm:"size:255;not null" json:"name" firestore:"name"`
	Email      *string    `gorm:"size:255" json:"email" firestore:"email"`
	Status     Status     `gorm:"size:20;not null;default:'pending';index" json:"status" firestore:"status"`
	CreatedAt  time.Time  `gorm:"not null;index" json:"createdAt" firestore:"createdAt"`
	Answer     *string    `gorm:"type:text" json:"answer" firestore:"answer"`
	AnsweredAt *time.Time `gorm:"index" json:"answeredAt" firestore:"answeredAt"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}

func (q Question) IsAnswered() bool {
	return q.Status == StatusAnswered
}

// QuestionUpdate is the patch written when a question gets answered.
type QuestionUpdate struct {
	Answer     string
	Status     Status
	AnsweredAt time.Time
}

// Apply merges the patch into q.
func (u QuestionUpdate) Apply(q *Question) {
	answer := u.Answer
	at := u.AnsweredAt
	q.Answer = &answer
	q.Status = u.Status
	q.AnsweredAt = &at
}
