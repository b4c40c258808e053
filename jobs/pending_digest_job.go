package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/anjiri1684/faq_board/models"
	"github.com/robfig/cron/v3"
)

type PendingSource interface {
	PendingQuestions(ctx context.Context) ([]models.Question, error)
}

type DigestNotifier interface {
	NotifyPendingDigest(ctx context.Context, pending []models.Question) error
}

// PendingDigest reminds the admin about questions still waiting for an answer.
type PendingDigest struct {
	source   PendingSource
	notifier DigestNotifier
	timeout  time.Duration
}

func NewPendingDigest(source PendingSource, notifier DigestNotifier) *PendingDigest {
	return &PendingDigest{source: source, notifier: notifier, timeout: 30 * time.Second}
}

// Run sends one digest and reports how many questions it listed.
func (j *PendingDigest) Run(ctx context.Context) (int, error) {
	pending, err := j.source.PendingQuestions(ctx)
	if err != nil {
		return 0, fmt.Errorf("load pending questions: %w", err)
	}
	if len(pending) == 0 {
		return 0, nil
	}
	if err := j.notifier.NotifyPendingDigest(ctx, pending); err != nil {
		return 0, fmt.Errorf("send pending digest: %w", err)
	}
	return len(pending), nil
}

// Tick is the cron entry point.
func (j *PendingDigest) Tick() {
	log.Println("Running job: PendingDigest...")

	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	n, err := j.Run(ctx)
	if err != nil {
		log.Printf("Error running pending digest: %v", err)
		return
	}
	if n > 0 {
		log.Printf("✅ Pending digest sent for %d question(s)", n)
	}
}

// Schedule registers the digest on a new cron. An empty schedule disables it and
// returns a nil cron.
func Schedule(schedule string, job *PendingDigest) (*cron.Cron, error) {
	if schedule == "" {
		return nil, nil
	}
	c := cron.New()
	if _, err := c.AddFunc(schedule, job.Tick); err != nil {
		return nil, fmt.Errorf("invalid PENDING_DIGEST_SCHEDULE %q: %w", schedule, err)
	}
	return c, nil
}
