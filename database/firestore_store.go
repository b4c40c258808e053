package database

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"github.com/anjiri1684/faq_board/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const questionsCollection = "questions"

// FirestoreQuestionStore keeps questions as documents in the "questions"
// collection. Document ids are the question ids.
type FirestoreQuestionStore struct {
	client *firestore.Client
	col    *firestore.CollectionRef
}

func NewFirestoreQuestionStore(ctx context.Context, projectID string) (*FirestoreQuestionStore, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	log.Printf("✅ Firestore connected successfully (project %s)", projectID)
	return &FirestoreQuestionStore{
		client: client,
		col:    client.Collection(questionsCollection),
	}, nil
}

func (s *FirestoreQuestionStore) ListAnswered(ctx context.Context) ([]models.Question, error) {
	docs, err := s.col.
		Where("status", "==", string(models.StatusAnswered)).
		OrderBy("answeredAt", firestore.Desc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("list answered questions: %w", err)
	}
	return decodeQuestions(docs)
}

func (s *FirestoreQuestionStore) ListAll(ctx context.Context) ([]models.Question, error) {
	docs, err := s.col.OrderBy("createdAt", firestore.Desc).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return decodeQuestions(docs)
}

func (s *FirestoreQuestionStore) Create(ctx context.Context, q *models.Question) (string, error) {
	ref, _, err := s.col.Add(ctx, q)
	if err != nil {
		return "", fmt.Errorf("create question: %w", err)
	}
	q.ID = ref.ID
	return ref.ID, nil
}

func (s *FirestoreQuestionStore) GetByID(ctx context.Context, id string) (*models.Question, error) {
	snap, err := s.col.Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("get question %s: %w", id, err)
	}
	q, err := decodeQuestion(snap)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *FirestoreQuestionStore) Update(ctx context.Context, id string, upd models.QuestionUpdate) error {
	_, err := s.col.Doc(id).Update(ctx, []firestore.Update{
		{Path: "answer", Value: upd.Answer},
		{Path: "status", Value: string(upd.Status)},
		{Path: "answeredAt", Value: upd.AnsweredAt},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return models.ErrNotFound
		}
		return fmt.Errorf("update question %s: %w", id, err)
	}
	return nil
}

func (s *FirestoreQuestionStore) Delete(ctx context.Context, id string) error {
	if _, err := s.col.Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete question %s: %w", id, err)
	}
	return nil
}

func (s *FirestoreQuestionStore) Close() error {
	return s.client.Close()
}

func decodeQuestions(docs []*firestore.DocumentSnapshot) ([]models.Question, error) {
	questions := make([]models.Question, 0, len(docs))
	for _, doc := range docs {
		q, err := decodeQuestion(doc)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func decodeQuestion(doc *firestore.DocumentSnapshot) (models.Question, error) {
	var q models.Question
	if err := doc.DataTo(&q); err != nil {
		return models.Question{}, fmt.Errorf("decode question %s: %w", doc.Ref.ID, err)
	}
	q.ID = doc.Ref.ID
	return q, nil
}
