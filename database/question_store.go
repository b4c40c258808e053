package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/anjiri1684/faq_board/models"
	"gorm.io/gorm"
)

type GormQuestionStore struct {
	db *gorm.DB
}

func NewGormQuestionStore(db *gorm.DB) *GormQuestionStore {
	return &GormQuestionStore{db: db}
}

func (s *GormQuestionStore) ListAnswered(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.WithContext(ctx).
		Where("status = ?", string(models.StatusAnswered)).
		Order("answered_at desc").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("list answered questions: %w", err)
	}
	return questions, nil
}

func (s *GormQuestionStore) ListAll(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

func (s *GormQuestionStore) Create(ctx context.Context, q *models.Question) (string, error) {
	if err := s.db.WithContext(ctx).Create(q).Error; err != nil {
		return "", fmt.Errorf("create question: %w", err)
	}
	return q.ID, nil
}

func (s *GormQuestionStore) GetByID(ctx context.Context, id string) (*models.Question, error) {
	var q models.Question
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&q).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("get question %s: %w", id, err)
	}
	return &q, nil
}

func (s *GormQuestionStore) Update(ctx context.Context, id string, upd models.QuestionUpdate) error {
	result := s.db.WithContext(ctx).
		Model(&models.Question{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"answer":      upd.Answer,
			"status":      string(upd.Status),
			"answered_at": upd.AnsweredAt,
		})
	if result.Error != nil {
		return fmt.Errorf("update question %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (s *GormQuestionStore) Delete(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Delete(&models.Question{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete question %s: %w", id, err)
	}
	return nil
}

func (s *GormQuestionStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
