package database

import (
	"context"
	"fmt"
	"log"

	config "github.com/anjiri1684/faq_board/configs"
	"github.com/anjiri1684/faq_board/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Store is implemented by every question backend in this package.
type Store interface {
	ListAnswered(ctx context.Context) ([]models.Question, error)
	ListAll(ctx context.Context) ([]models.Question, error)
	Create(ctx context.Context, q *models.Question) (string, error)
	GetByID(ctx context.Context, id string) (*models.Question, error)
	Update(ctx context.Context, id string, upd models.QuestionUpdate) error
	Delete(ctx context.Context, id string) error
	Close() error
}

// Open connects the backend selected by cfg.StoreBackend. SQL backends are
// migrated before they are returned.
func Open(ctx context.Context, cfg config.Config) (Store, error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres, config.BackendSQLite:
		db, err := ConnectDB(cfg.StoreBackend, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := Migrate(db); err != nil {
			return nil, err
		}
		return NewGormQuestionStore(db), nil
	case config.BackendFirestore:
		return NewFirestoreQuestionStore(ctx, cfg.GCPProjectID)
	case config.BackendMemory:
		log.Println("⚠️ Using in-memory question store, data is lost on restart")
		return NewMemoryQuestionStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

func ConnectDB(backend, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch backend {
	case config.BackendPostgres:
		dialector = postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		})
	case config.BackendSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("backend %q is not a SQL backend", backend)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   NewGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Printf("✅ Database connected successfully (%s)", backend)
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Question{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Println("✅ Database migration successful")
	return nil
}
