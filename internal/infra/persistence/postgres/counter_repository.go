package postgres

import (
	"context"

	domainerrors "matrimony/internal/domain/errors"
	"matrimony/internal/domain/repository"

	"gorm.io/gorm"
)

// counterRepository implements the domain.CounterRepository interface using GORM.
type counterRepository struct {
	db *gorm.DB
}

// NewCounterRepository is the constructor for counterRepository.
func NewCounterRepository(db *gorm.DB) repository.CounterRepository {
	return &counterRepository{db: db}
}

// Next increments the named counter and returns the new value. The whole
// read-modify-write is a single upsert statement, so PostgreSQL serializes
// concurrent callers on the row and each one sees a distinct value. A
// counter that does not exist yet is created at seed.
func (repo *counterRepository) Next(ctx context.Context, name string, seed int) (int, error) {
	var value int
	err := repo.db.WithContext(ctx).Raw(`
		INSERT INTO counters (name, value)
		VALUES (?, ?)
		ON CONFLICT (name)
		DO UPDATE SET value = counters.value + 1
		RETURNING value`,
		name, seed,
	).Scan(&value).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to advance counter "+name)
	}

	return value, nil
}
