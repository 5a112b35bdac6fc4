package postgres

import (
	"context"

	"matrimony/internal/domain/entity"
	domainerrors "matrimony/internal/domain/errors"
	"matrimony/internal/domain/repository"
	"matrimony/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the domain.FavoriteRepository interface using GORM.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Create persists a new favourite. A repeated (user, listing) pair trips the
// composite unique index and is reported as ErrFavoriteExists.
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrFavoriteExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favourite")
	}

	favorite.ID = favoriteM.ID
	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

// FindByUser retrieves all favourites of an account, newest first.
func (repo *favoriteRepository) FindByUser(ctx context.Context, userEmail string) ([]*entity.Favorite, error) {
	var favoriteMs []*model.FavoriteModel
	err := repo.db.WithContext(ctx).
		Where("user_email = ?", userEmail).
		Order("created_at DESC").
		Find(&favoriteMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find favourites by user")
	}

	favorites := make([]*entity.Favorite, 0, len(favoriteMs))
	for _, favoriteM := range favoriteMs {
		favorites = append(favorites, toFavoriteDomain(favoriteM))
	}

	return favorites, nil
}

// Delete removes the favourite for the (user, listing) pair.
func (repo *favoriteRepository) Delete(ctx context.Context, userEmail string, biodataID int) error {
	result := repo.db.WithContext(ctx).
		Where("user_email = ? AND biodata_id = ?", userEmail, biodataID).
		Delete(&model.FavoriteModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete favourite")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toFavoriteDomain converts a GORM FavoriteModel to a domain Favorite entity.
func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	if data == nil {
		return nil
	}

	return &entity.Favorite{
		ID:        data.ID,
		UserEmail: data.UserEmail,
		BiodataID: data.BiodataID,
		CreatedAt: data.CreatedAt,
	}
}

// fromFavoriteDomain converts a domain Favorite entity to a GORM FavoriteModel for persistence.
func fromFavoriteDomain(data *entity.Favorite) *model.FavoriteModel {
	if data == nil {
		return nil
	}

	return &model.FavoriteModel{
		ID:        data.ID,
		UserEmail: data.UserEmail,
		BiodataID: data.BiodataID,
	}
}
