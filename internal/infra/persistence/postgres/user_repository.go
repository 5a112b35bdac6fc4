package postgres

import (
	"context"

	"matrimony/internal/domain/entity"
	domainerrors "matrimony/internal/domain/errors"
	"matrimony/internal/domain/repository"
	"matrimony/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByEmail retrieves a single account by its email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Upsert creates the account on first login and refreshes the mutable login
// fields on later logins. Role and premium status are never part of the
// update set, so a login can never reset an admin or a premium grant.
func (repo *userRepository) Upsert(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "photo_url", "updated_at"}),
		}).
		Create(userM).Error

	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateRole changes the account's role.
func (repo *userRepository) UpdateRole(ctx context.Context, email string, role entity.Role) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = ?", email).
		Update("role", role.String())

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user role")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdatePremium changes the account's premium status.
func (repo *userRepository) UpdatePremium(ctx context.Context, email string, status entity.PremiumStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = ?", email).
		Update("premium", status.String())

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update premium status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Search retrieves accounts whose name or email contains the given fragment.
// An empty fragment lists everyone.
func (repo *userRepository) Search(ctx context.Context, fragment string) ([]*entity.User, error) {
	query := repo.db.WithContext(ctx).Model(&model.UserModel{})
	if fragment != "" {
		pattern := "%" + fragment + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	var userMs []*model.UserModel
	if err := query.Order("created_at DESC").Find(&userMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for _, userM := range userMs {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// CountPremium returns the number of premium-approved accounts.
func (repo *userRepository) CountPremium(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("premium = ?", entity.PremiumApproved.String()).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count premium users")
	}

	return count, nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		Email:     data.Email,
		Name:      data.Name,
		PhotoURL:  data.PhotoURL,
		Role:      entity.Role(data.Role),
		Premium:   entity.PremiumStatus(data.Premium),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:       data.ID,
		Email:    data.Email,
		Name:     data.Name,
		PhotoURL: data.PhotoURL,
		Role:     data.Role.String(),
		Premium:  data.Premium.String(),
	}
}
