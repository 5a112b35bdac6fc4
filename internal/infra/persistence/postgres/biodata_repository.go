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

// listingColumns are the columns returned by filtered queries; the two
// sensitive contact columns are deliberately absent so bulk reads can never
// leak them, whatever the caller later does with the rows.
var listingColumns = []string{
	"id", "type", "name", "profile_image", "date_of_birth", "height", "weight",
	"age", "occupation", "race", "fathers_name", "mothers_name",
	"permanent_division", "present_division", "expected_partner_age",
	"expected_partner_height", "expected_partner_weight", "created_at", "updated_at",
}

// biodataRepository implements the domain.BiodataRepository interface using GORM.
type biodataRepository struct {
	db *gorm.DB
}

// NewBiodataRepository is the constructor for biodataRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewBiodataRepository(db *gorm.DB) repository.BiodataRepository {
	return &biodataRepository{db: db}
}

// FindByID retrieves a single listing by its sequential number.
func (repo *biodataRepository) FindByID(ctx context.Context, id int) (*entity.Biodata, error) {
	var biodataM model.BiodataModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&biodataM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBiodataNotFound
		}

		return nil, errors.Wrap(err, "failed to find biodata by id")
	}

	return toBiodataDomain(&biodataM), nil
}

// FindByEmail retrieves the listing owned by the given account.
func (repo *biodataRepository) FindByEmail(ctx context.Context, email string) (*entity.Biodata, error) {
	var biodataM model.BiodataModel
	err := repo.db.WithContext(ctx).
		Where("contact_email = ?", email).
		First(&biodataM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBiodataNotFound
		}

		return nil, errors.Wrap(err, "failed to find biodata by email")
	}

	return toBiodataDomain(&biodataM), nil
}

// List retrieves listings matching the filter, contact columns projected out,
// plus the total match count for pagination.
func (repo *biodataRepository) List(ctx context.Context, filter repository.BiodataFilter) ([]*entity.Biodata, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.BiodataModel{})

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.Division != "" {
		query = query.Where("permanent_division = ?", filter.Division)
	}
	if filter.MinAge > 0 {
		query = query.Where("age >= ?", filter.MinAge)
	}
	if filter.MaxAge > 0 {
		query = query.Where("age <= ?", filter.MaxAge)
	}
	if filter.PremiumOnly {
		query = query.Where(
			"contact_email IN (?)",
			repo.db.Model(&model.UserModel{}).Select("email").Where("premium = ?", entity.PremiumApproved.String()),
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count biodatas")
	}

	switch filter.AgeSort {
	case "asc":
		query = query.Order("age ASC")
	case "desc":
		query = query.Order("age DESC")
	default:
		query = query.Order("created_at DESC")
	}

	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var biodataMs []*model.BiodataModel
	if err := query.Select(listingColumns).Find(&biodataMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list biodatas")
	}

	biodatas := make([]*entity.Biodata, 0, len(biodataMs))
	for _, biodataM := range biodataMs {
		biodatas = append(biodatas, toBiodataDomain(biodataM))
	}

	return biodatas, total, nil
}

// Upsert creates or replaces the listing keyed by its ContactEmail.
func (repo *biodataRepository) Upsert(ctx context.Context, biodata *entity.Biodata) error {
	biodataM := fromBiodataDomain(biodata)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "contact_email"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"type", "name", "profile_image", "date_of_birth", "height", "weight",
				"age", "occupation", "race", "fathers_name", "mothers_name",
				"permanent_division", "present_division", "expected_partner_age",
				"expected_partner_height", "expected_partner_weight", "mobile_number",
				"updated_at",
			}),
		}).
		Create(biodataM).Error

	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required biodata fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert biodata")
	}

	biodata.CreatedAt = biodataM.CreatedAt
	biodata.UpdatedAt = biodataM.UpdatedAt

	return nil
}

// CountByType returns the total number of listings and the male/female split.
func (repo *biodataRepository) CountByType(ctx context.Context) (total, male, female int64, err error) {
	type typeCount struct {
		Type  string
		Count int64
	}

	var counts []typeCount
	err = repo.db.WithContext(ctx).
		Model(&model.BiodataModel{}).
		Select("type, count(*) as count").
		Group("type").
		Find(&counts).Error
	if err != nil {
		return 0, 0, 0, errors.Wrap(err, "failed to count biodatas by type")
	}

	for _, c := range counts {
		total += c.Count
		switch entity.BiodataType(c.Type) {
		case entity.BiodataTypeMale:
			male = c.Count
		case entity.BiodataTypeFemale:
			female = c.Count
		}
	}

	return total, male, female, nil
}

// --- Mapper Functions ---

// toBiodataDomain converts a GORM BiodataModel to a domain Biodata entity.
func toBiodataDomain(data *model.BiodataModel) *entity.Biodata {
	if data == nil {
		return nil
	}

	return &entity.Biodata{
		ID:                    data.ID,
		Type:                  entity.BiodataType(data.Type),
		Name:                  data.Name,
		ProfileImage:          data.ProfileImage,
		DateOfBirth:           data.DateOfBirth,
		Height:                data.Height,
		Weight:                data.Weight,
		Age:                   data.Age,
		Occupation:            data.Occupation,
		Race:                  data.Race,
		FathersName:           data.FathersName,
		MothersName:           data.MothersName,
		PermanentDivision:     data.PermanentDivision,
		PresentDivision:       data.PresentDivision,
		ExpectedPartnerAge:    data.ExpectedPartnerAge,
		ExpectedPartnerHeight: data.ExpectedPartnerHeight,
		ExpectedPartnerWeight: data.ExpectedPartnerWeight,
		ContactEmail:          data.ContactEmail,
		MobileNumber:          data.MobileNumber,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

// fromBiodataDomain converts a domain Biodata entity to a GORM BiodataModel for persistence.
func fromBiodataDomain(data *entity.Biodata) *model.BiodataModel {
	if data == nil {
		return nil
	}

	return &model.BiodataModel{
		ID:                    data.ID,
		Type:                  data.Type.String(),
		Name:                  data.Name,
		ProfileImage:          data.ProfileImage,
		DateOfBirth:           data.DateOfBirth,
		Height:                data.Height,
		Weight:                data.Weight,
		Age:                   data.Age,
		Occupation:            data.Occupation,
		Race:                  data.Race,
		FathersName:           data.FathersName,
		MothersName:           data.MothersName,
		PermanentDivision:     data.PermanentDivision,
		PresentDivision:       data.PresentDivision,
		ExpectedPartnerAge:    data.ExpectedPartnerAge,
		ExpectedPartnerHeight: data.ExpectedPartnerHeight,
		ExpectedPartnerWeight: data.ExpectedPartnerWeight,
		ContactEmail:          data.ContactEmail,
		MobileNumber:          data.MobileNumber,
	}
}
