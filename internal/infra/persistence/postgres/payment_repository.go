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

// paymentRepository implements the domain.PaymentRepository interface using GORM.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// Create persists a new purchase attempt in the Pending state.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("transaction id already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt
	payment.UpdatedAt = paymentM.UpdatedAt

	return nil
}

// FindByTranID retrieves a purchase by its gateway transaction ID.
func (repo *paymentRepository) FindByTranID(ctx context.Context, tranID string) (*entity.Payment, error) {
	var paymentM model.PaymentModel
	err := repo.db.WithContext(ctx).
		Where("tran_id = ?", tranID).
		First(&paymentM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by transaction id")
	}

	return toPaymentDomain(&paymentM), nil
}

// FindByRequester retrieves all purchase attempts of an account, newest first.
func (repo *paymentRepository) FindByRequester(ctx context.Context, requesterEmail string) ([]*entity.Payment, error) {
	var paymentMs []*model.PaymentModel
	err := repo.db.WithContext(ctx).
		Where("requester_email = ?", requesterEmail).
		Order("created_at DESC").
		Find(&paymentMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payments by requester")
	}

	return toPaymentDomainSlice(paymentMs), nil
}

// ListAll retrieves every purchase record, newest first.
func (repo *paymentRepository) ListAll(ctx context.Context) ([]*entity.Payment, error) {
	var paymentMs []*model.PaymentModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&paymentMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return toPaymentDomainSlice(paymentMs), nil
}

// UpdateOutcome moves a Pending record identified by tranID into the given
// terminal status. The WHERE clause matches on the Pending state, so a
// record already settled is left untouched and reported via the flag. That
// single conditional UPDATE is what makes concurrent gateway callbacks safe.
func (repo *paymentRepository) UpdateOutcome(ctx context.Context, tranID string, status entity.PaymentStatus, method string) (bool, error) {
	updates := map[string]any{"status": status.String()}
	if method != "" {
		updates["method"] = method
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("tran_id = ? AND status = ?", tranID, entity.PaymentPending.String()).
		Updates(updates)

	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment outcome")
	}

	return result.RowsAffected > 0, nil
}

// HasApproved reports whether at least one Approved record exists for the
// exact (requester, listing) pair.
func (repo *paymentRepository) HasApproved(ctx context.Context, requesterEmail string, biodataID int) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("requester_email = ? AND biodata_id = ? AND status = ?",
			requesterEmail, biodataID, entity.PaymentApproved.String()).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check approved payment")
	}

	return count > 0, nil
}

// Delete removes a purchase record by its transaction ID.
func (repo *paymentRepository) Delete(ctx context.Context, tranID string) error {
	result := repo.db.WithContext(ctx).
		Where("tran_id = ?", tranID).
		Delete(&model.PaymentModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete payment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

// SumApprovedAmount totals the amount of all Approved records.
func (repo *paymentRepository) SumApprovedAmount(ctx context.Context) (int64, error) {
	var sum *int64
	err := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("status = ?", entity.PaymentApproved.String()).
		Select("SUM(amount_cents)").
		Scan(&sum).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to sum approved payments")
	}
	if sum == nil {
		return 0, nil
	}

	return *sum, nil
}

// --- Mapper Functions ---

// toPaymentDomain converts a GORM PaymentModel to a domain Payment entity.
func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:             data.ID,
		TranID:         data.TranID,
		RequesterEmail: data.RequesterEmail,
		BiodataID:      data.BiodataID,
		AmountCents:    data.AmountCents,
		Currency:       data.Currency,
		Provider:       data.Provider,
		Method:         data.Method,
		RedirectURL:    data.RedirectURL,
		Status:         entity.PaymentStatus(data.Status),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toPaymentDomainSlice(data []*model.PaymentModel) []*entity.Payment {
	payments := make([]*entity.Payment, 0, len(data))
	for _, paymentM := range data {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments
}

// fromPaymentDomain converts a domain Payment entity to a GORM PaymentModel for persistence.
func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:             data.ID,
		TranID:         data.TranID,
		RequesterEmail: data.RequesterEmail,
		BiodataID:      data.BiodataID,
		AmountCents:    data.AmountCents,
		Currency:       data.Currency,
		Provider:       data.Provider,
		Method:         data.Method,
		RedirectURL:    data.RedirectURL,
		Status:         data.Status.String(),
	}
}
