// Package impl provides the concrete implementations of the usecase interfaces.
package impl

import (
	"context"

	"matrimony/config"
	"matrimony/internal/domain/entity"
	"matrimony/internal/domain/policy"
	"matrimony/internal/domain/repository"
	"matrimony/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type biodataService struct {
	biodataRepo repository.BiodataRepository
	userRepo    repository.UserRepository
	txManager   repository.TransactionManager
	config      *config.Config
}

// BiodataServiceParams holds dependencies for BiodataService, injected by Fx.
type BiodataServiceParams struct {
	fx.In

	BiodataRepo repository.BiodataRepository
	UserRepo    repository.UserRepository
	TxManager   repository.TransactionManager
	Config      *config.Config
}

// NewBiodataService creates a new biodata service instance
func NewBiodataService(params BiodataServiceParams) usecase.BiodataUsecase {
	return &biodataService{
		biodataRepo: params.BiodataRepo,
		userRepo:    params.UserRepo,
		txManager:   params.TxManager,
		config:      params.Config,
	}
}

// Save creates or replaces the caller's listing. The sequential number is
// allocated inside the same transaction as the write, and only when the
// caller has no listing yet; resubmissions keep the original number.
func (s *biodataService) Save(ctx context.Context, ownerEmail string, input *usecase.BiodataInput) (*entity.Biodata, error) {
	biodata := fromBiodataInput(ownerEmail, input)

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		existing, err := repoFactory.BiodataRepo().FindByEmail(ctx, ownerEmail)
		switch {
		case err == nil:
			biodata.ID = existing.ID
		case errors.Is(err, repository.ErrBiodataNotFound):
			next, err := repoFactory.CounterRepo().Next(ctx, repository.BiodataCounter, s.config.Biodata.IDSeed)
			if err != nil {
				return err
			}
			biodata.ID = next
		default:
			return errors.Wrap(err, "failed to look up existing biodata")
		}

		return repoFactory.BiodataRepo().Upsert(ctx, biodata)
	})
	if err != nil {
		return nil, err
	}

	return biodata, nil
}

// GetOwn retrieves the caller's own listing with contact fields intact.
func (s *biodataService) GetOwn(ctx context.Context, ownerEmail string) (*entity.Biodata, error) {
	biodata, err := s.biodataRepo.FindByEmail(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}

	return biodata, nil
}

// GetByID retrieves a single listing rendered through the disclosure policy.
// The viewer's role and premium status come from a fresh read of their
// account record, not from token claims.
func (s *biodataService) GetByID(ctx context.Context, viewerEmail string, id int) (*entity.Biodata, error) {
	biodata, err := s.biodataRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	viewer := policy.Viewer{Email: viewerEmail}
	user, err := s.userRepo.FindByEmail(ctx, viewerEmail)
	switch {
	case err == nil:
		viewer = policy.ViewerFromUser(user)
	case errors.Is(err, repository.ErrUserNotFound):
		// A session without an account record views as a plain member.
	default:
		return nil, errors.Wrap(err, "failed to load viewer account")
	}

	return policy.RenderBiodata(viewer, biodata), nil
}

// List retrieves a filtered page of listings, contact fields blanked.
func (s *biodataService) List(ctx context.Context, filter usecase.ListFilter) ([]*entity.Biodata, int64, error) {
	return s.list(ctx, filter, false)
}

// ListPremium retrieves listings owned by premium-approved accounts.
func (s *biodataService) ListPremium(ctx context.Context, filter usecase.ListFilter) ([]*entity.Biodata, int64, error) {
	return s.list(ctx, filter, true)
}

func (s *biodataService) list(ctx context.Context, filter usecase.ListFilter, premiumOnly bool) ([]*entity.Biodata, int64, error) {
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = s.config.Biodata.PageSize
	}

	repoFilter := repository.BiodataFilter{
		Type:        entity.BiodataType(filter.Type),
		Division:    filter.Division,
		MinAge:      filter.MinAge,
		MaxAge:      filter.MaxAge,
		PremiumOnly: premiumOnly,
		AgeSort:     filter.AgeSort,
		Page:        filter.Page,
		PageSize:    pageSize,
	}

	biodatas, total, err := s.biodataRepo.List(ctx, repoFilter)
	if err != nil {
		return nil, 0, err
	}

	return biodatas, total, nil
}

// fromBiodataInput maps the submitted fields onto a fresh entity owned by
// the session account.
func fromBiodataInput(ownerEmail string, input *usecase.BiodataInput) *entity.Biodata {
	return &entity.Biodata{
		Type:                  entity.BiodataType(input.Type),
		Name:                  input.Name,
		ProfileImage:          input.ProfileImage,
		DateOfBirth:           input.DateOfBirth,
		Height:                input.Height,
		Weight:                input.Weight,
		Age:                   input.Age,
		Occupation:            input.Occupation,
		Race:                  input.Race,
		FathersName:           input.FathersName,
		MothersName:           input.MothersName,
		PermanentDivision:     input.PermanentDivision,
		PresentDivision:       input.PresentDivision,
		ExpectedPartnerAge:    input.ExpectedPartnerAge,
		ExpectedPartnerHeight: input.ExpectedPartnerHeight,
		ExpectedPartnerWeight: input.ExpectedPartnerWeight,
		ContactEmail:          ownerEmail,
		MobileNumber:          input.MobileNumber,
	}
}
