package impl

import (
	"context"

	domainerrors "matrimony/internal/domain/errors"
	"matrimony/internal/domain/policy"
	"matrimony/internal/domain/repository"
	"matrimony/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type statsService struct {
	biodataRepo repository.BiodataRepository
	userRepo    repository.UserRepository
	paymentRepo repository.PaymentRepository
}

// StatsServiceParams holds dependencies for StatsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	BiodataRepo repository.BiodataRepository
	UserRepo    repository.UserRepository
	PaymentRepo repository.PaymentRepository
}

// NewStatsService creates a new stats service instance
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		biodataRepo: params.BiodataRepo,
		userRepo:    params.UserRepo,
		paymentRepo: params.PaymentRepo,
	}
}

// Summary retrieves the public listing counters.
func (s *statsService) Summary(ctx context.Context) (*usecase.StatsSummary, error) {
	total, male, female, err := s.biodataRepo.CountByType(ctx)
	if err != nil {
		return nil, err
	}

	premium, err := s.userRepo.CountPremium(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.StatsSummary{
		TotalBiodatas:  total,
		MaleBiodatas:   male,
		FemaleBiodatas: female,
		PremiumUsers:   premium,
	}, nil
}

// AdminStats retrieves the counters plus total approved revenue.
func (s *statsService) AdminStats(ctx context.Context, viewerEmail string) (*usecase.AdminStats, error) {
	viewer, err := s.userRepo.FindByEmail(ctx, viewerEmail)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrForbidden
		}

		return nil, errors.Wrap(err, "failed to load viewer account")
	}

	if err := policy.Allow(policy.ViewerFromUser(viewer), policy.Resource{}, policy.ActionViewStats); err != nil {
		return nil, err
	}

	summary, err := s.Summary(ctx)
	if err != nil {
		return nil, err
	}

	revenue, err := s.paymentRepo.SumApprovedAmount(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.AdminStats{
		StatsSummary: *summary,
		RevenueCents: revenue,
	}, nil
}
