package impl

import (
	"context"
	"testing"

	"matrimony/internal/domain/entity"
	domainerrors "matrimony/internal/domain/errors"
	mockRepo "matrimony/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_Summary(t *testing.T) {
	mockBiodataRepo := mockRepo.NewMockBiodataRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)

	service := NewStatsService(StatsServiceParams{
		BiodataRepo: mockBiodataRepo,
		UserRepo:    mockUserRepo,
		PaymentRepo: mockPaymentRepo,
	})

	ctx := context.Background()

	mockBiodataRepo.EXPECT().CountByType(ctx).Return(int64(12), int64(7), int64(5), nil)
	mockUserRepo.EXPECT().CountPremium(ctx).Return(int64(3), nil)

	summary, err := service.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), summary.TotalBiodatas)
	assert.Equal(t, int64(7), summary.MaleBiodatas)
	assert.Equal(t, int64(5), summary.FemaleBiodatas)
	assert.Equal(t, int64(3), summary.PremiumUsers)
}

func TestStatsService_AdminStats(t *testing.T) {
	mockBiodataRepo := mockRepo.NewMockBiodataRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)

	service := NewStatsService(StatsServiceParams{
		BiodataRepo: mockBiodataRepo,
		UserRepo:    mockUserRepo,
		PaymentRepo: mockPaymentRepo,
	})

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "admin@example.com").
		Return(&entity.User{Email: "admin@example.com", Role: entity.RoleAdmin}, nil)
	mockBiodataRepo.EXPECT().CountByType(ctx).Return(int64(12), int64(7), int64(5), nil)
	mockUserRepo.EXPECT().CountPremium(ctx).Return(int64(3), nil)
	mockPaymentRepo.EXPECT().SumApprovedAmount(ctx).Return(int64(2500), nil)

	stats, err := service.AdminStats(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalBiodatas)
	assert.Equal(t, int64(2500), stats.RevenueCents)
}

func TestStatsService_AdminStats_DeniedForNormalMember(t *testing.T) {
	mockBiodataRepo := mockRepo.NewMockBiodataRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)

	service := NewStatsService(StatsServiceParams{
		BiodataRepo: mockBiodataRepo,
		UserRepo:    mockUserRepo,
		PaymentRepo: mockPaymentRepo,
	})

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "member@example.com").
		Return(&entity.User{Email: "member@example.com", Role: entity.RoleNormal}, nil)

	_, err := service.AdminStats(ctx, "member@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
