package impl

import (
	"context"
	"testing"

	"matrimony/internal/domain/entity"
	"matrimony/internal/domain/repository"
	mockRepo "matrimony/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFavoriteService_Add(t *testing.T) {
	mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	mockBiodataRepo := mockRepo.NewMockBiodataRepository(t)

	service := NewFavoriteService(FavoriteServiceParams{
		FavoriteRepo: mockFavoriteRepo,
		BiodataRepo:  mockBiodataRepo,
	})

	ctx := context.Background()

	mockBiodataRepo.EXPECT().FindByID(ctx, 7).Return(&entity.Biodata{ID: 7}, nil)
	mockFavoriteRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(f *entity.Favorite) bool {
			return f.UserEmail == "member@example.com" && f.BiodataID == 7
		})).
		Return(nil)

	result, err := service.Add(ctx, "member@example.com", 7)
	require.NoError(t, err)
	assert.False(t, result.AlreadyExists)
	assert.Equal(t, 7, result.Favorite.BiodataID)
}

func TestFavoriteService_Add_Duplicate(t *testing.T) {
	mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	mockBiodataRepo := mockRepo.NewMockBiodataRepository(t)

	service := NewFavoriteService(FavoriteServiceParams{
		FavoriteRepo: mockFavoriteRepo,
		BiodataRepo:  mockBiodataRepo,
	})

	ctx := context.Background()

	mockBiodataRepo.EXPECT().FindByID(ctx, 7).Return(&entity.Biodata{ID: 7}, nil)
	mockFavoriteRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Favorite")).
		Return(repository.ErrFavoriteExists)

	result, err := service.Add(ctx, "member@example.com", 7)
	require.NoError(t, err)
	assert.True(t, result.AlreadyExists)
}

func TestFavoriteService_Add_ListingMissing(t *testing.T) {
	mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	mockBiodataRepo := mockRepo.NewMockBiodataRepository(t)

	service := NewFavoriteService(FavoriteServiceParams{
		FavoriteRepo: mockFavoriteRepo,
		BiodataRepo:  mockBiodataRepo,
	})

	ctx := context.Background()

	mockBiodataRepo.EXPECT().FindByID(ctx, 404).Return(nil, repository.ErrBiodataNotFound)

	_, err := service.Add(ctx, "member@example.com", 404)
	assert.ErrorIs(t, err, repository.ErrBiodataNotFound)
}

func TestFavoriteService_List_SkipsVanishedListings(t *testing.T) {
	mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	mockBiodataRepo := mockRepo.NewMockBiodataRepository(t)

	service := NewFavoriteService(FavoriteServiceParams{
		FavoriteRepo: mockFavoriteRepo,
		BiodataRepo:  mockBiodataRepo,
	})

	ctx := context.Background()

	mockFavoriteRepo.EXPECT().
		FindByUser(ctx, "member@example.com").
		Return([]*entity.Favorite{
			{UserEmail: "member@example.com", BiodataID: 1},
			{UserEmail: "member@example.com", BiodataID: 2},
		}, nil)
	mockBiodataRepo.EXPECT().
		FindByID(ctx, 1).
		Return(&entity.Biodata{ID: 1, Name: "First", ContactEmail: "first@example.com"}, nil)
	mockBiodataRepo.EXPECT().FindByID(ctx, 2).Return(nil, repository.ErrBiodataNotFound)

	items, err := service.List(ctx, "member@example.com")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Biodata.ID)
	assert.Empty(t, items[0].Biodata.ContactEmail, "bookmark pages never expose contact details")
}

func TestFavoriteService_Remove_NotFound(t *testing.T) {
	mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	mockBiodataRepo := mockRepo.NewMockBiodataRepository(t)

	service := NewFavoriteService(FavoriteServiceParams{
		FavoriteRepo: mockFavoriteRepo,
		BiodataRepo:  mockBiodataRepo,
	})

	ctx := context.Background()

	mockFavoriteRepo.EXPECT().
		Delete(ctx, "member@example.com", 9).
		Return(repository.ErrFavoriteNotFound)

	err := service.Remove(ctx, "member@example.com", 9)
	assert.ErrorIs(t, err, repository.ErrFavoriteNotFound)
}
