package impl

import (
	"context"

	"matrimony/internal/domain/entity"
	"matrimony/internal/domain/repository"
	"matrimony/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	biodataRepo  repository.BiodataRepository
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	BiodataRepo  repository.BiodataRepository
}

// NewFavoriteService creates a new favorite service instance
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		biodataRepo:  params.BiodataRepo,
	}
}

// Add bookmarks a listing for the caller. Bookmarking the same listing
// twice is not an error; the result reports it was already present.
func (s *favoriteService) Add(ctx context.Context, userEmail string, biodataID int) (*usecase.FavoriteResult, error) {
	if _, err := s.biodataRepo.FindByID(ctx, biodataID); err != nil {
		return nil, err
	}

	favorite := &entity.Favorite{
		UserEmail: userEmail,
		BiodataID: biodataID,
	}

	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		if errors.Is(err, repository.ErrFavoriteExists) {
			return &usecase.FavoriteResult{AlreadyExists: true}, nil
		}

		return nil, err
	}

	return &usecase.FavoriteResult{Favorite: favorite}, nil
}

// List retrieves the caller's bookmarks with their listings, newest first.
// A bookmark whose listing has disappeared is skipped rather than failing
// the whole page.
func (s *favoriteService) List(ctx context.Context, userEmail string) ([]*usecase.FavoriteItem, error) {
	favorites, err := s.favoriteRepo.FindByUser(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	items := make([]*usecase.FavoriteItem, 0, len(favorites))
	for _, favorite := range favorites {
		biodata, err := s.biodataRepo.FindByID(ctx, favorite.BiodataID)
		if err != nil {
			if errors.Is(err, repository.ErrBiodataNotFound) {
				continue
			}

			return nil, err
		}
		biodata.RedactContact()

		items = append(items, &usecase.FavoriteItem{
			Favorite: favorite,
			Biodata:  biodata,
		})
	}

	return items, nil
}

// Remove deletes the caller's bookmark of a listing.
func (s *favoriteService) Remove(ctx context.Context, userEmail string, biodataID int) error {
	return s.favoriteRepo.Delete(ctx, userEmail, biodataID)
}
