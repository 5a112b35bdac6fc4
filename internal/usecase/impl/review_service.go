package impl

import (
	"context"

	"matrimony/internal/domain/entity"
	"matrimony/internal/domain/repository"
	"matrimony/internal/usecase"

	"go.uber.org/fx"
)

type reviewService struct {
	reviewRepo repository.ReviewRepository
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo repository.ReviewRepository
}

// NewReviewService creates a new review service instance
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{reviewRepo: params.ReviewRepo}
}

// Submit stores a success story authored by the caller.
func (s *reviewService) Submit(ctx context.Context, authorEmail string, input *usecase.ReviewInput) (*entity.Review, error) {
	review := &entity.Review{
		AuthorEmail:  authorEmail,
		AuthorName:   input.AuthorName,
		Rating:       input.Rating,
		Text:         input.Text,
		ImageURL:     input.ImageURL,
		MarriageDate: input.MarriageDate,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// List retrieves all success stories, newest first.
func (s *reviewService) List(ctx context.Context) ([]*entity.Review, error) {
	return s.reviewRepo.List(ctx)
}
