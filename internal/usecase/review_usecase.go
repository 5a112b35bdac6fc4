package usecase

import (
	"context"

	"matrimony/internal/domain/entity"
)

// ReviewInput carries a submitted success story.
type ReviewInput struct {
	AuthorName   string `json:"authorName" validate:"required,max=100"`
	Rating       int    `json:"rating" validate:"required,gte=1,lte=5"`
	Text         string `json:"text" validate:"required"`
	ImageURL     string `json:"imageURL" validate:"omitempty,url"`
	MarriageDate string `json:"marriageDate"`
}

// ReviewUsecase defines the interface for success story use cases
type ReviewUsecase interface {
	// Submit stores a success story authored by the caller.
	Submit(ctx context.Context, authorEmail string, input *ReviewInput) (*entity.Review, error)

	// List retrieves all success stories, newest first.
	List(ctx context.Context) ([]*entity.Review, error)
}
