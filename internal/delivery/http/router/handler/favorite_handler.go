package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"matrimony/internal/delivery/http/middleware"
	"matrimony/internal/delivery/http/response"
	"matrimony/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler holds dependencies for bookmark handlers.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// AddFavoriteRequest represents the request body for bookmarking a listing
type AddFavoriteRequest struct {
	BiodataID int `json:"biodataId" validate:"required,gt=0"`
}

// Add handles bookmarking a listing.
func (h *FavoriteHandler) Add(c echo.Context) error {
	var req AddFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favourite input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.favoriteUC.Add(c.Request().Context(), middleware.SessionEmail(c), req.BiodataID)
	if err != nil {
		return errors.WithStack(err)
	}

	if result.AlreadyExists {
		return response.Success(c, http.StatusOK, map[string]bool{"alreadyExists": true}, "Already bookmarked")
	}

	return response.Success(c, http.StatusCreated, result.Favorite, "Bookmarked")
}

// List handles fetching the caller's bookmarks.
func (h *FavoriteHandler) List(c echo.Context) error {
	items, err := h.favoriteUC.List(c.Request().Context(), middleware.SessionEmail(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// Remove handles deleting a bookmark.
func (h *FavoriteHandler) Remove(c echo.Context) error {
	biodataID, err := strconv.Atoi(c.Param("biodataId"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Biodata id must be a number")
	}

	if err := h.favoriteUC.Remove(c.Request().Context(), middleware.SessionEmail(c), biodataID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "removed"}, "Bookmark removed")
}
