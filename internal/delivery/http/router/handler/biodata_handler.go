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

// BiodataHandlerParams holds dependencies for BiodataHandler, injected by Fx.
type BiodataHandlerParams struct {
	fx.In

	BiodataUC usecase.BiodataUsecase
	Logger    *slog.Logger
}

// BiodataHandler holds dependencies for listing handlers.
type BiodataHandler struct {
	biodataUC usecase.BiodataUsecase
	logger    *slog.Logger
}

// NewBiodataHandler is the constructor for BiodataHandler
func NewBiodataHandler(params BiodataHandlerParams) *BiodataHandler {
	return &BiodataHandler{
		biodataUC: params.BiodataUC,
		logger:    params.Logger,
	}
}

// PageResponse wraps a listing page with its pagination envelope.
type PageResponse struct {
	Items any   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
}

// Save handles creating or replacing the caller's own listing.
func (h *BiodataHandler) Save(c echo.Context) error {
	var input usecase.BiodataInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid biodata input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	biodata, err := h.biodataUC.Save(c.Request().Context(), middleware.SessionEmail(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, biodata, "Biodata saved")
}

// GetOwn handles fetching the caller's own listing, contact fields intact.
func (h *BiodataHandler) GetOwn(c echo.Context) error {
	biodata, err := h.biodataUC.GetOwn(c.Request().Context(), middleware.SessionEmail(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, biodata, "")
}

// GetByID handles fetching a single listing rendered for the viewer.
func (h *BiodataHandler) GetByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Biodata id must be a number")
	}

	biodata, err := h.biodataUC.GetByID(c.Request().Context(), middleware.SessionEmail(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, biodata, "")
}

// List handles the public browse endpoint.
func (h *BiodataHandler) List(c echo.Context) error {
	filter := bindListFilter(c)

	biodatas, total, err := h.biodataUC.List(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, PageResponse{
		Items: biodatas,
		Total: total,
		Page:  filter.Page,
	}, "")
}

// ListPremium handles the premium members browse endpoint.
func (h *BiodataHandler) ListPremium(c echo.Context) error {
	filter := bindListFilter(c)

	biodatas, total, err := h.biodataUC.ListPremium(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, PageResponse{
		Items: biodatas,
		Total: total,
		Page:  filter.Page,
	}, "")
}

// bindListFilter reads the browse query parameters. Unparsable numbers fall
// back to zero, which the usecase treats as "any".
func bindListFilter(c echo.Context) usecase.ListFilter {
	minAge, _ := strconv.Atoi(c.QueryParam("minAge"))
	maxAge, _ := strconv.Atoi(c.QueryParam("maxAge"))
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))
	if page < 1 {
		page = 1
	}

	return usecase.ListFilter{
		Type:     c.QueryParam("type"),
		Division: c.QueryParam("division"),
		MinAge:   minAge,
		MaxAge:   maxAge,
		AgeSort:  c.QueryParam("ageSort"),
		Page:     page,
		PageSize: pageSize,
	}
}
