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

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler holds dependencies for purchase handlers.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// PurchaseRequest represents the request body for opening a purchase
type PurchaseRequest struct {
	BiodataID int `json:"biodataId" validate:"required,gt=0"`
}

// ConfirmCardRequest represents the request body for confirming a card charge
type ConfirmCardRequest struct {
	TranID string `json:"tranId" validate:"required"`
}

// CreateCardIntent handles opening a purchase through the card gateway.
func (h *PaymentHandler) CreateCardIntent(c echo.Context) error {
	var req PurchaseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.paymentUC.CreateCardIntent(c.Request().Context(), middleware.SessionEmail(c), req.BiodataID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "Payment intent created")
}

// ConfirmCard handles the browser reporting a completed card charge.
func (h *PaymentHandler) ConfirmCard(c echo.Context) error {
	var req ConfirmCardRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid confirmation input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	payment, err := h.paymentUC.ConfirmCard(c.Request().Context(), middleware.SessionEmail(c), req.TranID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payment, "Payment confirmed")
}

// Checkout handles opening a purchase through the hosted-checkout gateway.
func (h *PaymentHandler) Checkout(c echo.Context) error {
	var req PurchaseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.paymentUC.Checkout(c.Request().Context(), middleware.SessionEmail(c), req.BiodataID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "Checkout session created")
}

// CheckoutQR serves the pending checkout URL as a PNG QR code.
func (h *PaymentHandler) CheckoutQR(c echo.Context) error {
	png, err := h.paymentUC.CheckoutQR(c.Request().Context(), middleware.SessionEmail(c), c.Param("tranId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// GatewayCallback handles the aggregator's success, fail and cancel
// redirects. The gateway posts the transaction ID as a form field.
func (h *PaymentHandler) GatewayCallback(c echo.Context) error {
	tranID := c.FormValue("tran_id")
	if tranID == "" {
		tranID = c.QueryParam("tran_id")
	}

	outcome := usecase.CallbackOutcome(c.Param("outcome"))
	if err := h.paymentUC.HandleCallback(c.Request().Context(), outcome, tranID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "processed"}, "Callback processed")
}

// ListOwn handles the caller's contact request history.
func (h *PaymentHandler) ListOwn(c echo.Context) error {
	requests, err := h.paymentUC.ListOwn(c.Request().Context(), middleware.SessionEmail(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// Cancel handles the caller withdrawing a pending purchase.
func (h *PaymentHandler) Cancel(c echo.Context) error {
	if err := h.paymentUC.Cancel(c.Request().Context(), middleware.SessionEmail(c), c.Param("tranId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "canceled"}, "Purchase canceled")
}

// Unlocked reports whether the caller has unlocked a listing's contact info.
func (h *PaymentHandler) Unlocked(c echo.Context) error {
	biodataID, err := strconv.Atoi(c.Param("biodataId"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Biodata id must be a number")
	}

	unlocked, err := h.paymentUC.IsUnlocked(c.Request().Context(), middleware.SessionEmail(c), biodataID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"unlocked": unlocked}, "")
}

// ListAll handles the admin purchase overview.
func (h *PaymentHandler) ListAll(c echo.Context) error {
	payments, err := h.paymentUC.ListAll(c.Request().Context(), middleware.SessionEmail(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payments, "")
}

// Approve handles the admin manually settling a pending purchase.
func (h *PaymentHandler) Approve(c echo.Context) error {
	payment, err := h.paymentUC.Approve(c.Request().Context(), middleware.SessionEmail(c), c.Param("tranId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payment, "Payment approved")
}
