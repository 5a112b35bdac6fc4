package impl

import (
	"context"

	"matrimony/config"
	"matrimony/internal/domain/entity"
	domainerrors "matrimony/internal/domain/errors"
	"matrimony/internal/domain/policy"
	"matrimony/internal/domain/repository"
	"matrimony/internal/domain/service"
	"matrimony/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type paymentService struct {
	paymentRepo   repository.PaymentRepository
	biodataRepo   repository.BiodataRepository
	userRepo      repository.UserRepository
	cardGateway   service.PaymentProvider
	checkoutGw    service.PaymentProvider
	qrcodeService service.QRCodeService
	config        *config.Config
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	PaymentRepo   repository.PaymentRepository
	BiodataRepo   repository.BiodataRepository
	UserRepo      repository.UserRepository
	CardGateway   service.PaymentProvider `name:"cardGateway"`
	CheckoutGw    service.PaymentProvider `name:"checkoutGateway"`
	QRCodeService service.QRCodeService
	Config        *config.Config
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		paymentRepo:   params.PaymentRepo,
		biodataRepo:   params.BiodataRepo,
		userRepo:      params.UserRepo,
		cardGateway:   params.CardGateway,
		checkoutGw:    params.CheckoutGw,
		qrcodeService: params.QRCodeService,
		config:        params.Config,
	}
}

// CreateCardIntent opens a Pending purchase through the card gateway.
func (s *paymentService) CreateCardIntent(ctx context.Context, requesterEmail string, biodataID int) (*usecase.CardIntentResult, error) {
	payment, err := s.openPurchase(ctx, requesterEmail, biodataID, s.cardGateway)
	if err != nil {
		return nil, err
	}

	return &usecase.CardIntentResult{
		TranID:       payment.TranID,
		ClientSecret: payment.clientSecret,
		AmountCents:  payment.record.AmountCents,
		Currency:     payment.record.Currency,
	}, nil
}

// ConfirmCard settles a card purchase on the client's word. The trust model
// of the card gateway has no server-side check to lean on, so the record is
// still fenced to the caller and to the Pending state.
func (s *paymentService) ConfirmCard(ctx context.Context, requesterEmail, tranID string) (*entity.Payment, error) {
	payment, err := s.paymentRepo.FindByTranID(ctx, tranID)
	if err != nil {
		return nil, err
	}

	if err := policy.Allow(
		policy.Viewer{Email: requesterEmail},
		policy.Resource{OwnerEmail: payment.RequesterEmail},
		policy.ActionMutateOwn,
	); err != nil {
		return nil, err
	}

	if payment.Provider != s.cardGateway.Name() {
		return nil, domainerrors.ErrGatewayRejected
	}

	if payment.Status == entity.PaymentApproved {
		return payment, nil
	}
	if payment.Status.IsTerminal() {
		return nil, domainerrors.ErrPaymentAlreadySettled
	}

	changed, err := s.paymentRepo.UpdateOutcome(ctx, tranID, entity.PaymentApproved, "card")
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, domainerrors.ErrPaymentAlreadySettled
	}

	payment.Status = entity.PaymentApproved
	payment.Method = "card"

	return payment, nil
}

// Checkout opens a Pending purchase through the hosted-checkout gateway.
func (s *paymentService) Checkout(ctx context.Context, requesterEmail string, biodataID int) (*usecase.CheckoutResult, error) {
	payment, err := s.openPurchase(ctx, requesterEmail, biodataID, s.checkoutGw)
	if err != nil {
		return nil, err
	}

	return &usecase.CheckoutResult{
		TranID:      payment.TranID,
		RedirectURL: payment.record.RedirectURL,
	}, nil
}

// CheckoutQR renders the caller's pending checkout URL as a PNG QR code.
func (s *paymentService) CheckoutQR(ctx context.Context, requesterEmail, tranID string) ([]byte, error) {
	payment, err := s.paymentRepo.FindByTranID(ctx, tranID)
	if err != nil {
		return nil, err
	}

	if err := policy.Allow(
		policy.Viewer{Email: requesterEmail},
		policy.Resource{OwnerEmail: payment.RequesterEmail},
		policy.ActionMutateOwn,
	); err != nil {
		return nil, err
	}

	if payment.Status != entity.PaymentPending || payment.RedirectURL == "" {
		return nil, domainerrors.ErrPaymentAlreadySettled
	}

	png, err := s.qrcodeService.EncodeURL(payment.RedirectURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render checkout QR code")
	}

	return png, nil
}

// HandleCallback settles a purchase from a gateway redirect. Success is
// accepted only after the gateway's validation API confirms the
// transaction; cancel and fail transition on the callback alone. An
// outcome re-delivered for an already settled record is a no-op.
func (s *paymentService) HandleCallback(ctx context.Context, outcome usecase.CallbackOutcome, tranID string) error {
	payment, err := s.paymentRepo.FindByTranID(ctx, tranID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return domainerrors.ErrGatewayRejected
		}

		return err
	}

	if payment.Provider != s.checkoutGw.Name() {
		return domainerrors.ErrGatewayRejected
	}

	if payment.Status.IsTerminal() {
		return nil
	}

	var target entity.PaymentStatus
	method := ""

	switch outcome {
	case usecase.OutcomeSuccess:
		verification, err := s.checkoutGw.Verify(ctx, tranID)
		if err != nil {
			return errors.Wrap(err, "failed to verify transaction with gateway")
		}
		if !verification.Valid {
			return domainerrors.ErrGatewayRejected
		}
		target = entity.PaymentApproved
		method = verification.Method
	case usecase.OutcomeFail:
		target = entity.PaymentFailed
	case usecase.OutcomeCancel:
		target = entity.PaymentCanceled
	default:
		return domainerrors.ErrGatewayRejected
	}

	// A concurrent callback may have settled the record between the read
	// and this update; the conditional update makes that a clean no-op.
	if _, err := s.paymentRepo.UpdateOutcome(ctx, tranID, target, method); err != nil {
		return err
	}

	return nil
}

// ListOwn retrieves the caller's purchase attempts. Contact details of the
// target listing are attached only to Approved attempts.
func (s *paymentService) ListOwn(ctx context.Context, requesterEmail string) ([]*usecase.ContactRequest, error) {
	payments, err := s.paymentRepo.FindByRequester(ctx, requesterEmail)
	if err != nil {
		return nil, err
	}

	requests := make([]*usecase.ContactRequest, 0, len(payments))
	for _, payment := range payments {
		request := &usecase.ContactRequest{Payment: payment}

		biodata, err := s.biodataRepo.FindByID(ctx, payment.BiodataID)
		switch {
		case err == nil:
			request.BiodataName = biodata.Name
			if payment.Status == entity.PaymentApproved {
				request.ContactEmail = biodata.ContactEmail
				request.MobileNumber = biodata.MobileNumber
			}
		case errors.Is(err, repository.ErrBiodataNotFound):
			// Listing removed since the purchase; keep the payment row.
		default:
			return nil, err
		}

		requests = append(requests, request)
	}

	return requests, nil
}

// Cancel deletes the caller's own Pending purchase attempt.
func (s *paymentService) Cancel(ctx context.Context, requesterEmail, tranID string) error {
	payment, err := s.paymentRepo.FindByTranID(ctx, tranID)
	if err != nil {
		return err
	}

	if err := policy.Allow(
		policy.Viewer{Email: requesterEmail},
		policy.Resource{OwnerEmail: payment.RequesterEmail},
		policy.ActionMutateOwn,
	); err != nil {
		return err
	}

	if payment.Status != entity.PaymentPending {
		return domainerrors.ErrPaymentAlreadySettled
	}

	return s.paymentRepo.Delete(ctx, tranID)
}

// IsUnlocked reports whether the caller holds an Approved purchase for the
// listing.
func (s *paymentService) IsUnlocked(ctx context.Context, requesterEmail string, biodataID int) (bool, error) {
	return s.paymentRepo.HasApproved(ctx, requesterEmail, biodataID)
}

// ListAll retrieves every purchase record.
func (s *paymentService) ListAll(ctx context.Context, viewerEmail string) ([]*entity.Payment, error) {
	if err := s.authorize(ctx, viewerEmail, policy.ActionListPayments); err != nil {
		return nil, err
	}

	return s.paymentRepo.ListAll(ctx)
}

// Approve manually settles a Pending purchase.
func (s *paymentService) Approve(ctx context.Context, viewerEmail, tranID string) (*entity.Payment, error) {
	if err := s.authorize(ctx, viewerEmail, policy.ActionApprovePayment); err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.FindByTranID(ctx, tranID)
	if err != nil {
		return nil, err
	}

	if payment.Status == entity.PaymentApproved {
		return payment, nil
	}

	changed, err := s.paymentRepo.UpdateOutcome(ctx, tranID, entity.PaymentApproved, "manual")
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, domainerrors.ErrPaymentAlreadySettled
	}

	payment.Status = entity.PaymentApproved
	payment.Method = "manual"

	return payment, nil
}

// openedPurchase pairs the stored record with the per-gateway initiation
// artifact that is never persisted.
type openedPurchase struct {
	TranID       string
	clientSecret string
	record       *entity.Payment
}

// openPurchase checks the target listing exists, opens the purchase with
// the gateway, and stores the Pending record.
func (s *paymentService) openPurchase(ctx context.Context, requesterEmail string, biodataID int, gateway service.PaymentProvider) (*openedPurchase, error) {
	biodata, err := s.biodataRepo.FindByID(ctx, biodataID)
	if err != nil {
		return nil, err
	}

	tranID := uuid.New().String()

	initiation, err := gateway.Initiate(ctx, service.InitiateRequest{
		TranID:         tranID,
		AmountCents:    s.config.Unlock.AmountCents,
		Currency:       s.config.Unlock.Currency,
		RequesterEmail: requesterEmail,
		ProductName:    "Contact information of biodata " + biodata.Name,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to initiate purchase with gateway")
	}

	payment := &entity.Payment{
		TranID:         tranID,
		RequesterEmail: requesterEmail,
		BiodataID:      biodataID,
		AmountCents:    s.config.Unlock.AmountCents,
		Currency:       s.config.Unlock.Currency,
		Provider:       gateway.Name(),
		RedirectURL:    initiation.RedirectURL,
		Status:         entity.PaymentPending,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return &openedPurchase{
		TranID:       tranID,
		clientSecret: initiation.ClientSecret,
		record:       payment,
	}, nil
}

// authorize loads the viewer's account and evaluates the action rule.
func (s *paymentService) authorize(ctx context.Context, viewerEmail string, action policy.Action) error {
	viewer, err := s.userRepo.FindByEmail(ctx, viewerEmail)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrForbidden
		}

		return errors.Wrap(err, "failed to load viewer account")
	}

	return policy.Allow(policy.ViewerFromUser(viewer), policy.Resource{}, action)
}
