package impl

import (
	"context"
	"testing"

	"matrimony/config"
	"matrimony/internal/domain/entity"
	domainerrors "matrimony/internal/domain/errors"
	"matrimony/internal/domain/repository"
	domainsvc "matrimony/internal/domain/service"
	mockRepo "matrimony/internal/mocks/repository"
	mockSvc "matrimony/internal/mocks/service"
	"matrimony/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentServiceMocks struct {
	paymentRepo *mockRepo.MockPaymentRepository
	biodataRepo *mockRepo.MockBiodataRepository
	userRepo    *mockRepo.MockUserRepository
	cardGateway *mockSvc.MockPaymentProvider
	checkoutGw  *mockSvc.MockPaymentProvider
	qrcode      *mockSvc.MockQRCodeService
}

func newPaymentService(t *testing.T) (usecase.PaymentUsecase, *paymentServiceMocks) {
	mocks := &paymentServiceMocks{
		paymentRepo: mockRepo.NewMockPaymentRepository(t),
		biodataRepo: mockRepo.NewMockBiodataRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		cardGateway: mockSvc.NewMockPaymentProvider(t),
		checkoutGw:  mockSvc.NewMockPaymentProvider(t),
		qrcode:      mockSvc.NewMockQRCodeService(t),
	}

	service := NewPaymentService(PaymentServiceParams{
		PaymentRepo:   mocks.paymentRepo,
		BiodataRepo:   mocks.biodataRepo,
		UserRepo:      mocks.userRepo,
		CardGateway:   mocks.cardGateway,
		CheckoutGw:    mocks.checkoutGw,
		QRCodeService: mocks.qrcode,
		Config: &config.Config{
			Unlock: &config.UnlockConfig{AmountCents: 500, Currency: "usd"},
		},
	})

	return service, mocks
}

func TestPaymentService_CreateCardIntent(t *testing.T) {
	service, mocks := newPaymentService(t)
	ctx := context.Background()

	mocks.biodataRepo.EXPECT().
		FindByID(ctx, 7).
		Return(&entity.Biodata{ID: 7, Name: "Listing Seven"}, nil)
	mocks.cardGateway.EXPECT().
		Initiate(ctx, mock.MatchedBy(func(req domainsvc.InitiateRequest) bool {
			return req.AmountCents == 500 && req.Currency == "usd" && req.RequesterEmail == "buyer@example.com"
		})).
		Return(&domainsvc.Initiation{ClientSecret: "pi_secret"}, nil)
	mocks.cardGateway.EXPECT().Name().Return("card")
	mocks.paymentRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Payment) bool {
			return p.Status == entity.PaymentPending && p.Provider == "card" && p.BiodataID == 7
		})).
		Return(nil)

	result, err := service.CreateCardIntent(ctx, "buyer@example.com", 7)
	require.NoError(t, err)
	assert.NotEmpty(t, result.TranID)
	assert.Equal(t, "pi_secret", result.ClientSecret)
	assert.Equal(t, int64(500), result.AmountCents)
}

func TestPaymentService_ConfirmCard(t *testing.T) {
	service, mocks := newPaymentService(t)
	ctx := context.Background()

	mocks.paymentRepo.EXPECT().
		FindByTranID(ctx, "tran-1").
		Return(&entity.Payment{
			TranID:         "tran-1",
			RequesterEmail: "buyer@example.com",
			Provider:       "card",
			Status:         entity.PaymentPending,
		}, nil)
	mocks.cardGateway.EXPECT().Name().Return("card")
	mocks.paymentRepo.EXPECT().
		UpdateOutcome(ctx, "tran-1", entity.PaymentApproved, "card").
		Return(true, nil)

	payment, err := service.ConfirmCard(ctx, "buyer@example.com", "tran-1")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentApproved, payment.Status)
	assert.Equal(t, "card", payment.Method)
}

func TestPaymentService_ConfirmCard_NotOwner(t *testing.T) {
	service, mocks := newPaymentService(t)
	ctx := context.Background()

	mocks.paymentRepo.EXPECT().
		FindByTranID(ctx, "tran-1").
		Return(&entity.Payment{
			TranID:         "tran-1",
			RequesterEmail: "buyer@example.com",
			Provider:       "card",
			Status:         entity.PaymentPending,
		}, nil)

	_, err := service.ConfirmCard(ctx, "intruder@example.com", "tran-1")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPaymentService_ConfirmCard_ApprovedIsIdempotent(t *testing.T) {
	service, mocks := newPaymentService(t)
	ctx := context.Background()

	mocks.paymentRepo.EXPECT().
		FindByTranID(ctx, "tran-1").
		Return(&entity.Payment{
			TranID:         "tran-1",
			RequesterEmail: "buyer@example.com",
			Provider:       "card",
			Status:         entity.PaymentApproved,
			Method:         "card",
		}, nil)
	mocks.cardGateway.EXPECT().Name().Return("card")

	payment, err := service.ConfirmCard(ctx, "buyer@example.com", "tran-1")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentApproved, payment.Status)
}

func TestPaymentService_ConfirmCard_TerminalNonApproved(t *testing.T) {
	service, mocks := newPaymentService(t)
	ctx := context.Background()

	mocks.paymentRepo.EXPECT().
		FindByTranID(ctx, "tran-1").
		Return(&entity.Payment{
			TranID:         "tran-1",
			RequesterEmail: "buyer@example.com",
			Provider:       "card",
			Status:         entity.PaymentCanceled,
		}, nil)
	mocks.cardGateway.EXPECT().Name().Return("card")

	_, err := service.ConfirmCard(ctx, "buyer@example.com", "tran-1")
	assert.ErrorIs(t, err, domainerrors.ErrPaymentAlreadySettled)
}

func TestPaymentService_ConfirmCard_WrongGateway(t *testing.T) {
	service, mocks := newPaymentService(t)
	ctx := context.Background()

	mocks.paymentRepo.EXPECT().
		FindByTranID(ctx, "tran-1").
		Return(&entity.Payment{
			TranID:         "tran-1",
			RequesterEmail: "buyer@example.com",
			Provider:       "aggregator",
			Status:         entity.PaymentPending,
		}, nil)
	mocks.cardGateway.EXPECT().Name().Return("card")

	_, err := service.ConfirmCard(ctx, "buyer@example.com", "tran-1")
	assert.ErrorIs(t, err, domainerrors.ErrGatewayRejected)
}

func TestPaymentService_Checkout(t *testing.T) {
	service, mocks := newPaymentService(t)
	ctx := context.Background()

	mocks.biodataRepo.EXPECT().
		FindByID(ctx, 7).
		Return(&entity.Biodata{ID: 7, Name: "Listing Seven"}, nil)
	mocks.checkoutGw.EXPECT().
		Initiate(ctx, mock.AnythingOfType("service.InitiateRequest")).
		Return(&domainsvc.Initiation{RedirectURL: "https://pay.example.com/session/abc"}, nil)
	mocks.checkoutGw.EXPECT().Name().Return("aggregator")
	mocks.paymentRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Payment) bool {
			return p.RedirectURL == "https://pay.example.com/session/abc" && p.Provider == "aggregator"
		})).
		Return(nil)

	result, err := service.Checkout(ctx, "buyer@example.com", 7)
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/session/abc", result.RedirectURL)
}

func TestPaymentService_CheckoutQR(t *testing.T) {
	service, mocks := newPaymentService(t)
	ctx := context.Background()

	mocks.paymentRepo.EXPECT().
		FindByTranID(ctx, "tran-1").
		Return(&entity.Payment{
			TranID:         "tran-1",
			RequesterEmail: "buyer@example.com",
			Status:         entity.PaymentPending,
			RedirectURL:    "https://pay.example.com/session/abc",
		}, nil)
	mocks.qrcode.EXPECT().
		EncodeURL("https://pay.example.com/session/abc").
		Return([]byte("png-bytes"), nil)

	png, err := service.CheckoutQR(ctx, "buyer@example.com", "tran-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestPaymentService_CheckoutQR_SettledPurchase(t *testing.T) {
	service, mocks := newPaymentService(t)
	ctx := context.Background()

	mocks.paymentRepo.EXPECT().
		FindByTranID(ctx, "tran-1").
		Return(&entity.Payment{
			TranID:         "tran-1",
			RequesterEmail: "buyer@example.com",
			Status:         entity.PaymentApproved,
			RedirectURL:    "https://pay.example.com/session/abc",
		}, nil)

	_, err := service.CheckoutQR(ctx, "buyer@example.com", "tran-1")
	assert.ErrorIs(t, err, domainerrors.ErrPaymentAlreadySettled)
}

func TestPaymentService_HandleCallback_SuccessVerified(t *testing.T) {
	service, mocks := newPaymentService(t)
	ctx := context.Background()

	mocks.paymentRepo.EXPECT().
		FindByTranID(ctx, "tran-1").
		Return(&entity.Payment{
			TranID:   "tran-1",
			Provider: "aggregator",
			Status:   entity.PaymentPending,
		}, nil)
	mocks.checkoutGw.EXPECT().Name().Return("aggregator")
	mocks.checkoutGw.EXPECT().
		Verify(ctx, "tran-1").
		Return(&domainsvc.Verification{Valid: true, Method: "bkash"}, nil)
	mocks.paymentRepo.EXPECT().
		UpdateOutcome(ctx, "tran-1", entity.PaymentApproved, "bkash").
		Return(true, nil)

	err := service.HandleCallback(ctx, usecase.OutcomeSuccess, "tran-1")
	require.NoError(t, err)
}

func TestPaymentService_HandleCallback_SuccessInvalidVerification(t *testing.T) {
	service, mocks := newPaymentService(t)
	ctx := context.Background()

	mocks.paymentRepo.EXPECT().
		FindByTranID(ctx, "tran-1").
		Return(&entity.Payment{
			TranID:   "tran-1",
			Provider: "aggregator",
			Status:   entity.PaymentPending,
		}, nil)
	mocks.checkoutGw.EXPECT().Name().Return("aggregator")
	mocks.checkoutGw.EXPECT().
		Verify(ctx, "tran-1").
		Return(&domainsvc.Verification{Valid: false}, nil)

	err := service.HandleCallback(ctx, usecase.OutcomeSuccess, "tran-1")
	assert.ErrorIs(t, err, domainerrors.ErrGatewayRejected)
}

func TestPaymentService_HandleCallback_Cancel(t *testing.T) {
	service, mocks := newPaymentService(t)
	ctx := context.Background()

	mocks.paymentRepo.EXPECT().
		FindByTranID(ctx, "tran-1").
		Return(&entity.Payment{
			TranID:   "tran-1",
			Provider: "aggregator",
			Status:   entity.PaymentPending,
		}, nil)
	mocks.checkoutGw.EXPECT().Name().Return("aggregator")
	mocks.paymentRepo.EXPECT().
		UpdateOutcome(ctx, "tran-1", entity.PaymentCanceled, "").
		Return(true, nil)

	err := service.HandleCallback(ctx, usecase.OutcomeCancel, "tran-1")
	require.NoError(t, err)
}

func TestPaymentService_HandleCallback_TerminalIsNoop(t *testing.T) {
	service, mocks := newPaymentService(t)
	ctx := context.Background()

	mocks.paymentRepo.EXPECT().
		FindByTranID(ctx, "tran-1").
		Return(&entity.Payment{
			TranID:   "tran-1",
			Provider: "aggregator",
			Status:   entity.PaymentApproved,
		}, nil)
	mocks.checkoutGw.EXPECT().Name().Return("aggregator")

	err := service.HandleCallback(ctx, usecase.OutcomeSuccess, "tran-1")
	require.NoError(t, err)
}

func TestPaymentService_HandleCallback_UnknownTransaction(t *testing.T) {
	service, mocks := newPaymentService(t)
	ctx := context.Background()

	mocks.paymentRepo.EXPECT().
		FindByTranID(ctx, "missing").
		Return(nil, repository.ErrPaymentNotFound)

	err := service.HandleCallback(ctx, usecase.OutcomeSuccess, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrGatewayRejected)
}

func TestPaymentService_HandleCallback_CardRecordRejected(t *testing.T) {
	service, mocks := newPaymentService(t)
	ctx := context.Background()

	mocks.paymentRepo.EXPECT().
		FindByTranID(ctx, "tran-1").
		Return(&entity.Payment{
			TranID:   "tran-1",
			Provider: "card",
			Status:   entity.PaymentPending,
		}, nil)
	mocks.checkoutGw.EXPECT().Name().Return("aggregator")

	err := service.HandleCallback(ctx, usecase.OutcomeSuccess, "tran-1")
	assert.ErrorIs(t, err, domainerrors.ErrGatewayRejected)
}

func TestPaymentService_ListOwn_ContactOnlyWhenApproved(t *testing.T) {
	service, mocks := newPaymentService(t)
	ctx := context.Background()

	mocks.paymentRepo.EXPECT().
		FindByRequester(ctx, "buyer@example.com").
		Return([]*entity.Payment{
			{TranID: "t-approved", BiodataID: 1, Status: entity.PaymentApproved},
			{TranID: "t-pending", BiodataID: 2, Status: entity.PaymentPending},
		}, nil)
	mocks.biodataRepo.EXPECT().
		FindByID(ctx, 1).
		Return(&entity.Biodata{ID: 1, Name: "First", ContactEmail: "first@example.com", MobileNumber: "+100"}, nil)
	mocks.biodataRepo.EXPECT().
		FindByID(ctx, 2).
		Return(&entity.Biodata{ID: 2, Name: "Second", ContactEmail: "second@example.com", MobileNumber: "+200"}, nil)

	requests, err := service.ListOwn(ctx, "buyer@example.com")
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "first@example.com", requests[0].ContactEmail)
	assert.Empty(t, requests[1].ContactEmail)
	assert.Equal(t, "Second", requests[1].BiodataName)
}

func TestPaymentService_Cancel_PendingOnly(t *testing.T) {
	service, mocks := newPaymentService(t)
	ctx := context.Background()

	mocks.paymentRepo.EXPECT().
		FindByTranID(ctx, "tran-1").
		Return(&entity.Payment{
			TranID:         "tran-1",
			RequesterEmail: "buyer@example.com",
			Status:         entity.PaymentApproved,
		}, nil)

	err := service.Cancel(ctx, "buyer@example.com", "tran-1")
	assert.ErrorIs(t, err, domainerrors.ErrPaymentAlreadySettled)
}

func TestPaymentService_Cancel(t *testing.T) {
	service, mocks := newPaymentService(t)
	ctx := context.Background()

	mocks.paymentRepo.EXPECT().
		FindByTranID(ctx, "tran-1").
		Return(&entity.Payment{
			TranID:         "tran-1",
			RequesterEmail: "buyer@example.com",
			Status:         entity.PaymentPending,
		}, nil)
	mocks.paymentRepo.EXPECT().Delete(ctx, "tran-1").Return(nil)

	err := service.Cancel(ctx, "buyer@example.com", "tran-1")
	require.NoError(t, err)
}

func TestPaymentService_IsUnlocked(t *testing.T) {
	service, mocks := newPaymentService(t)
	ctx := context.Background()

	mocks.paymentRepo.EXPECT().
		HasApproved(ctx, "buyer@example.com", 7).
		Return(true, nil)

	unlocked, err := service.IsUnlocked(ctx, "buyer@example.com", 7)
	require.NoError(t, err)
	assert.True(t, unlocked)
}

func TestPaymentService_ListAll_RequiresAdmin(t *testing.T) {
	service, mocks := newPaymentService(t)
	ctx := context.Background()

	mocks.userRepo.EXPECT().
		FindByEmail(ctx, "member@example.com").
		Return(&entity.User{Email: "member@example.com", Role: entity.RoleNormal}, nil)

	_, err := service.ListAll(ctx, "member@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPaymentService_Approve(t *testing.T) {
	service, mocks := newPaymentService(t)
	ctx := context.Background()

	mocks.userRepo.EXPECT().
		FindByEmail(ctx, "admin@example.com").
		Return(&entity.User{Email: "admin@example.com", Role: entity.RoleAdmin}, nil)
	mocks.paymentRepo.EXPECT().
		FindByTranID(ctx, "tran-1").
		Return(&entity.Payment{TranID: "tran-1", Status: entity.PaymentPending}, nil)
	mocks.paymentRepo.EXPECT().
		UpdateOutcome(ctx, "tran-1", entity.PaymentApproved, "manual").
		Return(true, nil)

	payment, err := service.Approve(ctx, "admin@example.com", "tran-1")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentApproved, payment.Status)
	assert.Equal(t, "manual", payment.Method)
}

func TestPaymentService_Approve_AlreadyApproved(t *testing.T) {
	service, mocks := newPaymentService(t)
	ctx := context.Background()

	mocks.userRepo.EXPECT().
		FindByEmail(ctx, "admin@example.com").
		Return(&entity.User{Email: "admin@example.com", Role: entity.RoleAdmin}, nil)
	mocks.paymentRepo.EXPECT().
		FindByTranID(ctx, "tran-1").
		Return(&entity.Payment{TranID: "tran-1", Status: entity.PaymentApproved, Method: "bkash"}, nil)

	payment, err := service.Approve(ctx, "admin@example.com", "tran-1")
	require.NoError(t, err)
	assert.Equal(t, "bkash", payment.Method)
}
