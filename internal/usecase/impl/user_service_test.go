package impl

import (
	"context"
	"testing"
	"time"

	"matrimony/internal/domain/entity"
	domainerrors "matrimony/internal/domain/errors"
	"matrimony/internal/domain/repository"
	mockRepo "matrimony/internal/mocks/repository"
	mockSvc "matrimony/internal/mocks/service"
	"matrimony/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Login_NewAccount(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     mockUserRepo,
		TokenService: mockTokenSvc,
	})

	ctx := context.Background()

	stored := &entity.User{
		Email:   "new@example.com",
		Name:    "New Member",
		Role:    entity.RoleNormal,
		Premium: entity.PremiumNone,
	}

	mockUserRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "new@example.com" && u.Role == entity.RoleNormal
		})).
		Return(nil)
	mockUserRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(stored, nil)
	mockTokenSvc.EXPECT().Issue("new@example.com", entity.RoleNormal).Return("signed-token", nil)
	mockTokenSvc.EXPECT().TTL().Return(10 * time.Hour)

	session, err := service.Login(ctx, &usecase.LoginInput{
		Email: "new@example.com",
		Name:  "New Member",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", session.Token)
	assert.Equal(t, stored, session.User)
	assert.WithinDuration(t, time.Now().Add(10*time.Hour), session.ExpiresAt, time.Minute)
}

func TestUserService_Login_AdminKeepsRole(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     mockUserRepo,
		TokenService: mockTokenSvc,
	})

	ctx := context.Background()

	stored := &entity.User{
		Email:   "admin@example.com",
		Role:    entity.RoleAdmin,
		Premium: entity.PremiumApproved,
	}

	mockUserRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	mockUserRepo.EXPECT().FindByEmail(ctx, "admin@example.com").Return(stored, nil)
	// The token role comes from the stored record, not the login payload.
	mockTokenSvc.EXPECT().Issue("admin@example.com", entity.RoleAdmin).Return("admin-token", nil)
	mockTokenSvc.EXPECT().TTL().Return(10 * time.Hour)

	session, err := service.Login(ctx, &usecase.LoginInput{
		Email: "admin@example.com",
		Name:  "Admin",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, session.User.Role)
}

func TestUserService_RequestPremium_FromNone(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     mockUserRepo,
		TokenService: mockTokenSvc,
	})

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "member@example.com").
		Return(&entity.User{Email: "member@example.com", Premium: entity.PremiumNone}, nil)
	mockUserRepo.EXPECT().
		UpdatePremium(ctx, "member@example.com", entity.PremiumPending).
		Return(nil)

	user, err := service.RequestPremium(ctx, "member@example.com")
	require.NoError(t, err)
	assert.Equal(t, entity.PremiumPending, user.Premium)
}

func TestUserService_RequestPremium_AlreadyPending(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     mockUserRepo,
		TokenService: mockTokenSvc,
	})

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "member@example.com").
		Return(&entity.User{Email: "member@example.com", Premium: entity.PremiumPending}, nil)

	_, err := service.RequestPremium(ctx, "member@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrPremiumAlreadyRequested)
}

func TestUserService_ListUsers_DeniedForNormalMember(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     mockUserRepo,
		TokenService: mockTokenSvc,
	})

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "member@example.com").
		Return(&entity.User{Email: "member@example.com", Role: entity.RoleNormal}, nil)

	_, err := service.ListUsers(ctx, "member@example.com", "")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserService_ListUsers_AsAdmin(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     mockUserRepo,
		TokenService: mockTokenSvc,
	})

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "admin@example.com").
		Return(&entity.User{Email: "admin@example.com", Role: entity.RoleAdmin}, nil)
	mockUserRepo.EXPECT().
		Search(ctx, "smith").
		Return([]*entity.User{{Email: "smith@example.com"}}, nil)

	users, err := service.ListUsers(ctx, "admin@example.com", "smith")
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserService_GrantRole_RejectsUnknownRole(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     mockUserRepo,
		TokenService: mockTokenSvc,
	})

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "admin@example.com").
		Return(&entity.User{Email: "admin@example.com", Role: entity.RoleAdmin}, nil)

	_, err := service.GrantRole(ctx, "admin@example.com", "member@example.com", entity.Role("superuser"))
	require.Error(t, err)
}

func TestUserService_ApprovePremium_Pending(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     mockUserRepo,
		TokenService: mockTokenSvc,
	})

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "admin@example.com").
		Return(&entity.User{Email: "admin@example.com", Role: entity.RoleAdmin}, nil)
	mockUserRepo.EXPECT().
		FindByEmail(ctx, "member@example.com").
		Return(&entity.User{Email: "member@example.com", Premium: entity.PremiumPending}, nil)
	mockUserRepo.EXPECT().
		UpdatePremium(ctx, "member@example.com", entity.PremiumApproved).
		Return(nil)

	user, err := service.ApprovePremium(ctx, "admin@example.com", "member@example.com")
	require.NoError(t, err)
	assert.Equal(t, entity.PremiumApproved, user.Premium)
}

func TestUserService_ApprovePremium_NotPending(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     mockUserRepo,
		TokenService: mockTokenSvc,
	})

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "admin@example.com").
		Return(&entity.User{Email: "admin@example.com", Role: entity.RoleAdmin}, nil)
	mockUserRepo.EXPECT().
		FindByEmail(ctx, "member@example.com").
		Return(&entity.User{Email: "member@example.com", Premium: entity.PremiumNone}, nil)

	_, err := service.ApprovePremium(ctx, "admin@example.com", "member@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrPremiumNotPending)
}

func TestUserService_GetSelf_NotFound(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     mockUserRepo,
		TokenService: mockTokenSvc,
	})

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := service.GetSelf(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
