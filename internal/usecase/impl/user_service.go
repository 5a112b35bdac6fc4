package impl

import (
	"context"
	"time"

	"matrimony/internal/domain/entity"
	domainerrors "matrimony/internal/domain/errors"
	"matrimony/internal/domain/policy"
	"matrimony/internal/domain/repository"
	"matrimony/internal/domain/service"
	"matrimony/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type userService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
}

// NewUserService creates a new user service instance
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
	}
}

// Login upserts the account record and issues a session token. The token's
// role claim is read back from the stored record, so an admin signing in
// again keeps the admin role the upsert never touches.
func (s *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.Session, error) {
	user := &entity.User{
		Email:    input.Email,
		Name:     input.Name,
		PhotoURL: input.PhotoURL,
		Role:     entity.RoleNormal,
		Premium:  entity.PremiumNone,
	}

	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, err
	}

	stored, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload account after upsert")
	}

	token, err := s.tokenService.Issue(stored.Email, stored.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	return &usecase.Session{
		Token:     token,
		ExpiresAt: time.Now().Add(s.tokenService.TTL()),
		User:      stored,
	}, nil
}

// GetSelf retrieves the caller's own account record.
func (s *userService) GetSelf(ctx context.Context, email string) (*entity.User, error) {
	return s.userRepo.FindByEmail(ctx, email)
}

// RequestPremium moves the caller's premium status from none to pending.
func (s *userService) RequestPremium(ctx context.Context, email string) (*entity.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user.Premium != entity.PremiumNone {
		return nil, domainerrors.ErrPremiumAlreadyRequested
	}

	if err := s.userRepo.UpdatePremium(ctx, email, entity.PremiumPending); err != nil {
		return nil, err
	}
	user.Premium = entity.PremiumPending

	return user, nil
}

// ListUsers retrieves accounts matching the name or email fragment.
func (s *userService) ListUsers(ctx context.Context, viewerEmail, fragment string) ([]*entity.User, error) {
	if err := s.authorize(ctx, viewerEmail, policy.ActionListUsers); err != nil {
		return nil, err
	}

	return s.userRepo.Search(ctx, fragment)
}

// GrantRole changes an account's role.
func (s *userService) GrantRole(ctx context.Context, viewerEmail, targetEmail string, role entity.Role) (*entity.User, error) {
	if err := s.authorize(ctx, viewerEmail, policy.ActionGrantRole); err != nil {
		return nil, err
	}

	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role " + role.String())
	}

	if err := s.userRepo.UpdateRole(ctx, targetEmail, role); err != nil {
		return nil, err
	}

	return s.userRepo.FindByEmail(ctx, targetEmail)
}

// ApprovePremium settles a pending premium request.
func (s *userService) ApprovePremium(ctx context.Context, viewerEmail, targetEmail string) (*entity.User, error) {
	if err := s.authorize(ctx, viewerEmail, policy.ActionApprovePremium); err != nil {
		return nil, err
	}

	target, err := s.userRepo.FindByEmail(ctx, targetEmail)
	if err != nil {
		return nil, err
	}

	if target.Premium != entity.PremiumPending {
		return nil, domainerrors.ErrPremiumNotPending
	}

	if err := s.userRepo.UpdatePremium(ctx, targetEmail, entity.PremiumApproved); err != nil {
		return nil, err
	}
	target.Premium = entity.PremiumApproved

	return target, nil
}

// authorize loads the viewer's account and evaluates the action rule.
func (s *userService) authorize(ctx context.Context, viewerEmail string, action policy.Action) error {
	viewer, err := s.userRepo.FindByEmail(ctx, viewerEmail)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrForbidden
		}

		return errors.Wrap(err, "failed to load viewer account")
	}

	return policy.Allow(policy.ViewerFromUser(viewer), policy.Resource{}, action)
}
