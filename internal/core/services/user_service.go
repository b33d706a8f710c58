package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hoteldesk/hotel_ops_backend/internal/apperrors"
	"github.com/hoteldesk/hotel_ops_backend/internal/core/domain"
	portsrepo "github.com/hoteldesk/hotel_ops_backend/internal/core/ports/repositories"
	portssvc "github.com/hoteldesk/hotel_ops_backend/internal/core/ports/services"
	"github.com/hoteldesk/hotel_ops_backend/internal/utils"
)

// userService authenticates dashboard operators against the app-owned
// account table.
type userService struct {
	BaseService
	repo portsrepo.UserRepository
}

// NewUserService creates the user service.
func NewUserService(repo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{repo: repo}
}

// Authenticate verifies a username/password pair. Unknown usernames and wrong
// passwords both come back as apperrors.ErrUnauthorized so the login endpoint
// cannot be used to enumerate accounts.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.repo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "user lookup failed", slog.String("username", username))
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogInfo(ctx, "failed login attempt", slog.String("username", username))
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}
