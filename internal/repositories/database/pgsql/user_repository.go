package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hoteldesk/hotel_ops_backend/internal/apperrors"
	"github.com/hoteldesk/hotel_ops_backend/internal/core/domain"
	portsrepo "github.com/hoteldesk/hotel_ops_backend/internal/core/ports/repositories"
)

// userRepository reads dashboard operator accounts. This is the one app-owned
// table; everything else in this package is a read-only record-store mirror.
type userRepository struct {
	BaseRepository
}

func newUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &userRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// FindUserByUsername returns the account for a username, or
// apperrors.ErrNotFound when none exists.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT user_id, username, name, password_hash, created_at
		FROM dashboard_users
		WHERE username = $1
	`

	var user domain.User
	err := r.Pool.QueryRow(ctx, query, username).Scan(
		&user.UserID,
		&user.Username,
		&user.Name,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error querying user by username: %w", err)
	}

	return &user, nil
}
