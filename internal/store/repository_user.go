package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Alianda23/art-exhibit-hub-72/internal/logger"
	"github.com/Alianda23/art-exhibit-hub-72/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns it with server-assigned
// fields (ID, CreatedAt) populated.
//
// A unique-constraint failure on the email column maps to
// [ErrEmailAlreadyExists]; any other driver error is wrapped.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.builder.
		Insert("users").
		Columns("name", "email", "password_hash", "is_admin").
		Values(user.Name, user.Email, user.PasswordHash, user.IsAdmin).
		Suffix("RETURNING id, created_at").
		RunWith(r.db.DB).
		QueryRowContext(ctx)

	if err := row.Scan(&user.ID, &user.CreatedAt); err != nil {
		log.Err(err).Str("email", user.Email).Msg("error creating user")

		if isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByEmail retrieves the account whose email matches exactly.
// An empty result maps to [ErrNoUserWasFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.db.builder.
		Select("id", "name", "email", "password_hash", "is_admin", "created_at").
		From("users").
		Where("email = ?", email).
		RunWith(r.db.DB).
		QueryRowContext(ctx).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.IsAdmin, &user.CreatedAt)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("email", email).Msg("error finding user by email")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}
