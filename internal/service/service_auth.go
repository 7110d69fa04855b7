package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Alianda23/art-exhibit-hub-72/internal/config"
	"github.com/Alianda23/art-exhibit-hub-72/internal/form"
	"github.com/Alianda23/art-exhibit-hub-72/internal/logger"
	"github.com/Alianda23/art-exhibit-hub-72/internal/store"
	"github.com/Alianda23/art-exhibit-hub-72/internal/token"
	"github.com/Alianda23/art-exhibit-hub-72/models"
)

// authService is the concrete implementation of AuthService. Passwords are
// hashed with bcrypt before storage; identity tokens are delegated to the
// token codec.
type authService struct {
	userRepository store.UserRepository
	codec          *token.Codec

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given
// UserRepository and token codec, with the token lifetime taken from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, codec *token.Codec, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		codec:          codec,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new non-admin account from the submitted form.
//
// Requires name, email, and password. Returns the persisted user or:
//   - *ValidationError naming the absent fields.
//   - A wrapped storage error (e.g. store.ErrEmailAlreadyExists).
func (a *authService) Register(ctx context.Context, f *form.Form) (models.User, error) {
	log := logger.FromContext(ctx)

	if missing := f.Missing("name", "email", "password"); len(missing) > 0 {
		log.Error().Strs("missing", missing).Msg("registration form is incomplete")
		return models.User{}, NewValidationError(missing)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(f.Get("password")), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         f.Get("name"),
		Email:        f.Get("email"),
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Err(err).Str("email", f.Get("email")).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an account by email and password.
//
// Returns the stored user record or:
//   - *ValidationError if email or password is absent.
//   - A wrapped storage error (e.g. store.ErrNoUserWasFound).
//   - ErrWrongPassword if the password does not match the stored hash.
func (a *authService) Login(ctx context.Context, f *form.Form) (models.User, error) {
	log := logger.FromContext(ctx)

	if missing := f.Missing("email", "password"); len(missing) > 0 {
		log.Error().Strs("missing", missing).Msg("login form is incomplete")
		return models.User{}, NewValidationError(missing)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, f.Get("email"))
	if err != nil {
		log.Err(err).Str("email", f.Get("email")).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(f.Get("password"))); err != nil {
		log.Error().Int64("id", foundUser.ID).Str("email", foundUser.Email).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// AdminLogin authenticates like Login and additionally requires the
// account to carry admin privileges, returning ErrNotAdmin otherwise.
func (a *authService) AdminLogin(ctx context.Context, f *form.Form) (models.User, error) {
	foundUser, err := a.Login(ctx, f)
	if err != nil {
		return models.User{}, err
	}

	if !foundUser.IsAdmin {
		logger.FromContext(ctx).Error().
			Int64("id", foundUser.ID).
			Str("email", foundUser.Email).
			Msg("admin login attempted by non-admin account")
		return models.User{}, ErrNotAdmin
	}

	return foundUser, nil
}

// CreateToken issues a signed identity token for the given user, valid for
// the configured duration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	signed, err := a.codec.Issue(user.ID, user.IsAdmin, a.tokenDuration)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.Token{SignedString: signed, UserID: user.ID, IsAdmin: user.IsAdmin}, nil
}

// ParseToken verifies a raw token string and returns its transport form
// with the user ID and admin flag extracted from the claims.
//
// Verification failures propagate the token package sentinels
// (token.ErrTokenMalformed, token.ErrTokenSignatureInvalid,
// token.ErrTokenExpired) so callers can distinguish them internally.
func (a *authService) ParseToken(ctx context.Context, raw string) (models.Token, error) {
	claims, err := a.codec.Verify(raw)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("token verification failed")
		return models.Token{}, err
	}

	userID, err := claims.UserID()
	if err != nil {
		return models.Token{}, fmt.Errorf("error extracting user id from token: %w", err)
	}

	return models.Token{SignedString: raw, UserID: userID, IsAdmin: claims.IsAdmin}, nil
}
