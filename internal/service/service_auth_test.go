package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Alianda23/art-exhibit-hub-72/internal/config"
	"github.com/Alianda23/art-exhibit-hub-72/internal/form"
	"github.com/Alianda23/art-exhibit-hub-72/internal/logger"
	"github.com/Alianda23/art-exhibit-hub-72/internal/store"
	"github.com/Alianda23/art-exhibit-hub-72/internal/token"
	"github.com/Alianda23/art-exhibit-hub-72/models"
)

func newTestAuthService(repo store.UserRepository) AuthService {
	codec := token.NewCodec("test-sign-key", "gallery-api")
	return NewAuthService(repo, codec, config.App{TokenDuration: time.Hour}, logger.Nop())
}

func formOf(values map[string]string) *form.Form {
	f := form.NewForm()
	for k, v := range values {
		f.Values[k] = v
	}
	return f
}

func TestRegister(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			user.ID = 7
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), formOf(map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "secret123",
	}))
	require.NoError(t, err)

	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.False(t, user.IsAdmin)
	// the stored hash must verify against the submitted password
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
}

func TestRegisterMissingFields(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Register(context.Background(), formOf(map[string]string{
		"name":  "A",
		"email": "a@b.com",
	}))

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"password"}, vErr.Fields)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), formOf(map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "secret123",
	}))
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{ID: 3, Email: email, PasswordHash: string(hash)}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), formOf(map[string]string{
		"email":    "alice@example.com",
		"password": "secret123",
	}))
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{ID: 3, Email: email, PasswordHash: string(hash)}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err = svc.Login(context.Background(), formOf(map[string]string{
		"email":    "alice@example.com",
		"password": "wrong",
	}))
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), formOf(map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever",
	}))
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAdminLoginRejectsNonAdmin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{ID: 3, Email: email, PasswordHash: string(hash), IsAdmin: false}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err = svc.AdminLogin(context.Background(), formOf(map[string]string{
		"email":    "alice@example.com",
		"password": "secret123",
	}))
	assert.ErrorIs(t, err, ErrNotAdmin)
}

func TestAdminLoginAcceptsAdmin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{ID: 1, Email: email, PasswordHash: string(hash), IsAdmin: true}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.AdminLogin(context.Background(), formOf(map[string]string{
		"email":    "admin@example.com",
		"password": "secret123",
	}))
	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
}

func TestCreateAndParseToken(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	issued, err := svc.CreateToken(context.Background(), models.User{ID: 42, IsAdmin: true})
	require.NoError(t, err)
	require.NotEmpty(t, issued.SignedString)

	parsed, err := svc.ParseToken(context.Background(), issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.True(t, parsed.IsAdmin)
}

func TestParseTokenGarbage(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.ParseToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, token.ErrTokenMalformed)
}
