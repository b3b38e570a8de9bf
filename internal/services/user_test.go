package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecommerce/auth-service/internal/common"
	"github.com/ecommerce/auth-service/internal/config"
	"github.com/ecommerce/auth-service/internal/models"
	"github.com/ecommerce/auth-service/internal/repository/users"
	"github.com/ecommerce/auth-service/internal/validation"
)

// --- helpers ---

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:             "k",
		TokenValidityDuration: 24 * time.Hour,
		BcryptCost:            bcrypt.MinCost, // keep the tests fast
	}
}

func newTestService(t *testing.T) (*Service, *users.MemoryRepository) {
	t.Helper()
	repo := users.NewMemoryRepository()
	return NewService(repo, testConfig(), nil), repo
}

// brokenRepo fails every call; used to check error wrapping.
type brokenRepo struct{ err error }

func (b *brokenRepo) Create(context.Context, *models.User) (*models.User, error) {
	return nil, b.err
}
func (b *brokenRepo) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, b.err
}
func (b *brokenRepo) UpdateActivity(context.Context, *models.User) error {
	return b.err
}

// --- Register ---

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	s, _ := newTestService(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.WithClock(func() time.Time { return now })

	user, err := s.Register(context.Background(), "john@example.com", "SecurePass123", "John Doe")
	require.NoError(t, err)

	assert.Equal(t, "john@example.com", user.Email)
	assert.Equal(t, "John Doe", user.Name)
	assert.Equal(t, "", user.ID, "ID stays empty without a generator")
	assert.Equal(t, 0, user.LoginCount)
	assert.Equal(t, now, user.CreatedAt)
	assert.Equal(t, now, user.LastActivity)
	assert.NotEqual(t, "SecurePass123", user.PasswordHash)
	assert.NotEmpty(t, user.PasswordHash)
}

func TestRegister_WithIDGenerator(t *testing.T) {
	t.Parallel()

	s, _ := newTestService(t)
	s.WithIDGenerator(func() string { return "id-42" })

	user, err := s.Register(context.Background(), "john@example.com", "SecurePass123", "John")
	require.NoError(t, err)
	assert.Equal(t, "id-42", user.ID)
}

func TestRegister_Duplicate(t *testing.T) {
	t.Parallel()

	s, repo := newTestService(t)
	ctx := context.Background()

	first, err := s.Register(ctx, "a@b.com", "SecurePass123", "First")
	require.NoError(t, err)

	_, err = s.Register(ctx, "a@b.com", "OtherPass456", "Second")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	// the stored user from the first call is unmodified
	stored, err := repo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, first.Name, stored.Name)
	assert.Equal(t, first.PasswordHash, stored.PasswordHash)
}

func TestRegister_DuplicateCheckedBeforeValidation(t *testing.T) {
	t.Parallel()

	s, _ := newTestService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "a@b.com", "SecurePass123", "First")
	require.NoError(t, err)

	// even an invalid password reports the duplicate first
	_, err = s.Register(ctx, "a@b.com", "bad", "Second")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestRegister_InvalidEmail(t *testing.T) {
	t.Parallel()

	s, repo := newTestService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "not-an-email", "SecurePass123", "John")
	assert.ErrorIs(t, err, common.ErrorInvalidEmail)

	_, err = repo.GetByEmail(ctx, "not-an-email")
	assert.ErrorIs(t, err, common.ErrorNotFound, "nothing must be stored on failure")
}

func TestRegister_WeakPassword(t *testing.T) {
	t.Parallel()

	s, repo := newTestService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "john@example.com", "short", "John")
	assert.ErrorIs(t, err, validation.ErrPasswordTooShort)

	_, err = s.Register(ctx, "john@example.com", "alllowercase1", "John")
	assert.ErrorIs(t, err, validation.ErrPasswordTooWeak)

	_, err = repo.GetByEmail(ctx, "john@example.com")
	assert.ErrorIs(t, err, common.ErrorNotFound, "nothing must be stored on failure")
}

func TestRegister_RepoFailure(t *testing.T) {
	t.Parallel()

	s := NewService(&brokenRepo{err: errors.New("db down")}, testConfig(), nil)

	_, err := s.Register(context.Background(), "a@b.com", "SecurePass123", "John")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorNotFound)
}

// --- Login ---

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	s, _ := newTestService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "john@example.com", "SecurePass123", "John")
	require.NoError(t, err)

	token, err := s.Login(ctx, "john@example.com", "SecurePass123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", claims.Email)
}

func TestLogin_NotFound(t *testing.T) {
	t.Parallel()

	s, _ := newTestService(t)

	_, err := s.Login(context.Background(), "ghost@example.com", "SecurePass123")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	s, _ := newTestService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "john@example.com", "SecurePass123", "John")
	require.NoError(t, err)

	token, err := s.Login(ctx, "john@example.com", "WrongPass456")
	assert.ErrorIs(t, err, common.ErrorInvalidPassword)
	assert.Empty(t, token)
}

func TestLogin_DoesNotMutateCounters(t *testing.T) {
	t.Parallel()

	s, repo := newTestService(t)
	ctx := context.Background()

	user, err := s.Register(ctx, "john@example.com", "SecurePass123", "John")
	require.NoError(t, err)

	_, err = s.Login(ctx, "john@example.com", "SecurePass123")
	require.NoError(t, err)

	stored, err := repo.GetByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, 0, stored.LoginCount)
	assert.Equal(t, user.LastActivity, stored.LastActivity)
}

// --- tokens ---

func TestValidateToken_ErrorsPassThrough(t *testing.T) {
	t.Parallel()

	s, _ := newTestService(t)

	_, err := s.ValidateToken("garbage")
	assert.ErrorIs(t, err, common.ErrTokenMalformed)

	other := NewService(users.NewMemoryRepository(), &config.Config{
		SecretKey:             "different",
		TokenValidityDuration: time.Hour,
		BcryptCost:            bcrypt.MinCost,
	}, nil)
	tok, err := other.TokenManager().Issue(&models.User{Email: "a@b.com"})
	require.NoError(t, err)

	_, err = s.ValidateToken(tok)
	assert.ErrorIs(t, err, common.ErrTokenSignatureInvalid)
}

// --- activity ---

func TestIncrementLogin_Persists(t *testing.T) {
	t.Parallel()

	s, repo := newTestService(t)
	ctx := context.Background()

	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	current := start
	s.WithClock(func() time.Time { return current })

	user, err := s.Register(ctx, "john@example.com", "SecurePass123", "John")
	require.NoError(t, err)

	current = start.Add(time.Hour)
	require.NoError(t, s.IncrementLogin(ctx, user))

	stored, err := repo.GetByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, stored.LoginCount)
	assert.Equal(t, current, stored.LastActivity)
	assert.False(t, stored.CreatedAt.After(stored.LastActivity))
}

func TestRecordActivity_Persists(t *testing.T) {
	t.Parallel()

	s, repo := newTestService(t)
	ctx := context.Background()

	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	current := start
	s.WithClock(func() time.Time { return current })

	user, err := s.Register(ctx, "john@example.com", "SecurePass123", "John")
	require.NoError(t, err)

	current = start.Add(30 * time.Minute)
	require.NoError(t, s.RecordActivity(ctx, user))

	stored, err := repo.GetByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, 0, stored.LoginCount)
	assert.Equal(t, current, stored.LastActivity)
}

func TestActivityScore_UsesServiceClock(t *testing.T) {
	t.Parallel()

	s, _ := newTestService(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.WithClock(func() time.Time { return now })

	user := &models.User{
		CreatedAt:    now.AddDate(0, 0, -10),
		LastActivity: now.AddDate(0, 0, -2),
		LoginCount:   5,
	}

	assert.Equal(t, 25, s.ActivityScore(user))
}
