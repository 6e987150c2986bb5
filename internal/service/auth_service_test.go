package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/workout-service/internal/config"
	"github.com/spec-kit/workout-service/internal/repository"
	apperrors "github.com/spec-kit/workout-service/pkg/util"
)

func newAuthService() *AuthService {
	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 60,
			BcryptCost:            4,
		},
	}
	return NewAuthService(cfg, AuthDependencies{
		UserRepo: repository.NewMemoryUserRepository(),
	})
}

func errCode(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	return apperrors.ToDomainError(err).Code
}

func TestRegister_EmailWithoutAtSign(t *testing.T) {
	t.Parallel()
	svc := newAuthService()

	_, err := svc.Register(context.Background(), "not-an-email", "password1")
	require.Equal(t, "VALIDATION_FAILED", errCode(t, err))

	// password strength is irrelevant when the email is malformed
	_, err = svc.Register(context.Background(), "still-bad", "averylongpassword123")
	require.Equal(t, "VALIDATION_FAILED", errCode(t, err))
}

func TestRegister_ShortPassword(t *testing.T) {
	t.Parallel()
	svc := newAuthService()

	_, err := svc.Register(context.Background(), "a@x.com", "short")
	require.Equal(t, "VALIDATION_FAILED", errCode(t, err))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	svc := newAuthService()

	_, err := svc.Register(context.Background(), "a@x.com", "password1")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "a@x.com", "password2")
	require.Equal(t, "CONFLICT", errCode(t, err))
}

func TestRegister_HashesPassword(t *testing.T) {
	t.Parallel()
	svc := newAuthService()

	user, err := svc.Register(context.Background(), "a@x.com", "password1")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.NotEqual(t, "password1", user.PasswordHash)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()
	svc := newAuthService()

	_, _, err := svc.Login(context.Background(), "missing@x.com", "password1")
	require.Equal(t, "NOT_FOUND", errCode(t, err))
}

func TestLogin_InvalidEmailFormat(t *testing.T) {
	t.Parallel()
	svc := newAuthService()

	_, _, err := svc.Login(context.Background(), "no-at-sign", "password1")
	require.Equal(t, "VALIDATION_FAILED", errCode(t, err))
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()
	svc := newAuthService()

	_, err := svc.Register(context.Background(), "a@x.com", "password1")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "a@x.com", "password2")
	require.Equal(t, "UNAUTHORIZED", errCode(t, err))
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	t.Parallel()
	svc := newAuthService()

	user, err := svc.Register(context.Background(), "a@x.com", "password1")
	require.NoError(t, err)

	token, exp, err := svc.Login(context.Background(), "a@x.com", "password1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.False(t, exp.IsZero())

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID())
}
