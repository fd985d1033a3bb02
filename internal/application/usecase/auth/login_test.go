package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio/internal/domain/user"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/auth"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type memUserRepo struct {
	users map[string]*user.User
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, apperror.NewNotFound("user", email)
	}
	return u, nil
}

func (r *memUserRepo) Upsert(_ context.Context, u *user.User) error {
	r.users[u.Email] = u
	return nil
}

func newLogin(t *testing.T) (*LoginUseCase, *auth.JWTService, uuid.UUID) {
	t.Helper()
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)

	id := uuid.New()
	repo := &memUserRepo{users: map[string]*user.User{
		"owner@example.com": {ID: id, Email: "owner@example.com", PasswordHash: hash},
	}}
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	return NewLoginUseCase(repo, jwtSvc, logger.NewNopLogger()), jwtSvc, id
}

func TestLogin_Success(t *testing.T) {
	uc, jwtSvc, id := newLogin(t)

	out, err := uc.Execute(context.Background(), LoginInput{Email: " Owner@Example.com ", Password: "s3cret"})
	require.NoError(t, err)

	claims, err := jwtSvc.ValidateToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, id, claims.OwnerID)
}

func TestLogin_RejectsBadCredentialsAlike(t *testing.T) {
	uc, _, _ := newLogin(t)

	_, wrongPassword := uc.Execute(context.Background(), LoginInput{Email: "owner@example.com", Password: "nope"})
	_, unknownEmail := uc.Execute(context.Background(), LoginInput{Email: "who@example.com", Password: "s3cret"})

	assert.ErrorIs(t, wrongPassword, apperror.ErrUnauthorized)
	assert.ErrorIs(t, unknownEmail, apperror.ErrUnauthorized)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}
