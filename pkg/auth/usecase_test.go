package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathewkioko/edulink/pkg/auth"
	"github.com/mathewkioko/edulink/pkg/security/jwt"
)

func newCodec(t *testing.T) *jwt.Codec {
	t.Helper()
	codec, err := jwt.NewCodec("test-secret", "edulink-test", time.Hour)
	require.NoError(t, err)
	return codec
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	codec := newCodec(t)
	svc := auth.NewService(repo, codec)

	result, err := svc.Register(context.Background(), "a@x.com", "pw", "A")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", result.User.Email)
	assert.Equal(t, "A", result.User.Name)
	assert.NotEqual(t, "pw", result.User.PasswordHash)
	assert.True(t, auth.CheckPassword("pw", result.User.PasswordHash))

	// The issued token carries the email claim.
	claims, err := codec.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims["email"])
	assert.Contains(t, claims, "exp")
}

func TestRegister_AlreadyExists(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := auth.NewService(repo, newCodec(t))

	_, err := svc.Register(context.Background(), "a@x.com", "pw", "A")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "a@x.com", "pw2", "A2")
	assert.ErrorIs(t, err, auth.ErrUserAlreadyExists)
}

func TestRegister_EmptyInput(t *testing.T) {
	t.Parallel()

	svc := auth.NewService(newFakeUserRepo(), newCodec(t))

	_, err := svc.Register(context.Background(), "", "pw", "A")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	_, err = svc.Register(context.Background(), "a@x.com", "", "A")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRegister_StoreUnavailable(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	repo.failWith = auth.ErrStoreUnavailable
	svc := auth.NewService(repo, newCodec(t))

	_, err := svc.Register(context.Background(), "a@x.com", "pw", "A")
	assert.ErrorIs(t, err, auth.ErrStoreUnavailable)
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	codec := newCodec(t)
	svc := auth.NewService(repo, codec)

	_, err := svc.Register(context.Background(), "a@x.com", "pw", "A")
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)
	claims, err := codec.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims["email"])
}

func TestLogin_UnknownUser(t *testing.T) {
	t.Parallel()

	svc := auth.NewService(newFakeUserRepo(), newCodec(t))

	_, err := svc.Login(context.Background(), "nouser@x.com", "pw")
	assert.ErrorIs(t, err, auth.ErrNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := auth.NewService(repo, newCodec(t))

	_, err := svc.Register(context.Background(), "a@x.com", "pw", "A")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "a@x.com", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_StoreUnavailable(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	repo.failWith = auth.ErrStoreUnavailable
	svc := auth.NewService(repo, newCodec(t))

	_, err := svc.Login(context.Background(), "a@x.com", "pw")
	assert.ErrorIs(t, err, auth.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, auth.ErrNotFound)
}
