package user_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathewkioko/edulink/pkg/auth"
	"github.com/mathewkioko/edulink/pkg/user"
)

type memUserRepo struct {
	users map[string]auth.User
}

func (m *memUserRepo) Create(ctx context.Context, u auth.User) error {
	key := strings.ToLower(u.Email)
	if _, ok := m.users[key]; ok {
		return auth.ErrUserAlreadyExists
	}
	m.users[key] = u
	return nil
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	u, ok := m.users[strings.ToLower(email)]
	if !ok {
		return auth.User{}, auth.ErrNotFound
	}
	return u, nil
}

func (m *memUserRepo) List(ctx context.Context, limit, offset int) ([]auth.User, error) {
	var res []auth.User
	for _, u := range m.users {
		res = append(res, u)
	}
	return res, nil
}

func TestCreateDirectoryEntry(t *testing.T) {
	t.Parallel()

	repo := &memUserRepo{users: map[string]auth.User{}}
	svc := user.NewService(repo)

	u, err := svc.Create(context.Background(), "a@x.com", "A")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", u.Email)
	assert.Empty(t, u.PasswordHash)

	_, err = svc.Create(context.Background(), "a@x.com", "A2")
	assert.ErrorIs(t, err, auth.ErrUserAlreadyExists)
}

func TestListUsers(t *testing.T) {
	t.Parallel()

	repo := &memUserRepo{users: map[string]auth.User{}}
	svc := user.NewService(repo)

	_, err := svc.Create(context.Background(), "a@x.com", "A")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "b@x.com", "B")
	require.NoError(t, err)

	users, err := svc.List(context.Background(), 50, 0)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
