package auth_test

import (
	"context"
	"strings"
	"sync"

	"github.com/mathewkioko/edulink/pkg/auth"
)

// fakeUserRepo is an in-memory auth.UserRepository. When failWith is set,
// every call returns it, which is how tests simulate a store outage.
type fakeUserRepo struct {
	mu       sync.Mutex
	users    map[string]auth.User
	failWith error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]auth.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user auth.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	key := strings.ToLower(user.Email)
	if _, ok := f.users[key]; ok {
		return auth.ErrUserAlreadyExists
	}
	f.users[key] = user
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return auth.User{}, f.failWith
	}
	user, ok := f.users[strings.ToLower(email)]
	if !ok {
		return auth.User{}, auth.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) List(ctx context.Context, limit, offset int) ([]auth.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	var res []auth.User
	for _, u := range f.users {
		res = append(res, u)
	}
	return res, nil
}

func (f *fakeUserRepo) delete(email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, strings.ToLower(email))
}
