package group_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathewkioko/edulink/pkg/group"
)

type fakeGroupRepo struct {
	groups   []group.Group
	failWith error
}

func (f *fakeGroupRepo) Insert(ctx context.Context, g group.Group) (group.Group, error) {
	if f.failWith != nil {
		return group.Group{}, f.failWith
	}
	g.ID = "507f1f77bcf86cd799439011"
	f.groups = append(f.groups, g)
	return g, nil
}

func (f *fakeGroupRepo) List(ctx context.Context, limit, offset int) ([]group.Group, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.groups, nil
}

func (f *fakeGroupRepo) ListByCreator(ctx context.Context, creatorID string, limit, offset int) ([]group.Group, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var res []group.Group
	for _, g := range f.groups {
		if g.CreatorID == creatorID {
			res = append(res, g)
		}
	}
	return res, nil
}

func TestCreateGroup_Success(t *testing.T) {
	t.Parallel()

	repo := &fakeGroupRepo{}
	svc := group.NewService(repo)

	g, err := svc.Create(context.Background(), group.Group{
		Name:      "  Algorithms  ",
		Subject:   "CS",
		CreatorID: "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Algorithms", g.Name)
	assert.NotEmpty(t, g.ID)
	assert.False(t, g.CreatedAt.IsZero())
}

func TestCreateGroup_Validation(t *testing.T) {
	t.Parallel()

	svc := group.NewService(&fakeGroupRepo{})

	var verr group.ErrValidation

	_, err := svc.Create(context.Background(), group.Group{Subject: "CS", CreatorID: "u1"})
	assert.ErrorAs(t, err, &verr)

	_, err = svc.Create(context.Background(), group.Group{Name: "Algorithms", CreatorID: "u1"})
	assert.ErrorAs(t, err, &verr)

	_, err = svc.Create(context.Background(), group.Group{Name: "Algorithms", Subject: "CS"})
	assert.ErrorAs(t, err, &verr)
}

func TestListByCreator_FiltersOwner(t *testing.T) {
	t.Parallel()

	repo := &fakeGroupRepo{}
	svc := group.NewService(repo)

	_, err := svc.Create(context.Background(), group.Group{Name: "A", Subject: "CS", CreatorID: "u1"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), group.Group{Name: "B", Subject: "Math", CreatorID: "u2"})
	require.NoError(t, err)

	mine, err := svc.ListByCreator(context.Background(), "u1", 50, 0)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "A", mine[0].Name)
}

func TestListGroups_StoreUnavailable(t *testing.T) {
	t.Parallel()

	svc := group.NewService(&fakeGroupRepo{failWith: group.ErrStoreUnavailable})

	_, err := svc.List(context.Background(), 50, 0)
	assert.ErrorIs(t, err, group.ErrStoreUnavailable)
}
