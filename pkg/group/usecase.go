package group

import (
	"context"
	"strings"
	"time"
)

// UseCase encapsulates the study-group application logic.
type UseCase interface {
	Create(ctx context.Context, g Group) (Group, error)
	List(ctx context.Context, limit, offset int) ([]Group, error)
	ListByCreator(ctx context.Context, creatorID string, limit, offset int) ([]Group, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, g Group) (Group, error) {
	g.Name = strings.TrimSpace(g.Name)
	g.Subject = strings.TrimSpace(g.Subject)
	if g.Name == "" {
		return Group{}, ErrValidation("groupName is required")
	}
	if g.Subject == "" {
		return Group{}, ErrValidation("subject is required")
	}
	if g.CreatorID == "" {
		return Group{}, ErrValidation("creatorId is required")
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now().UTC()
	}
	return s.repo.Insert(ctx, g)
}

func (s *service) List(ctx context.Context, limit, offset int) ([]Group, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *service) ListByCreator(ctx context.Context, creatorID string, limit, offset int) ([]Group, error) {
	return s.repo.ListByCreator(ctx, creatorID, limit, offset)
}

// ErrValidation is a simple validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
