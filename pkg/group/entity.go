package group

import (
	"context"
	"errors"
	"time"
)

// Group describes a study group. Groups live in the document store; ID is the
// hex form of the store-assigned object id.
type Group struct {
	ID               string
	Name             string
	Subject          string
	Description      string
	MaxMembers       int
	SkillLevel       string
	MeetingFrequency string
	MeetingTime      string
	MeetingDate      string
	Location         string
	CreatorID        string
	CreatedAt        time.Time
}

// ErrStoreUnavailable: the document store could not be reached.
var ErrStoreUnavailable = errors.New("group store unavailable")

// Repository is the port for group persistence.
type Repository interface {
	Insert(ctx context.Context, g Group) (Group, error)
	List(ctx context.Context, limit, offset int) ([]Group, error)
	ListByCreator(ctx context.Context, creatorID string, limit, offset int) ([]Group, error)
}
