package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mathewkioko/edulink/pkg/group"
)

// GroupRepository implements group.Repository backed by a MongoDB collection.
type GroupRepository struct {
	coll *mongo.Collection
}

func NewGroupRepository(db *mongo.Database) *GroupRepository {
	return &GroupRepository{coll: db.Collection("groups")}
}

// groupDocument mirrors the stored document shape; field names are part of
// the persisted format and must not change.
type groupDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	GroupName        string             `bson:"groupName"`
	Subject          string             `bson:"subject"`
	Description      string             `bson:"description"`
	MaxMembers       int                `bson:"maxMembers"`
	SkillLevel       string             `bson:"skillLevel"`
	MeetingFrequency string             `bson:"meetingFrequency"`
	MeetingTime      string             `bson:"meetingTime,omitempty"`
	MeetingDate      string             `bson:"meetingDate,omitempty"`
	Location         string             `bson:"location,omitempty"`
	CreatorID        string             `bson:"creatorId"`
	CreatedAt        primitive.DateTime `bson:"created_at"`
}

func toDocument(g group.Group) groupDocument {
	return groupDocument{
		GroupName:        g.Name,
		Subject:          g.Subject,
		Description:      g.Description,
		MaxMembers:       g.MaxMembers,
		SkillLevel:       g.SkillLevel,
		MeetingFrequency: g.MeetingFrequency,
		MeetingTime:      g.MeetingTime,
		MeetingDate:      g.MeetingDate,
		Location:         g.Location,
		CreatorID:        g.CreatorID,
		CreatedAt:        primitive.NewDateTimeFromTime(g.CreatedAt),
	}
}

func fromDocument(d groupDocument) group.Group {
	return group.Group{
		ID:               d.ID.Hex(),
		Name:             d.GroupName,
		Subject:          d.Subject,
		Description:      d.Description,
		MaxMembers:       d.MaxMembers,
		SkillLevel:       d.SkillLevel,
		MeetingFrequency: d.MeetingFrequency,
		MeetingTime:      d.MeetingTime,
		MeetingDate:      d.MeetingDate,
		Location:         d.Location,
		CreatorID:        d.CreatorID,
		CreatedAt:        d.CreatedAt.Time().UTC(),
	}
}

func (r *GroupRepository) Insert(ctx context.Context, g group.Group) (group.Group, error) {
	res, err := r.coll.InsertOne(ctx, toDocument(g))
	if err != nil {
		return group.Group{}, storeErr(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		g.ID = oid.Hex()
	}
	return g, nil
}

func (r *GroupRepository) List(ctx context.Context, limit, offset int) ([]group.Group, error) {
	return r.find(ctx, bson.M{}, limit, offset)
}

func (r *GroupRepository) ListByCreator(ctx context.Context, creatorID string, limit, offset int) ([]group.Group, error) {
	return r.find(ctx, bson.M{"creatorId": creatorID}, limit, offset)
}

func (r *GroupRepository) find(ctx context.Context, filter bson.M, limit, offset int) ([]group.Group, error) {
	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(int64(offset)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, storeErr(err)
	}
	defer cur.Close(ctx)
	var res []group.Group
	for cur.Next(ctx) {
		var doc groupDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, storeErr(err)
		}
		res = append(res, fromDocument(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, storeErr(err)
	}
	return res, nil
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %w", group.ErrStoreUnavailable, err)
}
