package mongostore

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/and161185/micromuu/internal/errs"
	"github.com/and161185/micromuu/internal/model"
)

type profileDoc struct {
	UserID    string     `bson:"_id"`
	Name      string     `bson:"name"`
	LastName  string     `bson:"last_name"`
	Email     string     `bson:"email"`
	CreatedAt time.Time  `bson:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty"`
}

func (d profileDoc) model() (*model.Profile, error) {
	id, err := uuid.FromString(d.UserID)
	if err != nil {
		return nil, err
	}
	return &model.Profile{
		UserID: id, Name: d.Name, LastName: d.LastName, Email: d.Email,
		CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}, nil
}

// ProfileRepo implements ProfileRepository over a collection keyed by user id.
type ProfileRepo struct{ c *mongo.Collection }

// Create inserts the profile document.
func (r *ProfileRepo) Create(ctx context.Context, p *model.Profile) error {
	_, err := r.c.InsertOne(ctx, profileDoc{
		UserID: p.UserID.String(), Name: p.Name, LastName: p.LastName, Email: p.Email,
		CreatedAt: p.CreatedAt.UTC(),
	})
	return mapErr(err)
}

// Get loads the profile document.
func (r *ProfileRepo) Get(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	var d profileDoc
	if err := r.c.FindOne(ctx, bson.M{"_id": userID.String()}).Decode(&d); err != nil {
		return nil, mapErr(err)
	}
	return d.model()
}

// Exists reports whether the document exists.
func (r *ProfileRepo) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	n, err := r.c.CountDocuments(ctx, bson.M{"_id": userID.String()}, options.Count().SetLimit(1))
	return n > 0, err
}

// Update applies non-nil fields and stamps updated_at.
func (r *ProfileRepo) Update(ctx context.Context, userID uuid.UUID, u model.ProfileUpdate, at time.Time) error {
	set := bson.M{"updated_at": at.UTC()}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.LastName != nil {
		set["last_name"] = *u.LastName
	}
	if u.Email != nil {
		set["email"] = *u.Email
	}
	res, err := r.c.UpdateOne(ctx, bson.M{"_id": userID.String()}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Delete removes the document.
func (r *ProfileRepo) Delete(ctx context.Context, userID uuid.UUID) error {
	_, err := r.c.DeleteOne(ctx, bson.M{"_id": userID.String()})
	return err
}
