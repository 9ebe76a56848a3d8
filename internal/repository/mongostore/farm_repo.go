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

type farmDoc struct {
	ID         string     `bson:"_id"`
	UserID     string     `bson:"user_id"`
	Name       string     `bson:"name"`
	Location   string     `bson:"location"`
	ImageURL   string     `bson:"image_url,omitempty"`
	Status     string     `bson:"status"`
	CreatedAt  time.Time  `bson:"created_at"`
	UpdatedAt  time.Time  `bson:"updated_at"`
	ArchivedAt *time.Time `bson:"archived_at,omitempty"`
}

func toFarmDoc(f *model.Farm) farmDoc {
	return farmDoc{
		ID: f.ID.String(), UserID: f.UserID.String(), Name: f.Name, Location: f.Location,
		ImageURL: f.ImageURL, Status: string(f.Status),
		CreatedAt: f.CreatedAt.UTC(), UpdatedAt: f.UpdatedAt.UTC(), ArchivedAt: f.ArchivedAt,
	}
}

func (d farmDoc) model() (model.Farm, error) {
	id, err := uuid.FromString(d.ID)
	if err != nil {
		return model.Farm{}, err
	}
	uid, err := uuid.FromString(d.UserID)
	if err != nil {
		return model.Farm{}, err
	}
	return model.Farm{
		ID: id, UserID: uid, Name: d.Name, Location: d.Location, ImageURL: d.ImageURL,
		Status: model.FarmStatus(d.Status), CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt, ArchivedAt: d.ArchivedAt,
	}, nil
}

// FarmRepo implements FarmRepository over a farms collection.
type FarmRepo struct{ c *mongo.Collection }

// Create inserts the farm document.
func (r *FarmRepo) Create(ctx context.Context, f *model.Farm) error {
	_, err := r.c.InsertOne(ctx, toFarmDoc(f))
	return mapErr(err)
}

// Get loads a farm by id.
func (r *FarmRepo) Get(ctx context.Context, id uuid.UUID) (*model.Farm, error) {
	var d farmDoc
	if err := r.c.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&d); err != nil {
		return nil, mapErr(err)
	}
	f, err := d.model()
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// ListActiveByUser returns active farms newest first.
func (r *FarmRepo) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]model.Farm, error) {
	return r.find(ctx, activeFilter(userID))
}

// ListAllByUser returns every farm of userID.
func (r *FarmRepo) ListAllByUser(ctx context.Context, userID uuid.UUID) ([]model.Farm, error) {
	return r.find(ctx, bson.M{"user_id": userID.String()})
}

func activeFilter(userID uuid.UUID) bson.M {
	return bson.M{"user_id": userID.String(), "status": string(model.FarmActive)}
}

func (r *FarmRepo) find(ctx context.Context, filter bson.M) ([]model.Farm, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var docs []farmDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]model.Farm, 0, len(docs))
	for _, d := range docs {
		f, err := d.model()
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// farmUpdateSet builds the $set document; status is never part of it.
func farmUpdateSet(u model.FarmUpdate, at time.Time) bson.M {
	set := bson.M{"updated_at": at.UTC()}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Location != nil {
		set["location"] = *u.Location
	}
	if u.ImageURL != nil {
		set["image_url"] = *u.ImageURL
	}
	return set
}

// Update applies non-nil fields.
func (r *FarmRepo) Update(ctx context.Context, userID, id uuid.UUID, u model.FarmUpdate, at time.Time) error {
	res, err := r.c.UpdateOne(ctx,
		bson.M{"_id": id.String(), "user_id": userID.String()},
		bson.M{"$set": farmUpdateSet(u, at)})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Archive flips an active farm to archived.
func (r *FarmRepo) Archive(ctx context.Context, userID, id uuid.UUID, at time.Time) (bool, error) {
	at = at.UTC()
	res, err := r.c.UpdateOne(ctx,
		bson.M{"_id": id.String(), "user_id": userID.String(), "status": string(model.FarmActive)},
		bson.M{"$set": bson.M{"status": string(model.FarmArchived), "archived_at": at, "updated_at": at}})
	if err != nil {
		return false, err
	}
	if res.MatchedCount == 1 {
		return true, nil
	}
	n, err := r.c.CountDocuments(ctx, bson.M{"_id": id.String(), "user_id": userID.String()}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, errs.ErrNotFound
	}
	return false, nil
}

// DeleteByUser removes every farm of userID.
func (r *FarmRepo) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	_, err := r.c.DeleteMany(ctx, bson.M{"user_id": userID.String()})
	return err
}
