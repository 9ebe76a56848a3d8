// Package convert maps domain models to protobuf messages and back.
package convert

import (
	"fmt"
	"time"

	pb "github.com/and161185/micromuu/gen/go/micromuu/v1"
	model "github.com/and161185/micromuu/internal/model"
	u "github.com/gofrs/uuid/v5"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// --- helpers ---

func ts(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func tsPtr(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return ts(*t)
}

func fromTS(t *timestamppb.Timestamp) time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.AsTime()
}

func fromTSPtr(t *timestamppb.Timestamp) *time.Time {
	if t == nil {
		return nil
	}
	v := t.AsTime()
	return &v
}

// ParseID parses a wire id; an empty or malformed id is an error.
func ParseID(s string) (u.UUID, error) {
	id, err := u.FromString(s)
	if err != nil {
		return u.Nil, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return id, nil
}

// --- Identity ---

// ToProtoSession packs the issued token and its user.
func ToProtoSession(tok model.Tokens, usr model.User) *pb.Session {
	s := &pb.Session{}
	s.SetUserId(usr.ID.String())
	s.SetEmail(usr.Email)
	s.SetIdToken(tok.IDToken)
	s.SetExpiresAt(ts(tok.ExpiresAt))
	return s
}

// FromProtoSession builds the client-side identity.
func FromProtoSession(in *pb.Session) (*model.Identity, error) {
	if in == nil {
		return nil, fmt.Errorf("nil Session")
	}
	id, err := ParseID(in.GetUserId())
	if err != nil {
		return nil, err
	}
	return &model.Identity{
		UID:       id,
		Email:     in.GetEmail(),
		IDToken:   in.GetIdToken(),
		ExpiresAt: fromTS(in.GetExpiresAt()),
	}, nil
}

// --- Profiles ---

// ToProtoProfile converts a domain profile to protobuf.
func ToProtoProfile(p model.Profile) *pb.Profile {
	out := &pb.Profile{}
	out.SetUserId(p.UserID.String())
	out.SetName(p.Name)
	out.SetLastName(p.LastName)
	out.SetEmail(p.Email)
	out.SetCreatedAt(ts(p.CreatedAt))
	out.SetUpdatedAt(tsPtr(p.UpdatedAt))
	return out
}

// FromProtoProfile converts a protobuf profile to the domain struct.
func FromProtoProfile(in *pb.Profile) (model.Profile, error) {
	if in == nil {
		return model.Profile{}, fmt.Errorf("nil Profile")
	}
	id, err := ParseID(in.GetUserId())
	if err != nil {
		return model.Profile{}, err
	}
	return model.Profile{
		UserID:    id,
		Name:      in.GetName(),
		LastName:  in.GetLastName(),
		Email:     in.GetEmail(),
		CreatedAt: fromTS(in.GetCreatedAt()),
		UpdatedAt: fromTSPtr(in.GetUpdatedAt()),
	}, nil
}

// ToProtoProfileUpdate builds the partial update of userID. Nil fields stay unset.
func ToProtoProfileUpdate(userID u.UUID, upd model.ProfileUpdate) *pb.UpdateProfileRequest {
	req := &pb.UpdateProfileRequest{}
	req.SetUserId(userID.String())
	if upd.Name != nil {
		req.SetName(*upd.Name)
	}
	if upd.LastName != nil {
		req.SetLastName(*upd.LastName)
	}
	if upd.Email != nil {
		req.SetEmail(*upd.Email)
	}
	return req
}

// FromProtoProfileUpdate extracts the partial update and its target user.
func FromProtoProfileUpdate(in *pb.UpdateProfileRequest) (u.UUID, model.ProfileUpdate, error) {
	id, err := ParseID(in.GetUserId())
	if err != nil {
		return u.Nil, model.ProfileUpdate{}, err
	}
	var upd model.ProfileUpdate
	if in.HasName() {
		upd.Name = in.Name
	}
	if in.HasLastName() {
		upd.LastName = in.LastName
	}
	if in.HasEmail() {
		upd.Email = in.Email
	}
	return id, upd, nil
}

// --- Farms ---

// ToProtoFarmStatus maps the domain status; anything unknown is unspecified.
func ToProtoFarmStatus(s model.FarmStatus) pb.FarmStatus {
	switch s {
	case model.FarmActive:
		return pb.FarmStatus_FARM_STATUS_ACTIVE
	case model.FarmArchived:
		return pb.FarmStatus_FARM_STATUS_ARCHIVED
	default:
		return pb.FarmStatus_FARM_STATUS_UNSPECIFIED
	}
}

// FromProtoFarmStatus rejects the unspecified value.
func FromProtoFarmStatus(s pb.FarmStatus) (model.FarmStatus, error) {
	switch s {
	case pb.FarmStatus_FARM_STATUS_ACTIVE:
		return model.FarmActive, nil
	case pb.FarmStatus_FARM_STATUS_ARCHIVED:
		return model.FarmArchived, nil
	default:
		return "", fmt.Errorf("invalid status %v", s)
	}
}

// ToProtoFarm converts a domain farm to protobuf.
func ToProtoFarm(f model.Farm) *pb.Farm {
	out := &pb.Farm{}
	out.SetId(f.ID.String())
	out.SetUserId(f.UserID.String())
	out.SetName(f.Name)
	out.SetLocation(f.Location)
	out.SetImageUrl(f.ImageURL)
	out.SetStatus(ToProtoFarmStatus(f.Status))
	out.SetCreatedAt(ts(f.CreatedAt))
	out.SetUpdatedAt(ts(f.UpdatedAt))
	out.SetArchivedAt(tsPtr(f.ArchivedAt))
	return out
}

// ToProtoFarms converts a list, never returning nil.
func ToProtoFarms(in []model.Farm) []*pb.Farm {
	out := make([]*pb.Farm, 0, len(in))
	for _, f := range in {
		out = append(out, ToProtoFarm(f))
	}
	return out
}

// FromProtoFarm converts a protobuf farm to the domain struct.
func FromProtoFarm(in *pb.Farm) (model.Farm, error) {
	if in == nil {
		return model.Farm{}, fmt.Errorf("nil Farm")
	}
	id, err := ParseID(in.GetId())
	if err != nil {
		return model.Farm{}, err
	}
	owner, err := ParseID(in.GetUserId())
	if err != nil {
		return model.Farm{}, err
	}
	st, err := FromProtoFarmStatus(in.GetStatus())
	if err != nil {
		return model.Farm{}, err
	}
	return model.Farm{
		ID:         id,
		UserID:     owner,
		Name:       in.GetName(),
		Location:   in.GetLocation(),
		ImageURL:   in.GetImageUrl(),
		Status:     st,
		CreatedAt:  fromTS(in.GetCreatedAt()),
		UpdatedAt:  fromTS(in.GetUpdatedAt()),
		ArchivedAt: fromTSPtr(in.GetArchivedAt()),
	}, nil
}

// FromProtoFarms converts a slice of protobuf farms.
func FromProtoFarms(in []*pb.Farm) ([]model.Farm, error) {
	out := make([]model.Farm, 0, len(in))
	for i, f := range in {
		m, err := FromProtoFarm(f)
		if err != nil {
			return nil, fmt.Errorf("farm[%d]: %w", i, err)
		}
		out = append(out, m)
	}
	return out, nil
}

// ToProtoCreateFarm builds the creation request.
func ToProtoCreateFarm(in model.CreateFarm) *pb.CreateFarmRequest {
	req := &pb.CreateFarmRequest{}
	req.SetName(in.Name)
	req.SetLocation(in.Location)
	req.SetImageUrl(in.ImageURL)
	return req
}

// FromProtoCreateFarm extracts the creation input.
func FromProtoCreateFarm(in *pb.CreateFarmRequest) model.CreateFarm {
	return model.CreateFarm{Name: in.GetName(), Location: in.GetLocation(), ImageURL: in.GetImageUrl()}
}

// ToProtoUpdateFarm builds the partial update of id. Nil fields stay unset.
func ToProtoUpdateFarm(id u.UUID, upd model.FarmUpdate) *pb.UpdateFarmRequest {
	req := &pb.UpdateFarmRequest{}
	req.SetId(id.String())
	if upd.Name != nil {
		req.SetName(*upd.Name)
	}
	if upd.Location != nil {
		req.SetLocation(*upd.Location)
	}
	if upd.ImageURL != nil {
		req.SetImageUrl(*upd.ImageURL)
	}
	return req
}

// FromProtoUpdateFarm extracts the partial update and its target farm.
func FromProtoUpdateFarm(in *pb.UpdateFarmRequest) (u.UUID, model.FarmUpdate, error) {
	id, err := ParseID(in.GetId())
	if err != nil {
		return u.Nil, model.FarmUpdate{}, err
	}
	var upd model.FarmUpdate
	if in.HasName() {
		upd.Name = in.Name
	}
	if in.HasLocation() {
		upd.Location = in.Location
	}
	if in.HasImageUrl() {
		upd.ImageURL = in.ImageUrl
	}
	return id, upd, nil
}
