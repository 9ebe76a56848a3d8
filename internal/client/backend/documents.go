package backend

import (
	"context"

	u "github.com/gofrs/uuid/v5"
	"google.golang.org/grpc"

	pb "github.com/and161185/micromuu/gen/go/micromuu/v1"
	"github.com/and161185/micromuu/internal/convert"
	"github.com/and161185/micromuu/internal/model"
)

// ProfileAPI is the remote profile document service.
type ProfileAPI struct{ c pb.ProfileServiceClient }

// NewProfileAPI returns a ProfileAPI over cc.
func NewProfileAPI(cc grpc.ClientConnInterface) *ProfileAPI {
	return &ProfileAPI{c: pb.NewProfileServiceClient(cc)}
}

// Create stores the profile of p.UserID.
func (a *ProfileAPI) Create(ctx context.Context, p model.Profile) error {
	req := &pb.CreateProfileRequest{}
	req.SetProfile(convert.ToProtoProfile(p))
	_, err := a.c.CreateProfile(ctx, req)
	return fromStatus(err)
}

// Get returns the profile of userID.
func (a *ProfileAPI) Get(ctx context.Context, userID u.UUID) (model.Profile, error) {
	req := &pb.GetProfileRequest{}
	req.SetUserId(userID.String())
	resp, err := a.c.GetProfile(ctx, req)
	if err != nil {
		return model.Profile{}, fromStatus(err)
	}
	return convert.FromProtoProfile(resp.GetProfile())
}

// Exists reports whether userID has a profile.
func (a *ProfileAPI) Exists(ctx context.Context, userID u.UUID) (bool, error) {
	req := &pb.ProfileExistsRequest{}
	req.SetUserId(userID.String())
	resp, err := a.c.ProfileExists(ctx, req)
	if err != nil {
		return false, fromStatus(err)
	}
	return resp.GetExists(), nil
}

// Update applies a partial profile update.
func (a *ProfileAPI) Update(ctx context.Context, userID u.UUID, upd model.ProfileUpdate) error {
	_, err := a.c.UpdateProfile(ctx, convert.ToProtoProfileUpdate(userID, upd))
	return fromStatus(err)
}

// FarmAPI is the remote farm document service. The server scopes every call
// to the bearer of the ID token.
type FarmAPI struct{ c pb.FarmServiceClient }

// NewFarmAPI returns a FarmAPI over cc.
func NewFarmAPI(cc grpc.ClientConnInterface) *FarmAPI {
	return &FarmAPI{c: pb.NewFarmServiceClient(cc)}
}

// Create returns the new farm id.
func (a *FarmAPI) Create(ctx context.Context, in model.CreateFarm) (u.UUID, error) {
	resp, err := a.c.CreateFarm(ctx, convert.ToProtoCreateFarm(in))
	if err != nil {
		return u.Nil, fromStatus(err)
	}
	return convert.ParseID(resp.GetId())
}

// List returns the active farms, newest first.
func (a *FarmAPI) List(ctx context.Context) ([]model.Farm, error) {
	resp, err := a.c.ListFarms(ctx, &pb.ListFarmsRequest{})
	if err != nil {
		return nil, fromStatus(err)
	}
	return convert.FromProtoFarms(resp.GetFarms())
}

func (a *FarmAPI) Get(ctx context.Context, id u.UUID) (model.Farm, error) {
	req := &pb.GetFarmRequest{}
	req.SetId(id.String())
	resp, err := a.c.GetFarm(ctx, req)
	if err != nil {
		return model.Farm{}, fromStatus(err)
	}
	return convert.FromProtoFarm(resp.GetFarm())
}

func (a *FarmAPI) Update(ctx context.Context, id u.UUID, upd model.FarmUpdate) error {
	_, err := a.c.UpdateFarm(ctx, convert.ToProtoUpdateFarm(id, upd))
	return fromStatus(err)
}

func (a *FarmAPI) Archive(ctx context.Context, id u.UUID) error {
	req := &pb.ArchiveFarmRequest{}
	req.SetId(id.String())
	_, err := a.c.ArchiveFarm(ctx, req)
	return fromStatus(err)
}

// UploadImage stores data as the farm photo and returns its URL.
func (a *FarmAPI) UploadImage(ctx context.Context, farmID u.UUID, data []byte, contentType string) (string, error) {
	req := &pb.UploadFarmImageRequest{}
	req.SetFarmId(farmID.String())
	req.SetData(data)
	req.SetContentType(contentType)
	resp, err := a.c.UploadFarmImage(ctx, req)
	if err != nil {
		return "", fromStatus(err)
	}
	return resp.GetUrl(), nil
}

func (a *FarmAPI) DeleteImage(ctx context.Context, farmID u.UUID) error {
	req := &pb.DeleteFarmImageRequest{}
	req.SetFarmId(farmID.String())
	_, err := a.c.DeleteFarmImage(ctx, req)
	return fromStatus(err)
}
