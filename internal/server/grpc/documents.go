package grpcserver

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/and161185/micromuu/gen/go/micromuu/v1"
	"github.com/and161185/micromuu/internal/convert"
	"github.com/and161185/micromuu/internal/service"
)

// ProfilesHandler serves micromuu.v1.ProfileService.
type ProfilesHandler struct {
	pb.UnimplementedProfileServiceServer
	svc service.ProfileService
}

var _ pb.ProfileServiceServer = (*ProfilesHandler)(nil)

func NewProfilesHandler(svc service.ProfileService) *ProfilesHandler {
	return &ProfilesHandler{svc: svc}
}

func (h *ProfilesHandler) CreateProfile(ctx context.Context, req *pb.CreateProfileRequest) (*pb.CreateProfileResponse, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	in, err := convert.FromProtoProfile(req.GetProfile())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "bad profile")
	}
	p, err := h.svc.Create(ctx, caller, in)
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &pb.CreateProfileResponse{}
	resp.SetProfile(convert.ToProtoProfile(*p))
	return resp, nil
}

func (h *ProfilesHandler) GetProfile(ctx context.Context, req *pb.GetProfileRequest) (*pb.GetProfileResponse, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	uid, err := convert.ParseID(req.GetUserId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "bad user id")
	}
	p, err := h.svc.Get(ctx, caller, uid)
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &pb.GetProfileResponse{}
	resp.SetProfile(convert.ToProtoProfile(*p))
	return resp, nil
}

func (h *ProfilesHandler) ProfileExists(ctx context.Context, req *pb.ProfileExistsRequest) (*pb.ProfileExistsResponse, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	uid, err := convert.ParseID(req.GetUserId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "bad user id")
	}
	ok, err := h.svc.Exists(ctx, caller, uid)
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &pb.ProfileExistsResponse{}
	resp.SetExists(ok)
	return resp, nil
}

func (h *ProfilesHandler) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.UpdateProfileResponse, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	uid, upd, err := convert.FromProtoProfileUpdate(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "bad user id")
	}
	if err := h.svc.Update(ctx, caller, uid, upd); err != nil {
		return nil, toStatus(err)
	}
	return &pb.UpdateProfileResponse{}, nil
}

// FarmsHandler serves micromuu.v1.FarmService for the calling user.
type FarmsHandler struct {
	pb.UnimplementedFarmServiceServer
	svc service.FarmService
}

var _ pb.FarmServiceServer = (*FarmsHandler)(nil)

func NewFarmsHandler(svc service.FarmService) *FarmsHandler {
	return &FarmsHandler{svc: svc}
}

func (h *FarmsHandler) CreateFarm(ctx context.Context, req *pb.CreateFarmRequest) (*pb.CreateFarmResponse, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := h.svc.Create(ctx, caller, convert.FromProtoCreateFarm(req))
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &pb.CreateFarmResponse{}
	resp.SetId(id.String())
	return resp, nil
}

func (h *FarmsHandler) ListFarms(ctx context.Context, _ *pb.ListFarmsRequest) (*pb.ListFarmsResponse, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	farms, err := h.svc.ListByUser(ctx, caller)
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &pb.ListFarmsResponse{}
	resp.SetFarms(convert.ToProtoFarms(farms))
	return resp, nil
}

func (h *FarmsHandler) GetFarm(ctx context.Context, req *pb.GetFarmRequest) (*pb.GetFarmResponse, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := convert.ParseID(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "bad id")
	}
	f, err := h.svc.Get(ctx, caller, id)
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &pb.GetFarmResponse{}
	resp.SetFarm(convert.ToProtoFarm(*f))
	return resp, nil
}

func (h *FarmsHandler) UpdateFarm(ctx context.Context, req *pb.UpdateFarmRequest) (*pb.UpdateFarmResponse, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	id, upd, err := convert.FromProtoUpdateFarm(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "bad id")
	}
	if err := h.svc.Update(ctx, caller, id, upd); err != nil {
		return nil, toStatus(err)
	}
	return &pb.UpdateFarmResponse{}, nil
}

func (h *FarmsHandler) ArchiveFarm(ctx context.Context, req *pb.ArchiveFarmRequest) (*pb.ArchiveFarmResponse, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := convert.ParseID(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "bad id")
	}
	if err := h.svc.Archive(ctx, caller, id); err != nil {
		return nil, toStatus(err)
	}
	return &pb.ArchiveFarmResponse{}, nil
}

func (h *FarmsHandler) UploadFarmImage(ctx context.Context, req *pb.UploadFarmImageRequest) (*pb.UploadFarmImageResponse, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := convert.ParseID(req.GetFarmId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "bad id")
	}
	ct := req.GetContentType()
	if ct == "" {
		ct = "image/jpeg"
	}
	url, err := h.svc.UploadImage(ctx, caller, id, req.GetData(), ct)
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &pb.UploadFarmImageResponse{}
	resp.SetUrl(url)
	return resp, nil
}

func (h *FarmsHandler) DeleteFarmImage(ctx context.Context, req *pb.DeleteFarmImageRequest) (*pb.DeleteFarmImageResponse, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := convert.ParseID(req.GetFarmId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "bad id")
	}
	if err := h.svc.DeleteImage(ctx, caller, id); err != nil {
		return nil, toStatus(err)
	}
	return &pb.DeleteFarmImageResponse{}, nil
}
