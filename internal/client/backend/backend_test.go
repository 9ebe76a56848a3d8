package backend

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	u "github.com/gofrs/uuid/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/and161185/micromuu/gen/go/micromuu/v1"
	"github.com/and161185/micromuu/internal/api"
	"github.com/and161185/micromuu/internal/errs"
	"github.com/and161185/micromuu/internal/model"
)

type fakeIdentity struct {
	pb.UnimplementedIdentityServiceServer
	err     error
	uid     u.UUID
	lastTok string
}

var _ pb.IdentityServiceServer = (*fakeIdentity)(nil)

func (f *fakeIdentity) session(ctx context.Context, email string) (*pb.Session, error) {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get("authorization"); len(v) > 0 {
			f.lastTok = v[0]
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return pb.Session_builder{
		UserId:    f.uid.String(),
		Email:     email,
		IdToken:   "tok",
		ExpiresAt: timestamppb.New(time.Now().Add(time.Hour)),
	}.Build(), nil
}
func (f *fakeIdentity) SignUp(ctx context.Context, in *pb.SignUpRequest) (*pb.SignUpResponse, error) {
	s, err := f.session(ctx, in.GetEmail())
	if err != nil {
		return nil, err
	}
	return pb.SignUpResponse_builder{Session: s}.Build(), nil
}
func (f *fakeIdentity) SignIn(ctx context.Context, in *pb.SignInRequest) (*pb.SignInResponse, error) {
	s, err := f.session(ctx, in.GetEmail())
	if err != nil {
		return nil, err
	}
	return pb.SignInResponse_builder{Session: s}.Build(), nil
}
func (f *fakeIdentity) SendSignInLink(ctx context.Context, in *pb.SendSignInLinkRequest) (*pb.SendSignInLinkResponse, error) {
	if _, err := f.session(ctx, in.GetEmail()); err != nil {
		return nil, err
	}
	return &pb.SendSignInLinkResponse{}, nil
}
func (f *fakeIdentity) CompleteSignInWithLink(ctx context.Context, in *pb.CompleteSignInWithLinkRequest) (*pb.CompleteSignInWithLinkResponse, error) {
	s, err := f.session(ctx, in.GetEmail())
	if err != nil {
		return nil, err
	}
	return pb.CompleteSignInWithLinkResponse_builder{Session: s}.Build(), nil
}

type fakeProfiles struct {
	pb.UnimplementedProfileServiceServer
	err     error
	profile *pb.Profile
}

var _ pb.ProfileServiceServer = (*fakeProfiles)(nil)

func (f *fakeProfiles) CreateProfile(_ context.Context, in *pb.CreateProfileRequest) (*pb.CreateProfileResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.profile = in.GetProfile()
	return pb.CreateProfileResponse_builder{Profile: f.profile}.Build(), nil
}
func (f *fakeProfiles) GetProfile(context.Context, *pb.GetProfileRequest) (*pb.GetProfileResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.profile == nil {
		return nil, status.Error(codes.NotFound, "not found")
	}
	return pb.GetProfileResponse_builder{Profile: f.profile}.Build(), nil
}
func (f *fakeProfiles) ProfileExists(context.Context, *pb.ProfileExistsRequest) (*pb.ProfileExistsResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return pb.ProfileExistsResponse_builder{Exists: f.profile != nil}.Build(), nil
}
func (f *fakeProfiles) UpdateProfile(_ context.Context, in *pb.UpdateProfileRequest) (*pb.UpdateProfileResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	if in.HasName() {
		f.profile.SetName(in.GetName())
	}
	if in.HasLastName() {
		return nil, status.Error(codes.InvalidArgument, "unexpected last name")
	}
	return &pb.UpdateProfileResponse{}, nil
}

type fakeFarms struct {
	pb.UnimplementedFarmServiceServer
	owner u.UUID
	farms []*pb.Farm
	err   error
}

var _ pb.FarmServiceServer = (*fakeFarms)(nil)

func (f *fakeFarms) CreateFarm(_ context.Context, in *pb.CreateFarmRequest) (*pb.CreateFarmResponse, error) {
	id := u.Must(u.NewV4()).String()
	f.farms = append(f.farms, pb.Farm_builder{
		Id:       id,
		UserId:   f.owner.String(),
		Name:     in.GetName(),
		Location: in.GetLocation(),
		Status:   pb.FarmStatus_FARM_STATUS_ACTIVE,
	}.Build())
	return pb.CreateFarmResponse_builder{Id: id}.Build(), nil
}
func (f *fakeFarms) ListFarms(context.Context, *pb.ListFarmsRequest) (*pb.ListFarmsResponse, error) {
	return pb.ListFarmsResponse_builder{Farms: f.farms}.Build(), nil
}
func (f *fakeFarms) GetFarm(_ context.Context, in *pb.GetFarmRequest) (*pb.GetFarmResponse, error) {
	for _, farm := range f.farms {
		if farm.GetId() == in.GetId() {
			return pb.GetFarmResponse_builder{Farm: farm}.Build(), nil
		}
	}
	return nil, status.Error(codes.NotFound, "not found")
}
func (f *fakeFarms) UpdateFarm(_ context.Context, in *pb.UpdateFarmRequest) (*pb.UpdateFarmResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	if in.HasLocation() {
		return nil, status.Error(codes.InvalidArgument, "unexpected location")
	}
	return &pb.UpdateFarmResponse{}, nil
}
func (f *fakeFarms) ArchiveFarm(context.Context, *pb.ArchiveFarmRequest) (*pb.ArchiveFarmResponse, error) {
	return nil, status.Error(codes.PermissionDenied, "forbidden")
}
func (f *fakeFarms) UploadFarmImage(_ context.Context, in *pb.UploadFarmImageRequest) (*pb.UploadFarmImageResponse, error) {
	if len(in.GetData()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "validation: data: required")
	}
	return pb.UploadFarmImageResponse_builder{Url: "https://img/" + in.GetFarmId()}.Build(), nil
}
func (f *fakeFarms) DeleteFarmImage(context.Context, *pb.DeleteFarmImageRequest) (*pb.DeleteFarmImageResponse, error) {
	return &pb.DeleteFarmImageResponse{}, nil
}

type env struct {
	id       *fakeIdentity
	profiles *fakeProfiles
	farms    *fakeFarms
	cc       *grpc.ClientConn
}

func startBuf(t *testing.T, token func() string) *env {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	e := &env{id: &fakeIdentity{uid: u.Must(u.NewV4())}, profiles: &fakeProfiles{}, farms: &fakeFarms{owner: u.Must(u.NewV4())}}
	pb.RegisterIdentityServiceServer(s, e.id)
	pb.RegisterProfileServiceServer(s, e.profiles)
	pb.RegisterFarmServiceServer(s, e.farms)
	go func() { _ = s.Serve(lis) }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cc, err := Dial(ctx, DialConfig{Addr: "bufnet", Plaintext: true, Token: token},
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) { return lis.Dial() }))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	e.cc = cc
	t.Cleanup(func() {
		_ = cc.Close()
		s.Stop()
		_ = lis.Close()
	})
	return e
}

func TestIdentityAPI_ProviderCodes(t *testing.T) {
	e := startBuf(t, nil)
	a := NewIdentityAPI(e.cc)
	ctx := context.Background()

	id, err := a.SignIn(ctx, "a@b.co", "secret1")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if id.UID != e.id.uid || id.IDToken != "tok" || id.Email != "a@b.co" {
		t.Fatalf("identity = %+v", id)
	}

	cases := []struct {
		name string
		st   error
		call func() error
		want []error
	}{
		{"sign-in wrong password", status.Error(codes.Unauthenticated, api.CodeWrongPassword),
			func() error { _, err := a.SignIn(ctx, "a@b.co", "x"); return err }, []error{errs.ErrWrongPassword}},
		{"sign-in unknown user", status.Error(codes.NotFound, api.CodeUserNotFound),
			func() error { _, err := a.SignIn(ctx, "a@b.co", "x"); return err }, []error{errs.ErrUserNotFound}},
		{"sign-in invalid email", status.Error(codes.InvalidArgument, api.CodeInvalidEmail),
			func() error { _, err := a.SignIn(ctx, "a@b.co", "x"); return err }, []error{errs.ErrInvalidCredentials}},
		{"sign-in limited", status.Error(codes.ResourceExhausted, api.CodeTooManyRequests),
			func() error { _, err := a.SignIn(ctx, "a@b.co", "x"); return err }, []error{errs.ErrSignIn, errs.ErrRateLimited}},
		{"sign-up taken", status.Error(codes.AlreadyExists, api.CodeEmailInUse),
			func() error { _, err := a.SignUp(ctx, "a@b.co", "x"); return err }, []error{errs.ErrEmailInUse}},
		{"sign-up weak", status.Error(codes.InvalidArgument, api.CodeWeakPassword),
			func() error { _, err := a.SignUp(ctx, "a@b.co", "x"); return err }, []error{errs.ErrValidation}},
		{"sign-up internal", status.Error(codes.Internal, api.CodeInternal),
			func() error { _, err := a.SignUp(ctx, "a@b.co", "x"); return err }, []error{errs.ErrSignIn}},
		{"link rejected", status.Error(codes.InvalidArgument, api.CodeInvalidEmail),
			func() error { return a.SendSignInLink(ctx, "bad", "") }, []error{errs.ErrAuthRequest, errs.ErrValidation}},
		{"complete expired", status.Error(codes.FailedPrecondition, api.CodeInvalidActionCode),
			func() error { _, err := a.CompleteSignInWithLink(ctx, "a@b.co", "l"); return err }, []error{errs.ErrSignIn, errs.ErrInvalidLink}},
	}
	for _, tc := range cases {
		e.id.err = tc.st
		err := tc.call()
		for _, w := range tc.want {
			if !errors.Is(err, w) {
				t.Fatalf("%s: got %v, want %v", tc.name, err, w)
			}
		}
	}
}

func TestBearerFromTokenSource(t *testing.T) {
	tok := ""
	e := startBuf(t, func() string { return tok })
	a := NewIdentityAPI(e.cc)
	ctx := context.Background()

	if err := a.SendSignInLink(ctx, "a@b.co", ""); err != nil {
		t.Fatalf("SendSignInLink: %v", err)
	}
	if e.id.lastTok != "" {
		t.Fatalf("anonymous call sent %q", e.id.lastTok)
	}
	tok = "abc"
	if err := a.SendSignInLink(ctx, "a@b.co", ""); err != nil {
		t.Fatalf("SendSignInLink: %v", err)
	}
	if e.id.lastTok != "Bearer abc" {
		t.Fatalf("authorization = %q", e.id.lastTok)
	}
}

func TestProfileAPI(t *testing.T) {
	e := startBuf(t, nil)
	a := NewProfileAPI(e.cc)
	ctx := context.Background()
	uid := u.Must(u.NewV4())

	ok, err := a.Exists(ctx, uid)
	if err != nil || ok {
		t.Fatalf("Exists = %v, %v", ok, err)
	}
	if _, err := a.Get(ctx, uid); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("Get missing: %v", err)
	}
	p := model.Profile{UserID: uid, Name: "Ricardo", LastName: "Test", Email: "r@x.com", CreatedAt: time.Now().UTC()}
	if err := a.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	name := "Juan"
	if err := a.Update(ctx, uid, model.ProfileUpdate{Name: &name}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := a.Get(ctx, uid)
	if err != nil || got.Name != "Juan" || got.UserID != uid {
		t.Fatalf("Get = %+v, %v", got, err)
	}

	e.profiles.err = status.Error(codes.PermissionDenied, "forbidden")
	if _, err := a.Exists(ctx, uid); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("Exists forbidden: %v", err)
	}
	e.profiles.err = status.Error(codes.Unavailable, "down")
	if _, err := a.Exists(ctx, uid); err == nil || errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("Exists unavailable: %v", err)
	}
}

func TestFarmAPI(t *testing.T) {
	e := startBuf(t, nil)
	a := NewFarmAPI(e.cc)
	ctx := context.Background()

	id, err := a.Create(ctx, model.CreateFarm{Name: "La Esperanza", Location: "Jalisco"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	list, err := a.List(ctx)
	if err != nil || len(list) != 1 || list[0].ID != id || list[0].Status != model.FarmActive {
		t.Fatalf("List = %+v, %v", list, err)
	}
	f, err := a.Get(ctx, id)
	if err != nil || f.Name != "La Esperanza" {
		t.Fatalf("Get = %+v, %v", f, err)
	}
	if _, err := a.Get(ctx, u.Must(u.NewV4())); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("Get other: %v", err)
	}
	if err := a.Archive(ctx, id); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("Archive: %v", err)
	}
	url, err := a.UploadImage(ctx, id, []byte{0xff, 0xd8}, "image/jpeg")
	if err != nil || url != "https://img/"+id.String() {
		t.Fatalf("UploadImage = %q, %v", url, err)
	}
	if _, err := a.UploadImage(ctx, id, nil, ""); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("UploadImage empty: %v", err)
	}
	if err := a.DeleteImage(ctx, id); err != nil {
		t.Fatalf("DeleteImage: %v", err)
	}
	e.farms.err = status.Error(codes.InvalidArgument, "validation: name: required")
	empty := ""
	if err := a.Update(ctx, id, model.FarmUpdate{Name: &empty}); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("Update: %v", err)
	}
}

func TestLoadTLS(t *testing.T) {
	if _, err := LoadTLS("", false); err != nil {
		t.Fatalf("system roots: %v", err)
	}
	if _, err := LoadTLS("", true); err != nil {
		t.Fatalf("skip verify: %v", err)
	}
	if _, err := LoadTLS(t.TempDir()+"/missing.pem", false); err == nil {
		t.Fatalf("missing CA must fail")
	}
}
