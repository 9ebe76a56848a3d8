package grpcserver

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	pb "github.com/and161185/micromuu/gen/go/micromuu/v1"
	"github.com/and161185/micromuu/internal/api"
	"github.com/and161185/micromuu/internal/errs"
	"github.com/and161185/micromuu/internal/metrics"
	"github.com/and161185/micromuu/internal/model"
	"github.com/and161185/micromuu/internal/service"
)

type fakeIdentity struct {
	id      uuid.UUID
	lastIP  string
	signErr error
}

var _ service.IdentityService = (*fakeIdentity)(nil)

func (f *fakeIdentity) result(email string) (model.Tokens, model.User, error) {
	return model.Tokens{IDToken: "tok", ExpiresAt: time.Now().Add(time.Hour)}, model.User{ID: f.id, Email: email}, nil
}
func (f *fakeIdentity) SignUp(_ context.Context, email, _ string) (model.Tokens, model.User, error) {
	return f.result(email)
}
func (f *fakeIdentity) SignIn(_ context.Context, email, _, ip string) (model.Tokens, model.User, error) {
	f.lastIP = ip
	if f.signErr != nil {
		return model.Tokens{}, model.User{}, f.signErr
	}
	return f.result(email)
}
func (f *fakeIdentity) SendSignInLink(context.Context, string, string, string) error { return nil }
func (f *fakeIdentity) CompleteSignInWithLink(_ context.Context, email, _ string) (model.Tokens, model.User, error) {
	return f.result(email)
}

type fakeProfileSvc struct{ byUser map[uuid.UUID]model.Profile }

var _ service.ProfileService = (*fakeProfileSvc)(nil)

func (f *fakeProfileSvc) Create(_ context.Context, caller uuid.UUID, p model.Profile) (*model.Profile, error) {
	if caller != p.UserID {
		return nil, errs.ErrForbidden
	}
	p.CreatedAt = time.Now().UTC()
	f.byUser[p.UserID] = p
	return &p, nil
}
func (f *fakeProfileSvc) Get(_ context.Context, caller, uid uuid.UUID) (*model.Profile, error) {
	if caller != uid {
		return nil, errs.ErrForbidden
	}
	p, ok := f.byUser[uid]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &p, nil
}
func (f *fakeProfileSvc) Exists(_ context.Context, caller, uid uuid.UUID) (bool, error) {
	if caller != uid {
		return false, errs.ErrForbidden
	}
	_, ok := f.byUser[uid]
	return ok, nil
}
func (f *fakeProfileSvc) Update(context.Context, uuid.UUID, uuid.UUID, model.ProfileUpdate) error {
	return nil
}

type fakeFarmSvc struct {
	farms map[uuid.UUID]model.Farm
}

var _ service.FarmService = (*fakeFarmSvc)(nil)

func (f *fakeFarmSvc) Create(_ context.Context, uid uuid.UUID, in model.CreateFarm) (uuid.UUID, error) {
	id := uuid.Must(uuid.NewV4())
	f.farms[id] = model.Farm{ID: id, UserID: uid, Name: in.Name, Status: model.FarmActive, CreatedAt: time.Now()}
	return id, nil
}
func (f *fakeFarmSvc) ListByUser(_ context.Context, uid uuid.UUID) ([]model.Farm, error) {
	var out []model.Farm
	for _, farm := range f.farms {
		if farm.UserID == uid {
			out = append(out, farm)
		}
	}
	return out, nil
}
func (f *fakeFarmSvc) Get(_ context.Context, uid, id uuid.UUID) (*model.Farm, error) {
	farm, ok := f.farms[id]
	if !ok || farm.UserID != uid {
		return nil, errs.ErrNotFound
	}
	return &farm, nil
}
func (f *fakeFarmSvc) Update(context.Context, uuid.UUID, uuid.UUID, model.FarmUpdate) error {
	return nil
}
func (f *fakeFarmSvc) Archive(context.Context, uuid.UUID, uuid.UUID) error { return nil }
func (f *fakeFarmSvc) UploadImage(_ context.Context, uid, id uuid.UUID, _ []byte, ct string) (string, error) {
	if ct != "image/jpeg" {
		return "", errs.ErrValidation
	}
	return "memory://farms/" + uid.String() + "/" + id.String() + "/profile.jpg", nil
}
func (f *fakeFarmSvc) DeleteImage(context.Context, uuid.UUID, uuid.UUID) error { return nil }

const bufSize = 1 << 20

type testEnv struct {
	cc      *grpc.ClientConn
	key     []byte
	ident   *fakeIdentity
	metrics *metrics.Metrics
}

func startBufGRPC(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		key:     []byte("test-secret"),
		ident:   &fakeIdentity{id: uuid.Must(uuid.NewV4())},
		metrics: metrics.New(),
	}
	log := zaptest.NewLogger(t)

	lis := bufconn.Listen(bufSize)
	gs := grpc.NewServer(grpc.ChainUnaryInterceptor(
		RecoverUnary(log),
		LoggingUnary(log),
		MetricsUnary(env.metrics),
		AuthUnary(NewVerifier(env.key), "/"+pb.IdentityService_ServiceDesc.ServiceName+"/"),
	))
	pb.RegisterIdentityServiceServer(gs, NewIdentityHandler(env.ident, env.metrics.LinksSent.Inc))
	pb.RegisterProfileServiceServer(gs, NewProfilesHandler(&fakeProfileSvc{byUser: map[uuid.UUID]model.Profile{}}))
	pb.RegisterFarmServiceServer(gs, NewFarmsHandler(&fakeFarmSvc{farms: map[uuid.UUID]model.Farm{}}))
	go func() { _ = gs.Serve(lis) }()

	dialer := func(context.Context, string) (net.Conn, error) { return lis.Dial() }
	//nolint:staticcheck // DialContext is supported through 1.x; migrate when grpc.NewClient is stable
	cc, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(dialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	env.cc = cc
	t.Cleanup(func() { _ = cc.Close(); gs.Stop(); _ = lis.Close() })
	return env
}

func (e *testEnv) authed(t *testing.T, sub uuid.UUID) context.Context {
	t.Helper()
	tok := makeJWT(t, sub.String(), e.key, jwt.SigningMethodHS256, time.Now().UTC(), time.Hour)
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+tok)
}

func TestServer_E2E_Identity(t *testing.T) {
	t.Parallel()
	env := startBufGRPC(t)
	cl := pb.NewIdentityServiceClient(env.cc)
	ctx := context.Background()

	in := &pb.SignInRequest{}
	in.SetEmail("a@b.co")
	in.SetPassword("secret1")
	resp, err := cl.SignIn(ctx, in)
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	sess := resp.GetSession()
	if sess.GetUserId() != env.ident.id.String() || sess.GetIdToken() != "tok" || sess.GetEmail() != "a@b.co" || !sess.HasExpiresAt() {
		t.Fatalf("bad response: %+v", resp)
	}
	if env.ident.lastIP != "bufconn" {
		t.Fatalf("peer address not propagated: %q", env.ident.lastIP)
	}

	env.ident.signErr = errs.ErrWrongPassword
	in.SetPassword("nope12")
	_, err = cl.SignIn(ctx, in)
	st := status.Convert(err)
	if st.Code() != codes.Unauthenticated || st.Message() != api.CodeWrongPassword {
		t.Fatalf("want wrong-password status, got %v", err)
	}

	link := &pb.SendSignInLinkRequest{}
	link.SetEmail("a@b.co")
	if _, err := cl.SendSignInLink(ctx, link); err != nil {
		t.Fatalf("SendSignInLink: %v", err)
	}
	done := pb.CompleteSignInWithLinkRequest_builder{Email: "a@b.co", Link: "x"}.Build()
	if _, err := cl.CompleteSignInWithLink(ctx, done); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got := counterValue(t, env.metrics, pb.IdentityService_SignIn_FullMethodName, "Unauthenticated"); got != 1 {
		t.Fatalf("want 1 failed SignIn counted, got %v", got)
	}
}

func TestServer_E2E_Documents(t *testing.T) {
	t.Parallel()
	env := startBufGRPC(t)
	profiles := pb.NewProfileServiceClient(env.cc)
	farms := pb.NewFarmServiceClient(env.cc)

	uid := uuid.Must(uuid.NewV4())
	exReq := &pb.ProfileExistsRequest{}
	exReq.SetUserId(uid.String())
	if _, err := profiles.ProfileExists(context.Background(), exReq); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated without token, got %v", err)
	}

	ctx := env.authed(t, uid)
	ex, err := profiles.ProfileExists(ctx, exReq)
	if err != nil || ex.GetExists() {
		t.Fatalf("Exists: %+v %v", ex, err)
	}
	prof := pb.Profile_builder{UserId: uid.String(), Name: "Juan", LastName: "P", Email: "j@r.mx"}.Build()
	created, err := profiles.CreateProfile(ctx, pb.CreateProfileRequest_builder{Profile: prof}.Build())
	if err != nil || !created.GetProfile().HasCreatedAt() {
		t.Fatalf("Create: %+v %v", created, err)
	}
	get := &pb.GetProfileRequest{}
	get.SetUserId(uuid.Must(uuid.NewV4()).String())
	if _, err := profiles.GetProfile(ctx, get); status.Code(err) != codes.PermissionDenied {
		t.Fatalf("want PermissionDenied, got %v", err)
	}
	get.SetUserId("bad")
	if _, err := profiles.GetProfile(ctx, get); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("want InvalidArgument, got %v", err)
	}

	cf := &pb.CreateFarmRequest{}
	cf.SetName("La Esperanza")
	farm, err := farms.CreateFarm(ctx, cf)
	if err != nil {
		t.Fatalf("farm create: %v", err)
	}
	list, err := farms.ListFarms(ctx, &pb.ListFarmsRequest{})
	if err != nil || len(list.GetFarms()) != 1 {
		t.Fatalf("List: %+v %v", list, err)
	}
	if got := list.GetFarms()[0]; got.GetId() != farm.GetId() || got.GetStatus() != pb.FarmStatus_FARM_STATUS_ACTIVE {
		t.Fatalf("listed farm mismatch: %+v", got)
	}

	other := env.authed(t, uuid.Must(uuid.NewV4()))
	gf := &pb.GetFarmRequest{}
	gf.SetId(farm.GetId())
	if _, err := farms.GetFarm(other, gf); status.Code(err) != codes.NotFound {
		t.Fatalf("want NotFound for foreign farm, got %v", err)
	}

	img := &pb.UploadFarmImageRequest{}
	img.SetFarmId(farm.GetId())
	img.SetData([]byte{0xff, 0xd8})
	up, err := farms.UploadFarmImage(ctx, img)
	if err != nil || up.GetUrl() == "" {
		t.Fatalf("UploadImage: %+v %v", up, err)
	}
	img.SetData([]byte{1})
	img.SetContentType("text/plain")
	if _, err := farms.UploadFarmImage(ctx, img); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("want InvalidArgument, got %v", err)
	}
}
