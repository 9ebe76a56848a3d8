package grpcserver

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCallerContext(t *testing.T) {
	t.Parallel()

	if _, ok := CallerFrom(context.Background()); ok {
		t.Fatalf("empty ctx must carry no caller")
	}
	if _, err := callerID(context.Background()); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", err)
	}

	want := Caller{ID: uuid.Must(uuid.NewV4()), Email: "ricardo+test@x.com"}
	got, ok := CallerFrom(WithCaller(context.Background(), want))
	if !ok || got != want {
		t.Fatalf("mismatch: got %+v (%v), want %+v", got, ok, want)
	}
	if id, err := callerID(WithCaller(context.Background(), want)); err != nil || id != want.ID {
		t.Fatalf("callerID = %s, %v", id, err)
	}

	if _, ok := CallerFrom(WithCaller(context.Background(), Caller{Email: "a@b.co"})); ok {
		t.Fatalf("nil id must not count as authenticated")
	}
	bad := context.WithValue(context.Background(), callerKey{}, "not-a-caller")
	if _, ok := CallerFrom(bad); ok {
		t.Fatalf("expected miss on wrong typed value")
	}
}
