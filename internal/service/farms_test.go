package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/micromuu/internal/errs"
	"github.com/and161185/micromuu/internal/model"
	"github.com/and161185/micromuu/internal/storage"
)

func TestFarms_CreateListGet(t *testing.T) {
	t.Parallel()
	repo := newFakeFarms()
	s := NewFarmService(repo, storage.NewMemory(), 0)
	ctx := context.Background()
	uid, other := uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())

	if _, err := s.Create(ctx, uid, model.CreateFarm{Name: "  "}); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
	if _, err := s.Create(ctx, uid, model.CreateFarm{Name: strings.Repeat("x", 101)}); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want ErrValidation for long name, got %v", err)
	}
	if _, err := s.Create(ctx, uuid.Nil, model.CreateFarm{Name: "A"}); !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }
	first, err := s.Create(ctx, uid, model.CreateFarm{Name: " La Esperanza ", Location: "Jalisco"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	s.now = func() time.Time { return base.Add(time.Minute) }
	second, err := s.Create(ctx, uid, model.CreateFarm{Name: "El Rosario"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	f, err := s.Get(ctx, uid, first)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if f.Name != "La Esperanza" || f.Status != model.FarmActive || !f.CreatedAt.Equal(f.UpdatedAt) || f.ArchivedAt != nil {
		t.Fatalf("bad farm: %+v", f)
	}
	if _, err := s.Get(ctx, other, first); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want ErrNotFound for foreign farm, got %v", err)
	}

	list, err := s.ListByUser(ctx, uid)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].ID != second || list[1].ID != first {
		t.Fatalf("want newest first, got %+v", list)
	}
}

func TestFarms_UpdateAndArchive(t *testing.T) {
	t.Parallel()
	repo := newFakeFarms()
	s := NewFarmService(repo, storage.NewMemory(), 0)
	ctx := context.Background()
	uid := uuid.Must(uuid.NewV4())

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }
	id, err := s.Create(ctx, uid, model.CreateFarm{Name: "A"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	name := " B "
	s.now = func() time.Time { return base.Add(time.Hour) }
	if err := s.Update(ctx, uid, id, model.FarmUpdate{Name: &name}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	f, _ := s.Get(ctx, uid, id)
	if f.Name != "B" || !f.UpdatedAt.Equal(base.Add(time.Hour)) || !f.CreatedAt.Equal(base) {
		t.Fatalf("bad update: %+v", f)
	}
	empty := ""
	if err := s.Update(ctx, uid, id, model.FarmUpdate{Name: &empty}); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}

	at := base.Add(2 * time.Hour)
	s.now = func() time.Time { return at }
	if err := s.Archive(ctx, uid, id); err != nil {
		t.Fatalf("Archive: %v", err)
	}
	s.now = func() time.Time { return at.Add(time.Hour) }
	if err := s.Archive(ctx, uid, id); err != nil {
		t.Fatalf("re-archive should be a no-op: %v", err)
	}
	f, _ = s.Get(ctx, uid, id)
	if f.Status != model.FarmArchived || f.ArchivedAt == nil || !f.ArchivedAt.Equal(at) || !f.UpdatedAt.Equal(at) {
		t.Fatalf("bad archive: %+v", f)
	}
	list, _ := s.ListByUser(ctx, uid)
	if len(list) != 0 {
		t.Fatalf("archived farms must not be listed: %+v", list)
	}
	if err := s.Archive(ctx, uuid.Must(uuid.NewV4()), id); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want ErrNotFound for foreign archive, got %v", err)
	}
}

func TestFarms_Images(t *testing.T) {
	t.Parallel()
	mem := storage.NewMemory()
	s := NewFarmService(newFakeFarms(), mem, 4)
	ctx := context.Background()
	uid := uuid.Must(uuid.NewV4())
	id, err := s.Create(ctx, uid, model.CreateFarm{Name: "A"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := s.UploadImage(ctx, uid, id, []byte("12345"), "image/jpeg"); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want ErrValidation for oversize, got %v", err)
	}
	if _, err := s.UploadImage(ctx, uid, id, nil, "image/jpeg"); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want ErrValidation for empty, got %v", err)
	}
	if _, err := s.UploadImage(ctx, uuid.Must(uuid.NewV4()), id, []byte("1"), "image/jpeg"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want ErrNotFound for foreign farm, got %v", err)
	}

	url, err := s.UploadImage(ctx, uid, id, []byte("jpeg"), "image/jpeg")
	if err != nil {
		t.Fatalf("UploadImage: %v", err)
	}
	key := storage.FarmImageKey(uid, id)
	if !mem.Has(key) || !strings.HasSuffix(url, key) {
		t.Fatalf("image not stored at %s (url %s)", key, url)
	}

	if err := s.DeleteImage(ctx, uid, id); err != nil {
		t.Fatalf("DeleteImage: %v", err)
	}
	if err := s.DeleteImage(ctx, uid, id); err != nil {
		t.Fatalf("second DeleteImage: %v", err)
	}
	if mem.Has(key) {
		t.Fatalf("image still stored")
	}
}
