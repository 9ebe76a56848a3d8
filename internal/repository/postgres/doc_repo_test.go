package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/and161185/micromuu/internal/errs"
	"github.com/and161185/micromuu/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

var farmColumns = []string{"id", "user_id", "name", "location", "image_url", "status", "created_at", "updated_at", "archived_at"}

func TestProfileRepo_CRUD(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewProfileRepo(db)
	ctx := context.Background()
	uid := uuid.Must(uuid.NewV4())
	now := time.Now().UTC()
	p := &model.Profile{UserID: uid, Name: "Ricardo", LastName: "Test", Email: "ricardo+test@x.com", CreatedAt: now}

	mock.ExpectExec(`INSERT INTO profiles \(user_id, name, last_name, email, created_at\)`).
		WithArgs(uid, p.Name, p.LastName, p.Email, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Create(ctx, p))

	mock.ExpectExec(`INSERT INTO profiles`).
		WithArgs(uid, p.Name, p.LastName, p.Email, now).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	require.ErrorIs(t, r.Create(ctx, p), errs.ErrAlreadyExists)

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM profiles WHERE user_id = \$1\)`).
		WithArgs(uid).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	ok, err := r.Exists(ctx, uid)
	require.NoError(t, err)
	require.True(t, ok)

	mock.ExpectQuery(`FROM profiles WHERE user_id = \$1`).
		WithArgs(uid).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "name", "last_name", "email", "created_at", "updated_at"}).
			AddRow(uid, p.Name, p.LastName, p.Email, now, (*time.Time)(nil)))
	got, err := r.Get(ctx, uid)
	require.NoError(t, err)
	require.Equal(t, "Ricardo", got.Name)
	require.Nil(t, got.UpdatedAt)

	name := "Ricky"
	mock.ExpectExec(`UPDATE profiles SET name = COALESCE\(\$2, name\)`).
		WithArgs(uid, &name, pgxmock.AnyArg(), pgxmock.AnyArg(), now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	require.ErrorIs(t, r.Update(ctx, uid, model.ProfileUpdate{Name: &name}, now), errs.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFarmRepo_CreateAndListActive(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewFarmRepo(db)
	ctx := context.Background()
	uid := uuid.Must(uuid.NewV4())
	now := time.Now().UTC()
	f := &model.Farm{ID: uuid.Must(uuid.NewV4()), UserID: uid, Name: "El Roble", Status: model.FarmActive, CreatedAt: now, UpdatedAt: now}

	mock.ExpectExec(`INSERT INTO farms`).
		WithArgs(f.ID, uid, f.Name, "", "", "active", now, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Create(ctx, f))

	older := now.Add(-time.Hour)
	id2 := uuid.Must(uuid.NewV4())
	mock.ExpectQuery(`FROM farms WHERE user_id = \$1 AND status = 'active' ORDER BY created_at DESC`).
		WithArgs(uid).
		WillReturnRows(pgxmock.NewRows(farmColumns).
			AddRow(f.ID, uid, f.Name, "", "", "active", now, now, (*time.Time)(nil)).
			AddRow(id2, uid, "La Loma", "Jalisco", "https://img", "active", older, older, (*time.Time)(nil)))
	list, err := r.ListActiveByUser(ctx, uid)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, f.ID, list[0].ID)
	require.Equal(t, model.FarmActive, list[1].Status)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFarmRepo_GetNotFound(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	id := uuid.Must(uuid.NewV4())

	mock.ExpectQuery(`FROM farms WHERE id = \$1`).WithArgs(id).WillReturnError(pgx.ErrNoRows)
	_, err := NewFarmRepo(db).Get(context.Background(), id)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestFarmRepo_Archive(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewFarmRepo(db)
	ctx := context.Background()
	uid, id := uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())
	at := time.Now().UTC()

	mock.ExpectExec(`UPDATE farms SET status = 'archived', archived_at = \$3, updated_at = \$3 WHERE id = \$1 AND user_id = \$2 AND status = 'active'`).
		WithArgs(id, uid, at).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	changed, err := r.Archive(ctx, uid, id, at)
	require.NoError(t, err)
	require.True(t, changed)

	// already archived: no-op
	mock.ExpectExec(`UPDATE farms SET status = 'archived'`).
		WithArgs(id, uid, at).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery(`SELECT status FROM farms WHERE id = \$1 AND user_id = \$2`).
		WithArgs(id, uid).
		WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow("archived"))
	changed, err = r.Archive(ctx, uid, id, at)
	require.NoError(t, err)
	require.False(t, changed)

	// someone else's or missing
	mock.ExpectExec(`UPDATE farms SET status = 'archived'`).
		WithArgs(id, uid, at).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery(`SELECT status FROM farms`).
		WithArgs(id, uid).
		WillReturnError(pgx.ErrNoRows)
	_, err = r.Archive(ctx, uid, id, at)
	require.ErrorIs(t, err, errs.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFarmRepo_UpdateNeverTouchesStatus(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	uid, id := uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())
	at := time.Now().UTC()
	loc := "Sonora"

	mock.ExpectExec(`UPDATE farms SET name = COALESCE\(\$3, name\), location = COALESCE\(\$4, location\), image_url = COALESCE\(\$5, image_url\), updated_at = \$6 WHERE id = \$1 AND user_id = \$2`).
		WithArgs(id, uid, pgxmock.AnyArg(), &loc, pgxmock.AnyArg(), at).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, NewFarmRepo(db).Update(context.Background(), uid, id, model.FarmUpdate{Location: &loc}, at))
	require.NoError(t, mock.ExpectationsWereMet())
}
