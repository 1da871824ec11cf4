package postgres_adapter

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wojg58/Thursday/internal/core/domain"
)

type call struct {
	sql  string
	args []any
}

// fakeDB отвечает заранее заданными результатами и запоминает запросы.
type fakeDB struct {
	execTag pgconn.CommandTag
	execErr error

	rows     [][]any
	queryErr error

	count int64

	calls     []call
	committed bool
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, call{sql, args})
	return f.execTag, f.execErr
}

func (f *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.calls = append(f.calls, call{sql, args})
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return &fakeRows{rows: f.rows, pos: -1}, nil
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.calls = append(f.calls, call{sql, args})
	return fakeRow{values: []any{f.count}}
}

func (f *fakeDB) BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error) {
	return &fakeTx{db: f}, nil
}

// fakeTx реализует только то, что нужно FindPaginatedByUser.
type fakeTx struct {
	pgx.Tx
	db *fakeDB
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return t.db.QueryRow(ctx, sql, args...)
}

func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return t.db.Query(ctx, sql, args...)
}

func (t *fakeTx) Commit(context.Context) error {
	t.db.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error { return nil }

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(dest, r.values)
}

type fakeRows struct {
	rows [][]any
	pos  int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos < len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error { return assign(dest, r.rows[r.pos]) }

func (r *fakeRows) Values() ([]any, error) { return r.rows[r.pos], nil }

func assign(dest, values []any) error {
	if len(dest) != len(values) {
		return errors.New("column count mismatch")
	}
	for i, v := range values {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(v))
	}
	return nil
}

func newRepo(t *testing.T, db *fakeDB) *PostgresBookmarkRepository {
	t.Helper()
	repo, err := NewPostgresBookmarkRepository(db)
	require.NoError(t, err)
	return repo
}

func TestAdd(t *testing.T) {
	bookmark := domain.Bookmark{UserID: uuid.New(), ContentID: "126508", ContentTypeID: "12", Title: "경복궁"}

	t.Run("new row", func(t *testing.T) {
		db := &fakeDB{execTag: pgconn.NewCommandTag("INSERT 0 1")}

		created, err := newRepo(t, db).Add(context.Background(), bookmark)

		require.NoError(t, err)
		assert.True(t, created)
		require.Len(t, db.calls, 1)
		assert.Equal(t, []any{bookmark.UserID, "126508", "12", "경복궁", "", ""}, db.calls[0].args)
	})

	t.Run("duplicate is success", func(t *testing.T) {
		db := &fakeDB{execErr: &pgconn.PgError{Code: "23505", ConstraintName: "bookmarks_pkey"}}

		created, err := newRepo(t, db).Add(context.Background(), bookmark)

		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("other constraint errors surface", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23502"}
		db := &fakeDB{execErr: pgErr}

		_, err := newRepo(t, db).Add(context.Background(), bookmark)

		require.Error(t, err)
		assert.ErrorIs(t, err, pgErr)
	})

	t.Run("connection failure surfaces", func(t *testing.T) {
		db := &fakeDB{execErr: errors.New("conn reset")}

		_, err := newRepo(t, db).Add(context.Background(), bookmark)

		assert.ErrorContains(t, err, "conn reset")
	})
}

func TestRemove(t *testing.T) {
	cases := []struct {
		name    string
		tag     string
		removed bool
	}{
		{"row deleted", "DELETE 1", true},
		{"nothing to delete", "DELETE 0", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := &fakeDB{execTag: pgconn.NewCommandTag(tc.tag)}

			removed, err := newRepo(t, db).Remove(context.Background(), uuid.New(), "1")

			require.NoError(t, err)
			assert.Equal(t, tc.removed, removed)
		})
	}

	t.Run("store failure", func(t *testing.T) {
		db := &fakeDB{execErr: errors.New("timeout")}

		_, err := newRepo(t, db).Remove(context.Background(), uuid.New(), "1")

		assert.Error(t, err)
	})
}

func TestRemoveMany(t *testing.T) {
	userID := uuid.New()
	db := &fakeDB{rows: [][]any{{"1"}, {"3"}}}

	removed, err := newRepo(t, db).RemoveMany(context.Background(), userID, []string{"1", "2", "3"})

	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, removed)
	require.Len(t, db.calls, 1)
	assert.Contains(t, db.calls[0].sql, "content_id = ANY($2) RETURNING content_id")
	assert.Equal(t, []any{userID, []string{"1", "2", "3"}}, db.calls[0].args)
}

func TestRemoveMany_EmptyListSkipsQuery(t *testing.T) {
	db := &fakeDB{}

	removed, err := newRepo(t, db).RemoveMany(context.Background(), uuid.New(), nil)

	require.NoError(t, err)
	assert.Empty(t, removed)
	assert.Empty(t, db.calls)
}

func TestRemoveMany_QueryFailure(t *testing.T) {
	db := &fakeDB{queryErr: errors.New("broken pipe")}

	_, err := newRepo(t, db).RemoveMany(context.Background(), uuid.New(), []string{"1"})

	assert.ErrorContains(t, err, "broken pipe")
}

func TestFindPaginatedByUser(t *testing.T) {
	userID := uuid.New()
	created := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	db := &fakeDB{
		count: 41,
		rows: [][]any{
			{userID, "1", "12", "가회동", "", "서울", created},
			{userID, "2", "39", "나주곰탕", "", "나주", created},
		},
	}

	page, err := newRepo(t, db).FindPaginatedByUser(context.Background(), userID, domain.SortName, 20, 20)

	require.NoError(t, err)
	assert.EqualValues(t, 41, page.TotalCount)
	assert.Equal(t, 2, page.CurrentPage)
	require.Len(t, page.Bookmarks, 2)
	assert.Equal(t, "나주곰탕", page.Bookmarks[1].Title)
	assert.True(t, db.committed)
	require.Len(t, db.calls, 2)
	assert.Contains(t, db.calls[1].sql, `COLLATE "ko-x-icu"`)
	assert.Equal(t, []any{userID, 20, 20}, db.calls[1].args)
}

func TestFindPaginatedByUser_EmptySkipsPageQuery(t *testing.T) {
	db := &fakeDB{}

	page, err := newRepo(t, db).FindPaginatedByUser(context.Background(), uuid.New(), domain.SortLatest, 20, 0)

	require.NoError(t, err)
	assert.Empty(t, page.Bookmarks)
	assert.NotNil(t, page.Bookmarks)
	assert.Len(t, db.calls, 1)
}

func TestOrderClause(t *testing.T) {
	assert.Contains(t, orderClause(domain.SortName), `title COLLATE "ko-x-icu"`)
	assert.Contains(t, orderClause(domain.SortLatest), "created_at DESC")
	assert.Equal(t, orderClause(domain.SortLatest), orderClause("unknown"))
}

func TestPageOf(t *testing.T) {
	assert.Equal(t, 1, pageOf(20, 0))
	assert.Equal(t, 3, pageOf(20, 40))
	assert.Equal(t, 1, pageOf(0, 40))
}

func TestNewRepositoryRequiresPool(t *testing.T) {
	_, err := NewPostgresBookmarkRepository(nil)
	assert.Error(t, err)
}
