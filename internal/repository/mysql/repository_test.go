package mysql

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notes-api/internal/model"
	"notes-api/internal/repository"
)

var noteColumns = []string{"id", "title", "text", "created_time"}

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func TestRepository_EnsureSchema(t *testing.T) {
	r, mock := newMockRepository(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS notes").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, r.EnsureSchema(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		r, mock := newMockRepository(t)

		rows := sqlmock.NewRows(noteColumns).
			AddRow(1, "first", "one", created).
			AddRow(2, "second", "", created)
		mock.ExpectQuery(regexp.QuoteMeta(selectNotes + " ORDER BY id ASC")).
			WillReturnRows(rows)

		notes, err := r.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, model.Note{ID: 1, Title: "first", Text: "one", CreatedTime: created}, notes[0])
		assert.Equal(t, int64(2), notes[1].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty", func(t *testing.T) {
		r, mock := newMockRepository(t)

		mock.ExpectQuery("SELECT id, title, text, created_time FROM notes").
			WillReturnRows(sqlmock.NewRows(noteColumns))

		notes, err := r.FindAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, notes)
		assert.Empty(t, notes)
	})

	t.Run("QueryError", func(t *testing.T) {
		r, mock := newMockRepository(t)

		mock.ExpectQuery("SELECT id, title, text, created_time FROM notes").
			WillReturnError(errors.New("connection refused"))

		_, err := r.FindAll(ctx)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrNoteNotFound)
	})
}

func TestRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		r, mock := newMockRepository(t)

		mock.ExpectQuery(regexp.QuoteMeta(selectNotes + " WHERE id = ?")).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(noteColumns).AddRow(7, "title", "text", created))

		note, err := r.FindByID(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), note.ID)
		assert.Equal(t, "title", note.Title)
		assert.Equal(t, created, note.CreatedTime)
	})

	t.Run("NotFound", func(t *testing.T) {
		r, mock := newMockRepository(t)

		mock.ExpectQuery(regexp.QuoteMeta(selectNotes + " WHERE id = ?")).
			WithArgs(int64(7)).
			WillReturnError(sql.ErrNoRows)

		_, err := r.FindByID(ctx, 7)
		assert.ErrorIs(t, err, repository.ErrNoteNotFound)
	})
}

func TestRepository_SaveInsert(t *testing.T) {
	r, mock := newMockRepository(t)
	fixed := time.Date(2024, 3, 1, 10, 0, 0, 500, time.UTC)
	r.now = func() time.Time { return fixed }

	mock.ExpectExec(regexp.QuoteMeta(insertNote)).
		WithArgs("foobar-title", "foobar-text", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(12, 1))

	note, err := r.Save(context.Background(), model.NewNote("foobar-title", "foobar-text"))
	require.NoError(t, err)
	assert.Equal(t, int64(12), note.ID)
	assert.Equal(t, fixed.Truncate(time.Second), note.CreatedTime)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SaveUpdate(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		r, mock := newMockRepository(t)

		mock.ExpectExec(regexp.QuoteMeta(updateNote)).
			WithArgs("updated title", "updated text", int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta(selectNotes + " WHERE id = ?")).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows(noteColumns).AddRow(3, "updated title", "updated text", created))

		note, err := r.Save(ctx, model.Note{ID: 3, Title: "updated title", Text: "updated text"})
		require.NoError(t, err)
		assert.Equal(t, "updated title", note.Title)
		assert.Equal(t, created, note.CreatedTime)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing", func(t *testing.T) {
		r, mock := newMockRepository(t)

		mock.ExpectExec(regexp.QuoteMeta(updateNote)).
			WithArgs("title", "", int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta(selectNotes + " WHERE id = ?")).
			WithArgs(int64(3)).
			WillReturnError(sql.ErrNoRows)

		_, err := r.Save(ctx, model.Note{ID: 3, Title: "title"})
		assert.ErrorIs(t, err, repository.ErrNoteNotFound)
	})
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		r, mock := newMockRepository(t)

		mock.ExpectExec(regexp.QuoteMeta(deleteNote)).
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, r.Delete(ctx, model.Note{ID: 5}))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		r, mock := newMockRepository(t)

		mock.ExpectExec(regexp.QuoteMeta(deleteNote)).
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, r.Delete(ctx, model.Note{ID: 5}), repository.ErrNoteNotFound)
	})

	t.Run("ExecError", func(t *testing.T) {
		r, mock := newMockRepository(t)

		mock.ExpectExec(regexp.QuoteMeta(deleteNote)).
			WithArgs(int64(5)).
			WillReturnError(errors.New("lock wait timeout"))

		err := r.Delete(ctx, model.Note{ID: 5})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrNoteNotFound)
	})
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{Host: "db", Port: 3306, User: "notes", Password: "secret", Database: "notes"}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "notes:secret@tcp(db:3306)/notes")
	assert.Contains(t, dsn, "parseTime=true")
}
