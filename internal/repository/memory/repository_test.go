package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notes-api/internal/model"
	"notes-api/internal/repository"
)

func TestRepo_SaveAssignsIDAndCreatedTime(t *testing.T) {
	ctx := context.Background()
	r := NewRepository()

	first, err := r.Save(ctx, model.NewNote("first", "one"))
	require.NoError(t, err)
	second, err := r.Save(ctx, model.NewNote("second", ""))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.False(t, first.CreatedTime.IsZero())
}

func TestRepo_SaveUpdatesKeepsCreatedTime(t *testing.T) {
	ctx := context.Background()
	r := NewRepository()

	created, err := r.Save(ctx, model.NewNote("title", "text"))
	require.NoError(t, err)

	changed := created
	changed.Title = "updated title"
	changed.Text = "updated text"
	changed.CreatedTime = created.CreatedTime.AddDate(-1, 0, 0)

	updated, err := r.Save(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, "updated title", updated.Title)
	assert.Equal(t, "updated text", updated.Text)
	assert.Equal(t, created.CreatedTime, updated.CreatedTime)

	found, err := r.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, found)
}

func TestRepo_SaveUnknownID(t *testing.T) {
	r := NewRepository()

	_, err := r.Save(context.Background(), model.Note{ID: 42, Title: "ghost"})
	assert.ErrorIs(t, err, repository.ErrNoteNotFound)
}

func TestRepo_FindAllOrderedByID(t *testing.T) {
	ctx := context.Background()
	r := NewRepository()

	for _, title := range []string{"aaa", "bbb", "ccc", "ddd"} {
		_, err := r.Save(ctx, model.NewNote(title, ""))
		require.NoError(t, err)
	}

	notes, err := r.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 4)
	for i, note := range notes {
		assert.Equal(t, int64(i+1), note.ID)
	}
}

func TestRepo_FindAllEmpty(t *testing.T) {
	notes, err := NewRepository().FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestRepo_Delete(t *testing.T) {
	ctx := context.Background()
	r := NewRepository()

	note, err := r.Save(ctx, model.NewNote("title", "text"))
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, note))

	_, err = r.FindByID(ctx, note.ID)
	assert.ErrorIs(t, err, repository.ErrNoteNotFound)

	err = r.Delete(ctx, note)
	assert.ErrorIs(t, err, repository.ErrNoteNotFound)
}
