package repository

import (
	"context"
	"errors"

	"notes-api/internal/model"
)

// ErrNoteNotFound возвращается, когда заметка не найдена
var ErrNoteNotFound = errors.New("note not found")

// NoteRepository интерфейс для работы с заметками в хранилище
type NoteRepository interface {
	// FindAll возвращает все заметки, упорядоченные по ID
	FindAll(ctx context.Context) ([]model.Note, error)

	// FindByID возвращает заметку по её ID или ErrNoteNotFound
	FindByID(ctx context.Context, id int64) (model.Note, error)

	// Save сохраняет заметку. Новой заметке (ID == 0) назначаются ID и дата создания,
	// у существующей обновляются только title и text
	Save(ctx context.Context, note model.Note) (model.Note, error)

	// Delete удаляет заметку
	Delete(ctx context.Context, note model.Note) error
}
