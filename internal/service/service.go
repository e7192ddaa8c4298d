package service

import (
	"context"
	"errors"
	"strings"

	"notes-api/internal/model"
)

// ErrInvalidID возвращается для ID, которые не могут принадлежать заметке
var ErrInvalidID = errors.New("invalid note id")

// ValidationError содержит сообщения о нарушенных правилах валидации
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// NoteUpdate новые значения полей заметки. nil означает "оставить текущее значение"
type NoteUpdate struct {
	Title *string
	Text  *string
}

// NoteService интерфейс для бизнес-логики работы с заметками
type NoteService interface {
	// List возвращает список всех заметок
	List(ctx context.Context) ([]model.Note, error)

	// Get возвращает заметку по её ID
	Get(ctx context.Context, id int64) (model.Note, error)

	// Create создает новую заметку с указанными title и text
	Create(ctx context.Context, title, text string) (model.Note, error)

	// Update обновляет заметку с указанным ID (поля опциональны)
	Update(ctx context.Context, id int64, upd NoteUpdate) (model.Note, error)

	// Delete удаляет заметку по ID
	Delete(ctx context.Context, id int64) error
}
