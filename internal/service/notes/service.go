package notes

import (
	"context"

	"notes-api/internal/model"
	"notes-api/internal/repository"
	svc "notes-api/internal/service"
	"notes-api/internal/validation"
)

var _ svc.NoteService = (*service)(nil)

type service struct {
	noteRepository repository.NoteRepository
}

// NewNoteService создает новый экземпляр сервиса для работы с заметками
func NewNoteService(noteRepository repository.NoteRepository) svc.NoteService {
	return &service{
		noteRepository: noteRepository,
	}
}

// List возвращает список всех заметок
func (s *service) List(ctx context.Context) ([]model.Note, error) {
	notes, err := s.noteRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if notes == nil {
		notes = []model.Note{}
	}

	return notes, nil
}

// Get возвращает заметку по её ID
func (s *service) Get(ctx context.Context, id int64) (model.Note, error) {
	if id <= 0 {
		return model.Note{}, svc.ErrInvalidID
	}

	return s.noteRepository.FindByID(ctx, id)
}

// Create создает заметку через фабрику, валидирует и сохраняет
func (s *service) Create(ctx context.Context, title, text string) (model.Note, error) {
	note := model.NewNote(title, text)

	if err := validate(note); err != nil {
		return model.Note{}, err
	}

	return s.noteRepository.Save(ctx, note)
}

// Update применяет переданные поля к существующей заметке.
// При ошибке валидации заметка в хранилище не меняется.
func (s *service) Update(ctx context.Context, id int64, upd svc.NoteUpdate) (model.Note, error) {
	note, err := s.Get(ctx, id)
	if err != nil {
		return model.Note{}, err
	}

	if upd.Title != nil {
		note.Title = *upd.Title
	}
	if upd.Text != nil {
		note.Text = *upd.Text
	}

	if err := validate(note); err != nil {
		return model.Note{}, err
	}

	return s.noteRepository.Save(ctx, note)
}

// Delete удаляет заметку по ID. Отсутствующую заметку удалить не пытаемся.
func (s *service) Delete(ctx context.Context, id int64) error {
	note, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	return s.noteRepository.Delete(ctx, note)
}

func validate(note model.Note) error {
	if messages := validation.ValidateTitle(note.Title); len(messages) > 0 {
		return &svc.ValidationError{Messages: messages}
	}
	return nil
}
