package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"notes-api/internal/model"
	"notes-api/internal/repository"
)

var _ repository.NoteRepository = (*repo)(nil)

type repo struct {
	mu     sync.RWMutex
	lastID int64
	notes  map[int64]model.Note
	now    func() time.Time
}

// NewRepository создает новый экземпляр in-memory репозитория на основе map
func NewRepository() repository.NoteRepository {
	return &repo{
		notes: make(map[int64]model.Note),
		now:   time.Now,
	}
}

// FindAll возвращает список всех заметок
func (r *repo) FindAll(ctx context.Context) ([]model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notes := make([]model.Note, 0, len(r.notes))
	for _, note := range r.notes {
		notes = append(notes, note)
	}

	// map не гарантирует порядок, а MySQL-хранилище отдает по возрастанию ID
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].ID < notes[j].ID
	})

	return notes, nil
}

// FindByID возвращает заметку по её ID
func (r *repo) FindByID(ctx context.Context, id int64) (model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	note, exists := r.notes[id]
	if !exists {
		return model.Note{}, repository.ErrNoteNotFound
	}

	return note, nil
}

// Save создает новую заметку или обновляет существующую
func (r *repo) Save(ctx context.Context, note model.Note) (model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if note.IsNew() {
		r.lastID++
		note.ID = r.lastID
		note.CreatedTime = r.now().UTC().Truncate(time.Second)
		r.notes[note.ID] = note
		return note, nil
	}

	existing, exists := r.notes[note.ID]
	if !exists {
		return model.Note{}, repository.ErrNoteNotFound
	}

	// Дата создания неизменна
	existing.Title = note.Title
	existing.Text = note.Text
	r.notes[note.ID] = existing

	return existing, nil
}

// Delete удаляет заметку по ID
func (r *repo) Delete(ctx context.Context, note model.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.notes[note.ID]; !exists {
		return repository.ErrNoteNotFound
	}

	delete(r.notes, note.ID)

	return nil
}
