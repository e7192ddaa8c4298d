package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"notes-api/internal/model"
	"notes-api/internal/repository"
)

const createNotesTable = `CREATE TABLE IF NOT EXISTS notes (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	title VARCHAR(255) NOT NULL,
	text TEXT NOT NULL,
	created_time DATETIME NOT NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

const (
	selectNotes = "SELECT id, title, text, created_time FROM notes"
	insertNote  = "INSERT INTO notes (title, text, created_time) VALUES (?, ?, ?)"
	updateNote  = "UPDATE notes SET title = ?, text = ? WHERE id = ?"
	deleteNote  = "DELETE FROM notes WHERE id = ?"
)

var _ repository.NoteRepository = (*Repository)(nil)

// Repository хранит заметки в таблице notes
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

// NewRepository создает репозиторий поверх открытого пула соединений
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		db:  db,
		now: time.Now,
	}
}

// EnsureSchema создает таблицу notes, если её еще нет
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createNotesTable); err != nil {
		return fmt.Errorf("failed to create notes table: %w", err)
	}
	return nil
}

// Ping проверяет доступность базы
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Stats отдает статистику пула соединений
func (r *Repository) Stats() sql.DBStats {
	return r.db.Stats()
}

// FindAll возвращает все заметки по возрастанию ID
func (r *Repository) FindAll(ctx context.Context) ([]model.Note, error) {
	rows, err := r.db.QueryContext(ctx, selectNotes+" ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]model.Note, 0)
	for rows.Next() {
		var note model.Note
		if err := rows.Scan(&note.ID, &note.Title, &note.Text, &note.CreatedTime); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}

	return notes, nil
}

// FindByID возвращает заметку по ID
func (r *Repository) FindByID(ctx context.Context, id int64) (model.Note, error) {
	var note model.Note
	err := r.db.QueryRowContext(ctx, selectNotes+" WHERE id = ?", id).
		Scan(&note.ID, &note.Title, &note.Text, &note.CreatedTime)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Note{}, repository.ErrNoteNotFound
	}
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to get note %d: %w", id, err)
	}

	return note, nil
}

// Save вставляет новую заметку или обновляет title/text существующей
func (r *Repository) Save(ctx context.Context, note model.Note) (model.Note, error) {
	if note.IsNew() {
		return r.insert(ctx, note)
	}

	if _, err := r.db.ExecContext(ctx, updateNote, note.Title, note.Text, note.ID); err != nil {
		return model.Note{}, fmt.Errorf("failed to update note %d: %w", note.ID, err)
	}

	// MySQL считает только реально измененные строки, поэтому RowsAffected
	// не подходит для проверки существования: перечитываем заметку
	return r.FindByID(ctx, note.ID)
}

func (r *Repository) insert(ctx context.Context, note model.Note) (model.Note, error) {
	note.CreatedTime = r.now().UTC().Truncate(time.Second)

	result, err := r.db.ExecContext(ctx, insertNote, note.Title, note.Text, note.CreatedTime)
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to get note ID: %w", err)
	}
	note.ID = id

	return note, nil
}

// Delete удаляет заметку
func (r *Repository) Delete(ctx context.Context, note model.Note) error {
	result, err := r.db.ExecContext(ctx, deleteNote, note.ID)
	if err != nil {
		return fmt.Errorf("failed to delete note %d: %w", note.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return repository.ErrNoteNotFound
	}

	return nil
}
