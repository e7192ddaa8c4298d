package model

import (
	"time"
)

// Note представляет заметку (доменная модель)
type Note struct {
	ID          int64     // Идентификатор, назначается хранилищем при первом сохранении
	Title       string    // Заголовок заметки
	Text        string    // Текст заметки
	CreatedTime time.Time // Дата создания, выставляется один раз
}

// NewNote создает новую, еще не сохраненную заметку из входных данных.
// Валидация здесь не выполняется, ее делает вызывающая сторона перед сохранением.
func NewNote(title, text string) Note {
	return Note{
		Title: title,
		Text:  text,
	}
}

// IsNew сообщает, что хранилище еще не назначило заметке ID
func (n Note) IsNew() bool {
	return n.ID == 0
}
