package converter

import (
	"time"

	"notes-api/internal/model"
)

// NoteView полное JSON-представление заметки
type NoteView struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Text        string    `json:"text"`
	CreatedTime time.Time `json:"created_time"`
}

// NoteDetailView представление для просмотра одной заметки, без даты создания
type NoteDetailView struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// ModelToView конвертирует domain модель Note в полное представление
func ModelToView(note model.Note) NoteView {
	return NoteView{
		ID:          note.ID,
		Title:       note.Title,
		Text:        note.Text,
		CreatedTime: note.CreatedTime,
	}
}

// ModelToDetailView конвертирует domain модель Note в представление для GET /notes/{id}
func ModelToDetailView(note model.Note) NoteDetailView {
	return NoteDetailView{
		ID:    note.ID,
		Title: note.Title,
		Text:  note.Text,
	}
}

// ModelsToViews конвертирует слайс domain моделей. Для nil возвращает пустой слайс,
// чтобы список сериализовался как [], а не null
func ModelsToViews(notes []model.Note) []NoteView {
	views := make([]NoteView, len(notes))
	for i, note := range notes {
		views[i] = ModelToView(note)
	}

	return views
}
