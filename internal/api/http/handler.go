package http

import (
	"errors"
	"fmt"
	"net/http"

	"notes-api/internal/converter"
	"notes-api/internal/logger"
	"notes-api/internal/repository"
	svc "notes-api/internal/service"
)

// Handler обрабатывает REST запросы к заметкам
type Handler struct {
	noteService svc.NoteService
	log         *logger.Logger
}

// NewHandler создает новый экземпляр HTTP хэндлера
func NewHandler(noteService svc.NoteService, log *logger.Logger) *Handler {
	return &Handler{
		noteService: noteService,
		log:         log,
	}
}

// ListNotes GET /api/v1/notes
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.noteService.List(r.Context())
	if err != nil {
		h.handleError(w, r, 0, err)
		return
	}

	writeJSON(w, http.StatusOK, converter.ModelsToViews(notes))
}

// GetNote GET /api/v1/notes/{id}
func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.handleError(w, r, 0, err)
		return
	}

	note, err := h.noteService.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, id, err)
		return
	}

	writeJSON(w, http.StatusOK, converter.ModelToDetailView(note))
}

// CreateNote POST /api/v1/notes/add
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	in, err := readNoteInput(w, r)
	if err != nil {
		h.handleError(w, r, 0, err)
		return
	}

	note, err := h.noteService.Create(r.Context(), in.Title, in.Text)
	if err != nil {
		h.handleError(w, r, 0, err)
		return
	}

	writeJSON(w, http.StatusCreated, noteResponse{
		Message: "Note created successfully",
		Code:    http.StatusCreated,
		Note:    converter.ModelToView(note),
	})
}

// CreateNoteDeprecated POST /api/v1/notes, старый путь создания заметки
func (h *Handler) CreateNoteDeprecated(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Deprecation", "true")
	w.Header().Set("Link", `</api/v1/notes/add>; rel="successor-version"`)
	h.CreateNote(w, r)
}

// UpdateNote PUT /api/v1/notes/{id}
func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.handleError(w, r, 0, err)
		return
	}

	in, err := readNoteInput(w, r)
	if err != nil {
		h.handleError(w, r, id, err)
		return
	}

	var upd svc.NoteUpdate
	if in.HasTitle {
		upd.Title = &in.Title
	}
	if in.HasText {
		upd.Text = &in.Text
	}

	note, err := h.noteService.Update(r.Context(), id, upd)
	if err != nil {
		h.handleError(w, r, id, err)
		return
	}

	writeJSON(w, http.StatusOK, noteResponse{
		Message: fmt.Sprintf("Note %d updated successfully", id),
		Code:    http.StatusOK,
		Note:    converter.ModelToView(note),
	})
}

// DeleteNote DELETE /api/v1/notes/{id}
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.handleError(w, r, 0, err)
		return
	}

	if err := h.noteService.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, id, err)
		return
	}

	writeMessage(w, http.StatusOK, fmt.Sprintf("Deleted note id # %d successfully", id))
}

// handleError конвертирует внутренние ошибки в HTTP ответы.
// Ошибки хранилища логируются и наружу уходят без подробностей.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, id int64, err error) {
	var (
		validationErr *svc.ValidationError
		invalidIDErr  *invalidIDError
	)

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, validationResponse{
			Message: validationErr.Messages,
			Code:    http.StatusBadRequest,
		})
	case errors.As(err, &invalidIDErr):
		writeMessage(w, http.StatusBadRequest, invalidIDErr.Error())
	case errors.Is(err, svc.ErrInvalidID):
		writeMessage(w, http.StatusBadRequest, fmt.Sprintf("Invalid note id %d", id))
	case errors.Is(err, repository.ErrNoteNotFound):
		writeMessage(w, http.StatusNotFound, fmt.Sprintf("No note found for id %d", id))
	case errors.Is(err, errInvalidBody):
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
	default:
		h.log.WithError(err).
			WithField("method", r.Method).
			WithField("path", r.URL.Path).
			Error("Note store failure")
		writeMessage(w, http.StatusInternalServerError, "Something went wrong")
	}
}
