package http

import (
	"encoding/json"
	"net/http"

	"notes-api/internal/converter"
)

// messageResponse ответ с сообщением и кодом, дублирующим HTTP статус
type messageResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// validationResponse ответ с ошибками валидации
type validationResponse struct {
	Message []string `json:"message"`
	Code    int      `json:"code"`
}

// noteResponse ответ на создание и обновление заметки
type noteResponse struct {
	Message string             `json:"message"`
	Code    int                `json:"code"`
	Note    converter.NoteView `json:"note"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message, Code: status})
}
