package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

const (
	maxBodyBytes     = 1 << 20
	maxMultipartMem  = 1 << 20
	fieldTitle       = "title"
	fieldText        = "text"
	contentTypeJSON  = "application/json"
	contentTypeMulti = "multipart/form-data"
)

var errInvalidBody = errors.New("invalid request body")

// noteInput поля заметки из тела запроса. Has* сообщает, что поле передано:
// для JSON - ключ присутствует, для формы - значение не пустое.
type noteInput struct {
	Title    string
	Text     string
	HasTitle bool
	HasText  bool
}

// invalidIDError ID из пути, который не является положительным целым
type invalidIDError struct {
	raw string
}

func (e *invalidIDError) Error() string {
	return fmt.Sprintf("Invalid note id %s", e.raw)
}

// parseID разбирает {id} из пути. Нечисловые и неположительные значения отклоняются.
func parseID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &invalidIDError{raw: raw}
	}

	return id, nil
}

// readNoteInput читает title/text из JSON-объекта или из полей формы.
// JSON распознается по Content-Type или по телу, которое является JSON-объектом.
func readNoteInput(w http.ResponseWriter, r *http.Request) (noteInput, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return noteInput{}, errInvalidBody
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	trimmed := bytes.TrimSpace(body)

	if isJSONObject(trimmed) {
		return decodeJSONInput(trimmed)
	}
	if mediaType == contentTypeJSON {
		if len(trimmed) == 0 {
			return noteInput{}, nil
		}
		return noteInput{}, errInvalidBody
	}

	r.Body = io.NopCloser(bytes.NewReader(body))
	return decodeFormInput(r, mediaType)
}

func isJSONObject(body []byte) bool {
	return len(body) > 0 && body[0] == '{' && json.Valid(body)
}

func decodeJSONInput(body []byte) (noteInput, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return noteInput{}, errInvalidBody
	}

	var in noteInput
	var err error
	if in.Title, in.HasTitle, err = jsonString(fields, fieldTitle); err != nil {
		return noteInput{}, err
	}
	if in.Text, in.HasText, err = jsonString(fields, fieldText); err != nil {
		return noteInput{}, err
	}

	return in, nil
}

// jsonString достает строковое поле. null считается пустой строкой.
func jsonString(fields map[string]json.RawMessage, key string) (string, bool, error) {
	raw, ok := fields[key]
	if !ok {
		return "", false, nil
	}

	var value *string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", false, errInvalidBody
	}
	if value == nil {
		return "", true, nil
	}

	return *value, true, nil
}

func decodeFormInput(r *http.Request, mediaType string) (noteInput, error) {
	var err error
	if strings.HasPrefix(mediaType, contentTypeMulti) {
		err = r.ParseMultipartForm(maxMultipartMem)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return noteInput{}, errInvalidBody
	}

	title := r.Form.Get(fieldTitle)
	text := r.Form.Get(fieldText)

	return noteInput{
		Title:    title,
		Text:     text,
		HasTitle: title != "",
		HasText:  text != "",
	}, nil
}
