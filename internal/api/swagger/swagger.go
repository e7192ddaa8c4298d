package swagger

import (
	_ "embed"
	"net/http"

	"github.com/gorilla/mux"
)

//go:embed openapi.json
var openAPISpec []byte

// Register добавляет маршрут GET /swagger.json с OpenAPI описанием API заметок
func Register(r *mux.Router) {
	r.HandleFunc("/swagger.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Write(openAPISpec)
	}).Methods(http.MethodGet)
}
