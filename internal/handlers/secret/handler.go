package secret

import (
	"net/http"

	"todoapi/transport/http/response"

	"github.com/go-chi/chi/v5"
)

const secretCode = "secret code"

type Handler struct{}

func New() Handler {
	return Handler{}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/secret", handler.GetSecret)
}

// GetSecret is deliberately left out of the generated API docs.
func (handler *Handler) GetSecret(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, secretCode)
}
