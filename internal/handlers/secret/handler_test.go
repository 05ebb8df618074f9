package secret_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"todoapi/internal/handlers/secret"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestHandler_GetSecret(t *testing.T) {
	handler := secret.New()

	router := chi.NewRouter()
	handler.Router(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/secret", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `"secret code"`, rec.Body.String())
}
