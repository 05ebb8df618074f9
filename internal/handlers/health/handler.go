package health

import (
	"context"
	"net/http"
	"time"

	"todoapi/infras/otel"
	"todoapi/shared/constant"
	"todoapi/transport/http/response"
	"todoapi/transport/http/state"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db    Pinger
	state *state.Server
	otel  otel.Otel
}

func New(db Pinger, state *state.Server, otel otel.Otel) Handler {
	return Handler{
		db:    db,
		state: state,
		otel:  otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports whether the server can take traffic.
// @Summary Health check
// @Description Reports server readiness and database connectivity.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Status
// @Failure 503 {object} response.Message
// @Router /health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Health")
	defer scope.End()

	current := handler.state.Get()
	scope.SetAttribute("server.state", current.String())

	if handler.state.ShuttingDown() {
		response.WithPreparingShutdown(w)

		return
	}

	if current != state.ServerStateReady {
		response.WithUnhealthy(w)

		return
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := handler.db.Ping(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("health check failed to reach database")

		response.WithUnhealthy(w)

		return
	}

	response.WithStatus(w, http.StatusOK, response.StatusOK)
}
