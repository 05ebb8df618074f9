package handler

import (
	"net/http"

	"todoapi/config"
	"todoapi/di"
	_ "todoapi/docs"
	"todoapi/shared/logger"
	"todoapi/transport/http/response"

	"github.com/rs/zerolog/log"
)

// Handler is the serverless entrypoint. Every invocation builds the full
// dependency graph, including the empty-store seeding check.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	handler, err := di.InitializeService()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize service")

		response.WithUnhealthy(w)

		return
	}

	defer func() {
		if err := handler.Close(r.Context()); err != nil {
			log.Error().Err(err).Msg("failed to release resources")
		}
	}()

	handler.ServeHTTP(w, r)
}
