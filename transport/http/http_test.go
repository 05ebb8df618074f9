package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"todoapi/config"
	"todoapi/infras/otel/mocks"
	"todoapi/internal/domains/todo/model/dto"
	serviceMocks "todoapi/internal/domains/todo/service/mocks"
	"todoapi/internal/handlers/health"
	"todoapi/internal/handlers/secret"
	"todoapi/internal/handlers/todo"
	cacheMocks "todoapi/shared/cache/mocks"
	"todoapi/shared/constant"
	transportHTTP "todoapi/transport/http"
	"todoapi/transport/http/middleware"
	"todoapi/transport/http/router"
	"todoapi/transport/http/state"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error {
	return nil
}

func newServer(t *testing.T) (*transportHTTP.HTTP, *serviceMocks.MockTodo) {
	t.Helper()

	srv, mockService, _ := newServerWith(t, &config.Config{}, nil)

	return srv, mockService
}

func newServerWith(
	t *testing.T,
	cfg *config.Config,
	redisClient *goRedis.Client,
) (*transportHTTP.HTTP, *serviceMocks.MockTodo, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := serviceMocks.NewMockTodo(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	otl := mocks.NewOtel()

	cfg.App.RoutePrefix = "/api"

	serverState := state.New()

	r := router.New(router.DomainHandlers{
		Todo:   todo.New(mockService, cfg, otl),
		Secret: secret.New(),
		Health: health.New(okPinger{}, serverState, otl),
	})

	mw := middleware.NewAppMiddleware(otl, cfg, mockCache)

	return transportHTTP.New(cfg, r, mw, serverState, nil, redisClient, otl), mockService, mockCache
}

func TestHTTP_ServeHTTP(t *testing.T) {
	srv, mockService := newServer(t)

	mockService.EXPECT().ListAll(gomock.Any()).Return(dto.TodoResponses{{ID: 1, Name: "Item1"}}, nil)

	tests := []struct {
		name     string
		method   string
		target   string
		wantCode int
		wantBody string
	}{
		{"list under prefix", http.MethodGet, "/api/todo", http.StatusOK, `[{"id":1,"name":"Item1","isComplete":false}]`},
		{"secret", http.MethodGet, "/api/secret", http.StatusOK, `"secret code"`},
		{"health at root", http.MethodGet, "/health", http.StatusOK, `{"status":"ok"}`},
		{"bad id", http.MethodGet, "/api/todo/abc", http.StatusBadRequest, `{"error":"id must be an integer"}`},
		{"unknown route", http.MethodGet, "/todo", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestHTTP_HealthDuringShutdown(t *testing.T) {
	srv, _ := newServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	srv.State.Set(state.ServerStateInGracePeriod)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHTTP_Close(t *testing.T) {
	t.Run("nothing to release", func(t *testing.T) {
		srv, _ := newServer(t)

		assert.NoError(t, srv.Close(context.Background()))
	})

	t.Run("redis client is closed", func(t *testing.T) {
		// no connection is dialed until the first command
		client := goRedis.NewClient(&goRedis.Options{Addr: "127.0.0.1:0"})
		srv, _, _ := newServerWith(t, &config.Config{}, client)

		assert.NoError(t, srv.Close(context.Background()))
		assert.ErrorIs(t, client.Ping(context.Background()).Err(), goRedis.ErrClosed)
	})
}

func TestHTTP_RateLimitKey(t *testing.T) {
	tests := []struct {
		name       string
		trustProxy bool
		wantKey    string
	}{
		{"forwarding headers ignored by default", false, "limiter:192.0.2.1"},
		{"forwarding headers honoured behind a trusted proxy", true, "limiter:198.51.100.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.TrustProxy = tt.trustProxy
			cfg.App.RateLimiter.Enable = true
			cfg.App.RateLimiter.MaxRequests = 10
			cfg.App.RateLimiter.WindowSeconds = 60

			srv, _, mockCache := newServerWith(t, cfg, nil)

			mockCache.EXPECT().Increment(gomock.Any(), tt.wantKey, 60).Return(int64(1), nil)

			// httptest requests come from 192.0.2.1:1234
			req := httptest.NewRequest(http.MethodGet, "/api/secret", nil)
			req.Header.Set("X-Forwarded-For", "198.51.100.99")

			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}
