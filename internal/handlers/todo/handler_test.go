package todo_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"todoapi/config"
	"todoapi/infras/otel/mocks"
	"todoapi/internal/domains/todo/model/dto"
	serviceMocks "todoapi/internal/domains/todo/service/mocks"
	"todoapi/internal/handlers/todo"
	"todoapi/shared/constant"
	"todoapi/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (http.Handler, *serviceMocks.MockTodo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := serviceMocks.NewMockTodo(ctrl)

	cfg := &config.Config{}
	cfg.App.RoutePrefix = "/api"

	handler := todo.New(mockService, cfg, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route(cfg.App.RoutePrefix, handler.Router)

	return router, mockService
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_GetTodos(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(svc *serviceMocks.MockTodo)
		wantCode  int
		wantBody  string
	}{
		{
			name: "list",
			setupMock: func(svc *serviceMocks.MockTodo) {
				svc.EXPECT().ListAll(gomock.Any()).Return(dto.TodoResponses{{ID: 1, Name: "Item1"}}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `[{"id":1,"name":"Item1","isComplete":false}]`,
		},
		{
			name: "empty list is an empty array",
			setupMock: func(svc *serviceMocks.MockTodo) {
				svc.EXPECT().ListAll(gomock.Any()).Return(dto.TodoResponses{}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `[]`,
		},
		{
			name: "service error",
			setupMock: func(svc *serviceMocks.MockTodo) {
				svc.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"INTERNAL SERVER ERROR"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			rec := serve(router, http.MethodGet, "/api/todo", "")

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHandler_GetTodoByID(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		setupMock func(svc *serviceMocks.MockTodo)
		wantCode  int
		wantBody  string
	}{
		{
			name:   "found",
			target: "/api/todo/1",
			setupMock: func(svc *serviceMocks.MockTodo) {
				svc.EXPECT().GetByID(gomock.Any(), int64(1)).Return(dto.TodoResponse{ID: 1, Name: "Item1"}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"id":1,"name":"Item1","isComplete":false}`,
		},
		{
			name:   "not found has empty body",
			target: "/api/todo/999",
			setupMock: func(svc *serviceMocks.MockTodo) {
				svc.EXPECT().GetByID(gomock.Any(), int64(999)).Return(dto.TodoResponse{}, failure.NotFound("todo not found"))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "non-integer id",
			target:    "/api/todo/abc",
			setupMock: func(*serviceMocks.MockTodo) {},
			wantCode:  http.StatusBadRequest,
			wantBody:  `{"error":"id must be an integer"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			rec := serve(router, http.MethodGet, tt.target, "")

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody == "" {
				assert.Empty(t, rec.Body.String())

				return
			}

			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHandler_CreateTodo(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setupMock    func(svc *serviceMocks.MockTodo)
		wantCode     int
		wantBody     string
		wantLocation string
	}{
		{
			name: "created",
			body: `{"id":42,"name":"Buy milk"}`,
			setupMock: func(svc *serviceMocks.MockTodo) {
				svc.EXPECT().
					Create(gomock.Any(), dto.CreateTodoRequest{Name: "Buy milk"}).
					Return(dto.TodoResponse{ID: 2, Name: "Buy milk"}, nil)
			},
			wantCode:     http.StatusCreated,
			wantBody:     `{"id":2,"name":"Buy milk","isComplete":false}`,
			wantLocation: "/api/todo/2",
		},
		{
			name:      "missing name",
			body:      `{"isComplete":true}`,
			setupMock: func(*serviceMocks.MockTodo) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "blank name",
			body:      `{"name":"   "}`,
			setupMock: func(*serviceMocks.MockTodo) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "malformed json",
			body:      `{"name":`,
			setupMock: func(*serviceMocks.MockTodo) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "wrong type",
			body:      `{"name":"x","isComplete":"yes"}`,
			setupMock: func(*serviceMocks.MockTodo) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "service error",
			body: `{"name":"Buy milk"}`,
			setupMock: func(svc *serviceMocks.MockTodo) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.TodoResponse{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"INTERNAL SERVER ERROR"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			rec := serve(router, http.MethodPost, "/api/todo", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get(constant.RequestHeaderLocation))

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestHandler_UpdateTodo(t *testing.T) {
	done := true

	tests := []struct {
		name      string
		target    string
		body      string
		setupMock func(svc *serviceMocks.MockTodo)
		wantCode  int
		wantBody  string
	}{
		{
			name:   "updated",
			target: "/api/todo/1",
			body:   `{"name":"Item1","isComplete":true}`,
			setupMock: func(svc *serviceMocks.MockTodo) {
				svc.EXPECT().
					Update(gomock.Any(), int64(1), dto.UpdateTodoRequest{Name: "Item1", IsComplete: &done}).
					Return(dto.TodoResponse{ID: 1, Name: "Item1", IsComplete: true}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"id":1,"name":"Item1","isComplete":true}`,
		},
		{
			name:   "unknown id",
			target: "/api/todo/999",
			body:   `{"name":"Ghost"}`,
			setupMock: func(svc *serviceMocks.MockTodo) {
				svc.EXPECT().Update(gomock.Any(), int64(999), gomock.Any()).Return(dto.TodoResponse{}, failure.NotFound("todo not found"))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "non-integer id",
			target:    "/api/todo/one",
			body:      `{"name":"Item1"}`,
			setupMock: func(*serviceMocks.MockTodo) {},
			wantCode:  http.StatusBadRequest,
			wantBody:  `{"error":"id must be an integer"}`,
		},
		{
			name:      "empty body",
			target:    "/api/todo/1",
			setupMock: func(*serviceMocks.MockTodo) {},
			wantCode:  http.StatusBadRequest,
			wantBody:  `{"error":"request body is required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			rec := serve(router, http.MethodPut, tt.target, tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody == "" {
				assert.Empty(t, rec.Body.String())

				return
			}

			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHandler_DeleteTodo(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		setupMock func(svc *serviceMocks.MockTodo)
		wantCode  int
	}{
		{
			name:   "deleted",
			target: "/api/todo/2",
			setupMock: func(svc *serviceMocks.MockTodo) {
				svc.EXPECT().Delete(gomock.Any(), int64(2)).Return(nil)
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:   "already gone",
			target: "/api/todo/2",
			setupMock: func(svc *serviceMocks.MockTodo) {
				svc.EXPECT().Delete(gomock.Any(), int64(2)).Return(failure.NotFound("todo not found"))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "non-integer id",
			target:    "/api/todo/2.5",
			setupMock: func(*serviceMocks.MockTodo) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			rec := serve(router, http.MethodDelete, tt.target, "")

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode != http.StatusBadRequest {
				assert.Empty(t, rec.Body.String())
			}
		})
	}
}
