package dto_test

import (
	"encoding/json"
	"testing"

	"todoapi/internal/domains/todo/model"
	"todoapi/internal/domains/todo/model/dto"
	"todoapi/shared/constant"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestCreateTodoRequest_ToModel(t *testing.T) {
	tests := []struct {
		name string
		req  dto.CreateTodoRequest
		want bool
	}{
		{name: "omitted isComplete defaults to false", req: dto.CreateTodoRequest{Name: "Buy milk"}, want: false},
		{name: "explicit false", req: dto.CreateTodoRequest{Name: "Buy milk", IsComplete: boolPtr(false)}, want: false},
		{name: "explicit true", req: dto.CreateTodoRequest{Name: "Buy milk", IsComplete: boolPtr(true)}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.req.ToModel()

			assert.Zero(t, got.ID)
			assert.Equal(t, "Buy milk", got.Name)
			assert.Equal(t, tt.want, got.IsComplete)
			assert.False(t, got.CreatedAt.IsZero())
			assert.Equal(t, got.CreatedAt, got.ModifiedAt)
		})
	}
}

func TestUpdateTodoRequest_ToFields(t *testing.T) {
	req := dto.UpdateTodoRequest{Name: "Renamed"}

	fields := req.ToFields()

	assert.Equal(t, "Renamed", fields[model.FieldName])
	assert.Equal(t, false, fields[model.FieldIsComplete])
	assert.Contains(t, fields, constant.FieldModifiedAt)
	assert.NotContains(t, fields, model.FieldID)
}

func TestTodoResponse_JSON(t *testing.T) {
	res := dto.TodoResponse{}
	res.FromModel(model.TodoItem{ID: 1, Name: "Item1"})

	body, err := json.Marshal(res)

	assert.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Item1","isComplete":false}`, string(body))
}

func TestTodoResponses_FromModels(t *testing.T) {
	var res dto.TodoResponses
	res.FromModels(nil)

	body, err := json.Marshal(res)
	assert.NoError(t, err)
	assert.JSONEq(t, `[]`, string(body))

	res.FromModels([]model.TodoItem{{ID: 1, Name: "a"}, {ID: 2, Name: "b", IsComplete: true}})
	assert.Len(t, res, 2)
	assert.Equal(t, int64(2), res[1].ID)
	assert.True(t, res[1].IsComplete)
}
