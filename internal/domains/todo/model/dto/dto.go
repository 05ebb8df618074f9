package dto

import (
	"todoapi/internal/domains/todo/model"
	"todoapi/shared/constant"
	gModel "todoapi/shared/model"
	"todoapi/shared/timezone"
)

// CreateTodoRequest is the body of POST /todo. Any "id" in the body is ignored.
type CreateTodoRequest struct {
	Name       string `json:"name" validate:"required,notblank,max=255"`
	IsComplete *bool  `json:"isComplete"`
}

func (c *CreateTodoRequest) ToModel() model.TodoItem {
	now := timezone.Now()

	return model.TodoItem{
		Name:       c.Name,
		IsComplete: c.IsComplete != nil && *c.IsComplete,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}
}

// UpdateTodoRequest is the body of PUT /todo/{id}. Both mutable fields are
// overwritten; an omitted isComplete means false.
type UpdateTodoRequest struct {
	Name       string `json:"name" validate:"required,notblank,max=255"`
	IsComplete *bool  `json:"isComplete"`
}

func (u *UpdateTodoRequest) ToFields() map[string]any {
	return map[string]any{
		model.FieldName:          u.Name,
		model.FieldIsComplete:    u.IsComplete != nil && *u.IsComplete,
		constant.FieldModifiedAt: timezone.Now(),
	}
}

type TodoResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	IsComplete bool   `json:"isComplete"`
}

func (r *TodoResponse) FromModel(model model.TodoItem) {
	r.ID = model.ID
	r.Name = model.Name
	r.IsComplete = model.IsComplete
}

type TodoResponses []TodoResponse

func (r *TodoResponses) FromModels(models []model.TodoItem) {
	*r = make(TodoResponses, len(models))
	for i, mod := range models {
		(*r)[i].FromModel(mod)
	}
}
