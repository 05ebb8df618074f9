package model

import "todoapi/shared/model"

const (
	TableName  = "todo_items"
	EntityName = "todo"

	FieldID         = "id"
	FieldName       = "name"
	FieldIsComplete = "is_complete"
)

// SeedName is the name of the item inserted when the store is found empty.
const SeedName = "Item1"

type TodoItem struct {
	ID         int64  `db:"id" insert:"-"`
	Name       string `db:"name"`
	IsComplete bool   `db:"is_complete"`
	model.Metadata
}
