package dto_test

import (
	"testing"

	"todoapi/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equal with table",
			filter:    dto.Filter{Field: "id", Value: int64(1), Operator: dto.FilterOperatorEq, Table: "todo_items"},
			wantWhere: "todo_items.id = :id",
			wantArgs:  map[string]any{"id": int64(1)},
		},
		{
			name:      "not equal with arg name",
			filter:    dto.Filter{ArgName: "other", Field: "name", Value: "Item1", Operator: dto.FilterOperatorNotEq},
			wantWhere: "name != :other",
			wantArgs:  map[string]any{"other": "Item1"},
		},
		{
			name:      "unknown operator renders nothing",
			filter:    dto.Filter{Field: "name", Value: "x", Operator: "like"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		group     dto.FilterGroup
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "empty group",
			group:     dto.FilterGroup{},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name: "defaults to and",
			group: dto.FilterGroup{
				Filters: []any{
					dto.Filter{Field: "id", Value: int64(1), Operator: dto.FilterOperatorEq},
					dto.Filter{Field: "is_complete", Value: true, Operator: dto.FilterOperatorEq},
				},
			},
			wantWhere: "(id = :id AND is_complete = :is_complete)",
			wantArgs:  map[string]any{"id": int64(1), "is_complete": true},
		},
		{
			name: "nested group with or",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "id", Value: int64(1), Operator: dto.FilterOperatorEq},
					dto.FilterGroup{
						Filters: []any{
							dto.Filter{ArgName: "id_2", Field: "id", Value: int64(2), Operator: dto.FilterOperatorEq},
						},
					},
				},
			},
			wantWhere: "(id = :id OR (id = :id_2))",
			wantArgs:  map[string]any{"id": int64(1), "id_2": int64(2)},
		},
		{
			name: "skips filters that render nothing",
			group: dto.FilterGroup{
				Filters: []any{
					dto.Filter{Field: "name", Value: "x", Operator: "like"},
					dto.Filter{Field: "id", Value: int64(3), Operator: dto.FilterOperatorEq},
				},
			},
			wantWhere: "(id = :id)",
			wantArgs:  map[string]any{"id": int64(3)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.group.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
