package otel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestToAttribute(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  attribute.Value
	}{
		{name: "bool", value: true, want: attribute.BoolValue(true)},
		{name: "string", value: "todo", want: attribute.StringValue("todo")},
		{name: "int", value: 3, want: attribute.IntValue(3)},
		{name: "int64", value: int64(42), want: attribute.Int64Value(42)},
		{name: "float64", value: 1.5, want: attribute.Float64Value(1.5)},
		{name: "string slice", value: []string{"a", "b"}, want: attribute.StringSliceValue([]string{"a", "b"})},
		{name: "fallback to string", value: struct{ ID int }{ID: 7}, want: attribute.StringValue("{7}")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := toAttribute("key", tt.value)

			assert.Equal(t, attribute.Key("key"), kv.Key)
			assert.Equal(t, tt.want, kv.Value)
		})
	}
}
