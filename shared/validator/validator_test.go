package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"todoapi/shared/failure"
	"todoapi/shared/validator"

	"github.com/stretchr/testify/assert"
)

type request struct {
	Name       string `json:"name" validate:"required,notblank,max=10"`
	IsComplete *bool  `json:"isComplete"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantErr    string
		wantName   string
	}{
		{
			name:     "valid body",
			body:     `{"name":"Buy milk","isComplete":true}`,
			wantName: "Buy milk",
		},
		{
			name:     "unknown fields are ignored",
			body:     `{"id":42,"name":"Buy milk"}`,
			wantName: "Buy milk",
		},
		{
			name:    "empty body",
			body:    ``,
			wantErr: "request body is required",
		},
		{
			name:    "malformed json",
			body:    `{"name":`,
			wantErr: "failed to decode request body",
		},
		{
			name:    "wrong type",
			body:    `{"name":"a","isComplete":"yes"}`,
			wantErr: "failed to decode request body",
		},
		{
			name:    "missing name",
			body:    `{"isComplete":false}`,
			wantErr: "name is required",
		},
		{
			name:    "blank name",
			body:    `{"name":"   "}`,
			wantErr: "name must not be blank",
		},
		{
			name:    "name too long",
			body:    `{"name":"abcdefghijk"}`,
			wantErr: "name must be less than or equal to 10",
		},
		{
			name:    "two documents",
			body:    `{"name":"a"}{"name":"b"}`,
			wantErr: "request body must contain a single JSON object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := request{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantName, req.Name)
		})
	}
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, validator.ValidateStruct(&request{Name: "ok"}))

	err := validator.ValidateStruct(&request{})
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
