package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestHandler_RegistersSwaggerDoc(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	assert.Contains(t, doc, "/todo/{id}")
}
