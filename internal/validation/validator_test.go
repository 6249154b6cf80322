package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string `validate:"required"`
	Bucket string `validate:"oneof=hour day"`
	From   int64  `validate:"gt=0"`
	To     int64  `validate:"gtefield=From"`
}

func TestStruct_Valid(t *testing.T) {
	require.NoError(t, Struct(sample{Name: "a", Bucket: "day", From: 1, To: 2}))
}

func TestStruct_CollectsFieldErrors(t *testing.T) {
	err := Struct(sample{Bucket: "week", From: 5, To: 1})
	require.Error(t, err)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 3)
	assert.Contains(t, err.Error(), "Name is required")
	assert.Contains(t, err.Error(), "Bucket must be one of [hour day]")
	assert.Contains(t, err.Error(), "To must not be before From")
}
