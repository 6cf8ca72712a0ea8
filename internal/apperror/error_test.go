package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCode(t *testing.T) {
	assert.Equal(t, Code(""), GetCode(nil))
	assert.Equal(t, CodeNotFound, GetCode(New(CodeNotFound, "missing")))
	assert.Equal(t, CodeInternal, GetCode(errors.New("driver failure")))

	wrapped := fmt.Errorf("loading application: %w", New(CodeForbidden, "not yours"))
	assert.Equal(t, CodeForbidden, GetCode(wrapped))
}

func TestErrorMessage(t *testing.T) {
	err := New(CodeValidation, "job_id is required")
	assert.EqualError(t, err, "job_id is required")
}
