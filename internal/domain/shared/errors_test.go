package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Error(t *testing.T) {
	assert.Equal(t, "student.Find: student not found", ErrStudentNotFound.Error())

	wrapped := WrapError("console", "Read", ErrInvalidState, "read failed", errors.New("broken pipe"))
	assert.Equal(t, "console.Read: read failed: broken pipe", wrapped.Error())
}

func TestDomainError_Is(t *testing.T) {
	err := fmt.Errorf("add_student: %w", ErrStudentAlreadyExists)

	assert.ErrorIs(t, err, ErrStudentAlreadyExists)
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.True(t, IsAlreadyExists(err))
	assert.False(t, IsNotFound(err))

	wrapped := WrapError("student", "Validate", ErrValueOutOfRange, "bad grade", ErrInvalidGrade)
	assert.ErrorIs(t, wrapped, ErrInvalidGrade)
	assert.ErrorIs(t, wrapped, ErrValueOutOfRange)
	assert.True(t, IsValidation(wrapped))
}

func TestClassifiers(t *testing.T) {
	assert.True(t, IsNotFound(ErrStudentNotFound))
	assert.True(t, IsValidation(ErrEmptyStudentName))
	assert.False(t, IsValidation(ErrStudentNotFound))
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsValidation(ErrInputClosed))
}
