package student

import "github.com/alem-hub/student-management/internal/domain/shared"

// Ошибки студенческого домена (алиасы shared для удобства вызывающего кода).
var (
	ErrStudentNotFound      = shared.ErrStudentNotFound
	ErrStudentAlreadyExists = shared.ErrStudentAlreadyExists
	ErrNilStudent           = shared.ErrNilStudent
)

// Ошибки валидации.
var (
	ErrEmptyStudentName = shared.ErrEmptyStudentName
	ErrInvalidGrade     = shared.ErrInvalidGrade
)
