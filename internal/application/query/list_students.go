package query

import (
	"context"
	"fmt"

	"github.com/alem-hub/student-management/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// LIST STUDENTS QUERY
// Все студенты по возрастанию ID - для пункта меню "View all students".
// ══════════════════════════════════════════════════════════════════════════════

// ListStudentsHandler обрабатывает запрос списка студентов.
type ListStudentsHandler struct {
	studentRepo student.Repository
}

// NewListStudentsHandler создаёт новый обработчик.
func NewListStudentsHandler(studentRepo student.Repository) *ListStudentsHandler {
	return &ListStudentsHandler{studentRepo: studentRepo}
}

// Handle возвращает всех студентов, отсортированных по ID.
func (h *ListStudentsHandler) Handle(ctx context.Context) ([]StudentDTO, error) {
	students, err := h.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list_students: %w", err)
	}
	return toStudentDTOs(students), nil
}
