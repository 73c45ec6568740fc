package query

import (
	"context"
	"fmt"

	"github.com/alem-hub/student-management/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET AVERAGE QUERY
// ══════════════════════════════════════════════════════════════════════════════

// GetAverageQuery содержит параметры запроса среднего балла.
type GetAverageQuery struct {
	// StudentID - ID студента.
	StudentID int
}

// GetAverageHandler обрабатывает GetAverageQuery.
type GetAverageHandler struct {
	studentRepo student.Repository
}

// NewGetAverageHandler создаёт новый обработчик.
func NewGetAverageHandler(studentRepo student.Repository) *GetAverageHandler {
	return &GetAverageHandler{studentRepo: studentRepo}
}

// Handle возвращает средний балл студента.
// Для неизвестного ID возвращает ошибку, совпадающую с student.ErrStudentNotFound.
func (h *GetAverageHandler) Handle(ctx context.Context, q GetAverageQuery) (*StudentDTO, error) {
	s, err := h.studentRepo.GetByID(ctx, q.StudentID)
	if err != nil {
		return nil, fmt.Errorf("get_average: %w", err)
	}

	dto := toStudentDTO(s)
	return &dto, nil
}
