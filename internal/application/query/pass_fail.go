package query

import (
	"context"
	"fmt"

	"github.com/alem-hub/student-management/internal/domain/student"
	"github.com/alem-hub/student-management/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// PASS / FAIL QUERY
// Разбивает всех студентов на прошедших и не прошедших порог.
// ══════════════════════════════════════════════════════════════════════════════

// PassFailQuery содержит порог (включительно).
type PassFailQuery struct {
	Threshold float64
}

// PassFailResult - результат разбиения. Обе группы отсортированы по ID.
type PassFailResult struct {
	Threshold float64
	Passing   []StudentDTO
	Failing   []StudentDTO
}

// PassFailHandler обрабатывает PassFailQuery.
type PassFailHandler struct {
	studentRepo student.Repository
	log         *logger.Logger
}

// NewPassFailHandler создаёт новый обработчик.
func NewPassFailHandler(studentRepo student.Repository, log *logger.Logger) *PassFailHandler {
	return &PassFailHandler{
		studentRepo: studentRepo,
		log:         log.With(logger.Component("pass_fail")),
	}
}

// Handle выполняет разбиение.
func (h *PassFailHandler) Handle(ctx context.Context, q PassFailQuery) (*PassFailResult, error) {
	students, err := h.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("pass_fail: %w", err)
	}

	report := student.Partition(students, q.Threshold)

	h.log.Debug("students partitioned",
		logger.Threshold(q.Threshold),
		logger.Int("passing", len(report.Passing)),
		logger.Int("failing", len(report.Failing)),
	)

	return &PassFailResult{
		Threshold: report.Threshold,
		Passing:   toStudentDTOs(report.Passing),
		Failing:   toStudentDTOs(report.Failing),
	}, nil
}
