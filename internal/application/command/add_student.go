// Package command contains write operations (CQRS - Commands).
package command

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/alem-hub/student-management/internal/domain/shared"
	"github.com/alem-hub/student-management/internal/domain/student"
	"github.com/alem-hub/student-management/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ADD STUDENT COMMAND
// Registers a new student with an initial list of grades.
// ══════════════════════════════════════════════════════════════════════════════

// AddStudentCommand contains the data for a new student.
type AddStudentCommand struct {
	// StudentID is the numeric identity; must not be in the store yet.
	StudentID int

	// Name is the display name. Surrounding whitespace is trimmed.
	Name string

	// Grades may be empty.
	Grades []float64

	// CorrelationID for tracing. Generated when empty.
	CorrelationID string
}

// ValidateName checks a display name on its own, so that interactive callers
// can re-prompt for the name before the rest of the command exists.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return student.ErrEmptyStudentName
	}
	return nil
}

// Validate validates the command.
func (c AddStudentCommand) Validate() error {
	if err := ValidateName(c.Name); err != nil {
		return err
	}
	for i, g := range c.Grades {
		if math.IsNaN(g) || math.IsInf(g, 0) {
			return shared.WrapError("student", "Validate", shared.ErrValueOutOfRange,
				fmt.Sprintf("grade #%d is not a finite number", i+1), student.ErrInvalidGrade)
		}
	}
	return nil
}

// AddStudentResult contains the result of adding a student.
type AddStudentResult struct {
	StudentID     int
	Name          string
	GradeCount    int
	CorrelationID string
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// AddStudentHandler handles the AddStudentCommand.
type AddStudentHandler struct {
	studentRepo student.Repository
	log         *logger.Logger
}

// NewAddStudentHandler creates a new AddStudentHandler.
func NewAddStudentHandler(studentRepo student.Repository, log *logger.Logger) *AddStudentHandler {
	return &AddStudentHandler{
		studentRepo: studentRepo,
		log:         log.With(logger.Component("add_student")),
	}
}

// Handle executes the add student command.
// A duplicate ID returns an error matching student.ErrStudentAlreadyExists
// and leaves the store untouched.
func (h *AddStudentHandler) Handle(ctx context.Context, cmd AddStudentCommand) (*AddStudentResult, error) {
	if cmd.CorrelationID == "" {
		cmd.CorrelationID = uuid.NewString()
	}
	log := h.log.With(logger.CorrelationID(cmd.CorrelationID), logger.StudentID(cmd.StudentID))

	if err := cmd.Validate(); err != nil {
		log.Debug("add student rejected", logger.Err(err))
		return nil, fmt.Errorf("add_student: validation failed: %w", err)
	}

	name := strings.TrimSpace(cmd.Name)
	s := student.NewStudent(cmd.StudentID, name, cmd.Grades...)

	if err := h.studentRepo.Create(ctx, s); err != nil {
		if shared.IsAlreadyExists(err) {
			log.Warn("student already exists", logger.Err(err))
		} else {
			log.Error("failed to store student", logger.Err(err))
		}
		return nil, fmt.Errorf("add_student: %w", err)
	}

	log.Info("student added", logger.StudentName(name), logger.GradeCount(s.GradeCount()))

	return &AddStudentResult{
		StudentID:     s.ID(),
		Name:          s.Name(),
		GradeCount:    s.GradeCount(),
		CorrelationID: cmd.CorrelationID,
	}, nil
}
