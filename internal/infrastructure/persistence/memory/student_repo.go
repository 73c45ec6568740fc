// Package memory implements the in-process persistence layer.
// State lives for the lifetime of the process and is never written to disk.
package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/alem-hub/student-management/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// StudentRepository implements student.Repository on top of a map keyed by ID.
// It is not safe for concurrent use: the console drives it from one goroutine.
type StudentRepository struct {
	students map[int]*student.Student
}

var _ student.Repository = (*StudentRepository)(nil)

// NewStudentRepository creates an empty StudentRepository.
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{
		students: make(map[int]*student.Student),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// CRUD Operations
// ─────────────────────────────────────────────────────────────────────────────

// Create stores a new student. An existing ID is never overwritten.
func (r *StudentRepository) Create(ctx context.Context, s *student.Student) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil {
		return student.ErrNilStudent
	}
	if _, exists := r.students[s.ID()]; exists {
		return student.ErrStudentAlreadyExists
	}

	r.students[s.ID()] = s
	return nil
}

// GetByID returns the stored student. Grade mutation through the returned
// pointer is visible to later reads.
func (r *StudentRepository) GetByID(ctx context.Context, id int) (*student.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s, ok := r.students[id]
	if !ok {
		return nil, student.ErrStudentNotFound
	}
	return s, nil
}

// GetAll returns every student ordered by ascending ID in a new slice.
func (r *StudentRepository) GetAll(ctx context.Context) ([]*student.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]*student.Student, 0, len(r.students))
	for _, s := range r.students {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b *student.Student) int {
		return cmp.Compare(a.ID(), b.ID())
	})

	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Existence Checks
// ─────────────────────────────────────────────────────────────────────────────

// Exists reports whether a student with the given ID is stored.
func (r *StudentRepository) Exists(ctx context.Context, id int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, ok := r.students[id]
	return ok, nil
}

// Count returns the number of stored students.
func (r *StudentRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return len(r.students), nil
}
