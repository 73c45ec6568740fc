// Package query contains read operations (CQRS - Queries).
package query

import "github.com/alem-hub/student-management/internal/domain/student"

// StudentDTO - плоское представление студента для интерфейсного слоя.
type StudentDTO struct {
	// ID - идентификатор студента.
	ID int `json:"id"`

	// Name - отображаемое имя.
	Name string `json:"name"`

	// Grades - оценки в порядке добавления.
	Grades []float64 `json:"grades"`

	// Average - среднее; имеет смысл только при HasGrades.
	Average float64 `json:"average"`

	// HasGrades - есть ли у студента хотя бы одна оценка.
	HasGrades bool `json:"has_grades"`
}

func toStudentDTO(s *student.Student) StudentDTO {
	avg, ok := s.AverageGrade()
	return StudentDTO{
		ID:        s.ID(),
		Name:      s.Name(),
		Grades:    s.Grades(),
		Average:   avg,
		HasGrades: ok,
	}
}

func toStudentDTOs(students []*student.Student) []StudentDTO {
	out := make([]StudentDTO, 0, len(students))
	for _, s := range students {
		out = append(out, toStudentDTO(s))
	}
	return out
}
