// Package presenter formats data for terminal display.
// Presenters turn query results into the exact lines the console prints.
package presenter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alem-hub/student-management/internal/application/query"
)

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT PRESENTER
// ══════════════════════════════════════════════════════════════════════════════

const menuText = `
===== Student Management System =====
1. Add a new student
2. View all students
3. Calculate average grade for a student
4. Display passing or failing students
5. Exit
=====================================
Enter your choice:`

// Presenter formats students, averages and pass/fail groups.
type Presenter struct {
	precision      int
	missingAverage string
}

// New creates a Presenter. precision is the number of decimals for averages,
// missingAverage is printed for students without grades.
func New(precision int, missingAverage string) *Presenter {
	return &Presenter{
		precision:      precision,
		missingAverage: missingAverage,
	}
}

// Menu returns the main menu including the choice prompt.
func (p *Presenter) Menu() string {
	return menuText
}

// ─────────────────────────────────────────────────────────────────────────────
// View all
// ─────────────────────────────────────────────────────────────────────────────

// StudentList formats the "View all students" screen.
func (p *Presenter) StudentList(students []query.StudentDTO) string {
	var sb strings.Builder

	sb.WriteString("\n--- Student List ---\n")
	if len(students) == 0 {
		sb.WriteString("No students in the system.\n")
		return sb.String()
	}

	for _, s := range students {
		fmt.Fprintf(&sb, "ID: %d, Name: %s, Grades: %s\n", s.ID, s.Name, FormatGrades(s.Grades))
	}
	return sb.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// Average
// ─────────────────────────────────────────────────────────────────────────────

// Average formats the result of an average calculation.
func (p *Presenter) Average(s query.StudentDTO) string {
	if !s.HasGrades {
		return fmt.Sprintf("%s has no grades recorded.", s.Name)
	}
	return fmt.Sprintf("Average grade for %s: %s", s.Name, p.FormatAverage(s.Average))
}

// FormatAverage renders an average with the configured precision.
func (p *Presenter) FormatAverage(avg float64) string {
	return strconv.FormatFloat(avg, 'f', p.precision, 64)
}

// ─────────────────────────────────────────────────────────────────────────────
// Pass / fail
// ─────────────────────────────────────────────────────────────────────────────

// PassFail formats both groups of a pass/fail result.
func (p *Presenter) PassFail(res *query.PassFailResult) string {
	var sb strings.Builder
	p.writeGroup(&sb, "Passing Students", res.Passing)
	p.writeGroup(&sb, "Failing Students", res.Failing)
	return sb.String()
}

func (p *Presenter) writeGroup(sb *strings.Builder, title string, group []query.StudentDTO) {
	fmt.Fprintf(sb, "\n--- %s ---\n", title)
	if len(group) == 0 {
		sb.WriteString("None.\n")
		return
	}

	for _, s := range group {
		avg := p.missingAverage
		if s.HasGrades {
			avg = p.FormatAverage(s.Average)
		}
		fmt.Fprintf(sb, "ID: %d, Name: %s, Average: %s\n", s.ID, s.Name, avg)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

// FormatGrades renders a grade list as "[40.0, 82.7]". Whole numbers keep one
// decimal so that grades always read as decimals.
func FormatGrades(grades []float64) string {
	parts := make([]string, 0, len(grades))
	for _, g := range grades {
		parts = append(parts, formatGrade(g))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatGrade(g float64) string {
	if g == math.Trunc(g) && math.Abs(g) < 1e16 {
		return strconv.FormatFloat(g, 'f', 1, 64)
	}
	return strconv.FormatFloat(g, 'g', -1, 64)
}
