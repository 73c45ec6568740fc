// Package student содержит доменную модель студента и его оценок.
// Это ядро бизнес-логики - здесь нет внешних зависимостей.
package student

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: STUDENT
// ══════════════════════════════════════════════════════════════════════════════

// Student - центральная сущность системы: студент и список его оценок.
// ID и Name неизменяемы после создания, оценки меняются только через AppendGrades.
type Student struct {
	id     int
	name   string
	grades []float64
}

// NewStudent создаёт нового студента.
// Валидация на этом уровне не выполняется: значения уже должны быть разобраны
// и проверены вызывающей стороной (см. command.AddStudentCommand).
func NewStudent(id int, name string, grades ...float64) *Student {
	g := make([]float64, len(grades))
	copy(g, grades)

	return &Student{
		id:     id,
		name:   name,
		grades: g,
	}
}

// ID возвращает идентификатор студента.
func (s *Student) ID() int {
	return s.id
}

// Name возвращает отображаемое имя студента.
func (s *Student) Name() string {
	return s.name
}

// Grades возвращает копию списка оценок в порядке добавления.
func (s *Student) Grades() []float64 {
	out := make([]float64, len(s.grades))
	copy(out, s.grades)
	return out
}

// GradeCount возвращает количество оценок.
func (s *Student) GradeCount() int {
	return len(s.grades)
}

// HasGrades возвращает true, если у студента есть хотя бы одна оценка.
func (s *Student) HasGrades() bool {
	return len(s.grades) > 0
}

// ══════════════════════════════════════════════════════════════════════════════
// BUSINESS METHODS
// ══════════════════════════════════════════════════════════════════════════════

// AverageGrade вычисляет среднее арифметическое оценок.
// Второе значение false, если оценок нет (среднее не определено).
func (s *Student) AverageGrade() (float64, bool) {
	if len(s.grades) == 0 {
		return 0, false
	}

	var sum float64
	for _, g := range s.grades {
		sum += g
	}
	return sum / float64(len(s.grades)), true
}

// IsPassing проверяет, проходит ли студент порог (включительно).
// Студент без оценок считается не прошедшим.
func (s *Student) IsPassing(threshold float64) bool {
	avg, ok := s.AverageGrade()
	if !ok {
		return false
	}
	return avg >= threshold
}

// AppendGrades добавляет оценки в конец списка.
// Без ограничений и без дедупликации.
func (s *Student) AppendGrades(grades ...float64) {
	s.grades = append(s.grades, grades...)
}
