package student

// ══════════════════════════════════════════════════════════════════════════════
// PASS / FAIL CLASSIFICATION
// ══════════════════════════════════════════════════════════════════════════════

// PassFailReport - результат разбиения студентов по порогу.
// Каждый студент попадает ровно в одну из групп.
type PassFailReport struct {
	// Threshold - порог, по которому выполнено разбиение.
	Threshold float64

	// Passing - студенты со средним >= Threshold.
	Passing []*Student

	// Failing - все остальные, включая студентов без оценок.
	Failing []*Student
}

// Total возвращает общее количество студентов в отчёте.
func (r PassFailReport) Total() int {
	return len(r.Passing) + len(r.Failing)
}

// Partition разбивает студентов на прошедших и не прошедших порог.
// Порядок внутри групп совпадает с порядком во входном срезе.
func Partition(students []*Student, threshold float64) PassFailReport {
	report := PassFailReport{
		Threshold: threshold,
		Passing:   make([]*Student, 0, len(students)),
		Failing:   make([]*Student, 0, len(students)),
	}

	for _, s := range students {
		if s.IsPassing(threshold) {
			report.Passing = append(report.Passing, s)
		} else {
			report.Failing = append(report.Failing, s)
		}
	}

	return report
}
