// Package student содержит доменную модель студента.
//
// Пакет определяет:
//
//   - Сущность Student: ID, имя и упорядоченный список оценок
//   - Производные показатели: AverageGrade, IsPassing
//   - Разбиение по порогу: Partition и PassFailReport
//   - Интерфейс хранилища: Repository
//
// # Архитектурные принципы
//
//  1. Нулевые внешние зависимости - только стандартная библиотека Go
//  2. Dependency Inversion - интерфейс Repository реализуется в infrastructure
//  3. Rich Domain Model - расчёты инкапсулированы в сущности
//
// # Пример использования
//
//	s := NewStudent(7, "Ada", 90, 80)
//	if avg, ok := s.AverageGrade(); ok {
//	    fmt.Printf("%.2f\n", avg) // 85.00
//	}
//
//	report := Partition(students, 50)
//	for _, s := range report.Failing {
//	    // ...
//	}
package student
