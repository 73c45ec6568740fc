package student

import "context"

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACE
// Контракт хранилища студентов. Реализация находится в infrastructure/persistence.
// ══════════════════════════════════════════════════════════════════════════════

// Repository определяет операции хранилища студентов.
// Операций удаления и обновления по ID нет.
type Repository interface {
	// Create добавляет нового студента.
	// Возвращает ErrStudentAlreadyExists, если студент с таким ID уже есть;
	// хранилище при этом не меняется.
	Create(ctx context.Context, student *Student) error

	// GetByID возвращает студента по ID.
	// Возвращает ErrStudentNotFound, если студент не найден.
	GetByID(ctx context.Context, id int) (*Student, error)

	// GetAll возвращает всех студентов, отсортированных по возрастанию ID.
	// Каждый вызов возвращает новый срез.
	GetAll(ctx context.Context) ([]*Student, error)

	// Exists проверяет существование студента по ID.
	Exists(ctx context.Context, id int) (bool, error)

	// Count возвращает количество студентов.
	Count(ctx context.Context) (int, error)
}
