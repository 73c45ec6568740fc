package memory

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/student-management/internal/domain/shared"
	"github.com/alem-hub/student-management/internal/domain/student"
)

func TestStudentRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository()

	require.NoError(t, repo.Create(ctx, student.NewStudent(7, "Ada", 90, 80)))

	got, err := repo.GetByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name())

	avg, ok := got.AverageGrade()
	require.True(t, ok)
	assert.Equal(t, "85.00", formatTwo(avg))
}

func TestStudentRepository_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository()

	require.NoError(t, repo.Create(ctx, student.NewStudent(3, "First")))

	err := repo.Create(ctx, student.NewStudent(3, "Second", 100))
	require.Error(t, err)
	assert.ErrorIs(t, err, student.ErrStudentAlreadyExists)
	assert.True(t, shared.IsAlreadyExists(err))

	got, err := repo.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "First", got.Name())
	assert.False(t, got.HasGrades())

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStudentRepository_CreateNil(t *testing.T) {
	repo := NewStudentRepository()
	err := repo.Create(context.Background(), nil)
	assert.ErrorIs(t, err, shared.ErrInvalidEntity)
}

func TestStudentRepository_GetByIDNotFound(t *testing.T) {
	repo := NewStudentRepository()

	got, err := repo.GetByID(context.Background(), 42)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, student.ErrStudentNotFound)
	assert.True(t, shared.IsNotFound(err))
}

func TestStudentRepository_GetAllSorted(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository()

	ids := []int{5, -3, 12, 0, 7, 1, 99, -40}
	rnd := rand.New(rand.NewSource(1))
	rnd.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	for _, id := range ids {
		require.NoError(t, repo.Create(ctx, student.NewStudent(id, "s")))
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(ids))
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID(), all[i].ID())
	}
}

func TestStudentRepository_GetAllIsSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository()
	require.NoError(t, repo.Create(ctx, student.NewStudent(1, "A")))

	first, err := repo.GetAll(ctx)
	require.NoError(t, err)
	first[0] = nil

	require.NoError(t, repo.Create(ctx, student.NewStudent(2, "B")))

	second, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, 1, second[0].ID())
	assert.Equal(t, 2, second[1].ID())
}

func TestStudentRepository_Empty(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository()

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	ok, err := repo.Exists(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStudentRepository_GradeMutationVisible(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository()
	require.NoError(t, repo.Create(ctx, student.NewStudent(1, "A")))

	s, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	s.AppendGrades(70)

	again, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{70}, again.Grades())
}

func TestStudentRepository_CanceledContext(t *testing.T) {
	repo := NewStudentRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, repo.Create(ctx, student.NewStudent(1, "A")), context.Canceled)

	_, err := repo.GetAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func formatTwo(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
