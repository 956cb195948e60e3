package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/noah-isme/eduonboard-api/internal/models"
	"github.com/noah-isme/eduonboard-api/internal/repository"
)

var fixedNow = time.Date(2024, 7, 29, 12, 0, 0, 0, time.UTC)

func checklistFixture() []models.OnboardingTask {
	due := time.Date(2024, 7, 28, 0, 0, 0, 0, time.UTC)
	future := fixedNow.Add(72 * time.Hour)
	return []models.OnboardingTask{
		{ID: 1, StudentID: 1, Title: "Submit ID proof", Status: models.TaskStatusCompleted, DueDate: due},
		{ID: 2, StudentID: 1, Title: "Pay tuition fee", Status: models.TaskStatusPending, DueDate: due},
		{ID: 3, StudentID: 1, Title: "Pick courses", Status: models.TaskStatusInProgress, DueDate: future},
		{ID: 4, StudentID: 1, Title: "Join orientation", Status: models.TaskStatusPending, DueDate: future},
		{ID: 5, StudentID: 1, Title: "Hostel allocation", Status: models.TaskStatusCompleted, DueDate: future},
	}
}

func TestBuildTaskSummaryPartitionsEveryTask(t *testing.T) {
	tasks := checklistFixture()

	summary := BuildTaskSummary(tasks, fixedNow)

	require.Equal(t, len(tasks), summary.Total)
	require.Equal(t, summary.Total, summary.Completed+summary.InProgress+summary.Pending+summary.Overdue)
	require.Equal(t, 2, summary.Completed)
	require.Equal(t, 1, summary.InProgress)
	require.Equal(t, 1, summary.Pending)
	require.Equal(t, 1, summary.Overdue)
	require.Equal(t, 40, summary.CompletionPercentage)
	require.GreaterOrEqual(t, summary.CompletionPercentage, 0)
	require.LessOrEqual(t, summary.CompletionPercentage, 100)
}

func TestBuildTaskSummaryEmptySet(t *testing.T) {
	summary := BuildTaskSummary(nil, fixedNow)

	require.Equal(t, 0, summary.Total)
	require.Equal(t, 0, summary.CompletionPercentage)
}

func TestBuildTaskSummaryRoundsHalfUp(t *testing.T) {
	due := fixedNow.Add(24 * time.Hour)
	tasks := []models.OnboardingTask{
		{Status: models.TaskStatusCompleted, DueDate: due},
		{Status: models.TaskStatusPending, DueDate: due},
		{Status: models.TaskStatusPending, DueDate: due},
	}

	// 1 of 3 is 33.33, rounds down; 2 of 3 is 66.67, rounds up.
	require.Equal(t, 33, BuildTaskSummary(tasks, fixedNow).CompletionPercentage)

	tasks[1].Status = models.TaskStatusCompleted
	require.Equal(t, 67, BuildTaskSummary(tasks, fixedNow).CompletionPercentage)
}

func TestFilterTasksByDerivedStatus(t *testing.T) {
	tasks := checklistFixture()

	overdue := FilterTasks(tasks, "overdue", fixedNow)
	require.Len(t, overdue, 1)
	require.Equal(t, uint(2), overdue[0].ID)

	completed := FilterTasks(tasks, "completed", fixedNow)
	require.Len(t, completed, 2)
	require.Equal(t, uint(1), completed[0].ID)
	require.Equal(t, uint(5), completed[1].ID)

	require.Equal(t, tasks, FilterTasks(tasks, "all", fixedNow))
	require.Equal(t, tasks, FilterTasks(tasks, "", fixedNow))
	require.Empty(t, FilterTasks(tasks, "archived", fixedNow))
}

func TestFilterTasksIsIdempotent(t *testing.T) {
	tasks := checklistFixture()

	once := FilterTasks(tasks, "pending", fixedNow)
	twice := FilterTasks(once, "pending", fixedNow)

	require.Equal(t, once, twice)
}

func TestTaskServiceCompleteRefreshesStudentCompletion(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:tasksvc?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Student{}, &models.OnboardingTask{}))

	student := models.Student{ID: 1, Name: "Asha Verma", Email: "asha@example.com", Department: "CSE"}
	require.NoError(t, db.Create(&student).Error)

	due := fixedNow.Add(48 * time.Hour)
	tasks := []models.OnboardingTask{
		{StudentID: 1, Title: "Submit ID proof", Status: models.TaskStatusPending, DueDate: due},
		{StudentID: 1, Title: "Pay tuition fee", Status: models.TaskStatusPending, DueDate: due},
	}
	for i := range tasks {
		require.NoError(t, db.Create(&tasks[i]).Error)
	}

	svc := NewTaskService(repository.NewTaskRepository(db), repository.NewStudentRepository(db), zerolog.Nop()).(*taskService)
	svc.now = func() time.Time { return fixedNow }

	ctx := context.Background()
	completed, err := svc.Complete(ctx, 1, tasks[0].ID)
	require.NoError(t, err)
	require.Equal(t, models.TaskStatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)

	var refreshed models.Student
	require.NoError(t, db.First(&refreshed, 1).Error)
	require.Equal(t, 50, refreshed.CompletionPercentage)

	// Completing again keeps the original completion timestamp.
	again, err := svc.Complete(ctx, 1, tasks[0].ID)
	require.NoError(t, err)
	require.Equal(t, completed.CompletedAt, again.CompletedAt)
}

func TestTaskServiceCompleteRejectsForeignTask(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:tasksvcown?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Student{}, &models.OnboardingTask{}))

	task := models.OnboardingTask{StudentID: 7, Title: "Pick courses", Status: models.TaskStatusPending, DueDate: fixedNow}
	require.NoError(t, db.Create(&task).Error)

	svc := NewTaskService(repository.NewTaskRepository(db), repository.NewStudentRepository(db), zerolog.Nop())

	_, err = svc.Complete(context.Background(), 1, task.ID)
	require.ErrorIs(t, err, ErrTaskNotFound)

	_, err = svc.Complete(context.Background(), 7, 999)
	require.ErrorIs(t, err, ErrTaskNotFound)
}
