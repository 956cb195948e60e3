package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/eduonboard-api/internal/dto"
	"github.com/noah-isme/eduonboard-api/internal/models"
	"github.com/noah-isme/eduonboard-api/internal/repository"
)

// ErrTaskNotFound indicates the task does not exist or belongs to another student.
var ErrTaskNotFound = errors.New("task not found")

// FilterAll is the filter token that passes every entity through.
const FilterAll = "all"

// TaskService lists, filters and completes onboarding tasks and keeps the
// owning student's completion percentage in sync with the task set.
type TaskService interface {
	List(ctx context.Context, studentID uint, statusToken string) ([]dto.TaskResponse, error)
	Complete(ctx context.Context, studentID, taskID uint) (dto.TaskResponse, error)
	Summary(ctx context.Context, studentID uint) (dto.TaskSummary, error)
}

type taskService struct {
	tasks    repository.TaskRepository
	students repository.StudentRepository
	logger   zerolog.Logger
	now      func() time.Time
}

// NewTaskService constructs a task service.
func NewTaskService(tasks repository.TaskRepository, students repository.StudentRepository, logger zerolog.Logger) TaskService {
	return &taskService{
		tasks:    tasks,
		students: students,
		logger:   logger.With().Str("component", "task_service").Logger(),
		now:      time.Now,
	}
}

func (s *taskService) List(ctx context.Context, studentID uint, statusToken string) ([]dto.TaskResponse, error) {
	tasks, err := s.tasks.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	return dto.NewTaskResponseSlice(FilterTasks(tasks, statusToken, now), now), nil
}

func (s *taskService) Complete(ctx context.Context, studentID, taskID uint) (dto.TaskResponse, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TaskResponse{}, ErrTaskNotFound
		}
		return dto.TaskResponse{}, err
	}
	if task.StudentID != studentID {
		return dto.TaskResponse{}, ErrTaskNotFound
	}

	now := s.now()
	if task.Status != models.TaskStatusCompleted {
		task.Status = models.TaskStatusCompleted
		task.CompletedAt = &now
		if err := s.tasks.Update(ctx, &task); err != nil {
			return dto.TaskResponse{}, err
		}

		if err := s.refreshCompletion(ctx, studentID); err != nil {
			s.logger.Warn().Err(err).Uint("student_id", studentID).Msg("failed to refresh completion percentage")
		}
	}

	return dto.NewTaskResponse(task, now), nil
}

func (s *taskService) Summary(ctx context.Context, studentID uint) (dto.TaskSummary, error) {
	tasks, err := s.tasks.ListByStudent(ctx, studentID)
	if err != nil {
		return dto.TaskSummary{}, err
	}
	return BuildTaskSummary(tasks, s.now()), nil
}

// refreshCompletion recomputes the stored completion percentage cache from
// the full task set.
func (s *taskService) refreshCompletion(ctx context.Context, studentID uint) error {
	tasks, err := s.tasks.ListByStudent(ctx, studentID)
	if err != nil {
		return err
	}
	summary := BuildTaskSummary(tasks, s.now())
	return s.students.UpdateCompletion(ctx, studentID, summary.CompletionPercentage)
}

// FilterTasks returns the subset of tasks whose derived status matches the
// token. "all" passes everything through; an unknown token matches nothing.
// Order is preserved from the input.
func FilterTasks(tasks []models.OnboardingTask, token string, reference time.Time) []models.OnboardingTask {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" || token == FilterAll {
		return tasks
	}

	filtered := make([]models.OnboardingTask, 0, len(tasks))
	for _, task := range tasks {
		if string(task.DisplayStatus(reference)) == token {
			filtered = append(filtered, task)
		}
	}
	return filtered
}

// BuildTaskSummary partitions tasks by derived status and computes the
// completion percentage. An empty task set yields zero percent.
func BuildTaskSummary(tasks []models.OnboardingTask, reference time.Time) dto.TaskSummary {
	summary := dto.TaskSummary{Total: len(tasks)}
	for _, task := range tasks {
		switch task.DisplayStatus(reference) {
		case models.TaskStatusCompleted:
			summary.Completed++
		case models.TaskStatusInProgress:
			summary.InProgress++
		case models.TaskStatusOverdue:
			summary.Overdue++
		default:
			summary.Pending++
		}
	}

	if summary.Total > 0 {
		summary.CompletionPercentage = roundHalfUp(100 * float64(summary.Completed) / float64(summary.Total))
	}
	return summary
}

// roundHalfUp rounds to the nearest integer, halves away from zero.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
