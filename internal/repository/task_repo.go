package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/eduonboard-api/internal/models"
)

// TaskRepository handles persistence for onboarding tasks.
type TaskRepository interface {
	ListByStudent(ctx context.Context, studentID uint) ([]models.OnboardingTask, error)
	FindByID(ctx context.Context, id uint) (models.OnboardingTask, error)
	Update(ctx context.Context, task *models.OnboardingTask) error
	UpsertBatch(ctx context.Context, tasks []models.OnboardingTask) (int64, error)
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository constructs a repository backed by GORM.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) ListByStudent(ctx context.Context, studentID uint) ([]models.OnboardingTask, error) {
	var tasks []models.OnboardingTask
	if err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("due_date, id").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) FindByID(ctx context.Context, id uint) (models.OnboardingTask, error) {
	var task models.OnboardingTask
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return models.OnboardingTask{}, err
	}
	return task, nil
}

func (r *taskRepository) Update(ctx context.Context, task *models.OnboardingTask) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *taskRepository) UpsertBatch(ctx context.Context, tasks []models.OnboardingTask) (int64, error) {
	if len(tasks) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Save(&tasks)
	return result.RowsAffected, result.Error
}
