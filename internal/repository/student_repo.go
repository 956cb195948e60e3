package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/noah-isme/eduonboard-api/internal/models"
)

// StudentFilter narrows student searches. Query matches name or roll number
// case-insensitively; Department of "All" or "" applies no constraint.
type StudentFilter struct {
	Query      string
	Department string
}

// StudentRepository provides access to student records.
type StudentRepository interface {
	GetByID(ctx context.Context, id uint) (models.Student, error)
	List(ctx context.Context) ([]models.Student, error)
	Search(ctx context.Context, filter StudentFilter) ([]models.Student, error)
	UpdateCompletion(ctx context.Context, id uint, percentage int) error
	UpsertBatch(ctx context.Context, students []models.Student) (int64, error)
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository constructs a student repository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) GetByID(ctx context.Context, id uint) (models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).First(&student, id).Error; err != nil {
		return models.Student{}, err
	}
	return student, nil
}

func (r *studentRepository) List(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := r.db.WithContext(ctx).Order("id").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) Search(ctx context.Context, filter StudentFilter) ([]models.Student, error) {
	query := r.db.WithContext(ctx).Model(&models.Student{}).Order("id")

	if term := strings.TrimSpace(filter.Query); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(roll_number) LIKE ?", pattern, pattern)
	}
	if dept := strings.TrimSpace(filter.Department); dept != "" && !strings.EqualFold(dept, "All") {
		query = query.Where("department = ?", dept)
	}

	var students []models.Student
	if err := query.Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) UpdateCompletion(ctx context.Context, id uint, percentage int) error {
	return r.db.WithContext(ctx).
		Model(&models.Student{}).
		Where("id = ?", id).
		Update("completion_percentage", percentage).Error
}

func (r *studentRepository) UpsertBatch(ctx context.Context, students []models.Student) (int64, error) {
	if len(students) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Save(&students)
	return result.RowsAffected, result.Error
}
