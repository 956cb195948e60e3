package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/eduonboard-api/internal/models"
)

// DocumentRepository handles persistence for documents.
type DocumentRepository interface {
	ListByStudent(ctx context.Context, studentID uint) ([]models.Document, error)
	ListByStatus(ctx context.Context, status models.DocumentStatus) ([]models.Document, error)
	FindByID(ctx context.Context, id uint) (models.Document, error)
	Update(ctx context.Context, doc *models.Document) error
	CountByStatus(ctx context.Context, status models.DocumentStatus) (int64, error)
	Count(ctx context.Context) (int64, error)
	UpsertBatch(ctx context.Context, docs []models.Document) (int64, error)
}

type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository constructs a repository backed by GORM.
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) ListByStudent(ctx context.Context, studentID uint) ([]models.Document, error) {
	var docs []models.Document
	if err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("id").
		Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepository) ListByStatus(ctx context.Context, status models.DocumentStatus) ([]models.Document, error) {
	var docs []models.Document
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("uploaded_at, id").
		Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepository) FindByID(ctx context.Context, id uint) (models.Document, error) {
	var doc models.Document
	if err := r.db.WithContext(ctx).First(&doc, id).Error; err != nil {
		return models.Document{}, err
	}
	return doc, nil
}

func (r *documentRepository) Update(ctx context.Context, doc *models.Document) error {
	// Save with Select forces cleared optional fields (rejection reason,
	// review metadata) to be written back as empty values.
	return r.db.WithContext(ctx).Model(doc).
		Select("Status", "UploadedAt", "ReviewedAt", "ReviewedBy", "FileSize", "RejectionReason").
		Updates(doc).Error
}

func (r *documentRepository) CountByStatus(ctx context.Context, status models.DocumentStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Document{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *documentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Document{}).Count(&count).Error
	return count, err
}

func (r *documentRepository) UpsertBatch(ctx context.Context, docs []models.Document) (int64, error) {
	if len(docs) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Save(&docs)
	return result.RowsAffected, result.Error
}
