package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/eduonboard-api/internal/models"
)

// IdentityRepository resolves roles and profiles for authenticated users.
// Both lookups are single-row and keyed by user id; a missing row is
// returned as gorm.ErrRecordNotFound and treated as a valid outcome upstream.
type IdentityRepository interface {
	FindRole(ctx context.Context, userID string) (models.UserRole, error)
	FindProfile(ctx context.Context, userID string) (models.Profile, error)
}

type identityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository constructs an identity repository.
func NewIdentityRepository(db *gorm.DB) IdentityRepository {
	return &identityRepository{db: db}
}

func (r *identityRepository) FindRole(ctx context.Context, userID string) (models.UserRole, error) {
	var role models.UserRole
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&role).Error; err != nil {
		return models.UserRole{}, err
	}
	return role, nil
}

func (r *identityRepository) FindProfile(ctx context.Context, userID string) (models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}
