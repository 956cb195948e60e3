package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/eduonboard-api/internal/models"
)

// TicketRepository handles persistence for escalation tickets.
type TicketRepository interface {
	Create(ctx context.Context, ticket *models.EscalationTicket) error
	FindByID(ctx context.Context, id uint) (models.EscalationTicket, error)
	List(ctx context.Context, status models.TicketStatus) ([]models.EscalationTicket, error)
	ListAll(ctx context.Context) ([]models.EscalationTicket, error)
	Update(ctx context.Context, ticket *models.EscalationTicket) error
	CountByStatus(ctx context.Context, status models.TicketStatus) (int64, error)
	UpsertBatch(ctx context.Context, tickets []models.EscalationTicket) (int64, error)
}

type ticketRepository struct {
	db *gorm.DB
}

// NewTicketRepository constructs a repository backed by GORM.
func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *models.EscalationTicket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *ticketRepository) FindByID(ctx context.Context, id uint) (models.EscalationTicket, error) {
	var ticket models.EscalationTicket
	if err := r.db.WithContext(ctx).First(&ticket, id).Error; err != nil {
		return models.EscalationTicket{}, err
	}
	return ticket, nil
}

func (r *ticketRepository) List(ctx context.Context, status models.TicketStatus) ([]models.EscalationTicket, error) {
	var tickets []models.EscalationTicket
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC, id DESC").
		Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *ticketRepository) ListAll(ctx context.Context) ([]models.EscalationTicket, error) {
	var tickets []models.EscalationTicket
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *ticketRepository) Update(ctx context.Context, ticket *models.EscalationTicket) error {
	return r.db.WithContext(ctx).Save(ticket).Error
}

func (r *ticketRepository) CountByStatus(ctx context.Context, status models.TicketStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.EscalationTicket{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *ticketRepository) UpsertBatch(ctx context.Context, tickets []models.EscalationTicket) (int64, error) {
	if len(tickets) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Save(&tickets)
	return result.RowsAffected, result.Error
}
