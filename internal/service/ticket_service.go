package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/eduonboard-api/internal/dto"
	"github.com/noah-isme/eduonboard-api/internal/models"
	"github.com/noah-isme/eduonboard-api/internal/repository"
)

var (
	// ErrTicketNotFound indicates the ticket does not exist.
	ErrTicketNotFound = errors.New("ticket not found")
	// ErrTicketTerminal indicates a state change on a resolved or closed ticket.
	ErrTicketTerminal = errors.New("ticket already resolved or closed")
)

// TicketService manages the escalation ticket lifecycle:
// open → optionally in-progress → terminal resolved/closed.
type TicketService interface {
	Create(ctx context.Context, req dto.TicketCreateRequest) (dto.TicketResponse, error)
	Assign(ctx context.Context, id uint, req dto.TicketAssignRequest) (dto.TicketResponse, error)
	Resolve(ctx context.Context, id uint) (dto.TicketResponse, error)
	Close(ctx context.Context, id uint) (dto.TicketResponse, error)
	List(ctx context.Context, statusToken string) ([]dto.TicketResponse, error)
}

type ticketService struct {
	tickets   repository.TicketRepository
	students  repository.StudentRepository
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewTicketService constructs a ticket service.
func NewTicketService(tickets repository.TicketRepository, students repository.StudentRepository, validate *validator.Validate, logger zerolog.Logger) TicketService {
	return &ticketService{
		tickets:   tickets,
		students:  students,
		validator: validate,
		logger:    logger.With().Str("component", "ticket_service").Logger(),
		now:       time.Now,
	}
}

func (s *ticketService) Create(ctx context.Context, req dto.TicketCreateRequest) (dto.TicketResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.TicketResponse{}, err
	}

	priority := models.Priority(req.Priority)
	if req.Priority == "" {
		priority = models.PriorityMedium
	}

	ticket := models.EscalationTicket{
		Reference:   newTicketReference(s.now()),
		StudentID:   req.StudentID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Status:      models.TicketStatusOpen,
		Priority:    priority,
	}

	if student, err := s.students.GetByID(ctx, req.StudentID); err == nil {
		ticket.StudentName = student.Name
		ticket.Department = student.Department
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.TicketResponse{}, err
	}

	if err := s.tickets.Create(ctx, &ticket); err != nil {
		return dto.TicketResponse{}, err
	}

	s.logger.Info().Str("reference", ticket.Reference).Uint("student_id", ticket.StudentID).Msg("escalation ticket opened")

	return dto.NewTicketResponse(ticket), nil
}

func (s *ticketService) Assign(ctx context.Context, id uint, req dto.TicketAssignRequest) (dto.TicketResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.TicketResponse{}, err
	}

	ticket, err := s.find(ctx, id)
	if err != nil {
		return dto.TicketResponse{}, err
	}
	if ticket.IsTerminal() {
		return dto.TicketResponse{}, ErrTicketTerminal
	}

	ticket.AssignedTo = strings.TrimSpace(req.AssignedTo)
	ticket.Status = models.TicketStatusInProgress
	if err := s.tickets.Update(ctx, &ticket); err != nil {
		return dto.TicketResponse{}, err
	}
	return dto.NewTicketResponse(ticket), nil
}

func (s *ticketService) Resolve(ctx context.Context, id uint) (dto.TicketResponse, error) {
	return s.finish(ctx, id, models.TicketStatusResolved)
}

func (s *ticketService) Close(ctx context.Context, id uint) (dto.TicketResponse, error) {
	return s.finish(ctx, id, models.TicketStatusClosed)
}

// finish moves a ticket into a terminal state. ResolvedAt is set exactly
// once, at this transition.
func (s *ticketService) finish(ctx context.Context, id uint, status models.TicketStatus) (dto.TicketResponse, error) {
	ticket, err := s.find(ctx, id)
	if err != nil {
		return dto.TicketResponse{}, err
	}
	if ticket.IsTerminal() {
		return dto.TicketResponse{}, ErrTicketTerminal
	}

	now := s.now()
	ticket.Status = status
	ticket.ResolvedAt = &now
	if err := s.tickets.Update(ctx, &ticket); err != nil {
		return dto.TicketResponse{}, err
	}
	return dto.NewTicketResponse(ticket), nil
}

func (s *ticketService) List(ctx context.Context, statusToken string) ([]dto.TicketResponse, error) {
	token := strings.ToLower(strings.TrimSpace(statusToken))
	if token == "" || token == FilterAll {
		tickets, err := s.tickets.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return dto.NewTicketResponseSlice(tickets), nil
	}

	tickets, err := s.tickets.List(ctx, models.TicketStatus(token))
	if err != nil {
		return nil, err
	}
	return dto.NewTicketResponseSlice(tickets), nil
}

func (s *ticketService) find(ctx context.Context, id uint) (models.EscalationTicket, error) {
	ticket, err := s.tickets.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.EscalationTicket{}, ErrTicketNotFound
		}
		return models.EscalationTicket{}, err
	}
	return ticket, nil
}

func newTicketReference(now time.Time) string {
	short := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("ESC-%d-%s", now.Year(), short)
}
