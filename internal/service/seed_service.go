package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/noah-isme/eduonboard-api/internal/models"
	"github.com/noah-isme/eduonboard-api/internal/repository"
)

var (
	// ErrSeedDisabled indicates the seeding tools are disabled by configuration.
	ErrSeedDisabled = errors.New("seeding is disabled")
	// ErrSeedUnauthorized indicates the provided token is invalid.
	ErrSeedUnauthorized = errors.New("invalid seed token")
)

// SeedPayload carries demo datasets for environment bootstrap.
type SeedPayload struct {
	Students      []models.Student          `json:"students"`
	Tasks         []models.OnboardingTask   `json:"tasks"`
	Documents     []models.Document         `json:"documents"`
	Notifications []models.Notification     `json:"notifications"`
	Tickets       []models.EscalationTicket `json:"tickets"`
}

// SeedResult reports rows affected per collection.
type SeedResult struct {
	Students      int64 `json:"students"`
	Tasks         int64 `json:"tasks"`
	Documents     int64 `json:"documents"`
	Notifications int64 `json:"notifications"`
	Tickets       int64 `json:"tickets"`
}

// SeedService orchestrates token-gated demo data seeding.
type SeedService interface {
	Seed(ctx context.Context, token string, payload SeedPayload) (SeedResult, error)
}

type seedService struct {
	students      repository.StudentRepository
	tasks         repository.TaskRepository
	documents     repository.DocumentRepository
	notifications repository.NotificationRepository
	tickets       repository.TicketRepository
	enabled       bool
	token         string
	logger        zerolog.Logger
}

// NewSeedService constructs a seeding service.
func NewSeedService(
	students repository.StudentRepository,
	tasks repository.TaskRepository,
	documents repository.DocumentRepository,
	notifications repository.NotificationRepository,
	tickets repository.TicketRepository,
	enabled bool,
	token string,
	logger zerolog.Logger,
) SeedService {
	return &seedService{
		students:      students,
		tasks:         tasks,
		documents:     documents,
		notifications: notifications,
		tickets:       tickets,
		enabled:       enabled,
		token:         token,
		logger:        logger.With().Str("component", "seed_service").Logger(),
	}
}

func (s *seedService) Seed(ctx context.Context, token string, payload SeedPayload) (SeedResult, error) {
	if !s.enabled {
		return SeedResult{}, ErrSeedDisabled
	}
	if !s.validateToken(token) {
		return SeedResult{}, ErrSeedUnauthorized
	}

	var result SeedResult
	var err error

	if result.Students, err = s.students.UpsertBatch(ctx, payload.Students); err != nil {
		return SeedResult{}, err
	}
	if result.Tasks, err = s.tasks.UpsertBatch(ctx, payload.Tasks); err != nil {
		return SeedResult{}, err
	}
	if result.Documents, err = s.documents.UpsertBatch(ctx, payload.Documents); err != nil {
		return SeedResult{}, err
	}
	if result.Notifications, err = s.notifications.UpsertBatch(ctx, payload.Notifications); err != nil {
		return SeedResult{}, err
	}
	if result.Tickets, err = s.tickets.UpsertBatch(ctx, payload.Tickets); err != nil {
		return SeedResult{}, err
	}

	s.logger.Info().
		Int64("students", result.Students).
		Int64("tasks", result.Tasks).
		Int64("documents", result.Documents).
		Msg("demo data seeded")

	return result, nil
}

func (s *seedService) validateToken(token string) bool {
	expected := strings.TrimSpace(s.token)
	provided := strings.TrimSpace(token)
	if expected == "" || provided == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(provided)) == 1
}
