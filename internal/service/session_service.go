package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/eduonboard-api/internal/dto"
	"github.com/noah-isme/eduonboard-api/internal/models"
	"github.com/noah-isme/eduonboard-api/internal/repository"
)

// SessionService resolves an authenticated identity to its portal role and
// profile, and tears sessions down on sign-out.
//
// A role or profile lookup miss is not an error: the role defaults to
// student and the profile to nil, rendered client-side as placeholders.
type SessionService interface {
	Resolve(ctx context.Context, userID string) (dto.SessionResponse, error)
	SignOut(ctx context.Context, userID, tokenID string) error
	IsRevoked(ctx context.Context, tokenID string) bool
}

type sessionService struct {
	identities repository.IdentityRepository
	redis      *redis.Client
	revokeTTL  time.Duration
	logger     zerolog.Logger
}

// NewSessionService constructs a session service. revokeTTL should cover the
// maximum token lifetime so revoked tokens stay listed until they expire.
func NewSessionService(identities repository.IdentityRepository, redisClient *redis.Client, revokeTTL time.Duration, logger zerolog.Logger) SessionService {
	return &sessionService{
		identities: identities,
		redis:      redisClient,
		revokeTTL:  revokeTTL,
		logger:     logger.With().Str("component", "session_service").Logger(),
	}
}

func (s *sessionService) Resolve(ctx context.Context, userID string) (dto.SessionResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return dto.SessionResponse{}, errors.New("user id is required")
	}

	response := dto.SessionResponse{UserID: userID, Role: models.RoleStudent}

	role, err := s.identities.FindRole(ctx, userID)
	switch {
	case err == nil:
		response.Role = role.Role
	case errors.Is(err, gorm.ErrRecordNotFound):
		// No role record yet: the student default stands.
	default:
		return dto.SessionResponse{}, err
	}

	profile, err := s.identities.FindProfile(ctx, userID)
	switch {
	case err == nil:
		response.Profile = dto.NewProfileResponse(profile)
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Absent profile renders as placeholder fields.
	default:
		return dto.SessionResponse{}, err
	}

	return response, nil
}

func (s *sessionService) SignOut(ctx context.Context, userID, tokenID string) error {
	if s.redis == nil || strings.TrimSpace(tokenID) == "" {
		return nil
	}

	key := revocationKey(tokenID)
	if err := s.redis.Set(ctx, key, userID, s.revokeTTL).Err(); err != nil {
		return fmt.Errorf("failed to revoke session token: %w", err)
	}

	s.logger.Info().Str("user_id", userID).Msg("session signed out")
	return nil
}

func (s *sessionService) IsRevoked(ctx context.Context, tokenID string) bool {
	if s.redis == nil || strings.TrimSpace(tokenID) == "" {
		return false
	}

	_, err := s.redis.Get(ctx, revocationKey(tokenID)).Result()
	if err == nil {
		return true
	}
	if err != redis.Nil {
		s.logger.Warn().Err(err).Msg("failed to check token revocation")
	}
	return false
}

func revocationKey(tokenID string) string {
	return "session:revoked:" + tokenID
}
