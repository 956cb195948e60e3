package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/noah-isme/eduonboard-api/internal/dto"
	"github.com/noah-isme/eduonboard-api/internal/models"
	"github.com/noah-isme/eduonboard-api/internal/observability"
	"github.com/noah-isme/eduonboard-api/internal/repository"
)

// ErrEmptyQuery indicates the query contained no usable text after sanitization.
var ErrEmptyQuery = errors.New("query must not be empty")

const escalationConfidence = 1.0

// AssistantService answers free-text onboarding queries from the fixed intent
// table and supports a one-way handoff to a human-handled ticket.
type AssistantService interface {
	Ask(ctx context.Context, sessionID, query string) (dto.ChatMessageResponse, error)
	Escalate(ctx context.Context, sessionID string, studentID uint, title string) (dto.ChatMessageResponse, error)
	History(ctx context.Context, sessionID string, limit int) ([]dto.ChatMessageResponse, error)
}

type assistantService struct {
	repo      repository.ChatRepository
	tickets   TicketService
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
	// delay simulates the assistant "typing" before its reply resolves.
	// Each ask resolves exactly once; concurrent asks append in completion
	// order, not submission order.
	delay func() time.Duration
	now   func() time.Time
}

type assistantReply struct {
	message models.ChatMessage
	err     error
}

// NewAssistantService constructs an assistant service. replyDelay may be zero
// for fully synchronous replies.
func NewAssistantService(repo repository.ChatRepository, tickets TicketService, replyDelay time.Duration, logger zerolog.Logger) AssistantService {
	return &assistantService{
		repo:      repo,
		tickets:   tickets,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "assistant_service").Logger(),
		delay:     func() time.Duration { return replyDelay },
		now:       time.Now,
	}
}

func (s *assistantService) Ask(ctx context.Context, sessionID, query string) (dto.ChatMessageResponse, error) {
	clean := strings.TrimSpace(s.sanitizer.Sanitize(query))
	if clean == "" {
		return dto.ChatMessageResponse{}, ErrEmptyQuery
	}

	userMsg := models.ChatMessage{
		SessionID: sessionID,
		Role:      models.ChatRoleUser,
		Content:   clean,
	}
	if err := s.repo.Create(ctx, &userMsg); err != nil {
		return dto.ChatMessageResponse{}, err
	}

	// The reply is a deferred completion: it resolves exactly once after the
	// simulated delay and is persisted even if the caller goes away.
	done := make(chan assistantReply, 1)
	go func() {
		if d := s.delay(); d > 0 {
			time.Sleep(d)
		}

		group, content, confidence := MatchIntent(clean)
		observability.AssistantMatchesTotal().WithLabelValues(group).Inc()

		reply := models.ChatMessage{
			SessionID:  sessionID,
			Role:       models.ChatRoleAssistant,
			Content:    content,
			Confidence: &confidence,
		}
		err := s.repo.Create(context.WithoutCancel(ctx), &reply)
		done <- assistantReply{message: reply, err: err}
	}()

	result := <-done
	if result.err != nil {
		return dto.ChatMessageResponse{}, result.err
	}

	s.logger.Debug().Str("session_id", sessionID).Float64("confidence", *result.message.Confidence).Msg("assistant reply resolved")

	return dto.NewChatMessageResponse(result.message), nil
}

func (s *assistantService) Escalate(ctx context.Context, sessionID string, studentID uint, title string) (dto.ChatMessageResponse, error) {
	reference := ""
	if s.tickets != nil {
		if strings.TrimSpace(title) == "" {
			title = "Assistant escalation"
		}
		ticket, err := s.tickets.Create(ctx, dto.TicketCreateRequest{
			StudentID:   studentID,
			Title:       title,
			Description: fmt.Sprintf("Escalated from assistant session %s", sessionID),
			Priority:    string(models.PriorityMedium),
		})
		if err != nil {
			s.logger.Warn().Err(err).Str("session_id", sessionID).Msg("failed to open escalation ticket")
		} else {
			reference = ticket.Reference
		}
	}

	content := "**Escalation Submitted!**\n\n" +
		"Your query has been escalated to a human advisor. You will receive a " +
		"response within **2 business hours** via email."
	if reference != "" {
		content += fmt.Sprintf("\n\nTicket ID: %s", reference)
	}
	content += "\n\n*A human advisor will review and respond shortly.*"

	confidence := escalationConfidence
	message := models.ChatMessage{
		SessionID:  sessionID,
		Role:       models.ChatRoleAssistant,
		Content:    content,
		Confidence: &confidence,
		Escalated:  true,
	}
	if err := s.repo.Create(ctx, &message); err != nil {
		return dto.ChatMessageResponse{}, err
	}

	observability.AssistantEscalationsTotal().Inc()

	return dto.NewChatMessageResponse(message), nil
}

func (s *assistantService) History(ctx context.Context, sessionID string, limit int) ([]dto.ChatMessageResponse, error) {
	messages, err := s.repo.ListBySession(ctx, sessionID, limit)
	if err != nil {
		return nil, err
	}
	return dto.NewChatMessageResponseSlice(messages), nil
}
