package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/eduonboard-api/internal/dto"
	"github.com/noah-isme/eduonboard-api/internal/models"
	"github.com/noah-isme/eduonboard-api/internal/observability"
	"github.com/noah-isme/eduonboard-api/internal/repository"
)

// ErrNotificationNotFound indicates the notification does not exist for the user.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationService publishes and manages per-user notifications.
type NotificationService interface {
	Publish(ctx context.Context, payload dto.NotificationCreateRequest) (dto.NotificationResponse, error)
	List(ctx context.Context, userID, filter string, limit, offset int) ([]dto.NotificationResponse, error)
	MarkRead(ctx context.Context, id uint, userID string) (dto.NotificationResponse, error)
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
}

type notificationService struct {
	repo      repository.NotificationRepository
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
}

// NewNotificationService constructs a notification service.
func NewNotificationService(repo repository.NotificationRepository, validate *validator.Validate, logger zerolog.Logger) NotificationService {
	return &notificationService{
		repo:      repo,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "notification_service").Logger(),
	}
}

func (s *notificationService) Publish(ctx context.Context, payload dto.NotificationCreateRequest) (dto.NotificationResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.NotificationResponse{}, err
	}

	cleanMessage := strings.TrimSpace(s.sanitizer.Sanitize(payload.Message))
	if cleanMessage == "" {
		return dto.NotificationResponse{}, errors.New("notification message empty after sanitization")
	}

	notifType := models.NotificationType(payload.Type)
	if payload.Type == "" {
		notifType = models.NotificationInfo
	}

	model := models.Notification{
		UserID:      payload.UserID,
		Title:       strings.TrimSpace(s.sanitizer.Sanitize(payload.Title)),
		Message:     cleanMessage,
		Type:        notifType,
		ActionLabel: payload.ActionLabel,
	}

	if err := s.repo.Create(ctx, &model); err != nil {
		return dto.NotificationResponse{}, err
	}

	observability.NotificationsPublishedTotal().WithLabelValues(string(model.Type)).Inc()

	return dto.NewNotificationResponse(model), nil
}

func (s *notificationService) List(ctx context.Context, userID, filter string, limit, offset int) ([]dto.NotificationResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errors.New("user id is required")
	}

	notifications, err := s.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return dto.NewNotificationResponseSlice(FilterNotifications(notifications, filter)), nil
}

// FilterUnread is the filter token that keeps only unread notifications.
const FilterUnread = "unread"

// FilterNotifications returns notifications matching the token: "all" passes
// everything through, "unread" keeps unread items, anything else matches the
// notification type. Order is preserved from the input.
func FilterNotifications(notifications []models.Notification, token string) []models.Notification {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" || token == FilterAll {
		return notifications
	}

	filtered := make([]models.Notification, 0, len(notifications))
	for _, notification := range notifications {
		if token == FilterUnread {
			if !notification.Read {
				filtered = append(filtered, notification)
			}
			continue
		}
		if string(notification.Type) == token {
			filtered = append(filtered, notification)
		}
	}
	return filtered
}

func (s *notificationService) MarkRead(ctx context.Context, id uint, userID string) (dto.NotificationResponse, error) {
	notification, err := s.repo.MarkRead(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.NotificationResponse{}, ErrNotificationNotFound
		}
		return dto.NotificationResponse{}, err
	}
	return dto.NewNotificationResponse(notification), nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	if strings.TrimSpace(userID) == "" {
		return 0, errors.New("user id is required")
	}
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	if strings.TrimSpace(userID) == "" {
		return 0, errors.New("user id is required")
	}
	return s.repo.CountUnread(ctx, userID)
}
