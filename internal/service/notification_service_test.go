package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/noah-isme/eduonboard-api/internal/dto"
	"github.com/noah-isme/eduonboard-api/internal/models"
	"github.com/noah-isme/eduonboard-api/internal/repository"
)

func newNotificationService(t *testing.T, name string) (NotificationService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Notification{}))

	validate := validator.New(validator.WithRequiredStructEnabled())
	return NewNotificationService(repository.NewNotificationRepository(db), validate, zerolog.Nop()), db
}

func TestNotificationPublishSanitizesAndDefaults(t *testing.T) {
	svc, _ := newNotificationService(t, "notifpublish")
	ctx := context.Background()

	resp, err := svc.Publish(ctx, dto.NotificationCreateRequest{
		UserID:  "42",
		Title:   "Fee <b>Reminder</b>",
		Message: "Pay before Friday <script>alert(1)</script>",
	})
	require.NoError(t, err)
	require.Equal(t, models.NotificationInfo, resp.Type)
	require.False(t, resp.Read)
	require.NotContains(t, resp.Message, "<script>")
	require.NotContains(t, resp.Title, "<b>")

	_, err = svc.Publish(ctx, dto.NotificationCreateRequest{UserID: "42", Title: "Empty"})
	require.Error(t, err)
}

func TestFilterNotificationsByReadStateAndType(t *testing.T) {
	feed := []models.Notification{
		{ID: 1, UserID: "7", Title: "Orientation", Type: models.NotificationInfo, Read: true},
		{ID: 2, UserID: "7", Title: "Fee due", Type: models.NotificationAlert},
		{ID: 3, UserID: "7", Title: "Room assigned", Type: models.NotificationSuccess},
		{ID: 4, UserID: "7", Title: "Library card", Type: models.NotificationReminder, Read: true},
	}

	unread := FilterNotifications(feed, "unread")
	require.Len(t, unread, 2)
	require.Equal(t, uint(2), unread[0].ID)
	require.Equal(t, uint(3), unread[1].ID)

	alerts := FilterNotifications(feed, "alert")
	require.Len(t, alerts, 1)
	require.Equal(t, uint(2), alerts[0].ID)

	require.Equal(t, feed, FilterNotifications(feed, "all"))
	require.Equal(t, feed, FilterNotifications(feed, ""))
	require.Empty(t, FilterNotifications(feed, "archived"))
}

func TestNotificationListAppliesFilterToken(t *testing.T) {
	svc, db := newNotificationService(t, "notiflist")
	ctx := context.Background()

	seeded := []models.Notification{
		{UserID: "7", Title: "Orientation", Message: "Starts Monday", Type: models.NotificationInfo, Read: true},
		{UserID: "7", Title: "Fee due", Message: "Pay by Friday", Type: models.NotificationAlert},
		{UserID: "8", Title: "Welcome", Message: "Hello", Type: models.NotificationAlert},
	}
	for i := range seeded {
		require.NoError(t, db.Create(&seeded[i]).Error)
	}

	unread, err := svc.List(ctx, "7", "unread", 0, 0)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	require.Equal(t, "Fee due", unread[0].Title)

	all, err := svc.List(ctx, "7", "all", 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)

	none, err := svc.List(ctx, "7", "archived", 0, 0)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestNotificationMarkAllReadZeroesUnreadOnly(t *testing.T) {
	svc, db := newNotificationService(t, "notifmarkall")
	ctx := context.Background()

	seeded := []models.Notification{
		{UserID: "7", Title: "Orientation", Message: "Starts Monday", Type: models.NotificationInfo},
		{UserID: "7", Title: "Fee due", Message: "Pay by Friday", Type: models.NotificationAlert, ActionLabel: "Pay now"},
		{UserID: "8", Title: "Welcome", Message: "Hello", Type: models.NotificationInfo},
	}
	for i := range seeded {
		require.NoError(t, db.Create(&seeded[i]).Error)
	}

	affected, err := svc.MarkAllRead(ctx, "7")
	require.NoError(t, err)
	require.Equal(t, int64(2), affected)

	unread, err := svc.UnreadCount(ctx, "7")
	require.NoError(t, err)
	require.Zero(t, unread)

	// Other users and other fields are untouched.
	otherUnread, err := svc.UnreadCount(ctx, "8")
	require.NoError(t, err)
	require.Equal(t, int64(1), otherUnread)

	var stored models.Notification
	require.NoError(t, db.First(&stored, seeded[1].ID).Error)
	require.True(t, stored.Read)
	require.Equal(t, "Fee due", stored.Title)
	require.Equal(t, models.NotificationAlert, stored.Type)
	require.Equal(t, "Pay now", stored.ActionLabel)

	// A second pass affects nothing.
	affected, err = svc.MarkAllRead(ctx, "7")
	require.NoError(t, err)
	require.Zero(t, affected)
}

func TestNotificationMarkReadScopedToOwner(t *testing.T) {
	svc, db := newNotificationService(t, "notifmarkone")
	ctx := context.Background()

	notification := models.Notification{UserID: "7", Title: "Hostel", Message: "Room assigned", Type: models.NotificationSuccess}
	require.NoError(t, db.Create(&notification).Error)

	_, err := svc.MarkRead(ctx, notification.ID, "9")
	require.ErrorIs(t, err, ErrNotificationNotFound)

	resp, err := svc.MarkRead(ctx, notification.ID, "7")
	require.NoError(t, err)
	require.True(t, resp.Read)

	// Marking twice stays read.
	resp, err = svc.MarkRead(ctx, notification.ID, "7")
	require.NoError(t, err)
	require.True(t, resp.Read)
}
