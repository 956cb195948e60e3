package service

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/noah-isme/eduonboard-api/internal/models"
	"github.com/noah-isme/eduonboard-api/internal/repository"
)

func newSessionService(t *testing.T, name string, cache *redis.Client) (SessionService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UserRole{}, &models.Profile{}))

	return NewSessionService(repository.NewIdentityRepository(db), cache, time.Hour, zerolog.Nop()), db
}

func TestSessionResolveDefaultsToStudent(t *testing.T) {
	svc, _ := newSessionService(t, "sessiondefault", nil)

	session, err := svc.Resolve(context.Background(), "user-without-records")
	require.NoError(t, err)
	require.Equal(t, models.RoleStudent, session.Role)
	require.Nil(t, session.Profile)
	require.Equal(t, "user-without-records", session.UserID)
}

func TestSessionResolveWithRoleAndProfile(t *testing.T) {
	svc, db := newSessionService(t, "sessionfull", nil)

	require.NoError(t, db.Create(&models.UserRole{UserID: "admin-1", Role: models.RoleAdmin}).Error)
	require.NoError(t, db.Create(&models.Profile{
		UserID:     "admin-1",
		FullName:   "Priya Iyer",
		Department: "Administration",
		Phone:      "99990 00001",
	}).Error)

	session, err := svc.Resolve(context.Background(), "admin-1")
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, session.Role)
	require.NotNil(t, session.Profile)
	require.Equal(t, "Priya Iyer", session.Profile.FullName)
	require.Equal(t, "Administration", session.Profile.Department)

	// A role without a profile still resolves.
	require.NoError(t, db.Create(&models.UserRole{UserID: "admin-2", Role: models.RoleAdmin}).Error)
	session, err = svc.Resolve(context.Background(), "admin-2")
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, session.Role)
	require.Nil(t, session.Profile)
}

func TestSessionSignOutRevokesToken(t *testing.T) {
	mini, err := miniredis.Run()
	require.NoError(t, err)
	defer mini.Close()
	cache := redis.NewClient(&redis.Options{Addr: mini.Addr()})

	svc, _ := newSessionService(t, "sessionrevoke", cache)
	ctx := context.Background()

	require.False(t, svc.IsRevoked(ctx, "token-1"))

	require.NoError(t, svc.SignOut(ctx, "user-1", "token-1"))
	require.True(t, svc.IsRevoked(ctx, "token-1"))
	require.False(t, svc.IsRevoked(ctx, "token-2"))

	// Revocations expire with the token lifetime.
	mini.FastForward(2 * time.Hour)
	require.False(t, svc.IsRevoked(ctx, "token-1"))

	// A blank token id is a no-op.
	require.NoError(t, svc.SignOut(ctx, "user-1", ""))
	require.False(t, svc.IsRevoked(ctx, ""))
}
