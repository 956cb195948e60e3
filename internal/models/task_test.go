package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDisplayStatusDerivesOverdue(t *testing.T) {
	now := time.Date(2024, 7, 29, 0, 0, 0, 0, time.UTC)
	task := OnboardingTask{
		Status:  TaskStatusPending,
		DueDate: time.Date(2024, 7, 28, 0, 0, 0, 0, time.UTC),
	}

	require.Equal(t, TaskStatusOverdue, task.DisplayStatus(now))
}

func TestDisplayStatusKeepsCompletedPastDue(t *testing.T) {
	now := time.Date(2024, 7, 29, 0, 0, 0, 0, time.UTC)
	task := OnboardingTask{
		Status:  TaskStatusCompleted,
		DueDate: time.Date(2024, 7, 28, 0, 0, 0, 0, time.UTC),
	}

	require.Equal(t, TaskStatusCompleted, task.DisplayStatus(now))
}

func TestDisplayStatusPassesThroughBeforeDue(t *testing.T) {
	now := time.Date(2024, 7, 29, 0, 0, 0, 0, time.UTC)
	task := OnboardingTask{
		Status:  TaskStatusInProgress,
		DueDate: time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
	}

	require.Equal(t, TaskStatusInProgress, task.DisplayStatus(now))
}

func TestBadgeFallsBackOnUnknownValues(t *testing.T) {
	require.Equal(t, BadgeInfo, TaskStatus("archived").Badge())
	require.Equal(t, BadgeInfo, DocumentStatus("unknown").Badge())
	require.Equal(t, BadgeInfo, NotificationType("broadcast").Badge())
	require.Equal(t, BadgeInfo, TicketStatus("stalled").Badge())
	require.Equal(t, BadgeInfo, EnrollmentStatus("paused").Badge())
}
