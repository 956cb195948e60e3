package dto

import (
	"time"

	"github.com/noah-isme/eduonboard-api/internal/models"
)

// TaskResponse describes an onboarding task with its derived display status.
type TaskResponse struct {
	ID          uint              `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Status      models.TaskStatus `json:"status"`
	Badge       models.BadgeClass `json:"badge"`
	DueDate     time.Time         `json:"due_date"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
	Priority    models.Priority   `json:"priority"`
	Required    bool              `json:"required"`
}

// TaskSummary partitions a student's tasks by derived status.
// Completed + InProgress + Pending + Overdue always equals Total.
type TaskSummary struct {
	Total                int `json:"total"`
	Completed            int `json:"completed"`
	InProgress           int `json:"in_progress"`
	Pending              int `json:"pending"`
	Overdue              int `json:"overdue"`
	CompletionPercentage int `json:"completion_percentage"`
}

// NewTaskResponse converts a task model, deriving the display status at the
// supplied reference time.
func NewTaskResponse(task models.OnboardingTask, reference time.Time) TaskResponse {
	status := task.DisplayStatus(reference)
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Category:    task.Category,
		Status:      status,
		Badge:       status.Badge(),
		DueDate:     task.DueDate,
		CompletedAt: task.CompletedAt,
		Priority:    task.Priority,
		Required:    task.Required,
	}
}

// NewTaskResponseSlice converts a slice of task models preserving order.
func NewTaskResponseSlice(tasks []models.OnboardingTask, reference time.Time) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, NewTaskResponse(task, reference))
	}
	return responses
}
