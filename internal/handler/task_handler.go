package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/eduonboard-api/internal/service"
	"github.com/noah-isme/eduonboard-api/internal/utils"
)

// TaskHandler serves the onboarding checklist for the signed-in student.
type TaskHandler struct {
	service service.TaskService
	logger  zerolog.Logger
}

// NewTaskHandler constructs a task handler.
func NewTaskHandler(service service.TaskService, logger zerolog.Logger) *TaskHandler {
	return &TaskHandler{
		service: service,
		logger:  logger.With().Str("component", "task_handler").Logger(),
	}
}

// Register wires task routes.
func (h *TaskHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/summary", h.summary)
	router.Post("/:id/complete", h.complete)
}

func (h *TaskHandler) list(c *fiber.Ctx) error {
	studentID, ok := studentIDFromContext(c)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	tasks, err := h.service.List(c.Context(), studentID, c.Query("status"))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list tasks")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load tasks")
	}

	return utils.SendSuccess(c, "tasks retrieved", tasks)
}

func (h *TaskHandler) summary(c *fiber.Ctx) error {
	studentID, ok := studentIDFromContext(c)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	summary, err := h.service.Summary(c.Context(), studentID)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to build task summary")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load task summary")
	}

	return utils.SendSuccess(c, "task summary retrieved", summary)
}

func (h *TaskHandler) complete(c *fiber.Ctx) error {
	studentID, ok := studentIDFromContext(c)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	taskID, err := c.ParamsInt("id")
	if err != nil || taskID <= 0 {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid task id")
	}

	task, err := h.service.Complete(c.Context(), studentID, uint(taskID))
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "task not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to complete task")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to complete task")
	}

	return utils.SendSuccess(c, "task completed", task)
}
