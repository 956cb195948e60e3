package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/eduonboard-api/internal/dto"
	"github.com/noah-isme/eduonboard-api/internal/service"
	"github.com/noah-isme/eduonboard-api/internal/utils"
)

// AssistantHandler serves the onboarding helpdesk conversation.
type AssistantHandler struct {
	service service.AssistantService
	logger  zerolog.Logger
}

// NewAssistantHandler constructs an assistant handler.
func NewAssistantHandler(service service.AssistantService, logger zerolog.Logger) *AssistantHandler {
	return &AssistantHandler{
		service: service,
		logger:  logger.With().Str("component", "assistant_handler").Logger(),
	}
}

// Register wires assistant routes.
func (h *AssistantHandler) Register(router fiber.Router) {
	router.Get("/history", h.history)
	router.Post("/messages", h.ask)
	router.Post("/escalate", h.escalate)
}

func (h *AssistantHandler) history(c *fiber.Ctx) error {
	sessionID := userIDStringFromContext(c)
	if sessionID == "" {
		return utils.SendError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	limit, err := parseQueryInt(c, "limit")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid limit")
	}

	messages, err := h.service.History(c.Context(), sessionID, limit)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load conversation history")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load history")
	}

	return utils.SendSuccess(c, "history retrieved", messages)
}

func (h *AssistantHandler) ask(c *fiber.Ctx) error {
	sessionID := userIDStringFromContext(c)
	if sessionID == "" {
		return utils.SendError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var payload dto.AskRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	reply, err := h.service.Ask(c.Context(), sessionID, payload.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyQuery), isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, "message must not be empty")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("assistant reply failed")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to process message")
		}
	}

	return utils.SendSuccess(c, "reply generated", reply)
}

func (h *AssistantHandler) escalate(c *fiber.Ctx) error {
	sessionID := userIDStringFromContext(c)
	studentID, ok := studentIDFromContext(c)
	if sessionID == "" || !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var payload dto.EscalateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	reply, err := h.service.Escalate(c.Context(), sessionID, studentID, payload.Title)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("escalation failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to escalate")
	}

	return utils.SendSuccess(c, "escalation created", reply)
}
