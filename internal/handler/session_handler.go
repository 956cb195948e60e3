package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/eduonboard-api/internal/service"
	"github.com/noah-isme/eduonboard-api/internal/utils"
)

// SessionHandler bootstraps the signed-in user's role and profile.
type SessionHandler struct {
	service service.SessionService
	logger  zerolog.Logger
}

// NewSessionHandler constructs a session handler.
func NewSessionHandler(service service.SessionService, logger zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		logger:  logger.With().Str("component", "session_handler").Logger(),
	}
}

// Register wires session routes.
func (h *SessionHandler) Register(router fiber.Router) {
	router.Get("/session", h.resolve)
	router.Post("/session/sign-out", h.signOut)
}

func (h *SessionHandler) resolve(c *fiber.Ctx) error {
	userID := userIDStringFromContext(c)
	if userID == "" {
		return utils.SendError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	session, err := h.service.Resolve(c.Context(), userID)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("session resolution failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to resolve session")
	}

	return utils.SendSuccess(c, "session resolved", session)
}

func (h *SessionHandler) signOut(c *fiber.Ctx) error {
	userID := userIDStringFromContext(c)
	if userID == "" {
		return utils.SendError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	tokenID, _ := c.Locals("token_id").(string)
	if err := h.service.SignOut(c.Context(), userID, tokenID); err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("sign-out failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to sign out")
	}

	return utils.SendSuccess(c, "signed out", fiber.Map{"revoked": tokenID != ""})
}
