package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/eduonboard-api/internal/dto"
	"github.com/noah-isme/eduonboard-api/internal/service"
	"github.com/noah-isme/eduonboard-api/internal/utils"
)

// TicketHandler serves the escalation queue for staff.
type TicketHandler struct {
	service service.TicketService
	logger  zerolog.Logger
}

// NewTicketHandler constructs a ticket handler.
func NewTicketHandler(service service.TicketService, logger zerolog.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		logger:  logger.With().Str("component", "ticket_handler").Logger(),
	}
}

// Register wires ticket routes.
func (h *TicketHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Patch("/:id/assign", h.assign)
	router.Patch("/:id/resolve", h.resolve)
	router.Patch("/:id/close", h.close)
}

func (h *TicketHandler) list(c *fiber.Ctx) error {
	tickets, err := h.service.List(c.Context(), c.Query("status"))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list tickets")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load tickets")
	}

	return utils.SendSuccess(c, "tickets retrieved", tickets)
}

func (h *TicketHandler) assign(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid ticket id")
	}

	var payload dto.TicketAssignRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	ticket, err := h.service.Assign(c.Context(), uint(id), payload)
	if err != nil {
		return h.ticketError(c, err, "assign")
	}

	return utils.SendSuccess(c, "ticket assigned", ticket)
}

func (h *TicketHandler) resolve(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid ticket id")
	}

	ticket, err := h.service.Resolve(c.Context(), uint(id))
	if err != nil {
		return h.ticketError(c, err, "resolve")
	}

	return utils.SendSuccess(c, "ticket resolved", ticket)
}

func (h *TicketHandler) close(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid ticket id")
	}

	ticket, err := h.service.Close(c.Context(), uint(id))
	if err != nil {
		return h.ticketError(c, err, "close")
	}

	return utils.SendSuccess(c, "ticket closed", ticket)
}

func (h *TicketHandler) ticketError(c *fiber.Ctx, err error, action string) error {
	switch {
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	case errors.Is(err, service.ErrTicketNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "ticket not found")
	case errors.Is(err, service.ErrTicketTerminal):
		return utils.SendError(c, fiber.StatusConflict, err.Error())
	default:
		requestLogger(h.logger, c).Error().Err(err).Str("action", action).Msg("ticket update failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to update ticket")
	}
}
