package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/eduonboard-api/internal/service"
	"github.com/noah-isme/eduonboard-api/internal/utils"
)

// AdminHandler serves the staff dashboard: roster search and aggregates.
type AdminHandler struct {
	service service.AdminService
	logger  zerolog.Logger
}

// NewAdminHandler constructs an admin handler.
func NewAdminHandler(service service.AdminService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger.With().Str("component", "admin_handler").Logger(),
	}
}

// Register wires dashboard routes.
func (h *AdminHandler) Register(router fiber.Router) {
	router.Get("/students", h.students)
	router.Get("/analytics", h.analytics)
	router.Get("/overview", h.overview)
}

func (h *AdminHandler) students(c *fiber.Ctx) error {
	rows, err := h.service.SearchStudents(c.Context(), c.Query("q"), c.Query("department"))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("student search failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to search students")
	}

	return utils.SendSuccess(c, "students retrieved", rows)
}

func (h *AdminHandler) analytics(c *fiber.Ctx) error {
	report, err := h.service.Analytics(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("analytics aggregation failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to build analytics")
	}

	return utils.SendSuccess(c, "analytics retrieved", report)
}

func (h *AdminHandler) overview(c *fiber.Ctx) error {
	report, err := h.service.Overview(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("overview aggregation failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to build overview")
	}

	return utils.SendSuccess(c, "overview retrieved", report)
}
