package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/eduonboard-api/internal/dto"
	"github.com/noah-isme/eduonboard-api/internal/service"
	"github.com/noah-isme/eduonboard-api/internal/utils"
)

// DocumentHandler serves document uploads and the admin review queue.
type DocumentHandler struct {
	service service.DocumentService
	logger  zerolog.Logger
}

// NewDocumentHandler constructs a document handler.
func NewDocumentHandler(service service.DocumentService, logger zerolog.Logger) *DocumentHandler {
	return &DocumentHandler{
		service: service,
		logger:  logger.With().Str("component", "document_handler").Logger(),
	}
}

// Register wires the student-facing document routes.
func (h *DocumentHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/summary", h.summary)
	router.Post("/:id/upload", h.upload)
}

// RegisterAdmin wires the review queue routes.
func (h *DocumentHandler) RegisterAdmin(router fiber.Router) {
	router.Get("/pending", h.pending)
	router.Post("/:id/review", h.review)
}

func (h *DocumentHandler) list(c *fiber.Ctx) error {
	studentID, ok := studentIDFromContext(c)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	docs, err := h.service.List(c.Context(), studentID, c.Query("filter"))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list documents")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load documents")
	}

	return utils.SendSuccess(c, "documents retrieved", docs)
}

func (h *DocumentHandler) summary(c *fiber.Ctx) error {
	studentID, ok := studentIDFromContext(c)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	summary, err := h.service.Summary(c.Context(), studentID)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to build document summary")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load document summary")
	}

	return utils.SendSuccess(c, "document summary retrieved", summary)
}

func (h *DocumentHandler) upload(c *fiber.Ctx) error {
	studentID, ok := studentIDFromContext(c)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	docID, err := c.ParamsInt("id")
	if err != nil || docID <= 0 {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid document id")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "file is required")
	}

	result, err := h.service.Upload(c.Context(), studentID, uint(docID), file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDocumentNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "document not found")
		case errors.Is(err, service.ErrDocumentTooLarge):
			return utils.SendError(c, fiber.StatusRequestEntityTooLarge, err.Error())
		case errors.Is(err, service.ErrDocumentTypeNotAllowed):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("document upload failed")
			return utils.SendError(c, fiber.StatusInternalServerError, "upload failed")
		}
	}

	return utils.SendSuccess(c, "document uploaded", result)
}

func (h *DocumentHandler) pending(c *fiber.Ctx) error {
	docs, err := h.service.ListPendingReview(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list pending documents")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load review queue")
	}

	return utils.SendSuccess(c, "pending documents retrieved", docs)
}

func (h *DocumentHandler) review(c *fiber.Ctx) error {
	docID, err := c.ParamsInt("id")
	if err != nil || docID <= 0 {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid document id")
	}

	var payload dto.ReviewRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	doc, err := h.service.Review(c.Context(), uint(docID), payload, userIDStringFromContext(c))
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
		case errors.Is(err, service.ErrDocumentNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "document not found")
		case errors.Is(err, service.ErrDocumentAlreadyReviewed):
			return utils.SendError(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, service.ErrDocumentNotUploaded):
			return utils.SendError(c, fiber.StatusConflict, err.Error())
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("document review failed")
			return utils.SendError(c, fiber.StatusInternalServerError, "review failed")
		}
	}

	return utils.SendSuccess(c, "document reviewed", doc)
}
