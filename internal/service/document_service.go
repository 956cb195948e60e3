package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/eduonboard-api/internal/dto"
	"github.com/noah-isme/eduonboard-api/internal/models"
	"github.com/noah-isme/eduonboard-api/internal/observability"
	"github.com/noah-isme/eduonboard-api/internal/repository"
)

var (
	// ErrDocumentNotFound indicates the document does not exist or belongs to another student.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrDocumentTooLarge indicates the upload exceeded the configured limit.
	ErrDocumentTooLarge = errors.New("file exceeds maximum allowed size")
	// ErrDocumentTypeNotAllowed indicates the sniffed MIME type is not permitted.
	ErrDocumentTypeNotAllowed = errors.New("file type not allowed")
	// ErrDocumentAlreadyReviewed indicates a second review decision on a terminal document.
	ErrDocumentAlreadyReviewed = errors.New("document already reviewed")
	// ErrDocumentNotUploaded indicates a review decision on a document with no file behind it.
	ErrDocumentNotUploaded = errors.New("document has not been uploaded")
)

var allowedDocumentTypes = []string{"application/pdf", "image/jpeg", "image/png"}

// DocumentService manages document submission and verification.
type DocumentService interface {
	List(ctx context.Context, studentID uint, token string) ([]dto.DocumentResponse, error)
	ListPendingReview(ctx context.Context) ([]dto.DocumentResponse, error)
	Upload(ctx context.Context, studentID, docID uint, file *multipart.FileHeader) (dto.UploadResponse, error)
	Review(ctx context.Context, docID uint, req dto.ReviewRequest, reviewer string) (dto.DocumentResponse, error)
	Summary(ctx context.Context, studentID uint) (dto.DocumentSummary, error)
}

type documentService struct {
	docs          repository.DocumentRepository
	notifications NotificationService
	validator     *validator.Validate
	sanitizer     *bluemonday.Policy
	logger        zerolog.Logger
	maxSize       int64
	now           func() time.Time
}

// NewDocumentService constructs a document service.
func NewDocumentService(docs repository.DocumentRepository, notifications NotificationService, validate *validator.Validate, maxSizeMB int, logger zerolog.Logger) DocumentService {
	if maxSizeMB <= 0 {
		maxSizeMB = 5
	}
	return &documentService{
		docs:          docs,
		notifications: notifications,
		validator:     validate,
		sanitizer:     bluemonday.StrictPolicy(),
		logger:        logger.With().Str("component", "document_service").Logger(),
		maxSize:       int64(maxSizeMB) * 1024 * 1024,
		now:           time.Now,
	}
}

func (s *documentService) List(ctx context.Context, studentID uint, token string) ([]dto.DocumentResponse, error) {
	docs, err := s.docs.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return dto.NewDocumentResponseSlice(FilterDocuments(docs, token)), nil
}

func (s *documentService) ListPendingReview(ctx context.Context) ([]dto.DocumentResponse, error) {
	docs, err := s.docs.ListByStatus(ctx, models.DocumentStatusPending)
	if err != nil {
		return nil, err
	}

	// Unsubmitted documents are stored as pending too; the review queue only
	// wants the ones that actually have a file.
	uploaded := make([]models.Document, 0, len(docs))
	for _, doc := range docs {
		if !doc.IsMissing() {
			uploaded = append(uploaded, doc)
		}
	}
	return dto.NewDocumentResponseSlice(uploaded), nil
}

func (s *documentService) Upload(ctx context.Context, studentID, docID uint, file *multipart.FileHeader) (dto.UploadResponse, error) {
	doc, err := s.docs.FindByID(ctx, docID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UploadResponse{}, ErrDocumentNotFound
		}
		return dto.UploadResponse{}, err
	}
	if doc.StudentID != studentID {
		return dto.UploadResponse{}, ErrDocumentNotFound
	}

	if file == nil {
		return dto.UploadResponse{}, errors.New("file is required")
	}
	if file.Size > s.maxSize {
		observability.DocumentUploadsRejected().WithLabelValues("size").Inc()
		return dto.UploadResponse{}, ErrDocumentTooLarge
	}

	if err := s.sniffType(file); err != nil {
		observability.DocumentUploadsRejected().WithLabelValues("type").Inc()
		return dto.UploadResponse{}, err
	}

	// Re-upload of a rejected document returns it to pending and discards the
	// previous review outcome, including the rejection reason.
	now := s.now()
	doc.Status = models.DocumentStatusPending
	doc.UploadedAt = &now
	doc.ReviewedAt = nil
	doc.ReviewedBy = ""
	doc.RejectionReason = ""
	doc.FileSize = formatFileSize(file.Size)

	if err := s.docs.Update(ctx, &doc); err != nil {
		return dto.UploadResponse{}, err
	}

	s.logger.Info().Uint("document_id", doc.ID).Uint("student_id", studentID).Str("size", doc.FileSize).Msg("document uploaded")

	return dto.UploadResponse{
		DocumentID: doc.ID,
		FileSize:   doc.FileSize,
		UploadedAt: now,
	}, nil
}

func (s *documentService) Review(ctx context.Context, docID uint, req dto.ReviewRequest, reviewer string) (dto.DocumentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.DocumentResponse{}, err
	}

	doc, err := s.docs.FindByID(ctx, docID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.DocumentResponse{}, ErrDocumentNotFound
		}
		return dto.DocumentResponse{}, err
	}
	if doc.Status == models.DocumentStatusApproved || doc.Status == models.DocumentStatusRejected {
		return dto.DocumentResponse{}, ErrDocumentAlreadyReviewed
	}
	// Same rule as the review queue: no file, nothing to decide on.
	if doc.IsMissing() {
		return dto.DocumentResponse{}, ErrDocumentNotUploaded
	}

	now := s.now()
	doc.ReviewedAt = &now
	doc.ReviewedBy = reviewer

	var notifType models.NotificationType
	var title, message string
	switch req.Decision {
	case "approve":
		doc.Status = models.DocumentStatusApproved
		doc.RejectionReason = ""
		notifType = models.NotificationSuccess
		title = "Document Approved"
		message = fmt.Sprintf("Your %s has been successfully verified.", doc.Name)
	default:
		doc.Status = models.DocumentStatusRejected
		doc.RejectionReason = strings.TrimSpace(s.sanitizer.Sanitize(req.Reason))
		notifType = models.NotificationAlert
		title = "Document Rejected"
		message = fmt.Sprintf("Your %s was rejected. %s", doc.Name, doc.RejectionReason)
	}

	if err := s.docs.Update(ctx, &doc); err != nil {
		return dto.DocumentResponse{}, err
	}

	if s.notifications != nil {
		payload := dto.NotificationCreateRequest{
			UserID:  fmt.Sprintf("%d", doc.StudentID),
			Title:   title,
			Message: message,
			Type:    string(notifType),
		}
		if doc.Status == models.DocumentStatusRejected {
			payload.ActionLabel = "Re-upload"
		}
		if _, err := s.notifications.Publish(ctx, payload); err != nil {
			s.logger.Warn().Err(err).Uint("document_id", doc.ID).Msg("failed to notify student of review decision")
		}
	}

	return dto.NewDocumentResponse(doc), nil
}

func (s *documentService) Summary(ctx context.Context, studentID uint) (dto.DocumentSummary, error) {
	docs, err := s.docs.ListByStudent(ctx, studentID)
	if err != nil {
		return dto.DocumentSummary{}, err
	}
	return BuildDocumentSummary(docs), nil
}

func (s *documentService) sniffType(file *multipart.FileHeader) error {
	source, err := file.Open()
	if err != nil {
		return err
	}
	defer func() { _ = source.Close() }()

	head := make([]byte, 3072)
	n, err := source.Read(head)
	if err != nil && err != io.EOF {
		return err
	}

	detected := mimetype.Detect(head[:n])
	for _, allowed := range allowedDocumentTypes {
		if detected.Is(allowed) {
			return nil
		}
	}
	return ErrDocumentTypeNotAllowed
}

// FilterDocuments returns documents whose stored status or type equals the
// token. "all" passes everything through; order is preserved.
func FilterDocuments(docs []models.Document, token string) []models.Document {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" || strings.EqualFold(trimmed, FilterAll) {
		return docs
	}

	filtered := make([]models.Document, 0, len(docs))
	for _, doc := range docs {
		if strings.EqualFold(string(doc.Status), trimmed) || strings.EqualFold(doc.Type, trimmed) {
			filtered = append(filtered, doc)
		}
	}
	return filtered
}

// BuildDocumentSummary counts documents by stored status plus the missing
// count: documents never uploaded, regardless of status.
func BuildDocumentSummary(docs []models.Document) dto.DocumentSummary {
	summary := dto.DocumentSummary{Total: len(docs)}
	for _, doc := range docs {
		switch doc.Status {
		case models.DocumentStatusApproved:
			summary.Approved++
		case models.DocumentStatusRejected:
			summary.Rejected++
		case models.DocumentStatusReviewed:
			summary.Reviewed++
		default:
			summary.Pending++
		}
		if doc.IsMissing() {
			summary.Missing++
		}
	}
	return summary
}

func formatFileSize(size int64) string {
	const (
		kb = 1 << 10
		mb = 1 << 20
	)
	switch {
	case size >= mb:
		return fmt.Sprintf("%.1f MB", float64(size)/float64(mb))
	case size >= kb:
		return fmt.Sprintf("%.0f KB", float64(size)/float64(kb))
	default:
		return fmt.Sprintf("%d B", size)
	}
}
