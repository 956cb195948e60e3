package dto

import (
	"time"

	"github.com/noah-isme/eduonboard-api/internal/models"
)

// DocumentResponse describes a document and its verification state.
type DocumentResponse struct {
	ID              uint                  `json:"id"`
	StudentID       uint                  `json:"student_id"`
	Name            string                `json:"name"`
	Type            string                `json:"type"`
	Status          models.DocumentStatus `json:"status"`
	Badge           models.BadgeClass     `json:"badge"`
	Required        bool                  `json:"required"`
	Missing         bool                  `json:"missing"`
	UploadedAt      *time.Time            `json:"uploaded_at,omitempty"`
	ReviewedAt      *time.Time            `json:"reviewed_at,omitempty"`
	ReviewedBy      string                `json:"reviewed_by,omitempty"`
	FileSize        string                `json:"file_size,omitempty"`
	RejectionReason string                `json:"rejection_reason,omitempty"`
}

// DocumentSummary counts a student's documents by status plus the documents
// never uploaded at all.
type DocumentSummary struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Reviewed int `json:"reviewed"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Missing  int `json:"missing"`
}

// UploadResponse carries the display-only result of an upload.
type UploadResponse struct {
	DocumentID uint      `json:"document_id"`
	FileSize   string    `json:"file_size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// ReviewRequest is an admin decision on a pending document.
type ReviewRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approve reject"`
	Reason   string `json:"reason" validate:"required_if=Decision reject,max=1000"`
}

// NewDocumentResponse converts a document model.
func NewDocumentResponse(doc models.Document) DocumentResponse {
	return DocumentResponse{
		ID:              doc.ID,
		StudentID:       doc.StudentID,
		Name:            doc.Name,
		Type:            doc.Type,
		Status:          doc.Status,
		Badge:           doc.Status.Badge(),
		Required:        doc.Required,
		Missing:         doc.IsMissing(),
		UploadedAt:      doc.UploadedAt,
		ReviewedAt:      doc.ReviewedAt,
		ReviewedBy:      doc.ReviewedBy,
		FileSize:        doc.FileSize,
		RejectionReason: doc.RejectionReason,
	}
}

// NewDocumentResponseSlice converts a slice of document models preserving order.
func NewDocumentResponseSlice(docs []models.Document) []DocumentResponse {
	responses := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		responses = append(responses, NewDocumentResponse(doc))
	}
	return responses
}
