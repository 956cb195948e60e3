package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/eduonboard-api/internal/dto"
	"github.com/noah-isme/eduonboard-api/internal/handler"
	"github.com/noah-isme/eduonboard-api/internal/models"
	"github.com/noah-isme/eduonboard-api/internal/service"
)

type mockDocumentService struct {
	lastStudent  uint
	lastDocID    uint
	lastReview   dto.ReviewRequest
	lastReviewer string
	docs         []dto.DocumentResponse
	pending      []dto.DocumentResponse
	upload       dto.UploadResponse
	reviewed     dto.DocumentResponse
	summary      dto.DocumentSummary
	err          error
}

func (m *mockDocumentService) List(_ context.Context, studentID uint, _ string) ([]dto.DocumentResponse, error) {
	m.lastStudent = studentID
	return m.docs, m.err
}

func (m *mockDocumentService) ListPendingReview(_ context.Context) ([]dto.DocumentResponse, error) {
	return m.pending, m.err
}

func (m *mockDocumentService) Upload(_ context.Context, studentID, docID uint, _ *multipart.FileHeader) (dto.UploadResponse, error) {
	m.lastStudent = studentID
	m.lastDocID = docID
	if m.err != nil {
		return dto.UploadResponse{}, m.err
	}
	return m.upload, nil
}

func (m *mockDocumentService) Review(_ context.Context, docID uint, req dto.ReviewRequest, reviewer string) (dto.DocumentResponse, error) {
	m.lastDocID = docID
	m.lastReview = req
	m.lastReviewer = reviewer
	if m.err != nil {
		return dto.DocumentResponse{}, m.err
	}
	return m.reviewed, nil
}

func (m *mockDocumentService) Summary(_ context.Context, studentID uint) (dto.DocumentSummary, error) {
	m.lastStudent = studentID
	return m.summary, m.err
}

func documentAdminApp(svc service.DocumentService) *fiber.App {
	app := fiber.New()
	group := app.Group("/api/v2/admin/documents", func(c *fiber.Ctx) error {
		c.Locals("user_id", "admin-1")
		return c.Next()
	})
	handler.NewDocumentHandler(svc, zerolog.New(io.Discard)).RegisterAdmin(group)
	return app
}

func TestDocumentHandler_UploadMultipart(t *testing.T) {
	svc := &mockDocumentService{upload: dto.UploadResponse{DocumentID: 4, FileSize: "1.2 MB"}}
	app := fiber.New()
	group := app.Group("/api/v2/student/documents", func(c *fiber.Ctx) error {
		c.Locals("user_id", "3")
		return c.Next()
	})
	handler.NewDocumentHandler(svc, zerolog.New(io.Discard)).Register(group)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "certificate.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 test"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v2/student/documents/4/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, uint(3), svc.lastStudent)
	require.Equal(t, uint(4), svc.lastDocID)

	// Missing file part is rejected before the service is called.
	req = httptest.NewRequest(http.MethodPost, "/api/v2/student/documents/4/upload", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDocumentHandler_ReviewDecision(t *testing.T) {
	svc := &mockDocumentService{reviewed: dto.DocumentResponse{ID: 7, Status: models.DocumentStatusRejected, RejectionReason: "Seal missing"}}
	app := documentAdminApp(svc)

	payload, err := json.Marshal(dto.ReviewRequest{Decision: "reject", Reason: "Seal missing"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v2/admin/documents/7/review", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, uint(7), svc.lastDocID)
	require.Equal(t, "reject", svc.lastReview.Decision)
	require.Equal(t, "admin-1", svc.lastReviewer)
}

func TestDocumentHandler_ReviewErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		statusCode int
	}{
		{name: "not found", err: service.ErrDocumentNotFound, statusCode: fiber.StatusNotFound},
		{name: "terminal", err: service.ErrDocumentAlreadyReviewed, statusCode: fiber.StatusConflict},
		{name: "generic", err: errors.New("boom"), statusCode: fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockDocumentService{err: tc.err}
			app := documentAdminApp(svc)

			payload, err := json.Marshal(dto.ReviewRequest{Decision: "approve"})
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/api/v2/admin/documents/7/review", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, tc.statusCode, resp.StatusCode)
		})
	}
}

func TestDocumentHandler_PendingQueue(t *testing.T) {
	svc := &mockDocumentService{pending: []dto.DocumentResponse{
		{ID: 1, Name: "Marksheet", Status: models.DocumentStatusPending},
	}}
	app := documentAdminApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v2/admin/documents/pending", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response struct {
		Data []dto.DocumentResponse `json:"data"`
	}
	decodeResponse(t, resp, &response)
	require.Len(t, response.Data, 1)
}
