package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
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

type mockAssistantService struct {
	lastSession string
	lastQuery   string
	lastTitle   string
	reply       dto.ChatMessageResponse
	history     []dto.ChatMessageResponse
	err         error
}

func (m *mockAssistantService) Ask(_ context.Context, sessionID, query string) (dto.ChatMessageResponse, error) {
	m.lastSession = sessionID
	m.lastQuery = query
	if m.err != nil {
		return dto.ChatMessageResponse{}, m.err
	}
	return m.reply, nil
}

func (m *mockAssistantService) Escalate(_ context.Context, sessionID string, _ uint, title string) (dto.ChatMessageResponse, error) {
	m.lastSession = sessionID
	m.lastTitle = title
	if m.err != nil {
		return dto.ChatMessageResponse{}, m.err
	}
	return m.reply, nil
}

func (m *mockAssistantService) History(_ context.Context, sessionID string, _ int) ([]dto.ChatMessageResponse, error) {
	m.lastSession = sessionID
	return m.history, m.err
}

func decodeResponse(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, json.Unmarshal(body, target))
}

func assistantTestApp(svc service.AssistantService) *fiber.App {
	app := fiber.New()
	group := app.Group("/api/v2/assistant", func(c *fiber.Ctx) error {
		c.Locals("user_id", "17")
		return c.Next()
	})
	handler.NewAssistantHandler(svc, zerolog.New(io.Discard)).Register(group)
	return app
}

func TestAssistantHandler_Ask(t *testing.T) {
	confidence := 0.98
	svc := &mockAssistantService{reply: dto.ChatMessageResponse{
		Role:       models.ChatRoleAssistant,
		Content:    "Here is the document checklist.",
		Confidence: &confidence,
	}}
	app := assistantTestApp(svc)

	body, err := json.Marshal(dto.AskRequest{Content: "What documents do I need?"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v2/assistant/messages", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response struct {
		Success bool                    `json:"success"`
		Data    dto.ChatMessageResponse `json:"data"`
	}
	decodeResponse(t, resp, &response)

	require.True(t, response.Success)
	require.Equal(t, models.ChatRoleAssistant, response.Data.Role)
	require.NotNil(t, response.Data.Confidence)
	require.Equal(t, "17", svc.lastSession)
	require.Equal(t, "What documents do I need?", svc.lastQuery)
}

func TestAssistantHandler_AskEmptyQuery(t *testing.T) {
	svc := &mockAssistantService{err: service.ErrEmptyQuery}
	app := assistantTestApp(svc)

	body, err := json.Marshal(dto.AskRequest{Content: "   "})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v2/assistant/messages", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAssistantHandler_Escalate(t *testing.T) {
	svc := &mockAssistantService{reply: dto.ChatMessageResponse{
		Role:      models.ChatRoleAssistant,
		Content:   "Escalation Submitted!",
		Escalated: true,
	}}
	app := assistantTestApp(svc)

	body, err := json.Marshal(dto.EscalateRequest{Title: "Fee portal down"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v2/assistant/escalate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response struct {
		Data dto.ChatMessageResponse `json:"data"`
	}
	decodeResponse(t, resp, &response)
	require.True(t, response.Data.Escalated)
	require.Equal(t, "Fee portal down", svc.lastTitle)
}

func TestAssistantHandler_History(t *testing.T) {
	svc := &mockAssistantService{history: []dto.ChatMessageResponse{
		{Role: models.ChatRoleUser, Content: "fee?"},
		{Role: models.ChatRoleAssistant, Content: "Fee structure..."},
	}}
	app := assistantTestApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v2/assistant/history?limit=10", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response struct {
		Data []dto.ChatMessageResponse `json:"data"`
	}
	decodeResponse(t, resp, &response)
	require.Len(t, response.Data, 2)
	require.Equal(t, "17", svc.lastSession)
}

func TestAssistantHandler_Unauthenticated(t *testing.T) {
	svc := &mockAssistantService{}
	app := fiber.New()
	handler.NewAssistantHandler(svc, zerolog.New(io.Discard)).Register(app.Group("/api/v2/assistant"))

	req := httptest.NewRequest(http.MethodGet, "/api/v2/assistant/history", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
