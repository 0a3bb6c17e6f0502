package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gayathri-1911/travel-assistant/internal/domain/catalog"
	"github.com/gayathri-1911/travel-assistant/internal/domain/chat"
	"github.com/gayathri-1911/travel-assistant/internal/infra/config"
	apperrors "github.com/gayathri-1911/travel-assistant/pkg/errors"
)

func TestRouter_ChatSuccess(t *testing.T) {
	want := chat.Response{
		Success: true,
		Message: chat.Message{
			Role:      "assistant",
			Content:   "Rome is wonderful!",
			Timestamp: "2025-06-01T12:00:00Z",
			Provider:  "groq",
		},
		SessionID:      "session_cafe0001",
		RelatedContent: []string{"rome_city_tour"},
	}
	chatSvc := &stubChatService{
		respondFn: func(ctx context.Context, req chat.Request) chat.Response {
			require.Equal(t, "tell me about Rome", req.Query)
			return want
		},
	}

	rec := postJSON("/api/v1/chat", `{"query":"tell me about Rome"}`, newRouterUnderTest(t, chatSvc, &stubCatalog{}))
	require.Equal(t, http.StatusOK, rec.Code)

	var got chat.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, want, got)
}

func TestRouter_ChatEmptyQuery(t *testing.T) {
	rec := postJSON("/api/v1/chat", `{"query":"   "}`, newRouterUnderTest(t, &stubChatService{}, &stubCatalog{}))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errBody := decodeErrorBody(t, rec.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
}

func TestRouter_ChatInvalidJSON(t *testing.T) {
	rec := postJSON("/api/v1/chat", `{"query":123}`, newRouterUnderTest(t, &stubChatService{}, &stubCatalog{}))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_ChatStream(t *testing.T) {
	chatSvc := &stubChatService{
		streamFn: func(ctx context.Context, req chat.Request) (chat.StreamStart, <-chan chat.StreamChunk) {
			out := make(chan chat.StreamChunk, 2)
			out <- chat.StreamChunk{Content: "Venice", Provider: "groq", Timestamp: "ts"}
			out <- chat.StreamChunk{Content: "Venice rocks", IsComplete: true, Provider: "groq", Timestamp: "ts"}
			close(out)
			return chat.StreamStart{Type: "start", SessionID: "session_cafe0001", Provider: "groq"}, out
		},
	}

	rec := postJSON("/api/v1/chat/stream", `{"query":"venice?"}`, newRouterUnderTest(t, chatSvc, &stubCatalog{}))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))

	frames := strings.Split(strings.TrimSpace(rec.Body.String()), "\n\n")
	require.Len(t, frames, 4)
	for _, frame := range frames {
		require.True(t, strings.HasPrefix(frame, "data: "))
	}

	var start chat.StreamStart
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(frames[0], "data: ")), &start))
	require.Equal(t, chat.StreamStart{Type: "start", SessionID: "session_cafe0001", Provider: "groq"}, start)

	var final chat.StreamChunk
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(frames[2], "data: ")), &final))
	require.True(t, final.IsComplete)
	require.Equal(t, "Venice rocks", final.Content)

	require.Equal(t, "data: [DONE]", frames[3])
}

func TestRouter_ListProviders(t *testing.T) {
	rec := getPath("/api/v1/chat/providers", newRouterUnderTest(t, &stubChatService{}, &stubCatalog{}))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success   bool            `json:"success"`
		Default   string          `json:"default"`
		Providers []chat.Provider `json:"providers"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.Equal(t, "groq", body.Default)
	require.Len(t, body.Providers, 3)
}

func TestRouter_ListTours(t *testing.T) {
	catalogSvc := &stubCatalog{
		listToursFn: func(ctx context.Context, filters *catalog.TourFilters) ([]catalog.Tour, error) {
			require.Equal(t, "venice", filters.Location)
			require.NotNil(t, filters.MaxPrice)
			require.Equal(t, 400, *filters.MaxPrice)
			return []catalog.Tour{{UID: "venice_gondola_experience"}}, nil
		},
	}

	rec := getPath("/api/v1/content/tours?location=venice&max_price=400", newRouterUnderTest(t, &stubChatService{}, catalogSvc))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool           `json:"success"`
		Tours   []catalog.Tour `json:"tours"`
		Total   int            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.Equal(t, 1, body.Total)
	require.Equal(t, "venice_gondola_experience", body.Tours[0].UID)
}

func TestRouter_ListToursBadMaxPrice(t *testing.T) {
	rec := getPath("/api/v1/content/tours?max_price=cheap", newRouterUnderTest(t, &stubChatService{}, &stubCatalog{}))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_ListToursUpstreamFailure(t *testing.T) {
	catalogSvc := &stubCatalog{
		listToursFn: func(ctx context.Context, filters *catalog.TourFilters) ([]catalog.Tour, error) {
			return nil, apperrors.Wrap("content_unavailable", "tour listing failed", errors.New("boom"))
		},
	}

	rec := getPath("/api/v1/content/tours", newRouterUnderTest(t, &stubChatService{}, catalogSvc))
	require.Equal(t, http.StatusBadGateway, rec.Code)

	errBody := decodeErrorBody(t, rec.Body.Bytes())
	require.Equal(t, "content_unavailable", errBody["error"]["code"])
}

func TestRouter_GetTourNotFound(t *testing.T) {
	catalogSvc := &stubCatalog{
		getTourFn: func(ctx context.Context, uid string) (catalog.Tour, error) {
			return catalog.Tour{}, apperrors.Wrap("not_found", "tour not found", nil)
		},
	}

	rec := getPath("/api/v1/content/tours/atlantis", newRouterUnderTest(t, &stubChatService{}, catalogSvc))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_SearchRequiresQuery(t *testing.T) {
	rec := getPath("/api/v1/content/search", newRouterUnderTest(t, &stubChatService{}, &stubCatalog{}))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Search(t *testing.T) {
	catalogSvc := &stubCatalog{
		searchFn: func(ctx context.Context, query string) (catalog.ContentContext, error) {
			require.Equal(t, "venice", query)
			return catalog.ContentContext{Tours: []catalog.Tour{{UID: "venice_gondola_experience"}}, TotalResults: 1}, nil
		},
	}

	rec := getPath("/api/v1/content/search?q=venice", newRouterUnderTest(t, &stubChatService{}, catalogSvc))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool                   `json:"success"`
		Results catalog.ContentContext `json:"results"`
		Query   string                 `json:"query"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.Equal(t, "venice", body.Query)
	require.Equal(t, 1, body.Results.TotalResults)
}

func TestRouter_CategoriesAndLocations(t *testing.T) {
	catalogSvc := &stubCatalog{
		categoriesFn: func(ctx context.Context) ([]string, error) { return []string{"Cultural", "Romantic"}, nil },
		locationsFn:  func(ctx context.Context) ([]string, error) { return []string{"Rome, Italy"}, nil },
	}
	server := newRouterUnderTest(t, &stubChatService{}, catalogSvc)

	rec := getPath("/api/v1/content/categories", server)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Romantic")

	rec = getPath("/api/v1/content/locations", server)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Rome, Italy")
}

func TestRouter_AuthRequiredWhenSecretSet(t *testing.T) {
	cfg := testConfig()
	cfg.HTTP.AuthSecret = "topsecret"
	handler := NewHandler(&stubChatService{}, &stubCatalog{}, newTestLogger())
	server := NewRouter(cfg, handler)

	rec := getPath("/api/v1/chat/providers", server)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func postJSON(path, body string, server *http.Server) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func getPath(path string, server *http.Server) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func newRouterUnderTest(t *testing.T, chatSvc chat.Service, catalogSvc catalog.Service) *http.Server {
	t.Helper()
	handler := NewHandler(chatSvc, catalogSvc, newTestLogger())
	return NewRouter(testConfig(), handler)
}

func testConfig() *config.Config {
	return &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
	}
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

type stubChatService struct {
	respondFn func(ctx context.Context, req chat.Request) chat.Response
	streamFn  func(ctx context.Context, req chat.Request) (chat.StreamStart, <-chan chat.StreamChunk)
}

func (s *stubChatService) Respond(ctx context.Context, req chat.Request) chat.Response {
	if s.respondFn != nil {
		return s.respondFn(ctx, req)
	}
	return chat.Response{Success: true}
}

func (s *stubChatService) Stream(ctx context.Context, req chat.Request) (chat.StreamStart, <-chan chat.StreamChunk) {
	if s.streamFn != nil {
		return s.streamFn(ctx, req)
	}
	out := make(chan chat.StreamChunk)
	close(out)
	return chat.StreamStart{Type: "start"}, out
}

type stubCatalog struct {
	listToursFn  func(ctx context.Context, filters *catalog.TourFilters) ([]catalog.Tour, error)
	getTourFn    func(ctx context.Context, uid string) (catalog.Tour, error)
	searchFn     func(ctx context.Context, query string) (catalog.ContentContext, error)
	categoriesFn func(ctx context.Context) ([]string, error)
	locationsFn  func(ctx context.Context) ([]string, error)
}

func (s *stubCatalog) ListTours(ctx context.Context, filters *catalog.TourFilters) ([]catalog.Tour, error) {
	if s.listToursFn != nil {
		return s.listToursFn(ctx, filters)
	}
	return nil, nil
}

func (s *stubCatalog) GetTourByUID(ctx context.Context, uid string) (catalog.Tour, error) {
	if s.getTourFn != nil {
		return s.getTourFn(ctx, uid)
	}
	return catalog.Tour{}, nil
}

func (s *stubCatalog) ListDestinations(ctx context.Context) ([]catalog.Destination, error) {
	return nil, nil
}

func (s *stubCatalog) Search(ctx context.Context, query string) (catalog.ContentContext, error) {
	if s.searchFn != nil {
		return s.searchFn(ctx, query)
	}
	return catalog.ContentContext{}, nil
}

func (s *stubCatalog) Categories(ctx context.Context) ([]string, error) {
	if s.categoriesFn != nil {
		return s.categoriesFn(ctx)
	}
	return nil, nil
}

func (s *stubCatalog) Locations(ctx context.Context) ([]string, error) {
	if s.locationsFn != nil {
		return s.locationsFn(ctx)
	}
	return nil, nil
}
