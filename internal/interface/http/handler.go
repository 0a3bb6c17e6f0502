package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gayathri-1911/travel-assistant/internal/domain/catalog"
	"github.com/gayathri-1911/travel-assistant/internal/domain/chat"
	apperrors "github.com/gayathri-1911/travel-assistant/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	chatSvc    chat.Service
	catalogSvc catalog.Service
	logger     *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(chatSvc chat.Service, catalogSvc catalog.Service, logger *slog.Logger) *Handler {
	return &Handler{
		chatSvc:    chatSvc,
		catalogSvc: catalogSvc,
		logger:     logger.With("component", "http.handler"),
	}
}

// Chat handles the synchronous chat endpoint. Service failures never surface
// here; the domain folds them into a success-shaped apology envelope.
func (h *Handler) Chat(c *gin.Context) {
	var req chat.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "query cannot be empty", nil))
		return
	}

	c.JSON(http.StatusOK, h.chatSvc.Respond(c.Request.Context(), req))
}

// ChatStream replays the chat answer as Server-Sent Events: a start frame, then
// cumulative content chunks, then a [DONE] terminator.
func (h *Handler) ChatStream(c *gin.Context) {
	var req chat.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "query cannot be empty", nil))
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "stream_unsupported", "streaming not supported", nil))
		return
	}

	start, chunks := h.chatSvc.Stream(c.Request.Context(), req)
	h.writeEvent(c, flusher, start)
	for chunk := range chunks {
		h.writeEvent(c, flusher, chunk)
	}
	c.Writer.Write([]byte("data: [DONE]\n\n"))
	flusher.Flush()
}

func (h *Handler) writeEvent(c *gin.Context, flusher http.Flusher, event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("marshal stream event failed", "error", err)
		return
	}
	c.Writer.Write([]byte("data: "))
	c.Writer.Write(payload)
	c.Writer.Write([]byte("\n\n"))
	flusher.Flush()
}

// ListProviders returns the selectable LLM providers.
func (h *Handler) ListProviders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"providers": chat.Providers(),
		"default":   chat.DefaultProviderID,
	})
}

// ListTours returns tours with optional location/category/max_price filtering.
func (h *Handler) ListTours(c *gin.Context) {
	filters := &catalog.TourFilters{
		Location: c.Query("location"),
		Category: c.Query("category"),
	}
	if raw := c.Query("max_price"); raw != "" {
		maxPrice, err := strconv.Atoi(raw)
		if err != nil {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "max_price must be an integer", err))
			return
		}
		filters.MaxPrice = &maxPrice
	}

	tours, err := h.catalogSvc.ListTours(c.Request.Context(), filters)
	if err != nil {
		abortWithError(c, contentError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tours":   tours,
		"total":   len(tours),
	})
}

// GetTour returns one tour by uid.
func (h *Handler) GetTour(c *gin.Context) {
	tour, err := h.catalogSvc.GetTourByUID(c.Request.Context(), c.Param("uid"))
	if err != nil {
		if apperrors.IsCode(err, "not_found") {
			abortWithError(c, NewHTTPError(http.StatusNotFound, "not_found", "tour not found", err))
			return
		}
		abortWithError(c, contentError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tour":    tour,
	})
}

// ListDestinations returns every destination.
func (h *Handler) ListDestinations(c *gin.Context) {
	destinations, err := h.catalogSvc.ListDestinations(c.Request.Context())
	if err != nil {
		abortWithError(c, contentError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"destinations": destinations,
		"total":        len(destinations),
	})
}

// SearchContent searches tours and destinations for a free-text query.
func (h *Handler) SearchContent(c *gin.Context) {
	query := c.Query("q")
	if strings.TrimSpace(query) == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "q cannot be empty", nil))
		return
	}

	results, err := h.catalogSvc.Search(c.Request.Context(), query)
	if err != nil {
		abortWithError(c, contentError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"results": results,
		"query":   query,
	})
}

// ListCategories returns the distinct tour categories.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.catalogSvc.Categories(c.Request.Context())
	if err != nil {
		abortWithError(c, contentError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": categories,
	})
}

// ListLocations returns the distinct tour locations.
func (h *Handler) ListLocations(c *gin.Context) {
	locations, err := h.catalogSvc.Locations(c.Request.Context())
	if err != nil {
		abortWithError(c, contentError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"locations": locations,
	})
}

func contentError(err error) *HTTPError {
	status := http.StatusInternalServerError
	code := "content_failed"
	if apperrors.IsCode(err, "content_unavailable") {
		status = http.StatusBadGateway
		code = "content_unavailable"
	}
	return NewHTTPError(status, code, errMessage(err), err)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
