package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"care-site-backend/internal/cms"
	"care-site-backend/internal/content"
	"care-site-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	content *content.Service
	store   store.Store
}

// NewHandler creates a new API handler. st may be nil when no snapshot
// database is configured.
func NewHandler(svc *content.Service, st store.Store) *Handler {
	return &Handler{
		content: svc,
		store:   st,
	}
}

// Health handles GET /healthz.
func (h *Handler) Health(c *gin.Context) {
	source := "fallback"
	if h.content.Remote() {
		source = "cms"
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "source": source})
}

// parseQueries copies the supported query parameters into cms.Queries
// without interpreting them, except that numeric ones must be integers.
func parseQueries(c *gin.Context) (*cms.Queries, error) {
	q := &cms.Queries{
		DraftKey:         c.Query("draftKey"),
		Orders:           c.Query("orders"),
		Q:                c.Query("q"),
		Filters:          c.Query("filters"),
		RichEditorFormat: c.Query("richEditorFormat"),
		Fields:           splitList(c.Query("fields")),
		IDs:              splitList(c.Query("ids")),
	}

	for name, dst := range map[string]**int{"limit": &q.Limit, "offset": &q.Offset, "depth": &q.Depth} {
		raw, ok := c.GetQuery(name)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errInvalidQuery(name, raw)
		}
		*dst = cms.Int(n)
	}
	return q, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

type invalidQueryError struct {
	name, value string
}

func (e *invalidQueryError) Error() string {
	return "invalid " + e.name + " " + strconv.Quote(e.value)
}

func (e *invalidQueryError) Unwrap() error { return content.ErrInvalidArgument }

func errInvalidQuery(name, value string) error {
	return &invalidQueryError{name: name, value: value}
}

// respond writes v as JSON or maps err onto a status code.
func respond(c *gin.Context, v any, err error) {
	if err == nil {
		c.JSON(http.StatusOK, v)
		return
	}

	var apiErr *cms.APIError
	switch {
	case errors.Is(err, content.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, content.ErrInvalidArgument):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, content.ErrUnavailable):
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "content unavailable without CMS credentials"})
	case errors.As(err, &apiErr):
		log.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("CMS returned an error")
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "upstream CMS error"})
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("content request failed")
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "failed to retrieve content"})
	}
}
