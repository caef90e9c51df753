package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// snapshotResponse lists mirrored records with their stored payloads.
type snapshotResponse struct {
	Kind       string            `json:"kind"`
	Contents   []json.RawMessage `json:"contents"`
	TotalCount int               `json:"totalCount"`
}

// GetSnapshotCounts handles GET /api/snapshots.
func (h *Handler) GetSnapshotCounts(c *gin.Context) {
	counts, err := h.store.CountByKind(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to count snapshot records"})
		return
	}
	c.JSON(http.StatusOK, counts)
}

// GetSnapshot handles GET /api/snapshots/:kind.
func (h *Handler) GetSnapshot(c *gin.Context) {
	kind := c.Param("kind")
	records, err := h.store.ListKind(c.Request.Context(), kind)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve snapshot records"})
		return
	}

	resp := snapshotResponse{
		Kind:       kind,
		Contents:   make([]json.RawMessage, 0, len(records)),
		TotalCount: len(records),
	}
	for _, r := range records {
		resp.Contents = append(resp.Contents, json.RawMessage(r.Payload))
	}
	c.JSON(http.StatusOK, resp)
}
