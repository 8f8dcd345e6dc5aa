package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-org/search-indexer/internal/domain"
	"github.com/folio-org/search-indexer/internal/reindex"
	"github.com/folio-org/search-indexer/internal/store/schema"
)

// tenantHeader carries the tenant the request operates on
const tenantHeader = "X-Okapi-Tenant"

// Handler defines the reindex operator endpoints
//
//go:generate mockgen -source=handler.go -destination=../mocks/api.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetStatuses returns all reindex status rows for the tenant
	// GET /reindex/status
	GetStatuses(c *gin.Context)

	// GetStatus returns one entity type's reindex status row
	// GET /reindex/status/:entityType
	GetStatus(c *gin.Context)

	// TriggerMerge starts the merge phase for an entity type
	// POST /reindex/:entityType
	TriggerMerge(c *gin.Context)

	// TriggerUpload starts the upload phase for an entity type
	// POST /reindex/:entityType/upload
	TriggerUpload(c *gin.Context)

	// Resume re-runs the unfinished ranges of an interrupted phase
	// POST /reindex/:entityType/resume
	Resume(c *gin.Context)

	// HealthCheck returns the service health
	// GET /health
	HealthCheck(c *gin.Context)
}

type handler struct {
	orchestrator reindex.Orchestrator
}

// NewHandler creates the reindex API handler
func NewHandler(orchestrator reindex.Orchestrator) Handler {
	return &handler{orchestrator: orchestrator}
}

func tenant(c *gin.Context) (string, bool) {
	t := c.GetHeader(tenantHeader)
	if t == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing " + tenantHeader + " header"})
		return "", false
	}
	return t, true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrReindexInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUnknownResourceType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrRangeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// GetStatuses returns all reindex status rows for the tenant
func (h *handler) GetStatuses(c *gin.Context) {
	t, ok := tenant(c)
	if !ok {
		return
	}

	statuses, err := h.orchestrator.Status(c.Request.Context(), t)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, statuses)
}

// GetStatus returns one entity type's reindex status row
func (h *handler) GetStatus(c *gin.Context) {
	t, ok := tenant(c)
	if !ok {
		return
	}

	entityType := schema.ReindexEntityType(c.Param("entityType"))
	status, err := h.orchestrator.StatusFor(c.Request.Context(), t, entityType)
	if err != nil {
		respondError(c, err)
		return
	}
	if status == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no reindex status for " + string(entityType)})
		return
	}

	c.JSON(http.StatusOK, status)
}

// TriggerMerge starts the merge phase for an entity type
func (h *handler) TriggerMerge(c *gin.Context) {
	t, ok := tenant(c)
	if !ok {
		return
	}

	entityType := schema.ReindexEntityType(c.Param("entityType"))
	if err := h.orchestrator.StartMerge(c.Request.Context(), t, entityType); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"entityType": entityType, "phase": "merge"})
}

// TriggerUpload starts the upload phase for an entity type
func (h *handler) TriggerUpload(c *gin.Context) {
	t, ok := tenant(c)
	if !ok {
		return
	}

	entityType := schema.ReindexEntityType(c.Param("entityType"))
	if err := h.orchestrator.StartUpload(c.Request.Context(), t, entityType); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"entityType": entityType, "phase": "upload"})
}

// Resume re-runs the unfinished ranges of an interrupted phase
func (h *handler) Resume(c *gin.Context) {
	t, ok := tenant(c)
	if !ok {
		return
	}

	entityType := schema.ReindexEntityType(c.Param("entityType"))
	if err := h.orchestrator.Resume(c.Request.Context(), t, entityType); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"entityType": entityType, "phase": "resume"})
}

// HealthCheck returns the service health
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
