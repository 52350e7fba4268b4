package api

import (
	"net/http"

	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/usecase/indexing"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes on-demand maintenance of the search index.
type AdminHandler struct {
	sync    indexing.SyncRunner
	indexer indexing.Reindexer
}

func NewAdminHandler(sync indexing.SyncRunner, indexer indexing.Reindexer) *AdminHandler {
	return &AdminHandler{sync: sync, indexer: indexer}
}

// @Summary Resynchronize the search index
// @Description Runs a full reconciliation of the search index from the primary store
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.SyncReportResponse
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/admin/search/resync [post]
func (h *AdminHandler) Resync(c *gin.Context) {
	report, err := h.sync.Run(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSyncReport(report))
}

func (h *AdminHandler) Reindex(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.indexer.Reindex(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) Remove(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.indexer.Remove(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
