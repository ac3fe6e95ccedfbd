package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-booking/internal/audit"
	domain "github.com/BruksfildServices01/studio-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-booking/internal/httperr"
	"github.com/BruksfildServices01/studio-booking/internal/httpresp"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
}

func NewAuditLogsHandler(logs *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(audit.DefaultPageSize)))

	q := audit.Query{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}

	// --------------------------------------------------
	// Optional day range
	// --------------------------------------------------

	var err error
	if q.From, err = parseDay(c.Query("from")); err != nil {
		httperr.BadRequest(c, "invalid_date", "from must be YYYY-MM-DD")
		return
	}
	if q.To, err = parseDay(c.Query("to")); err != nil {
		httperr.BadRequest(c, "invalid_date", "to must be YYYY-MM-DD")
		return
	}

	out, err := h.logs.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, "audit_list_failed")
		return
	}

	httpresp.OK(c, out)
}

func parseDay(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
