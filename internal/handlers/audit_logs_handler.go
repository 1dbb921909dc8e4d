package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/serenitylabs/medspa-scheduler/internal/httperr"
	"github.com/serenitylabs/medspa-scheduler/internal/httpresp"
	"github.com/serenitylabs/medspa-scheduler/internal/middleware"
	"github.com/serenitylabs/medspa-scheduler/internal/models"
	"github.com/serenitylabs/medspa-scheduler/internal/pagination"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List returns the audit trail of the authenticated user's medspa,
// newest entries last, paginated by numeric id cursor.
func (h *AuditLogsHandler) List(c *gin.Context) {
	medspaID := c.GetString(middleware.ContextMedspaID)
	if medspaID == "" {
		httperr.Unauthorized(c, "unauthorized", "authentication required")
		return
	}

	page := pagination.FromQuery(c)

	q := h.db.Where("medspa_id = ?", medspaID)
	if page.Cursor != "" {
		after, err := strconv.ParseUint(page.Cursor, 10, 64)
		if err != nil {
			httperr.Unprocessable(c, "invalid_cursor", "cursor must be a numeric audit log id")
			return
		}
		q = q.Where("id > ?", after)
	}

	var logs []models.AuditLog
	if err := q.Order("id ASC").Limit(page.Limit + 1).Find(&logs).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to list audit logs")
		return
	}

	items, next := pagination.Page(logs, page.Limit, func(l models.AuditLog) string {
		return strconv.FormatUint(uint64(l.ID), 10)
	})
	httpresp.Paginated(c, items, next, page.Limit)
}
