package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-manager/internal/audit"
	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
	"github.com/BruksfildServices01/trainer-manager/internal/middleware"
	"github.com/BruksfildServices01/trainer-manager/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	store audit.Store
	tz    string
}

func NewAuditLogsHandler(store audit.Store, tz string) *AuditLogsHandler {
	return &AuditLogsHandler{store: store, tz: tz}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	trainerID := middleware.TrainerID(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}

	// --------------------------------------------------
	// Filtros de data opcionais
	// --------------------------------------------------

	loc := timezone.Location(h.tz)

	if fromStr := c.Query("from"); fromStr != "" {
		if from, err := timezone.ParseDay(fromStr, loc); err == nil {
			f.From = &from
		}
	}

	if toStr := c.Query("to"); toStr != "" {
		if to, err := timezone.ParseDay(toStr, loc); err == nil {
			end := timezone.EndOfDay(to)
			f.To = &end
		}
	}

	logs, total, err := h.store.List(c.Request.Context(), trainerID, f)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
