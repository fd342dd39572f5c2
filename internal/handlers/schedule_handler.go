package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-manager/internal/audit"
	"github.com/BruksfildServices01/trainer-manager/internal/dataservice"
	"github.com/BruksfildServices01/trainer-manager/internal/domain/schedule"
	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
	"github.com/BruksfildServices01/trainer-manager/internal/httpresp"
	"github.com/BruksfildServices01/trainer-manager/internal/middleware"
	"github.com/BruksfildServices01/trainer-manager/internal/timezone"
)

type ScheduleHandler struct {
	store *dataservice.Service
	audit *audit.Dispatcher
	tz    string
}

func NewScheduleHandler(store *dataservice.Service, audit *audit.Dispatcher, tz string) *ScheduleHandler {
	return &ScheduleHandler{store: store, audit: audit, tz: tz}
}

// List returns every event, or with ?date=yyyy-mm-dd only the ones that
// happen on that day (recurring included).
func (h *ScheduleHandler) List(c *gin.Context) {
	events := h.store.GetScheduleEvents(c.Request.Context(), middleware.TrainerID(c))

	dateStr := c.Query("date")
	if dateStr == "" {
		httpresp.List(c, events)
		return
	}

	day, err := timezone.ParseDay(dateStr, timezone.Location(h.tz))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	out := make([]schedule.ScheduleEvent, 0, len(events))
	for _, ev := range events {
		if schedule.OccursOn(ev, day) {
			out = append(out, ev)
		}
	}
	httpresp.List(c, out)
}

func (h *ScheduleHandler) Save(c *gin.Context) {
	var ev schedule.ScheduleEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := schedule.Validate(ev); err != nil {
		httperr.FromError(c, err, "invalid_event", "Evento inválido.")
		return
	}
	ev.TrainerID = middleware.TrainerID(c)

	saved, err := h.store.SaveScheduleEvent(c.Request.Context(), ev)
	if err != nil {
		httperr.FromError(c, err, "failed_to_save_event", "Erro ao salvar evento.")
		return
	}

	writeAudit(h.audit, c, "event_saved", "schedule_event", saved.ID, gin.H{
		"start":  saved.Start,
		"status": saved.Status,
	})

	httpresp.Created(c, saved)
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.DeleteScheduleEvent(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err, "failed_to_delete_event", "Erro ao excluir evento.")
		return
	}

	writeAudit(h.audit, c, "event_deleted", "schedule_event", id, nil)

	httpresp.NoContent(c)
}
