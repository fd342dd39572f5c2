package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-manager/internal/audit"
	"github.com/BruksfildServices01/trainer-manager/internal/middleware"
)

func writeAudit(
	d *audit.Dispatcher,
	c *gin.Context,
	action string,
	entity string,
	entityID string,
	meta any,
) {
	d.Dispatch(audit.Event{
		TrainerID: middleware.TrainerID(c),
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  meta,
	})
}
