package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-manager/internal/audit"
	"github.com/BruksfildServices01/trainer-manager/internal/dataservice"
	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
	"github.com/BruksfildServices01/trainer-manager/internal/middleware"
)

type MeHandler struct {
	store *dataservice.Service
	audit *audit.Dispatcher
}

func NewMeHandler(store *dataservice.Service, audit *audit.Dispatcher) *MeHandler {
	return &MeHandler{store: store, audit: audit}
}

// campos ausentes ficam como estão
type UpdateMeRequest struct {
	Name      *string `json:"name"`
	Surname   *string `json:"surname"`
	Avatar    *string `json:"avatar"`
	Instagram *string `json:"instagram"`
	Whatsapp  *string `json:"whatsapp"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	trainer := h.store.GetTrainerByID(c.Request.Context(), middleware.TrainerID(c))
	if trainer == nil {
		httperr.NotFound(c, "trainer_not_found", "Perfil não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trainer":            trainer,
		"subscription_valid": trainer.SubscriptionValid(time.Now()),
		"cloud":              h.store.IsCloudActive(),
	})
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	trainer := h.store.GetTrainerByID(c.Request.Context(), middleware.TrainerID(c))
	if trainer == nil {
		httperr.NotFound(c, "trainer_not_found", "Perfil não encontrado.")
		return
	}

	if req.Name != nil {
		trainer.Name = *req.Name
	}
	if req.Surname != nil {
		trainer.Surname = *req.Surname
	}
	if req.Avatar != nil {
		trainer.Avatar = *req.Avatar
	}
	if req.Instagram != nil {
		trainer.Instagram = *req.Instagram
	}
	if req.Whatsapp != nil {
		trainer.Whatsapp = *req.Whatsapp
	}

	if err := h.store.UpdateTrainer(c.Request.Context(), *trainer); err != nil {
		httperr.FromError(c, err, "failed_to_update_trainer", "Erro ao atualizar perfil.")
		return
	}

	writeAudit(h.audit, c, "trainer_updated", "trainer", trainer.ID, nil)

	c.JSON(http.StatusOK, gin.H{"trainer": trainer})
}
