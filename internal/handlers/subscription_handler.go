package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-manager/internal/dto"
	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
	"github.com/BruksfildServices01/trainer-manager/internal/middleware"
	ucSubscription "github.com/BruksfildServices01/trainer-manager/internal/usecase/subscription"
)

type SubscriptionHandler struct {
	checkout *ucSubscription.StartCheckout
	notify   *ucSubscription.HandleNotification
}

func NewSubscriptionHandler(
	checkout *ucSubscription.StartCheckout,
	notify *ucSubscription.HandleNotification,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		checkout: checkout,
		notify:   notify,
	}
}

type mercadoPagoNotification struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

func (h *SubscriptionHandler) Checkout(c *gin.Context) {
	if h.checkout == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "subscriptions_disabled", "Assinaturas indisponíveis.")
		return
	}

	url, err := h.checkout.Execute(c.Request.Context(), middleware.TrainerID(c))
	if err != nil {
		if httperr.IsBusiness(err, "trainer_not_found") {
			httperr.NotFound(c, "trainer_not_found", "Perfil não encontrado.")
			return
		}
		log.Printf("[subscription] checkout: %v", err)
		httperr.Internal(c, "failed_to_create_checkout", "Erro ao iniciar pagamento.")
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutDTO{CheckoutURL: url})
}

// Webhook accepts both notification shapes Mercado Pago sends: query
// (?type=payment&data.id=N) and JSON body. Only payment notifications are
// processed; everything else is acknowledged.
func (h *SubscriptionHandler) Webhook(c *gin.Context) {
	if h.notify == nil {
		c.Status(http.StatusOK)
		return
	}

	kind := c.Query("type")
	rawID := c.Query("data.id")

	if rawID == "" {
		var body mercadoPagoNotification
		if err := c.ShouldBindJSON(&body); err == nil {
			kind = body.Type
			rawID = body.Data.ID
		}
	}

	if kind != "payment" || rawID == "" {
		c.Status(http.StatusOK)
		return
	}

	paymentID, err := strconv.Atoi(rawID)
	if err != nil {
		httperr.BadRequest(c, "invalid_payment_id", "Pagamento inválido.")
		return
	}

	// erro aqui faz o Mercado Pago reenviar
	if err := h.notify.Execute(c.Request.Context(), paymentID); err != nil {
		log.Printf("[subscription] notification %d: %v", paymentID, err)
		httperr.Internal(c, "failed_to_process_notification", "Erro ao processar notificação.")
		return
	}

	c.Status(http.StatusOK)
}
