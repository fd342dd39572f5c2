package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/trainer-manager/internal/audit"
	"github.com/BruksfildServices01/trainer-manager/internal/dataservice"
	"github.com/BruksfildServices01/trainer-manager/internal/domain/billing"
	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
	"github.com/BruksfildServices01/trainer-manager/internal/httpresp"
	"github.com/BruksfildServices01/trainer-manager/internal/middleware"
	ucBilling "github.com/BruksfildServices01/trainer-manager/internal/usecase/billing"
)

// ======================================================
// HANDLER
// ======================================================

type FinanceHandler struct {
	store *dataservice.Service
	audit *audit.Dispatcher
	tz    string

	overview    *ucBilling.GetMonthOverview
	toggle      *ucBilling.TogglePayment
	listInRange *ucBilling.ListPaymentsInRange
	attachProof *ucBilling.AttachProof
}

func NewFinanceHandler(
	store *dataservice.Service,
	audit *audit.Dispatcher,
	tz string,
	overview *ucBilling.GetMonthOverview,
	toggle *ucBilling.TogglePayment,
	listInRange *ucBilling.ListPaymentsInRange,
	attachProof *ucBilling.AttachProof,
) *FinanceHandler {
	return &FinanceHandler{
		store:       store,
		audit:       audit,
		tz:          tz,
		overview:    overview,
		toggle:      toggle,
		listInRange: listInRange,
		attachProof: attachProof,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type TogglePaymentRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	Year      int    `json:"year" binding:"required"`
	Month     int    `json:"month" binding:"required"`
}

// ======================================================
// PAYMENTS
// ======================================================

// RecordPayment inserts when the body has no id and updates otherwise.
func (h *FinanceHandler) RecordPayment(c *gin.Context) {
	var p billing.StudentPayment
	if err := c.ShouldBindJSON(&p); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	p.TrainerID = middleware.TrainerID(c)

	saved, err := h.store.RecordPayment(c.Request.Context(), p)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			httperr.BadRequest(c, "invalid_payment", verrs.Error())
			return
		}
		httperr.FromError(c, err, "failed_to_record_payment", "Erro ao registrar pagamento.")
		return
	}

	writeAudit(h.audit, c, "payment_recorded", "payment", saved.ID, gin.H{
		"student_id": saved.StudentID,
		"status":     saved.Status,
		"amount":     saved.Amount,
	})

	httpresp.Created(c, saved)
}

func (h *FinanceHandler) DeletePayment(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.DeletePayment(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err, "failed_to_delete_payment", "Erro ao excluir pagamento.")
		return
	}

	writeAudit(h.audit, c, "payment_deleted", "payment", id, nil)

	httpresp.NoContent(c)
}

func (h *FinanceHandler) AttachProof(c *gin.Context) {
	studentID := c.PostForm("student_id")
	if studentID == "" {
		httperr.BadRequest(c, "missing_student_id", "Informe o aluno.")
		return
	}

	up, err := readUpload(c)
	if err != nil {
		writeUploadError(c, err)
		return
	}

	p, err := h.attachProof.Execute(c.Request.Context(), ucBilling.AttachProofInput{
		TrainerID:   middleware.TrainerID(c),
		StudentID:   studentID,
		PaymentID:   c.Param("id"),
		FileName:    up.Name,
		ContentType: up.ContentType,
		Data:        up.Data,
	})
	if err != nil {
		if httperr.IsBusiness(err, "payment_not_found") {
			httperr.NotFound(c, "payment_not_found", "Pagamento não encontrado.")
			return
		}
		httperr.FromError(c, err, "failed_to_attach_proof", "Erro ao anexar comprovante.")
		return
	}

	httpresp.OK(c, p)
}

// ======================================================
// FINANCE VIEWS
// ======================================================

func (h *FinanceHandler) MonthOverview(c *gin.Context) {
	year, month := monthQuery(c, h.tz)

	out, err := h.overview.Execute(c.Request.Context(), middleware.TrainerID(c), year, month)
	if err != nil {
		httperr.FromError(c, err, "failed_to_load_finance", "Erro ao carregar financeiro.")
		return
	}

	httpresp.OK(c, out)
}

// Toggle flips the student's month between paid and pending and answers
// with the reloaded month.
func (h *FinanceHandler) Toggle(c *gin.Context) {
	var req TogglePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.toggle.Execute(c.Request.Context(), ucBilling.TogglePaymentInput{
		TrainerID: middleware.TrainerID(c),
		StudentID: req.StudentID,
		Year:      req.Year,
		Month:     req.Month,
	})
	if err != nil {
		if httperr.IsBusiness(err, "student_not_found") {
			httperr.NotFound(c, "student_not_found", "Aluno não encontrado.")
			return
		}
		httperr.FromError(c, err, "failed_to_toggle_payment", "Erro ao atualizar pagamento.")
		return
	}

	httpresp.OK(c, out)
}

func (h *FinanceHandler) Range(c *gin.Context) {
	from, to, err := rangeQuery(c, h.tz)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Use datas no formato AAAA-MM-DD.")
		return
	}

	out, err := h.listInRange.Execute(c.Request.Context(), middleware.TrainerID(c), from, to)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_payments", "Erro ao listar pagamentos.")
		return
	}

	httpresp.OK(c, out)
}
