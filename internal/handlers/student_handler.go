package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-manager/internal/audit"
	"github.com/BruksfildServices01/trainer-manager/internal/dataservice"
	"github.com/BruksfildServices01/trainer-manager/internal/domain/roster"
	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
	"github.com/BruksfildServices01/trainer-manager/internal/httpresp"
	"github.com/BruksfildServices01/trainer-manager/internal/middleware"
	ucStudent "github.com/BruksfildServices01/trainer-manager/internal/usecase/student"
	"github.com/BruksfildServices01/trainer-manager/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type StudentHandler struct {
	store      *dataservice.Service
	audit      *audit.Dispatcher
	uploadFile *ucStudent.UploadFile
	getWeek    *ucStudent.GetWeek
}

func NewStudentHandler(
	store *dataservice.Service,
	audit *audit.Dispatcher,
	uploadFile *ucStudent.UploadFile,
	getWeek *ucStudent.GetWeek,
) *StudentHandler {
	return &StudentHandler{
		store:      store,
		audit:      audit,
		uploadFile: uploadFile,
		getWeek:    getWeek,
	}
}

// ======================================================
// HELPERS
// ======================================================

func validateStudent(st *roster.Student) (code, message string) {
	st.Name = strings.TrimSpace(st.Name)
	if st.Name == "" {
		return "missing_name", "Informe o nome do aluno."
	}

	if st.Cpf != "" {
		if !validators.IsCPFValid(st.Cpf) {
			return "invalid_cpf", "CPF inválido."
		}
		st.Cpf = validators.OnlyDigits(st.Cpf)
	}

	if st.BillingDay < 0 || st.BillingDay > 31 {
		return "invalid_billing_day", "Dia de vencimento inválido."
	}
	if st.MonthlyFee < 0 {
		return "invalid_monthly_fee", "Mensalidade inválida."
	}

	return "", ""
}

// owned loads the student of the logged trainer or answers 404.
func (h *StudentHandler) owned(c *gin.Context) *roster.Student {
	st := h.store.GetStudentByID(c.Request.Context(), c.Param("id"))
	if st == nil || (st.TrainerID != "" && st.TrainerID != middleware.TrainerID(c)) {
		httperr.NotFound(c, "student_not_found", "Aluno não encontrado.")
		return nil
	}
	return st
}

// ======================================================
// CRUD
// ======================================================

func (h *StudentHandler) List(c *gin.Context) {
	httpresp.List(c, h.store.GetStudents(c.Request.Context(), middleware.TrainerID(c)))
}

func (h *StudentHandler) Get(c *gin.Context) {
	st := h.owned(c)
	if st == nil {
		return
	}
	httpresp.OK(c, st)
}

func (h *StudentHandler) Create(c *gin.Context) {
	var st roster.Student
	if err := c.ShouldBindJSON(&st); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if code, msg := validateStudent(&st); code != "" {
		httperr.BadRequest(c, code, msg)
		return
	}

	st.ID = ""
	st.TrainerID = middleware.TrainerID(c)

	saved, err := h.store.SaveStudent(c.Request.Context(), st)
	if err != nil {
		httperr.FromError(c, err, "failed_to_save_student", "Erro ao salvar aluno.")
		return
	}

	writeAudit(h.audit, c, "student_created", "student", saved.ID, nil)

	httpresp.Created(c, saved)
}

// Update replaces the student. Files and history not sent in the body are
// kept from the stored record.
func (h *StudentHandler) Update(c *gin.Context) {
	current := h.owned(c)
	if current == nil {
		return
	}

	var st roster.Student
	if err := c.ShouldBindJSON(&st); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if code, msg := validateStudent(&st); code != "" {
		httperr.BadRequest(c, code, msg)
		return
	}

	st.ID = current.ID
	st.TrainerID = middleware.TrainerID(c)
	if st.Files == nil {
		st.Files = current.Files
	}
	if st.History == nil {
		st.History = current.History
	}

	saved, err := h.store.SaveStudent(c.Request.Context(), st)
	if err != nil {
		httperr.FromError(c, err, "failed_to_save_student", "Erro ao salvar aluno.")
		return
	}

	writeAudit(h.audit, c, "student_updated", "student", saved.ID, nil)

	httpresp.OK(c, saved)
}

func (h *StudentHandler) Delete(c *gin.Context) {
	st := h.owned(c)
	if st == nil {
		return
	}

	if err := h.store.DeleteStudent(c.Request.Context(), st.ID); err != nil {
		httperr.FromError(c, err, "failed_to_delete_student", "Erro ao excluir aluno.")
		return
	}

	writeAudit(h.audit, c, "student_deleted", "student", st.ID, gin.H{"name": st.Name})

	httpresp.NoContent(c)
}

// ======================================================
// WEEK / FILES / PAYMENTS
// ======================================================

func (h *StudentHandler) Week(c *gin.Context) {
	week, err := h.getWeek.Execute(c.Request.Context(), middleware.TrainerID(c), c.Param("id"))
	if err != nil {
		if httperr.IsBusiness(err, "student_not_found") {
			httperr.NotFound(c, "student_not_found", "Aluno não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_load_week", "Erro ao montar a semana.")
		return
	}
	httpresp.OK(c, week)
}

func (h *StudentHandler) UploadFile(c *gin.Context) {
	up, err := readUpload(c)
	if err != nil {
		writeUploadError(c, err)
		return
	}

	file, err := h.uploadFile.Execute(c.Request.Context(), ucStudent.UploadFileInput{
		TrainerID:   middleware.TrainerID(c),
		StudentID:   c.Param("id"),
		FileName:    up.Name,
		ContentType: up.ContentType,
		Data:        up.Data,
	})
	if err != nil {
		if httperr.IsBusiness(err, "student_not_found") {
			httperr.NotFound(c, "student_not_found", "Aluno não encontrado.")
			return
		}
		httperr.FromError(c, err, "failed_to_upload_file", "Erro ao enviar arquivo.")
		return
	}

	httpresp.Created(c, file)
}

func (h *StudentHandler) Payments(c *gin.Context) {
	st := h.owned(c)
	if st == nil {
		return
	}
	httpresp.List(c, h.store.GetStudentPayments(c.Request.Context(), st.ID))
}
