package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-manager/internal/audit"
	"github.com/BruksfildServices01/trainer-manager/internal/auth"
	"github.com/BruksfildServices01/trainer-manager/internal/dataservice"
	"github.com/BruksfildServices01/trainer-manager/internal/domain/roster"
	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
	"github.com/BruksfildServices01/trainer-manager/internal/validators"
)

type AuthHandler struct {
	auth  *auth.Service
	store *dataservice.Service
	audit *audit.Dispatcher

	// checagem de DNS do domínio; trocada nos testes
	emailDomainValid func(email string) bool
}

func NewAuthHandler(
	authService *auth.Service,
	store *dataservice.Service,
	audit *audit.Dispatcher,
) *AuthHandler {
	return &AuthHandler{
		auth:             authService,
		store:            store,
		audit:            audit,
		emailDomainValid: validators.IsEmailDomainValid,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name      string `json:"name" binding:"required"`
	Surname   string `json:"surname"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Instagram string `json:"instagram"`
	Whatsapp  string `json:"whatsapp"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !h.emailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	taken, err := h.auth.EmailTaken(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "failed_to_check_email", "Erro ao verificar e-mail.")
		return
	}
	if taken {
		httperr.BadRequest(c, "email_already_registered", "E-mail já cadastrado.")
		return
	}

	trainer, err := h.store.RegisterTrainer(c.Request.Context(), roster.Trainer{
		Name:      req.Name,
		Surname:   req.Surname,
		Email:     email,
		Instagram: req.Instagram,
		Whatsapp:  req.Whatsapp,
	})
	if err != nil {
		log.Printf("[auth] %v", err)
		httperr.Internal(c, "failed_to_create_trainer", "Erro ao criar perfil.")
		return
	}

	if err := h.auth.Register(c.Request.Context(), trainer.ID, email, req.Password); err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			httperr.BadRequest(c, "email_already_registered", "E-mail já cadastrado.")
			return
		}
		log.Printf("[auth] %v", err)
		httperr.Internal(c, "failed_to_create_login", "Erro ao criar login.")
		return
	}

	token, err := h.auth.IssueToken(trainer.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar sessão.")
		return
	}

	h.audit.Dispatch(audit.Event{
		TrainerID: trainer.ID,
		Action:    "trainer_registered",
		Entity:    "trainer",
		EntityID:  trainer.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"trainer": trainer,
		"token":   token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	trainerID, err := h.auth.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro ao autenticar.")
		return
	}

	token, err := h.auth.IssueToken(trainerID)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar sessão.")
		return
	}

	resp := gin.H{"token": token}
	if trainer := h.store.GetTrainerByID(c.Request.Context(), trainerID); trainer != nil {
		resp["trainer"] = trainer
	}

	c.JSON(http.StatusOK, resp)
}
