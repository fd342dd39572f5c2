package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-manager/internal/audit"
	"github.com/BruksfildServices01/trainer-manager/internal/dataservice"
	"github.com/BruksfildServices01/trainer-manager/internal/domain/workout"
	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
	"github.com/BruksfildServices01/trainer-manager/internal/httpresp"
	"github.com/BruksfildServices01/trainer-manager/internal/middleware"
)

type WorkoutHandler struct {
	store *dataservice.Service
	audit *audit.Dispatcher
}

func NewWorkoutHandler(store *dataservice.Service, audit *audit.Dispatcher) *WorkoutHandler {
	return &WorkoutHandler{store: store, audit: audit}
}

// --------------------------------------------------
// Pastas
// --------------------------------------------------

func (h *WorkoutHandler) ListFolders(c *gin.Context) {
	httpresp.List(c, h.store.GetWorkoutFolders(c.Request.Context(), middleware.TrainerID(c)))
}

func (h *WorkoutHandler) SaveFolder(c *gin.Context) {
	var f workout.WorkoutFolder
	if err := c.ShouldBindJSON(&f); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		httperr.BadRequest(c, "missing_name", "Informe o nome da pasta.")
		return
	}
	f.TrainerID = middleware.TrainerID(c)

	saved, err := h.store.SaveWorkoutFolder(c.Request.Context(), f)
	if err != nil {
		httperr.FromError(c, err, "failed_to_save_folder", "Erro ao salvar pasta.")
		return
	}

	writeAudit(h.audit, c, "folder_saved", "workout_folder", saved.ID, nil)

	httpresp.Created(c, saved)
}

// DeleteFolder leaves the folder's templates in place; they show up
// ungrouped.
func (h *WorkoutHandler) DeleteFolder(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.DeleteWorkoutFolder(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err, "failed_to_delete_folder", "Erro ao excluir pasta.")
		return
	}

	writeAudit(h.audit, c, "folder_deleted", "workout_folder", id, nil)

	httpresp.NoContent(c)
}

// --------------------------------------------------
// Modelos de treino
// --------------------------------------------------

// ListTemplates also returns the templates grouped by folder; the "" key
// holds the ungrouped ones.
func (h *WorkoutHandler) ListTemplates(c *gin.Context) {
	ctx := c.Request.Context()
	trainerID := middleware.TrainerID(c)

	folders := h.store.GetWorkoutFolders(ctx, trainerID)
	templates := h.store.GetWorkoutTemplates(ctx, trainerID)

	c.JSON(http.StatusOK, gin.H{
		"data":      templates,
		"total":     len(templates),
		"by_folder": workout.GroupByFolder(folders, templates),
	})
}

func (h *WorkoutHandler) SaveTemplate(c *gin.Context) {
	var t workout.WorkoutTemplate
	if err := c.ShouldBindJSON(&t); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		httperr.BadRequest(c, "missing_name", "Informe o nome do modelo.")
		return
	}
	t.TrainerID = middleware.TrainerID(c)

	saved, err := h.store.SaveWorkoutTemplate(c.Request.Context(), t)
	if err != nil {
		httperr.FromError(c, err, "failed_to_save_template", "Erro ao salvar modelo.")
		return
	}

	writeAudit(h.audit, c, "template_saved", "workout_template", saved.ID, nil)

	httpresp.Created(c, saved)
}

func (h *WorkoutHandler) DeleteTemplate(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.DeleteWorkoutTemplate(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err, "failed_to_delete_template", "Erro ao excluir modelo.")
		return
	}

	writeAudit(h.audit, c, "template_deleted", "workout_template", id, nil)

	httpresp.NoContent(c)
}

// --------------------------------------------------
// Biblioteca de exercícios
// --------------------------------------------------

func (h *WorkoutHandler) ListExercises(c *gin.Context) {
	httpresp.List(c, h.store.GetLibraryExercises(c.Request.Context(), middleware.TrainerID(c)))
}

func (h *WorkoutHandler) SaveExercise(c *gin.Context) {
	var ex workout.LibraryExercise
	if err := c.ShouldBindJSON(&ex); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ex.Name = strings.TrimSpace(ex.Name)
	if ex.Name == "" {
		httperr.BadRequest(c, "missing_name", "Informe o nome do exercício.")
		return
	}

	saved, err := h.store.SaveExercise(c.Request.Context(), middleware.TrainerID(c), ex)
	if err != nil {
		httperr.FromError(c, err, "failed_to_save_exercise", "Erro ao salvar exercício.")
		return
	}

	writeAudit(h.audit, c, "exercise_saved", "exercise", saved.ID, nil)

	httpresp.Created(c, saved)
}

func (h *WorkoutHandler) DeleteExercise(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.DeleteExercise(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err, "failed_to_delete_exercise", "Erro ao excluir exercício.")
		return
	}

	writeAudit(h.audit, c, "exercise_deleted", "exercise", id, nil)

	httpresp.NoContent(c)
}
