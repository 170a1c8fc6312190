package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/ramyasree-2705/multi-tenant-SaaS/internal/notes/guard"
	"github.com/ramyasree-2705/multi-tenant-SaaS/internal/notes/middleware"
	"github.com/ramyasree-2705/multi-tenant-SaaS/internal/notes/model"
	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/database"
	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/logger"
	"github.com/ramyasree-2705/multi-tenant-SaaS/prometheus"
)

// NoteRequest defines the body for note creation and update. Content is
// optional and defaults to the empty string.
type NoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ListNotes returns every note in the caller's tenant, newest first.
func ListNotes(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordNoteOperation("list")

	id, ok := middleware.IdentityFromContext(c)
	if !ok {
		prometheus.RecordAuthError("missing_identity")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var notes []model.Note
	result := database.GetDB().
		Where("tenant_id = ?", id.TenantID).
		Order("created_at desc").
		Find(&notes)
	if result.Error != nil {
		log.Error("Failed to fetch notes", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch notes"})
	}

	if notes == nil {
		notes = []model.Note{}
	}
	return c.JSON(http.StatusOK, notes)
}

// CreateNote creates a note in the caller's tenant, enforcing the
// free-plan quota. The count is read fresh; two concurrent creations on
// a FREE tenant can transiently exceed the cap.
func CreateNote(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordNoteOperation("create")

	id, ok := middleware.IdentityFromContext(c)
	if !ok {
		prometheus.RecordAuthError("missing_identity")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req NoteRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse note request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}

	if id.TenantPlan == model.PlanFree {
		defer prometheus.TrackDBOperation("query")(time.Now())
		var count int64
		result := database.GetDB().Model(&model.Note{}).
			Where("tenant_id = ?", id.TenantID).
			Count(&count)
		if result.Error != nil {
			log.Error("Failed to count notes", zap.Error(result.Error))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to check note limit"})
		}

		if err := guard.CheckNoteQuota(id, count); err != nil {
			log.Info("Note limit reached",
				zap.String("tenant_id", id.TenantID),
				zap.Int64("count", count))
			prometheus.QuotaRejectionCounter.Inc()
			return c.JSON(http.StatusForbidden, echo.Map{
				"error": "Note limit reached. Upgrade to Pro for unlimited notes.",
				"code":  "NOTE_LIMIT_REACHED",
			})
		}
	}

	note := model.Note{
		TenantID: id.TenantID,
		UserID:   id.UserID,
		Title:    req.Title,
		Content:  req.Content,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&note); result.Error != nil {
		log.Error("Failed to create note", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create note"})
	}

	log.Info("Note created",
		zap.String("note_id", note.ID),
		zap.String("tenant_id", note.TenantID))

	return c.JSON(http.StatusCreated, note)
}

// GetNote returns a single note. The query is filtered by id AND
// tenant_id, so a note belonging to another tenant yields the same 404
// as a nonexistent one.
func GetNote(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordNoteOperation("get")

	id, ok := middleware.IdentityFromContext(c)
	if !ok {
		prometheus.RecordAuthError("missing_identity")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	noteID := c.Param("id")
	if noteID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "note ID is required"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var note model.Note
	result := database.GetDB().
		Where("id = ? AND tenant_id = ?", noteID, id.TenantID).
		First(&note)
	if result.Error != nil {
		log.Warn("Note not found",
			zap.String("note_id", noteID),
			zap.String("tenant_id", id.TenantID))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "note not found"})
	}

	return c.JSON(http.StatusOK, note)
}

// UpdateNote replaces a note's title and content under the combined
// id + tenant_id filter.
func UpdateNote(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordNoteOperation("update")

	id, ok := middleware.IdentityFromContext(c)
	if !ok {
		prometheus.RecordAuthError("missing_identity")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	noteID := c.Param("id")
	if noteID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "note ID is required"})
	}

	var req NoteRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse note request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	result := database.GetDB().Model(&model.Note{}).
		Where("id = ? AND tenant_id = ?", noteID, id.TenantID).
		Updates(map[string]interface{}{
			"title":      req.Title,
			"content":    req.Content,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		log.Error("Failed to update note", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update note"})
	}
	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "note not found"})
	}

	var note model.Note
	if result := database.GetDB().
		Where("id = ? AND tenant_id = ?", noteID, id.TenantID).
		First(&note); result.Error != nil {
		log.Error("Failed to reload note", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update note"})
	}

	return c.JSON(http.StatusOK, note)
}

// DeleteNote deletes a note under the combined id + tenant_id filter.
// Deleting an already-deleted note reports 404, so repeats are safe.
func DeleteNote(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordNoteOperation("delete")

	id, ok := middleware.IdentityFromContext(c)
	if !ok {
		prometheus.RecordAuthError("missing_identity")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	noteID := c.Param("id")
	if noteID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "note ID is required"})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	result := database.GetDB().
		Where("id = ? AND tenant_id = ?", noteID, id.TenantID).
		Delete(&model.Note{})
	if result.Error != nil {
		log.Error("Failed to delete note", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete note"})
	}
	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "note not found"})
	}

	log.Info("Note deleted",
		zap.String("note_id", noteID),
		zap.String("tenant_id", id.TenantID))

	return c.NoContent(http.StatusNoContent)
}
