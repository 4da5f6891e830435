package handlers

import (
	"context"
	"net/http"

	"github.com/coursestudio/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SectionService is the interface that wraps methods for section authoring
type SectionService interface {
	// Method CreateSection append a new unpublished section to a course owned by userID.
	CreateSection(ctx context.Context, userID, courseID string, req *models.CreateSectionRequest) (*models.Section, error)
	// Method UpdateSection apply the allow-listed fields of req to a section of a course owned by userID.
	//
	// Unpublishing the last published section also unpublishes the course.
	UpdateSection(ctx context.Context, userID, courseID, sectionID string, req *models.UpdateSectionRequest) (*models.Section, error)
	// Method DeleteSection remove a section of a course owned by userID.
	//
	// Deleting the last published section also unpublishes the course.
	DeleteSection(ctx context.Context, userID, courseID, sectionID string) error
	// Method PublishSection mark a section as published.
	PublishSection(ctx context.Context, userID, courseID, sectionID string) (*models.Section, error)
	// Method UnpublishSection mark a section as unpublished.
	UnpublishSection(ctx context.Context, userID, courseID, sectionID string) (*models.Section, error)
}

// SectionHandler handles HTTP requests for section authoring
type SectionHandler struct {
	BaseHandler
	service SectionService
}

// NewSectionHandler creates a new section handler
func NewSectionHandler(svc SectionService, logger *zap.Logger) *SectionHandler {
	return &SectionHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all section authoring routes
func (h *SectionHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/courses/{courseId}/sections", h.CreateSection)
	r.Post("/api/courses/{courseId}/sections/{sectionId}", h.UpdateSection)
	r.Delete("/api/courses/{courseId}/sections/{sectionId}", h.DeleteSection)
	r.Post("/api/courses/{courseId}/sections/{sectionId}/publish", h.PublishSection)
	r.Post("/api/courses/{courseId}/sections/{sectionId}/unpublish", h.UnpublishSection)
}

// CreateSection handles POST /api/courses/{courseId}/sections
// @Summary Create a section
// @Description Append a new unpublished section to a course owned by the caller
// @Tags sections
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param request body models.CreateSectionRequest true "Section title"
// @Success 200 {object} models.Section
// @Failure 400 {string} string "Validation error"
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "Course Not Found"
// @Failure 500 {string} string "Internal Server Error"
// @Security BearerAuth
// @Router /api/courses/{courseId}/sections [post]
func (h *SectionHandler) CreateSection(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var req models.CreateSectionRequest
	if err := decodeStrict(r, &req); err != nil {
		h.respondDecodeError(w, err)
		return
	}

	section, err := h.service.CreateSection(r.Context(), userID, chi.URLParam(r, "courseId"), &req)
	if err != nil {
		h.respondMutationError(w, r, err, "failed to create section")
		return
	}

	h.respondJSON(w, http.StatusOK, section)
}

// UpdateSection handles POST /api/courses/{courseId}/sections/{sectionId}
// @Summary Update a section
// @Description Apply a partial update to a section. Only title, description, videoUrl, isFree, isPublished and position are accepted.
// @Description Unpublishing the last published section unpublishes the course.
// @Tags sections
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param sectionId path string true "Section ID"
// @Param request body models.UpdateSectionRequest true "Fields to update"
// @Success 200 {object} models.Section
// @Failure 400 {string} string "Validation error"
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "Course Not Found or Section Not Found"
// @Failure 500 {string} string "Internal Server Error"
// @Security BearerAuth
// @Router /api/courses/{courseId}/sections/{sectionId} [post]
func (h *SectionHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var req models.UpdateSectionRequest
	if err := decodeStrict(r, &req); err != nil {
		h.respondDecodeError(w, err)
		return
	}

	section, err := h.service.UpdateSection(r.Context(), userID, chi.URLParam(r, "courseId"), chi.URLParam(r, "sectionId"), &req)
	if err != nil {
		h.respondMutationError(w, r, err, "failed to update section")
		return
	}

	h.respondJSON(w, http.StatusOK, section)
}

// DeleteSection handles DELETE /api/courses/{courseId}/sections/{sectionId}
// @Summary Delete a section
// @Description Delete a section with its resources and video metadata. Deleting the last published section unpublishes the course.
// @Tags sections
// @Produce plain
// @Param courseId path string true "Course ID"
// @Param sectionId path string true "Section ID"
// @Success 200 {string} string "Section Deleted"
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "Course Not Found or Section Not Found"
// @Failure 500 {string} string "Internal Server Error"
// @Security BearerAuth
// @Router /api/courses/{courseId}/sections/{sectionId} [delete]
func (h *SectionHandler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteSection(r.Context(), userID, chi.URLParam(r, "courseId"), chi.URLParam(r, "sectionId")); err != nil {
		h.respondMutationError(w, r, err, "failed to delete section")
		return
	}

	h.respondText(w, http.StatusOK, "Section Deleted")
}

// PublishSection handles POST /api/courses/{courseId}/sections/{sectionId}/publish
// @Summary Publish a section
// @Tags sections
// @Produce json
// @Param courseId path string true "Course ID"
// @Param sectionId path string true "Section ID"
// @Success 200 {object} models.Section
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "Course Not Found or Section Not Found"
// @Failure 500 {string} string "Internal Server Error"
// @Security BearerAuth
// @Router /api/courses/{courseId}/sections/{sectionId}/publish [post]
func (h *SectionHandler) PublishSection(w http.ResponseWriter, r *http.Request) {
	h.setPublished(w, r, h.service.PublishSection, "failed to publish section")
}

// UnpublishSection handles POST /api/courses/{courseId}/sections/{sectionId}/unpublish
// @Summary Unpublish a section
// @Description Unpublishing the last published section unpublishes the course.
// @Tags sections
// @Produce json
// @Param courseId path string true "Course ID"
// @Param sectionId path string true "Section ID"
// @Success 200 {object} models.Section
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "Course Not Found or Section Not Found"
// @Failure 500 {string} string "Internal Server Error"
// @Security BearerAuth
// @Router /api/courses/{courseId}/sections/{sectionId}/unpublish [post]
func (h *SectionHandler) UnpublishSection(w http.ResponseWriter, r *http.Request) {
	h.setPublished(w, r, h.service.UnpublishSection, "failed to unpublish section")
}

func (h *SectionHandler) setPublished(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, userID, courseID, sectionID string) (*models.Section, error),
	msg string,
) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	section, err := apply(r.Context(), userID, chi.URLParam(r, "courseId"), chi.URLParam(r, "sectionId"))
	if err != nil {
		h.respondMutationError(w, r, err, msg)
		return
	}

	h.respondJSON(w, http.StatusOK, section)
}
