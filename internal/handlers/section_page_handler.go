package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/coursestudio/backend/internal/middleware"
	"github.com/coursestudio/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SectionAccessService is the interface that wraps the learner facing section lookup
type SectionAccessService interface {
	// Method GetSectionDetails retrieve the published course, the published section, its resources
	// and, for free sections, its video metadata.
	//
	// models.ErrCourseNotFound is returned for a missing or unpublished course and
	// models.ErrSectionNotFound for a missing or unpublished section.
	GetSectionDetails(ctx context.Context, courseID, sectionID string) (*models.SectionDetails, error)
}

// SectionPageHandler serves the data of the learner section page
type SectionPageHandler struct {
	BaseHandler
	service    SectionAccessService
	signInPath string
}

// NewSectionPageHandler creates a new section page handler
func NewSectionPageHandler(svc SectionAccessService, logger *zap.Logger, signInPath string) *SectionPageHandler {
	return &SectionPageHandler{
		service:     svc,
		signInPath:  signInPath,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers the section page route
func (h *SectionPageHandler) RegisterRoutes(r chi.Router) {
	r.Get("/courses/{courseId}/sections/{sectionId}", h.GetSection)
}

// GetSection handles GET /courses/{courseId}/sections/{sectionId}
// @Summary Load a section page
// @Description Returns the published course with its published sections, the section, its resources and, for free sections, the video playback metadata.
// @Description Anonymous callers are redirected to sign in, unpublished courses to "/" and unpublished sections to the course overview.
// @Tags learner
// @Produce json
// @Param courseId path string true "Course ID"
// @Param sectionId path string true "Section ID"
// @Success 200 {object} models.SectionDetails
// @Success 302 "Redirect"
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /courses/{courseId}/sections/{sectionId} [get]
func (h *SectionPageHandler) GetSection(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserID(r.Context()); !ok {
		http.Redirect(w, r, h.signInPath, http.StatusFound)
		return
	}

	courseID := chi.URLParam(r, "courseId")
	sectionID := chi.URLParam(r, "sectionId")

	details, err := h.service.GetSectionDetails(r.Context(), courseID, sectionID)
	switch {
	case errors.Is(err, models.ErrCourseNotFound):
		http.Redirect(w, r, "/", http.StatusFound)
		return
	case errors.Is(err, models.ErrSectionNotFound):
		http.Redirect(w, r, "/courses/"+url.PathEscape(courseID)+"/overview", http.StatusFound)
		return
	case err != nil:
		h.logger.Error("failed to load section page",
			middleware.RequestIDField(r.Context()),
			zap.String("course_id", courseID),
			zap.String("section_id", sectionID),
			zap.Error(err),
		)
		h.respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.respondJSON(w, http.StatusOK, details)
}
