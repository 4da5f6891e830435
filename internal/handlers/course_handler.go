package handlers

import (
	"context"
	"net/http"

	"github.com/coursestudio/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CourseService is the interface that wraps methods for course authoring
type CourseService interface {
	// Method UpdateCourse apply the allow-listed fields of req to a course owned by userID.
	UpdateCourse(ctx context.Context, userID, courseID string, req *models.UpdateCourseRequest) (*models.Course, error)
	// Method PublishCourse publish a course owned by userID.
	//
	// models.ErrNoPublishedSections is returned when the course has no published section.
	PublishCourse(ctx context.Context, userID, courseID string) (*models.Course, error)
	// Method UnpublishCourse unpublish a course owned by userID.
	UnpublishCourse(ctx context.Context, userID, courseID string) (*models.Course, error)
}

// CourseHandler handles HTTP requests for course authoring
type CourseHandler struct {
	BaseHandler
	service CourseService
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(svc CourseService, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all course authoring routes
func (h *CourseHandler) RegisterRoutes(r chi.Router) {
	r.Patch("/api/courses/{courseId}", h.UpdateCourse)
	r.Post("/api/courses/{courseId}/publish", h.PublishCourse)
	r.Post("/api/courses/{courseId}/unpublish", h.UnpublishCourse)
}

// UpdateCourse handles PATCH /api/courses/{courseId}
// @Summary Update a course
// @Description Apply a partial update to a course. Price accepts a number or a numeric string.
// @Tags courses
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param request body models.UpdateCourseRequest true "Fields to update"
// @Success 200 {object} models.Course
// @Failure 400 {string} string "Validation error"
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "Course Not Found"
// @Failure 500 {string} string "Internal Server Error"
// @Security BearerAuth
// @Router /api/courses/{courseId} [patch]
func (h *CourseHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var req models.UpdateCourseRequest
	if err := decodeStrict(r, &req); err != nil {
		h.respondDecodeError(w, err)
		return
	}

	course, err := h.service.UpdateCourse(r.Context(), userID, chi.URLParam(r, "courseId"), &req)
	if err != nil {
		h.respondMutationError(w, r, err, "failed to update course")
		return
	}

	h.respondJSON(w, http.StatusOK, course)
}

// PublishCourse handles POST /api/courses/{courseId}/publish
// @Summary Publish a course
// @Description A course can only be published when at least one of its sections is published.
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} models.Course
// @Failure 400 {string} string "Course must have at least one published section"
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "Course Not Found"
// @Failure 500 {string} string "Internal Server Error"
// @Security BearerAuth
// @Router /api/courses/{courseId}/publish [post]
func (h *CourseHandler) PublishCourse(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	course, err := h.service.PublishCourse(r.Context(), userID, chi.URLParam(r, "courseId"))
	if err != nil {
		h.respondMutationError(w, r, err, "failed to publish course")
		return
	}

	h.respondJSON(w, http.StatusOK, course)
}

// UnpublishCourse handles POST /api/courses/{courseId}/unpublish
// @Summary Unpublish a course
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} models.Course
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "Course Not Found"
// @Failure 500 {string} string "Internal Server Error"
// @Security BearerAuth
// @Router /api/courses/{courseId}/unpublish [post]
func (h *CourseHandler) UnpublishCourse(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	course, err := h.service.UnpublishCourse(r.Context(), userID, chi.URLParam(r, "courseId"))
	if err != nil {
		h.respondMutationError(w, r, err, "failed to unpublish course")
		return
	}

	h.respondJSON(w, http.StatusOK, course)
}
