package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/coursestudio/backend/internal/middleware"
	"github.com/coursestudio/backend/internal/models"
	"go.uber.org/zap"
)

type BaseHandler struct {
	logger *zap.Logger
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// respondText sends a plain text response
func (h *BaseHandler) respondText(w http.ResponseWriter, status int, message string) {
	middleware.WriteText(w, status, message)
}

// callerID returns the authenticated user ID or writes 401 and reports false
func (h *BaseHandler) callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.respondText(w, http.StatusUnauthorized, "Unauthorized")
		return "", false
	}
	return userID, true
}

// decodeStrict decodes a JSON object into dst, rejecting unknown fields and trailing data
func decodeStrict(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return err
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// respondDecodeError maps a body decoding failure to a plain text response
func (h *BaseHandler) respondDecodeError(w http.ResponseWriter, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		h.respondText(w, http.StatusRequestEntityTooLarge, "Request Body Too Large")
		return
	}
	h.respondText(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
}

// respondMutationError maps a service error of an authoring operation to a plain text response
func (h *BaseHandler) respondMutationError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	var validationErr *models.ValidationError
	switch {
	case errors.Is(err, models.ErrCourseNotFound):
		h.respondText(w, http.StatusNotFound, "Course Not Found")
	case errors.Is(err, models.ErrSectionNotFound):
		h.respondText(w, http.StatusNotFound, "Section Not Found")
	case errors.Is(err, models.ErrNoFieldsToUpdate):
		h.respondText(w, http.StatusBadRequest, "No fields to update")
	case errors.Is(err, models.ErrNoPublishedSections):
		h.respondText(w, http.StatusBadRequest, "Course must have at least one published section")
	case errors.As(err, &validationErr):
		h.respondText(w, http.StatusBadRequest, validationErr.Error())
	default:
		h.logger.Error(msg,
			middleware.RequestIDField(r.Context()),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		h.respondText(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
