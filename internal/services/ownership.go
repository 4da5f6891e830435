package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/coursestudio/backend/internal/models"
	"go.uber.org/zap"
)

// CourseOwnerRepository is the interface that wraps the course lookups needed to verify ownership
type CourseOwnerRepository interface {
	// Method GetByIDAndInstructor retrieve a course only if it belongs to the given instructor.
	//
	// If no such course exists, models.ErrCourseNotFound is returned.
	GetByIDAndInstructor(ctx context.Context, id, instructorID string) (*models.Course, error)
	// Method Exists reports whether a course with the given id exists regardless of its owner.
	Exists(ctx context.Context, id string) (bool, error)
}

// requireOwnedCourse returns the course if userID owns it.
//
// Missing and foreign courses both surface as models.ErrCourseNotFound.
// Which one it was only goes to the audit log.
func requireOwnedCourse(ctx context.Context, repo CourseOwnerRepository, logger *zap.Logger, courseID, userID string) (*models.Course, error) {
	course, err := repo.GetByIDAndInstructor(ctx, courseID, userID)
	if err == nil {
		return course, nil
	}
	if !errors.Is(err, models.ErrCourseNotFound) {
		logger.Error("failed to get course for ownership check",
			zap.String("course_id", courseID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	exists, existsErr := repo.Exists(ctx, courseID)
	switch {
	case existsErr != nil:
		logger.Warn("course access denied, existence unknown",
			zap.String("course_id", courseID),
			zap.String("user_id", userID),
			zap.Error(existsErr),
		)
	case exists:
		logger.Warn("course access denied, not owned by caller",
			zap.String("course_id", courseID),
			zap.String("user_id", userID),
		)
	default:
		logger.Warn("course access denied, course does not exist",
			zap.String("course_id", courseID),
			zap.String("user_id", userID),
		)
	}

	return nil, models.ErrCourseNotFound
}
