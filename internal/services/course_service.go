package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/coursestudio/backend/internal/models"
	"go.uber.org/zap"
)

// CourseRepository is the interface that wraps methods for Courses table data access
type CourseRepository interface {
	CourseOwnerRepository
	// Method Update apply a partial update to a course.
	//
	// models.ErrNoFieldsToUpdate is returned for an empty request and models.ErrCourseNotFound for an unknown course.
	Update(ctx context.Context, id string, req *models.UpdateCourseRequest) error
	// Method SetPublished set the publication flag of a course.
	SetPublished(ctx context.Context, id string, published bool) error
}

// PublishedSectionCounter is the interface that wraps the published section count of a course
type PublishedSectionCounter interface {
	CountPublished(ctx context.Context, courseID string) (int, error)
}

type courseService struct {
	courseRepo  CourseRepository
	sectionRepo PublishedSectionCounter
	logger      *zap.Logger
}

// NewCourseService creates a new course service
func NewCourseService(courseRepo CourseRepository, sectionRepo PublishedSectionCounter, logger *zap.Logger) *courseService {
	return &courseService{
		courseRepo:  courseRepo,
		sectionRepo: sectionRepo,
		logger:      logger,
	}
}

// UpdateCourse applies the allow-listed fields of req to a course owned by userID and returns the stored course
func (s *courseService) UpdateCourse(ctx context.Context, userID, courseID string, req *models.UpdateCourseRequest) (*models.Course, error) {
	if _, err := requireOwnedCourse(ctx, s.courseRepo, s.logger, courseID, userID); err != nil {
		return nil, err
	}

	if req.IsEmpty() {
		return nil, models.ErrNoFieldsToUpdate
	}
	trimOptional(req.Title)
	trimOptional(req.CategoryID)
	trimOptional(req.SubCategoryID)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	if err := s.courseRepo.Update(ctx, courseID, req); err != nil {
		if errors.Is(err, models.ErrCourseNotFound) || errors.Is(err, models.ErrNoFieldsToUpdate) {
			return nil, err
		}
		s.logger.Error("failed to update course", zap.String("course_id", courseID), zap.Error(err))
		return nil, fmt.Errorf("failed to update course: %w", err)
	}

	return s.reload(ctx, userID, courseID)
}

// PublishCourse publishes a course owned by userID.
//
// A course without any published section cannot be published; models.ErrNoPublishedSections is returned.
func (s *courseService) PublishCourse(ctx context.Context, userID, courseID string) (*models.Course, error) {
	if _, err := requireOwnedCourse(ctx, s.courseRepo, s.logger, courseID, userID); err != nil {
		return nil, err
	}

	count, err := s.sectionRepo.CountPublished(ctx, courseID)
	if err != nil {
		s.logger.Error("failed to count published sections", zap.String("course_id", courseID), zap.Error(err))
		return nil, fmt.Errorf("failed to count published sections: %w", err)
	}
	if count == 0 {
		return nil, models.ErrNoPublishedSections
	}

	return s.setPublished(ctx, userID, courseID, true)
}

// UnpublishCourse hides a course owned by userID from learners
func (s *courseService) UnpublishCourse(ctx context.Context, userID, courseID string) (*models.Course, error) {
	if _, err := requireOwnedCourse(ctx, s.courseRepo, s.logger, courseID, userID); err != nil {
		return nil, err
	}
	return s.setPublished(ctx, userID, courseID, false)
}

func (s *courseService) setPublished(ctx context.Context, userID, courseID string, published bool) (*models.Course, error) {
	if err := s.courseRepo.SetPublished(ctx, courseID, published); err != nil {
		if errors.Is(err, models.ErrCourseNotFound) {
			return nil, err
		}
		s.logger.Error("failed to set course publication",
			zap.String("course_id", courseID),
			zap.Bool("published", published),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to set course publication: %w", err)
	}

	s.logger.Info("course publication changed",
		zap.String("course_id", courseID),
		zap.Bool("published", published),
	)
	return s.reload(ctx, userID, courseID)
}

func (s *courseService) reload(ctx context.Context, userID, courseID string) (*models.Course, error) {
	course, err := s.courseRepo.GetByIDAndInstructor(ctx, courseID, userID)
	if err != nil {
		if errors.Is(err, models.ErrCourseNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return course, nil
}
