package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/coursestudio/backend/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SectionRepository is the interface that wraps methods for Sections table data access
type SectionRepository interface {
	// Method Create insert a new unpublished section at the end of its course and set its position.
	Create(ctx context.Context, section *models.Section) error
	// Method Update apply a partial update to a section of a course and return the stored section.
	//
	// If the update unpublishes the section and no published section remains, the course is unpublished
	// in the same transaction. models.ErrSectionNotFound is returned for an unknown section.
	Update(ctx context.Context, id, courseID string, req *models.UpdateSectionRequest) (*models.Section, error)
	// Method Delete remove a section and unpublish the course if it has no published sections left.
	//
	// Returns true if the course was unpublished. models.ErrSectionNotFound is returned for an unknown section.
	Delete(ctx context.Context, id, courseID string) (bool, error)
}

type sectionService struct {
	courseRepo  CourseOwnerRepository
	sectionRepo SectionRepository
	logger      *zap.Logger
}

// NewSectionService creates a new section service
func NewSectionService(courseRepo CourseOwnerRepository, sectionRepo SectionRepository, logger *zap.Logger) *sectionService {
	return &sectionService{
		courseRepo:  courseRepo,
		sectionRepo: sectionRepo,
		logger:      logger,
	}
}

// CreateSection adds a new section to the end of a course owned by userID
func (s *sectionService) CreateSection(ctx context.Context, userID, courseID string, req *models.CreateSectionRequest) (*models.Section, error) {
	if _, err := requireOwnedCourse(ctx, s.courseRepo, s.logger, courseID, userID); err != nil {
		return nil, err
	}

	req.Title = strings.TrimSpace(req.Title)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	section := &models.Section{
		ID:        uuid.New().String(),
		CourseID:  courseID,
		Title:     req.Title,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.sectionRepo.Create(ctx, section); err != nil {
		if errors.Is(err, models.ErrCourseNotFound) {
			return nil, err
		}
		s.logger.Error("failed to create section", zap.String("course_id", courseID), zap.Error(err))
		return nil, fmt.Errorf("failed to create section: %w", err)
	}

	s.logger.Info("section created",
		zap.String("course_id", courseID),
		zap.String("section_id", section.ID),
		zap.Int("position", section.Position),
	)
	return section, nil
}

// UpdateSection applies the allow-listed fields of req to a section of a course owned by userID
func (s *sectionService) UpdateSection(ctx context.Context, userID, courseID, sectionID string, req *models.UpdateSectionRequest) (*models.Section, error) {
	if _, err := requireOwnedCourse(ctx, s.courseRepo, s.logger, courseID, userID); err != nil {
		return nil, err
	}

	if req.IsEmpty() {
		return nil, models.ErrNoFieldsToUpdate
	}
	trimOptional(req.Title)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	return s.update(ctx, courseID, sectionID, req)
}

// PublishSection marks a section of a course owned by userID as published
func (s *sectionService) PublishSection(ctx context.Context, userID, courseID, sectionID string) (*models.Section, error) {
	return s.setPublished(ctx, userID, courseID, sectionID, true)
}

// UnpublishSection marks a section as unpublished, unpublishing the course if it was the last published one
func (s *sectionService) UnpublishSection(ctx context.Context, userID, courseID, sectionID string) (*models.Section, error) {
	return s.setPublished(ctx, userID, courseID, sectionID, false)
}

func (s *sectionService) setPublished(ctx context.Context, userID, courseID, sectionID string, published bool) (*models.Section, error) {
	if _, err := requireOwnedCourse(ctx, s.courseRepo, s.logger, courseID, userID); err != nil {
		return nil, err
	}
	return s.update(ctx, courseID, sectionID, &models.UpdateSectionRequest{IsPublished: &published})
}

func (s *sectionService) update(ctx context.Context, courseID, sectionID string, req *models.UpdateSectionRequest) (*models.Section, error) {
	section, err := s.sectionRepo.Update(ctx, sectionID, courseID, req)
	if err != nil {
		if errors.Is(err, models.ErrSectionNotFound) || errors.Is(err, models.ErrCourseNotFound) ||
			errors.Is(err, models.ErrNoFieldsToUpdate) {
			return nil, err
		}
		s.logger.Error("failed to update section",
			zap.String("course_id", courseID),
			zap.String("section_id", sectionID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to update section: %w", err)
	}
	return section, nil
}

// DeleteSection removes a section of a course owned by userID.
//
// If it was the last published section, the course is unpublished in the same transaction.
func (s *sectionService) DeleteSection(ctx context.Context, userID, courseID, sectionID string) error {
	if _, err := requireOwnedCourse(ctx, s.courseRepo, s.logger, courseID, userID); err != nil {
		return err
	}

	unpublished, err := s.sectionRepo.Delete(ctx, sectionID, courseID)
	if err != nil {
		if errors.Is(err, models.ErrSectionNotFound) || errors.Is(err, models.ErrCourseNotFound) {
			return err
		}
		s.logger.Error("failed to delete section",
			zap.String("course_id", courseID),
			zap.String("section_id", sectionID),
			zap.Error(err),
		)
		return fmt.Errorf("failed to delete section: %w", err)
	}

	s.logger.Info("section deleted",
		zap.String("course_id", courseID),
		zap.String("section_id", sectionID),
		zap.Bool("course_unpublished", unpublished),
	)
	return nil
}
