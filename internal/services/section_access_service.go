package services

import (
	"context"
	"fmt"

	"github.com/coursestudio/backend/internal/models"
	"go.uber.org/zap"
)

// PublishedCourseRepository is the interface that wraps the learner facing course lookup
type PublishedCourseRepository interface {
	// Method GetPublishedWithSections retrieve a published course with its published sections ordered by position.
	//
	// If the course does not exist or is not published, models.ErrCourseNotFound is returned.
	GetPublishedWithSections(ctx context.Context, id string) (*models.CourseWithSections, error)
}

// PublishedSectionRepository is the interface that wraps the learner facing section lookup
type PublishedSectionRepository interface {
	// Method GetPublishedByIDAndCourse retrieve a published section that belongs to the course.
	//
	// If there is no such section, models.ErrSectionNotFound is returned.
	GetPublishedByIDAndCourse(ctx context.Context, id, courseID string) (*models.Section, error)
}

// ResourceRepository is the interface that wraps methods for Resources table data access
type ResourceRepository interface {
	// Method GetBySectionID retrieve all resources of a section in insertion order.
	GetBySectionID(ctx context.Context, sectionID string) ([]models.Resource, error)
}

// VideoMetadataRepository is the interface that wraps methods for video playback metadata access
type VideoMetadataRepository interface {
	// Method GetBySectionID retrieve the playback metadata of a section.
	//
	// A section without metadata yields nil without an error.
	GetBySectionID(ctx context.Context, sectionID string) (*models.VideoMetadata, error)
}

type sectionAccessService struct {
	courseRepo   PublishedCourseRepository
	sectionRepo  PublishedSectionRepository
	resourceRepo ResourceRepository
	videoRepo    VideoMetadataRepository
	logger       *zap.Logger
}

// NewSectionAccessService creates a new section access service
func NewSectionAccessService(
	courseRepo PublishedCourseRepository,
	sectionRepo PublishedSectionRepository,
	resourceRepo ResourceRepository,
	videoRepo VideoMetadataRepository,
	logger *zap.Logger,
) *sectionAccessService {
	return &sectionAccessService{
		courseRepo:   courseRepo,
		sectionRepo:  sectionRepo,
		resourceRepo: resourceRepo,
		videoRepo:    videoRepo,
		logger:       logger,
	}
}

// GetSectionDetails assembles everything a learner sees when opening a section.
//
// Returns models.ErrCourseNotFound when the course is missing or unpublished and
// models.ErrSectionNotFound when the section is missing, unpublished or belongs to another course.
// Video metadata is only loaded for free sections.
func (s *sectionAccessService) GetSectionDetails(ctx context.Context, courseID, sectionID string) (*models.SectionDetails, error) {
	course, err := s.courseRepo.GetPublishedWithSections(ctx, courseID)
	if err != nil {
		return nil, err
	}

	section, err := s.sectionRepo.GetPublishedByIDAndCourse(ctx, sectionID, courseID)
	if err != nil {
		return nil, err
	}

	resources, err := s.resourceRepo.GetBySectionID(ctx, section.ID)
	if err != nil {
		s.logger.Error("failed to get section resources",
			zap.String("section_id", section.ID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to get resources: %w", err)
	}

	var video *models.VideoMetadata
	if section.IsFree {
		video, err = s.videoRepo.GetBySectionID(ctx, section.ID)
		if err != nil {
			s.logger.Error("failed to get video metadata",
				zap.String("section_id", section.ID),
				zap.Error(err),
			)
			return nil, fmt.Errorf("failed to get video metadata: %w", err)
		}
	}

	return &models.SectionDetails{
		Course:        course,
		Section:       section,
		VideoMetadata: video,
		Resources:     resources,
	}, nil
}
