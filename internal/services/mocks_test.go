package services

import (
	"context"

	"github.com/coursestudio/backend/internal/models"
)

// mockCourseRepository is a mock implementation of the course repository interfaces
type mockCourseRepository struct {
	course           *models.Course
	published        *models.CourseWithSections
	exists           bool
	getErr           error
	existsErr        error
	updateErr        error
	setPublishedErr  error
	updateCalled     bool
	setPublishedArgs []bool
}

func (m *mockCourseRepository) GetPublishedWithSections(ctx context.Context, id string) (*models.CourseWithSections, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.published, nil
}

func (m *mockCourseRepository) GetByIDAndInstructor(ctx context.Context, id, instructorID string) (*models.Course, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.course == nil || m.course.ID != id || m.course.InstructorID != instructorID {
		return nil, models.ErrCourseNotFound
	}
	return m.course, nil
}

func (m *mockCourseRepository) Exists(ctx context.Context, id string) (bool, error) {
	return m.exists, m.existsErr
}

func (m *mockCourseRepository) Update(ctx context.Context, id string, req *models.UpdateCourseRequest) error {
	m.updateCalled = true
	if m.updateErr != nil {
		return m.updateErr
	}
	if req.Title != nil {
		m.course.Title = *req.Title
	}
	return nil
}

func (m *mockCourseRepository) SetPublished(ctx context.Context, id string, published bool) error {
	m.setPublishedArgs = append(m.setPublishedArgs, published)
	if m.setPublishedErr != nil {
		return m.setPublishedErr
	}
	m.course.IsPublished = published
	return nil
}

// mockSectionRepository is a mock implementation of the section repository interfaces
type mockSectionRepository struct {
	section           *models.Section
	publishedCount    int
	courseUnpublished bool
	getErr            error
	countErr          error
	createErr         error
	updateErr         error
	deleteErr         error
	created           *models.Section
	updateReq         *models.UpdateSectionRequest
	deleteCalled      bool
}

func (m *mockSectionRepository) GetPublishedByIDAndCourse(ctx context.Context, id, courseID string) (*models.Section, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.section, nil
}

func (m *mockSectionRepository) CountPublished(ctx context.Context, courseID string) (int, error) {
	return m.publishedCount, m.countErr
}

func (m *mockSectionRepository) Create(ctx context.Context, section *models.Section) error {
	if m.createErr != nil {
		return m.createErr
	}
	section.Position = 3
	m.created = section
	return nil
}

func (m *mockSectionRepository) Update(ctx context.Context, id, courseID string, req *models.UpdateSectionRequest) (*models.Section, error) {
	m.updateReq = req
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	if req.IsPublished != nil {
		m.section.IsPublished = *req.IsPublished
	}
	if req.Title != nil {
		m.section.Title = *req.Title
	}
	return m.section, nil
}

func (m *mockSectionRepository) Delete(ctx context.Context, id, courseID string) (bool, error) {
	m.deleteCalled = true
	if m.deleteErr != nil {
		return false, m.deleteErr
	}
	return m.courseUnpublished, nil
}

// mockResourceRepository is a mock implementation of ResourceRepository
type mockResourceRepository struct {
	resources []models.Resource
	err       error
}

func (m *mockResourceRepository) GetBySectionID(ctx context.Context, sectionID string) ([]models.Resource, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.resources, nil
}

// mockVideoMetadataRepository is a mock implementation of VideoMetadataRepository
type mockVideoMetadataRepository struct {
	video  *models.VideoMetadata
	err    error
	called bool
}

func (m *mockVideoMetadataRepository) GetBySectionID(ctx context.Context, sectionID string) (*models.VideoMetadata, error) {
	m.called = true
	if m.err != nil {
		return nil, m.err
	}
	return m.video, nil
}

func ownedCourse() *models.Course {
	return &models.Course{ID: "course-1", InstructorID: "user-1", Title: "Go", IsPublished: true}
}

func ptr[T any](v T) *T {
	return &v
}
