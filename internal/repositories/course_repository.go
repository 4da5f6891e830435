package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/coursestudio/backend/internal/models"
)

type courseRepository struct {
	db *sql.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *sql.DB) *courseRepository {
	return &courseRepository{
		db: db,
	}
}

// GetPublishedWithSections retrieves a published course together with its published sections
//
// Sections are ordered by position. If the course does not exist or is not published,
// models.ErrCourseNotFound is returned.
func (r *courseRepository) GetPublishedWithSections(ctx context.Context, id string) (*models.CourseWithSections, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM courses
		WHERE id = ? AND is_published = TRUE
		LIMIT 1
	`

	course, err := scanCourse(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get published course: %w", err)
	}

	sectionsQuery := `
		SELECT ` + sectionColumns + `
		FROM sections
		WHERE course_id = ? AND is_published = TRUE
		ORDER BY position, created_at
	`

	rows, err := r.db.QueryContext(ctx, sectionsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query sections: %w", err)
	}
	defer rows.Close()

	sections := []models.Section{}
	for rows.Next() {
		section, err := scanSection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		sections = append(sections, *section)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return &models.CourseWithSections{Course: *course, Sections: sections}, nil
}

// GetByIDAndInstructor retrieves a course only if it belongs to the given instructor
func (r *courseRepository) GetByIDAndInstructor(ctx context.Context, id, instructorID string) (*models.Course, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM courses
		WHERE id = ? AND instructor_id = ?
		LIMIT 1
	`

	course, err := scanCourse(r.db.QueryRowContext(ctx, query, id, instructorID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course by id and instructor: %w", err)
	}

	return course, nil
}

// Exists checks if a course with the given ID exists regardless of its owner
func (r *courseRepository) Exists(ctx context.Context, id string) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM courses WHERE id = ?)"
	var exists bool
	err := r.db.QueryRowContext(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check course existence: %w", err)
	}
	return exists, nil
}

// Update updates a course (partial update)
func (r *courseRepository) Update(ctx context.Context, id string, req *models.UpdateCourseRequest) error {
	var setParts []string
	var args []any

	if req.Title != nil {
		setParts = append(setParts, "title = ?")
		args = append(args, *req.Title)
	}
	if req.Subtitle != nil {
		setParts = append(setParts, "subtitle = ?")
		args = append(args, *req.Subtitle)
	}
	if req.Description != nil {
		setParts = append(setParts, "description = ?")
		args = append(args, *req.Description)
	}
	if req.CategoryID != nil {
		setParts = append(setParts, "category_id = ?")
		args = append(args, *req.CategoryID)
	}
	if req.SubCategoryID != nil {
		setParts = append(setParts, "sub_category_id = ?")
		args = append(args, *req.SubCategoryID)
	}
	if req.LevelID != nil {
		setParts = append(setParts, "level_id = ?")
		args = append(args, *req.LevelID)
	}
	if req.ImageURL != nil {
		setParts = append(setParts, "image_url = ?")
		args = append(args, *req.ImageURL)
	}
	if req.Price != nil {
		setParts = append(setParts, "price = ?")
		args = append(args, float64(*req.Price))
	}

	if len(setParts) == 0 {
		return models.ErrNoFieldsToUpdate
	}

	query := fmt.Sprintf(`
		UPDATE courses
		SET %s
		WHERE id = ?
	`, strings.Join(setParts, ", "))

	args = append(args, id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrCourseNotFound
	}

	return nil
}

// SetPublished sets the publication flag of a course
func (r *courseRepository) SetPublished(ctx context.Context, id string, published bool) error {
	query := "UPDATE courses SET is_published = ? WHERE id = ?"

	result, err := r.db.ExecContext(ctx, query, published, id)
	if err != nil {
		return fmt.Errorf("failed to set course publication: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrCourseNotFound
	}

	return nil
}
