package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/coursestudio/backend/internal/models"
	"go.uber.org/zap"
)

type sectionRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSectionRepository creates a new section repository
func NewSectionRepository(db *sql.DB, logger *zap.Logger) *sectionRepository {
	return &sectionRepository{
		db:     db,
		logger: logger,
	}
}

// GetByIDAndCourse retrieves a section of a course regardless of its publication state
func (r *sectionRepository) GetByIDAndCourse(ctx context.Context, id, courseID string) (*models.Section, error) {
	return r.getSection(ctx, r.db, id, courseID, false)
}

// GetPublishedByIDAndCourse retrieves a published section of a course
func (r *sectionRepository) GetPublishedByIDAndCourse(ctx context.Context, id, courseID string) (*models.Section, error) {
	return r.getSection(ctx, r.db, id, courseID, true)
}

func (r *sectionRepository) getSection(ctx context.Context, q rowQuerier, id, courseID string, publishedOnly bool) (*models.Section, error) {
	query := `
		SELECT ` + sectionColumns + `
		FROM sections
		WHERE id = ? AND course_id = ?
		LIMIT 1
	`
	if publishedOnly {
		query = `
		SELECT ` + sectionColumns + `
		FROM sections
		WHERE id = ? AND course_id = ? AND is_published = TRUE
		LIMIT 1
	`
	}

	section, err := scanSection(q.QueryRowContext(ctx, query, id, courseID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrSectionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get section: %w", err)
	}

	return section, nil
}

// CountPublished counts the published sections of a course
func (r *sectionRepository) CountPublished(ctx context.Context, courseID string) (int, error) {
	return countPublished(ctx, r.db, courseID)
}

// Create inserts a new section at the end of the course.
//
// The position is computed as the current maximum plus one while the course row is locked,
// so concurrent creates in the same course get distinct positions.
func (r *sectionRepository) Create(ctx context.Context, section *models.Section) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := lockCourse(ctx, tx, section.CourseID); err != nil {
		return err
	}

	last, err := lastPosition(ctx, tx, section.CourseID)
	if err != nil {
		return err
	}
	section.Position = last + 1

	query := `
		INSERT INTO sections (id, course_id, title, position, is_published, is_free, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, query,
		section.ID,
		section.CourseID,
		section.Title,
		section.Position,
		section.IsPublished,
		section.IsFree,
		section.CreatedAt,
		section.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create section: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Update applies a partial update to a section and returns the stored result.
//
// When the update unpublishes the section, the course is unpublished in the same transaction
// if no published section remains. A position change moves the section and shifts the sections
// in between, so positions within a course stay unique.
func (r *sectionRepository) Update(ctx context.Context, id, courseID string, req *models.UpdateSectionRequest) (*models.Section, error) {
	if req.IsEmpty() {
		return nil, models.ErrNoFieldsToUpdate
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	unpublishes := req.Unpublishes()
	if unpublishes || req.Position != nil {
		if err := lockCourse(ctx, tx, courseID); err != nil {
			return nil, err
		}
	}

	position := req.Position
	if position != nil {
		moved, err := moveSection(ctx, tx, id, courseID, *position)
		if err != nil {
			return nil, err
		}
		position = &moved
	}

	var setParts []string
	var args []any

	if req.Title != nil {
		setParts = append(setParts, "title = ?")
		args = append(args, *req.Title)
	}
	if req.Description != nil {
		setParts = append(setParts, "description = ?")
		args = append(args, *req.Description)
	}
	if req.VideoURL != nil {
		setParts = append(setParts, "video_url = ?")
		args = append(args, *req.VideoURL)
	}
	if req.IsFree != nil {
		setParts = append(setParts, "is_free = ?")
		args = append(args, *req.IsFree)
	}
	if req.IsPublished != nil {
		setParts = append(setParts, "is_published = ?")
		args = append(args, *req.IsPublished)
	}
	if position != nil {
		setParts = append(setParts, "position = ?")
		args = append(args, *position)
	}

	query := fmt.Sprintf(`
		UPDATE sections
		SET %s
		WHERE id = ? AND course_id = ?
	`, strings.Join(setParts, ", "))

	args = append(args, id, courseID)

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update section: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, models.ErrSectionNotFound
	}

	if unpublishes {
		unpublished, err := unpublishCourseIfEmpty(ctx, tx, courseID)
		if err != nil {
			return nil, err
		}
		if unpublished {
			r.logger.Info("course unpublished after its last published section was unpublished",
				zap.String("course_id", courseID),
				zap.String("section_id", id),
			)
		}
	}

	section, err := r.getSection(ctx, tx, id, courseID, false)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return section, nil
}

// Delete removes a section and unpublishes its course when no published section remains.
//
// Resources and video metadata of the section are removed by the ON DELETE CASCADE foreign keys.
// The whole sequence runs in one transaction with the course row locked, so sibling deletes
// are serialized and the course is never left published without published sections.
// Returns true if the course was unpublished.
func (r *sectionRepository) Delete(ctx context.Context, id, courseID string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := lockCourse(ctx, tx, courseID); err != nil {
		return false, err
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM sections WHERE id = ? AND course_id = ?", id, courseID)
	if err != nil {
		return false, fmt.Errorf("failed to delete section: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return false, models.ErrSectionNotFound
	}

	unpublished, err := unpublishCourseIfEmpty(ctx, tx, courseID)
	if err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return unpublished, nil
}

// lockCourse takes a row lock on the course for the rest of the transaction
func lockCourse(ctx context.Context, tx *sql.Tx, courseID string) error {
	var id string
	err := tx.QueryRowContext(ctx, "SELECT id FROM courses WHERE id = ? FOR UPDATE", courseID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrCourseNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to lock course: %w", err)
	}
	return nil
}

func lastPosition(ctx context.Context, q rowQuerier, courseID string) (int, error) {
	var last int
	err := q.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(position), 0) FROM sections WHERE course_id = ?",
		courseID,
	).Scan(&last)
	if err != nil {
		return 0, fmt.Errorf("failed to get last section position: %w", err)
	}
	return last, nil
}

// moveSection shifts the sections between the current and the target position by one
// and returns the position to store. Targets past the end are clamped to the last position.
func moveSection(ctx context.Context, tx *sql.Tx, id, courseID string, target int) (int, error) {
	var current int
	err := tx.QueryRowContext(ctx,
		"SELECT position FROM sections WHERE id = ? AND course_id = ?",
		id, courseID,
	).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, models.ErrSectionNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get section position: %w", err)
	}

	last, err := lastPosition(ctx, tx, courseID)
	if err != nil {
		return 0, err
	}
	if target > last {
		target = last
	}

	switch {
	case target < current:
		_, err = tx.ExecContext(ctx, `
			UPDATE sections
			SET position = position + 1
			WHERE course_id = ? AND position >= ? AND position < ? AND id <> ?
		`, courseID, target, current, id)
	case target > current:
		_, err = tx.ExecContext(ctx, `
			UPDATE sections
			SET position = position - 1
			WHERE course_id = ? AND position > ? AND position <= ? AND id <> ?
		`, courseID, current, target, id)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to shift sections: %w", err)
	}

	return target, nil
}

func countPublished(ctx context.Context, q rowQuerier, courseID string) (int, error) {
	var count int
	err := q.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sections WHERE course_id = ? AND is_published = TRUE",
		courseID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count published sections: %w", err)
	}
	return count, nil
}

// unpublishCourseIfEmpty flips the course to unpublished when it has no published sections left
func unpublishCourseIfEmpty(ctx context.Context, tx *sql.Tx, courseID string) (bool, error) {
	count, err := countPublished(ctx, tx, courseID)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	if _, err := tx.ExecContext(ctx, "UPDATE courses SET is_published = FALSE WHERE id = ?", courseID); err != nil {
		return false, fmt.Errorf("failed to unpublish course: %w", err)
	}
	return true, nil
}
