package repositories

import (
	"context"
	"database/sql"

	"github.com/coursestudio/backend/internal/models"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// rowQuerier is satisfied by *sql.DB and *sql.Tx
type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const courseColumns = `id, instructor_id, title, subtitle, description, image_url, category_id, sub_category_id, level_id, price, is_published, created_at, updated_at`

const sectionColumns = `id, course_id, title, description, video_url, position, is_published, is_free, created_at, updated_at`

func scanCourse(row rowScanner) (*models.Course, error) {
	var course models.Course
	var subtitle, description, imageURL, levelID sql.NullString
	var price sql.NullFloat64

	err := row.Scan(
		&course.ID,
		&course.InstructorID,
		&course.Title,
		&subtitle,
		&description,
		&imageURL,
		&course.CategoryID,
		&course.SubCategoryID,
		&levelID,
		&price,
		&course.IsPublished,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	course.Subtitle = nullableString(subtitle)
	course.Description = nullableString(description)
	course.ImageURL = nullableString(imageURL)
	course.LevelID = nullableString(levelID)
	if price.Valid {
		course.Price = &price.Float64
	}

	return &course, nil
}

func scanSection(row rowScanner) (*models.Section, error) {
	var section models.Section
	var description, videoURL sql.NullString

	err := row.Scan(
		&section.ID,
		&section.CourseID,
		&section.Title,
		&description,
		&videoURL,
		&section.Position,
		&section.IsPublished,
		&section.IsFree,
		&section.CreatedAt,
		&section.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	section.Description = nullableString(description)
	section.VideoURL = nullableString(videoURL)
	return &section, nil
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
