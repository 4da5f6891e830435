package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/coursestudio/backend/internal/models"
)

type resourceRepository struct {
	db *sql.DB
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(db *sql.DB) *resourceRepository {
	return &resourceRepository{
		db: db,
	}
}

// GetBySectionID retrieves all resources of a section in insertion order
func (r *resourceRepository) GetBySectionID(ctx context.Context, sectionID string) ([]models.Resource, error) {
	query := `
		SELECT id, section_id, name, file_url, created_at
		FROM resources
		WHERE section_id = ?
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, sectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query resources: %w", err)
	}
	defer rows.Close()

	resources := []models.Resource{}
	for rows.Next() {
		var resource models.Resource
		err := rows.Scan(
			&resource.ID,
			&resource.SectionID,
			&resource.Name,
			&resource.FileURL,
			&resource.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resource: %w", err)
		}
		resources = append(resources, resource)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return resources, nil
}
