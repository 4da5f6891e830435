package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/coursestudio/backend/internal/models"
)

type videoMetadataRepository struct {
	db *sql.DB
}

// NewVideoMetadataRepository creates a new video metadata repository
func NewVideoMetadataRepository(db *sql.DB) *videoMetadataRepository {
	return &videoMetadataRepository{
		db: db,
	}
}

// GetBySectionID retrieves the playback record of a section.
//
// A section without an attached asset has no record; in that case nil is returned without an error.
func (r *videoMetadataRepository) GetBySectionID(ctx context.Context, sectionID string) (*models.VideoMetadata, error) {
	query := `
		SELECT id, section_id, asset_id, playback_id
		FROM mux_data
		WHERE section_id = ?
		LIMIT 1
	`

	var video models.VideoMetadata
	var playbackID sql.NullString
	err := r.db.QueryRowContext(ctx, query, sectionID).Scan(
		&video.ID,
		&video.SectionID,
		&video.AssetID,
		&playbackID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get video metadata: %w", err)
	}

	video.PlaybackID = nullableString(playbackID)
	return &video, nil
}
