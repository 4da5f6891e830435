package models

// VideoMetadata is the playback record of the video hosting provider for a section
type VideoMetadata struct {
	ID         string  `json:"id"`
	SectionID  string  `json:"sectionId"`
	AssetID    string  `json:"assetId"`
	PlaybackID *string `json:"playbackId"`
}
