package models

import "time"

// Resource represents a downloadable file attached to a section
type Resource struct {
	ID        string    `json:"id"`
	SectionID string    `json:"sectionId"`
	Name      string    `json:"name"`
	FileURL   string    `json:"fileUrl"`
	CreatedAt time.Time `json:"createdAt"`
}
