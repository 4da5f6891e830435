package models

import "time"

// Section represents a single lesson unit within a course
type Section struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"courseId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	VideoURL    *string   `json:"videoUrl"`
	Position    int       `json:"position"`
	IsPublished bool      `json:"isPublished"`
	IsFree      bool      `json:"isFree"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SectionDetails is the payload a learner receives when opening a published section
type SectionDetails struct {
	Course        *CourseWithSections `json:"course"`
	Section       *Section            `json:"section"`
	VideoMetadata *VideoMetadata      `json:"muxData"`
	Resources     []Resource          `json:"resources"`
}

// CreateSectionRequest represents a request to create a section
type CreateSectionRequest struct {
	Title string `json:"title" validate:"required,min=2,max=255"`
}

// UpdateSectionRequest represents a request to update a section (partial update).
//
// Fields outside of this struct are rejected when the body is decoded.
type UpdateSectionRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=2,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=16000"`
	VideoURL    *string `json:"videoUrl,omitempty" validate:"omitempty,max=2048,len=0|url"`
	IsFree      *bool   `json:"isFree,omitempty"`
	IsPublished *bool   `json:"isPublished,omitempty"`
	Position    *int    `json:"position,omitempty" validate:"omitempty,min=1"`
}

// IsEmpty reports whether the request carries no fields at all
func (r *UpdateSectionRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.VideoURL == nil &&
		r.IsFree == nil && r.IsPublished == nil && r.Position == nil
}

// Unpublishes reports whether the request explicitly unpublishes the section
func (r *UpdateSectionRequest) Unpublishes() bool {
	return r.IsPublished != nil && !*r.IsPublished
}
