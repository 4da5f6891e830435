package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Course represents a course owned by an instructor
type Course struct {
	ID            string    `json:"id"`
	InstructorID  string    `json:"instructorId"`
	Title         string    `json:"title"`
	Subtitle      *string   `json:"subtitle"`
	Description   *string   `json:"description"`
	ImageURL      *string   `json:"imageUrl"`
	CategoryID    string    `json:"categoryId"`
	SubCategoryID string    `json:"subCategoryId"`
	LevelID       *string   `json:"levelId"`
	Price         *float64  `json:"price"`
	IsPublished   bool      `json:"isPublished"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CourseWithSections is a course together with the sections a learner may navigate to
type CourseWithSections struct {
	Course
	Sections []Section `json:"sections"`
}

// UpdateCourseRequest represents a request to update a course (partial update).
//
// Only the fields listed here can be changed through the API. Upper bounds follow the column sizes.
type UpdateCourseRequest struct {
	Title         *string     `json:"title,omitempty" validate:"omitempty,min=2,max=255"`
	Subtitle      *string     `json:"subtitle,omitempty" validate:"omitempty,max=255"`
	Description   *string     `json:"description,omitempty" validate:"omitempty,max=16000"`
	CategoryID    *string     `json:"categoryId,omitempty" validate:"omitempty,min=1,max=191"`
	SubCategoryID *string     `json:"subCategoryId,omitempty" validate:"omitempty,min=1,max=191"`
	LevelID       *string     `json:"levelId,omitempty" validate:"omitempty,max=191"`
	ImageURL      *string     `json:"imageUrl,omitempty" validate:"omitempty,max=2048,len=0|url"`
	Price         *CoercedNum `json:"price,omitempty" validate:"omitempty,gte=0,lte=99999999.99"`
}

// IsEmpty reports whether the request carries no fields at all
func (r *UpdateCourseRequest) IsEmpty() bool {
	return r.Title == nil && r.Subtitle == nil && r.Description == nil &&
		r.CategoryID == nil && r.SubCategoryID == nil && r.LevelID == nil &&
		r.ImageURL == nil && r.Price == nil
}

// CoercedNum is a number that also accepts its string form in JSON ("12.5" or 12.5)
type CoercedNum float64

// UnmarshalJSON implements json.Unmarshaler
func (n *CoercedNum) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return fmt.Errorf("invalid number %q", s)
		}
		*n = CoercedNum(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = CoercedNum(f)
	return nil
}
