package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrCourseNotFound      = errors.New("course not found")
	ErrSectionNotFound     = errors.New("section not found")
	ErrNoFieldsToUpdate    = errors.New("no fields to update")
	ErrNoPublishedSections = errors.New("course must have at least one published section")
)

// ValidationError holds field level messages for a rejected request
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
