package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Errors collects validation messages in the order the rules failed.
type Errors struct {
	errors []string
}

// Add appends a message to the collection.
func (e *Errors) Add(message string) {
	e.errors = append(e.errors, message)
}

// HasErrors reports whether any rule failed.
func (e *Errors) HasErrors() bool {
	return len(e.errors) > 0
}

// GetErrors returns the collected messages in insertion order.
func (e *Errors) GetErrors() []string {
	return e.errors
}

// Required fails when the value is empty or whitespace-only.
func Required(value, fieldName string) string {
	if strings.TrimSpace(value) == "" {
		return fmt.Sprintf("%s is required.", fieldName)
	}
	return ""
}

// MinLength checks the trimmed length in characters, not bytes; absent
// values pass.
func MinLength(value string, min int, fieldName string) string {
	if value != "" && utf8.RuneCountInString(strings.TrimSpace(value)) < min {
		return fmt.Sprintf("%s must be at least %d characters.", fieldName, min)
	}
	return ""
}

// MaxLength checks the raw length in characters, not bytes; absent values
// pass.
func MaxLength(value string, max int, fieldName string) string {
	if value != "" && utf8.RuneCountInString(value) > max {
		return fmt.Sprintf("%s must be no more than %d characters.", fieldName, max)
	}
	return ""
}

// EmailFormat checks for a structural local@domain address; absent values pass.
func EmailFormat(value, fieldName string) string {
	if value == "" {
		return ""
	}
	if !emailPattern.MatchString(value) {
		return fmt.Sprintf("%s format is invalid.", fieldName)
	}
	return ""
}

// SlugFormat requires lowercase letters, digits, and single interior hyphens;
// absent values pass.
func SlugFormat(value, fieldName string) string {
	if value == "" {
		return ""
	}
	if !slugPattern.MatchString(value) {
		return fmt.Sprintf("%s must contain only lowercase letters, numbers, and hyphens.", fieldName)
	}
	return ""
}

// Status checks membership in the allowed set; absent values pass.
func Status(value string, allowed []string, fieldName string) string {
	if value == "" {
		return ""
	}
	for _, s := range allowed {
		if value == s {
			return ""
		}
	}
	return fmt.Sprintf("%s must be one of: %s.", fieldName, strings.Join(allowed, ", "))
}
