// Package validation provides request input validation helpers.
package validation

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	digitsRegex = regexp.MustCompile(`^\d+$`)
)

// Validator collects field errors in the order they were recorded, so the
// first failing field's message can be surfaced to the client.
type Validator struct {
	Errors map[string]string
	fields []string
}

// New creates a new validator.
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid checks if there are any validation errors.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError adds an error to the validator.
func (v *Validator) AddError(field, message string) {
	if _, exists := v.Errors[field]; !exists {
		v.Errors[field] = message
		v.fields = append(v.fields, field)
	}
}

// Check adds an error if the condition is false.
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// First returns the first recorded error message, or "" if valid.
func (v *Validator) First() string {
	if len(v.fields) == 0 {
		return ""
	}
	return v.Errors[v.fields[0]]
}

// Required checks that a string is not empty after trimming.
func (v *Validator) Required(field, value, message string) {
	v.Check(strings.TrimSpace(value) != "", field, message)
}

// Email validates email format.
func (v *Validator) Email(field, email string) {
	v.Check(emailRegex.MatchString(email), field, "Invalid email address")
}

// MinLength checks if a string has at least n characters.
func (v *Validator) MinLength(field, value string, n int, message string) {
	v.Check(len(value) >= n, field, message)
}

// MaxLength checks if a string has at most n characters.
func (v *Validator) MaxLength(field, value string, n int, message string) {
	v.Check(len(value) <= n, field, message)
}

// DigitsOnly checks that a string consists solely of digits.
func (v *Validator) DigitsOnly(field, value, message string) {
	v.Check(digitsRegex.MatchString(value), field, message)
}

// UUID checks that a string parses as a uuid.
func (v *Validator) UUID(field, value, message string) {
	if _, err := uuid.Parse(value); err != nil {
		v.AddError(field, message)
	}
}
