// Package forms is the schema-driven validation layer behind the
// create/edit forms. Field rules live in validate tags on the per-
// resource form structs; cross-field rules are checked by the form's
// own Validate method on top of this package.
package forms

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateFormat is the fixed calendar-date string format used in request
// payloads (dateOfBirth, joiningDate, registrationDate, workload date).
const DateFormat = "2006-01-02"

var validate = validator.New()

// Errors maps a form field to its first validation message.
type Errors map[string]string

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// Field returns the message for a field, or "" when the field is fine.
func (e Errors) Field(name string) string {
	return e[name]
}

// Check runs the struct's validate tags and converts failures into
// field-keyed Errors. A nil return means the form passed.
func Check(form interface{}) Errors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{"form": err.Error()}
	}

	out := Errors{}
	for _, fe := range verrs {
		field := lowerFirst(fe.Field())
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind().String() == "slice" {
			return fmt.Sprintf("needs at least %s entry", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("cannot exceed %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	case "datetime":
		return "must be a valid date"
	default:
		return "is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// ParseDate parses a calendar-date payload string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

// FormatDate serializes a time to the calendar-date payload format.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// AppendListItem adds an entry to an ordered list field. The entry is
// trimmed; empty entries are dropped; duplicates stay allowed and no
// other normalization happens.
func AppendListItem(list []string, item string) []string {
	item = strings.TrimSpace(item)
	if item == "" {
		return list
	}
	return append(list, item)
}

// RemoveListItem removes the entry at index, preserving order.
// Out-of-range indexes leave the list unchanged.
func RemoveListItem(list []string, index int) []string {
	if index < 0 || index >= len(list) {
		return list
	}
	return append(list[:index:index], list[index+1:]...)
}
