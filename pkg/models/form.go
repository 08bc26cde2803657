package models

import (
	"strings"
)

// Form field names, mirrored exactly in the JSON sent to the relay
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldProjectType = "projectType"
	FieldMessage     = "message"
)

// Fields lists every contact form field in display order
var Fields = []string{FieldName, FieldEmail, FieldProjectType, FieldMessage}

// ProjectType is one of the options offered by the project type select
type ProjectType struct {
	Value string
	Label string
}

// ProjectTypes are the select options; the empty value means "not chosen"
var ProjectTypes = []ProjectType{
	{Value: "", Label: "Select a project type"},
	{Value: "fullstack", Label: "Fullstack Website"},
	{Value: "local", Label: "Local Business Website"},
	{Value: "contract", Label: "Short-term Contract"},
	{Value: "other", Label: "Other"},
}

// Represents the data structure coming from the contact form.
// projectType is never omitted so the relay always sees all four keys.
// Rules use the validate tag so gin binding only decodes; values are trimmed
// and checked in one place before dispatch.
type ContactFormData struct {
	Name        string `json:"name" form:"name" validate:"required,notblank,max=200"`
	Email       string `json:"email" form:"email" validate:"required,email,max=254"`
	ProjectType string `json:"projectType" form:"projectType" validate:"omitempty,oneof=fullstack local contract other"`
	Message     string `json:"message" form:"message" validate:"required,notblank,max=5000"`
}

// FromValues builds form data from a field-name mapping, ignoring unknown keys
func FromValues(values map[string]string) ContactFormData {
	return ContactFormData{
		Name:        values[FieldName],
		Email:       values[FieldEmail],
		ProjectType: values[FieldProjectType],
		Message:     values[FieldMessage],
	}
}

// Values returns the data as a field-name mapping
func (d ContactFormData) Values() map[string]string {
	return map[string]string{
		FieldName:        d.Name,
		FieldEmail:       d.Email,
		FieldProjectType: d.ProjectType,
		FieldMessage:     d.Message,
	}
}

// Trimmed returns a copy with surrounding whitespace removed from every field
func (d ContactFormData) Trimmed() ContactFormData {
	return ContactFormData{
		Name:        strings.TrimSpace(d.Name),
		Email:       strings.TrimSpace(d.Email),
		ProjectType: strings.TrimSpace(d.ProjectType),
		Message:     strings.TrimSpace(d.Message),
	}
}

// IsEmpty reports whether every field is blank
func (d ContactFormData) IsEmpty() bool {
	return d == ContactFormData{}
}
