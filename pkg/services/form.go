package services

import (
	"sync"

	"portfolio-site/pkg/models"
)

// ContactForm holds the live field values of one contact form
type ContactForm struct {
	mu   sync.RWMutex
	data models.ContactFormData
}

// NewContactForm creates an empty form
func NewContactForm() *ContactForm {
	return &ContactForm{}
}

// Populate replaces every field with the given values
func (f *ContactForm) Populate(data models.ContactFormData) {
	f.mu.Lock()
	f.data = data
	f.mu.Unlock()
}

// Set updates one field by name; unknown names are ignored
func (f *ContactForm) Set(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case models.FieldName:
		f.data.Name = value
	case models.FieldEmail:
		f.data.Email = value
	case models.FieldProjectType:
		f.data.ProjectType = value
	case models.FieldMessage:
		f.data.Message = value
	}
}

// Clear empties every field
func (f *ContactForm) Clear() {
	f.Populate(models.ContactFormData{})
}

// Snapshot returns a copy of the current values
func (f *ContactForm) Snapshot() models.ContactFormData {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.data
}
