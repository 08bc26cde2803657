package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio-site/pkg/models"
)

func TestContactForm(t *testing.T) {
	form := NewContactForm()
	assert.True(t, form.Snapshot().IsEmpty())

	form.Set(models.FieldName, "Jane")
	form.Set(models.FieldEmail, "jane@x.com")
	form.Set(models.FieldProjectType, "local")
	form.Set(models.FieldMessage, "hello")
	form.Set("phone", "555-0100")

	snapshot := form.Snapshot()
	assert.Equal(t, models.ContactFormData{
		Name:        "Jane",
		Email:       "jane@x.com",
		ProjectType: "local",
		Message:     "hello",
	}, snapshot)

	// A snapshot is a copy, not a view
	form.Set(models.FieldName, "Janet")
	assert.Equal(t, "Jane", snapshot.Name)

	form.Clear()
	assert.True(t, form.Snapshot().IsEmpty())
}
