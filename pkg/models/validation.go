package models

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// registerValidations adds the custom tags used by ContactFormData to v
func registerValidations(v *validator.Validate) error {
	return v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

func formValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		if err := registerValidations(v); err != nil {
			panic(err)
		}
		validate = v
	})
	return validate
}

// Validate checks the required-field and email rules before dispatch
func (d ContactFormData) Validate() error {
	return formValidator().Struct(d)
}

// InvalidFields returns the JSON names of the fields that failed validation
func InvalidFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.StructField() {
		case "Name":
			fields = append(fields, FieldName)
		case "Email":
			fields = append(fields, FieldEmail)
		case "ProjectType":
			fields = append(fields, FieldProjectType)
		case "Message":
			fields = append(fields, FieldMessage)
		}
	}
	return fields
}
