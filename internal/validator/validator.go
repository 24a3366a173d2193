// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"assistec/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("admin_role", validateAdminRole)
		_ = v.RegisterValidation("metric_type", validateMetricType)
		_ = v.RegisterValidation("note_color", validateNoteColor)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateAdminRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "owner", "consultant":
		return true
	}
	return false
}

func validateMetricType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "text", "percentage", "currency", "number":
		return true
	}
	return false
}

func validateNoteColor(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, c := range models.NoteColors {
		if value == c {
			return true
		}
	}
	return false
}
