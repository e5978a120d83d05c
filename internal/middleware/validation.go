package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yosefd/rollbook/internal/app/models"
)

// RegisterCustomValidators installs the fixed-set field validators on gin's
// binding engine so binding tags can reference them.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("enrollmentyear", func(fl validator.FieldLevel) bool {
		return models.EnrollmentYear(fl.Field().String()).IsValid()
	})
	v.RegisterValidation("staffrole", func(fl validator.FieldLevel) bool {
		return models.Role(fl.Field().String()).IsValid()
	})
	v.RegisterValidation("schoolday", func(fl validator.FieldLevel) bool {
		return models.Weekday(fl.Field().String()).IsValid()
	})
	v.RegisterValidation("timeslot", func(fl validator.FieldLevel) bool {
		return models.TimeSlot(fl.Field().String()).IsValid()
	})
}
