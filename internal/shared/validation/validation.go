package validation

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/TWO-MIX/mind-space/internal/bookings"
	"github.com/TWO-MIX/mind-space/internal/cafes"
)

// RegisterCustomValidators installs the domain enum validators on gin's
// binding engine. Must run before any request is bound.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("quietness_level", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return value == cafes.AmbienceAll || cafes.QuietnessLevel(value).IsValid()
	})

	v.RegisterValidation("busyness_level", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return value == cafes.AmbienceAll || cafes.BusynessLevel(value).IsValid()
	})

	v.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
		return bookings.PaymentMethod(fl.Field().String()).IsValid()
	})
}
