package validation

import (
	"restropay/internal/payperiod"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterBindingValidators installs the custom rules request binding tags
// rely on. Call once at startup.
func RegisterBindingValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("calendardate", func(fl validator.FieldLevel) bool {
		_, err := payperiod.ParseDate(fl.Field().String())
		return err == nil
	})
}
