package validators

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterBindings adds the custom tags used by request structs to
// gin's validator engine.
func RegisterBindings() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("hhmm", validateHHMM); err != nil {
		return err
	}
	return v.RegisterValidation("phone", validatePhone)
}

// validateHHMM accepts "HH:MM" wall-clock times; empty passes so the
// tag composes with omitempty-style optional fields.
func validateHHMM(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := time.Parse("15:04", s)
	return err == nil && len(s) == 5
}

func validatePhone(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || IsPhoneValid(s)
}
