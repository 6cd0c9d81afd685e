package v1

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding rules to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	return v.RegisterValidation("dueday", func(fl validator.FieldLevel) bool {
		day := fl.Field().Int()
		return day >= 1 && day <= 31
	})
}
