package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/hostelhub/internal/pkg/validation"
)

// RegisterCustomValidators hooks the hostel-specific rules into gin's
// binding validator so dto binding tags can use them.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("roomnum", func(fl validator.FieldLevel) bool {
		return validation.ValidRoomNumber(fl.Field().String())
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("blockcode", func(fl validator.FieldLevel) bool {
		return validation.ValidBlockCode(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return validation.ValidPhone(fl.Field().String())
	})
}
