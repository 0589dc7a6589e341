package handler

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/lumeo-app/lumeo-backend/internal/domain"
)

// The request structs bind with custom enum tags, so registration has to
// happen before the first ShouldBindJSON call in this package.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("interactionkind", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseInteractionKind(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("messagekind", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseMessageKind(fl.Field().String())
		return err == nil
	})
}
