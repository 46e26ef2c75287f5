package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"jobboard_backend/internal/models"
)

// registerCustomRules installs domain-specific validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup defect.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
}

func validateUserRole(fl validator.FieldLevel) bool {
	return models.ValidUserRole(models.UserRole(fl.Field().String()))
}
