package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
	"gitlab.com/tozd/go/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	flagNamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("flagname", func(fl validator.FieldLevel) bool {
			return flagNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks field-level rules. Palette colors must be hex colors and every
// palette needs at least two.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if err := validatorInstance().Struct(cfg); err != nil {
		return errors.Errorf("invalid config: %w", err)
	}
	return nil
}
