package config

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/tuikit/internal/ui/components"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hexColorPattern   = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	styleTokenPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)
	fontSizePattern   = regexp.MustCompile(`^\d+(?:\.\d+)?(?:px|pt|em|rem)$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			return isColor(fl.Field().String())
		})

		_ = v.RegisterValidation("style_token", func(fl validator.FieldLevel) bool {
			return styleTokenPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("font_size", func(fl validator.FieldLevel) bool {
			return fontSizePattern.MatchString(strings.ToLower(strings.TrimSpace(fl.Field().String())))
		})

		_ = v.RegisterValidation("border", func(fl validator.FieldLevel) bool {
			_, err := components.ParseBorderVariant(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// isColor accepts hex colours and ANSI 256 palette indexes.
func isColor(value string) bool {
	if hexColorPattern.MatchString(value) {
		return true
	}
	n, err := strconv.Atoi(value)
	return err == nil && n >= 0 && n <= 255
}
