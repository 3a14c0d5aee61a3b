package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	tkerrors "github.com/alexisbeaulieu97/tuikit/pkg/errors"
)

// convertValidationError normalizes validator errors into validation errors
// named after the YAML fields.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return tkerrors.NewValidationError(field, msg, err)
	}

	return tkerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct name from the namespace, leaving
// a path such as "styles[modal].fg".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}
