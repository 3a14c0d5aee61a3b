package components

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/tuikit/internal/logger"
	tkerrors "github.com/alexisbeaulieu97/tuikit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// propsValidator returns the shared validator used for widget props.
func propsValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validateInst
}

// validateProps checks props against their `validate` tags and turns every
// violation into a MissingInputError for component.
func validateProps(component string, props any) error {
	err := propsValidator().Struct(props)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, tkerrors.NewMissingInputError(component, fe.Field(), fe.Tag()))
	}
	return errors.Join(errs...)
}

// reportInputErrors logs each input violation; the widget carries on with
// its defaults.
func reportInputErrors(log *logger.Logger, err error) {
	if err == nil {
		return
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			log.WarnErr(e, "invalid widget input, using default")
		}
		return
	}
	log.WarnErr(err, "invalid widget input, using default")
}

// Bool returns a pointer to v, for required boolean props.
func Bool(v bool) *bool {
	return &v
}

// Int returns a pointer to v, for required integer props.
func Int(v int) *int {
	return &v
}

func noop() {}

func noopInt(int) {}
