package validation

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	apperrors "csvfleet/internal/errors"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// validatorInstance returns the shared validator with the custom tags registered
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("delimiter", isValidDelimiter)
	})
	return validate
}

// isValidDelimiter accepts 0 (use the default) or any rune encoding/csv can
// split on: not a quote, not a line break, not the replacement character
func isValidDelimiter(fl validator.FieldLevel) bool {
	r := rune(fl.Field().Int())
	if r == 0 {
		return true
	}
	return r != '"' && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}

// Struct validates an options struct against its validate tags. Failures come
// back as a VALIDATION AppError naming every offending field.
func Struct(v any) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewValidationError("invalid options", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return apperrors.NewValidationError("invalid options: "+strings.Join(msgs, "; "), err)
}
