package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"UltimateCareer/service/career/internal/apperr"
	"github.com/go-playground/validator/v10"
)

// Validatore di schema condiviso: dato un input con tag `validate`,
// ritorna nil oppure un apperr di validazione con tutti i campi non validi.
var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	// I nomi dei campi negli errori seguono il tag json (es. "starters[3].player_id").
	val.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return val
}

// Struct valida l'input e raccoglie ogni field issue in un unico errore.
// messages permette di sovrascrivere il messaggio per campo/tag
// (chiave "campo" oppure "campo.tag").
func Struct(input any, messages map[string]string) error {
	err := v.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return apperr.Internal(err)
	}

	issues := make([]apperr.FieldIssue, 0, len(validationErrs))
	for _, fe := range validationErrs {
		issues = append(issues, apperr.FieldIssue{
			Field:   fieldPath(fe),
			Message: message(fe, messages),
		})
	}
	return apperr.Validation("Validation failed", issues...)
}

// fieldPath toglie il nome della struct radice dal namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func message(fe validator.FieldError, messages map[string]string) string {
	base := fe.Field()
	if msg, ok := messages[base+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := messages[base]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", base)
	case "uuid", "uuid4":
		return fmt.Sprintf("%s must be a valid UUID", base)
	case "oneof":
		return fmt.Sprintf("Invalid %s", base)
	case "len":
		return fmt.Sprintf("%s must have length %s", base, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", base, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", base, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", base, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", base)
	}
}
