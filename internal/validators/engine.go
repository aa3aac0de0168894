package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/recipe-keeper/models"
	"github.com/go-playground/validator/v10"
)

// tagNotBlank rejects strings that are empty after trimming spaces.
const tagNotBlank = "notblank"

// engine wraps go-playground/validator and turns its field errors into
// API messages keyed by the JSON field name.
type engine struct {
	validate *validator.Validate
}

func newEngine() *engine {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, tagNotBlank, func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &engine{validate: v}
}

// mustRegister panics when v rejects the rule.
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validators: register %q: %v", tag, err))
	}
}

// check validates value against rules and records every failure on field.
func (e *engine) check(errs models.ValidationError, field string, value any, rules string) {
	err := e.validate.Var(value, rules)
	if err == nil {
		return
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		errs.Add(field, MsgInvalid)
		return
	}
	for _, fe := range fieldErrors {
		errs.Add(field, message(fe))
	}
}

func message(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return MsgRequired
	case tagNotBlank:
		return MsgBlank
	case "email":
		return MsgInvalidEmail
	case "max":
		if isString {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "min":
		if isString {
			return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "gt":
		return fmt.Sprintf("Ensure this value is greater than %s.", fe.Param())
	default:
		return MsgInvalid
	}
}

// checkPrice records precision violations of a price.
func checkPrice(errs models.ValidationError, field string, p models.Price) {
	if p.IsNegative() {
		errs.Add(field, MsgNegative)
	}
	if !p.FitsScale() {
		errs.Add(field, MsgDecimals)
	}
	if !p.FitsDigits() {
		errs.Add(field, MsgDigits)
	}
}

// requirePresent records MsgRequired when present is false.
func requirePresent(errs models.ValidationError, field string, present bool) {
	if !present {
		errs.Add(field, MsgRequired)
	}
}
