package validators

import (
	"context"
	"strconv"

	"github.com/MKhiriev/recipe-keeper/models"
)

const (
	FieldEmail    = "email"
	FieldUsername = "username"
	FieldPassword = "password"
)

const (
	rulesEmail    = "notblank,email,max=255"
	rulesUsername = "max=255"
)

// UserValidator validates account requests: signup ([models.User]),
// profile updates ([models.UserUpdate]) and token requests
// ([models.Credentials]).
type UserValidator struct {
	engine        *engine
	passwordRules string
}

// NewUserValidator constructs a UserValidator enforcing the given
// minimum password length.
func NewUserValidator(passwordMinLength int) Validator {
	return &UserValidator{
		engine:        newEngine(),
		passwordRules: "min=" + strconv.Itoa(passwordMinLength),
	}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, required ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, required...)
	case *models.User:
		return v.validateUser(*value, required...)

	case models.UserUpdate:
		return v.validateUserUpdate(value, required...)
	case *models.UserUpdate:
		return v.validateUserUpdate(*value, required...)

	case models.Credentials:
		return v.validateCredentials(value)
	case *models.Credentials:
		return v.validateCredentials(*value)

	default:
		return ErrUnsupportedType
	}
}

// validateUser checks a signup request; email and password are always
// required.
func (v *UserValidator) validateUser(user models.User, required ...string) error {
	errs := models.ValidationError{}

	for _, f := range required {
		switch f {
		case FieldEmail, FieldPassword:
		case FieldUsername:
			if user.Username == "" {
				errs.Add(f, MsgRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	v.engine.check(errs, FieldEmail, user.Email, rulesEmail)
	v.checkPassword(errs, user.Password)
	v.engine.check(errs, FieldUsername, user.Username, rulesUsername)

	return errs.Err()
}

func (v *UserValidator) validateUserUpdate(update models.UserUpdate, required ...string) error {
	errs := models.ValidationError{}

	for _, f := range required {
		switch f {
		case FieldEmail:
			requirePresent(errs, f, update.Email != nil)
		case FieldUsername:
			requirePresent(errs, f, update.Username != nil)
		case FieldPassword:
			requirePresent(errs, f, update.Password != nil)
		default:
			return ErrUnknownField
		}
	}

	if update.Email != nil {
		v.engine.check(errs, FieldEmail, *update.Email, rulesEmail)
	}
	if update.Username != nil {
		v.engine.check(errs, FieldUsername, *update.Username, rulesUsername)
	}
	if update.Password != nil {
		v.checkPassword(errs, *update.Password)
	}

	return errs.Err()
}

func (v *UserValidator) validateCredentials(credentials models.Credentials) error {
	errs := models.ValidationError{}
	v.engine.check(errs, FieldEmail, credentials.Email, tagNotBlank)
	v.engine.check(errs, FieldPassword, credentials.Password, tagNotBlank)
	return errs.Err()
}

// checkPassword reports a blank password once instead of stacking the
// length message on top of it.
func (v *UserValidator) checkPassword(errs models.ValidationError, password string) {
	if password == "" {
		errs.Add(FieldPassword, MsgBlank)
		return
	}
	v.engine.check(errs, FieldPassword, password, v.passwordRules)
}
