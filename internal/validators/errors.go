package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Messages attached to rejected fields. The wording is part of the API.
const (
	MsgRequired     = "This field is required."
	MsgBlank        = "This field may not be blank."
	MsgInvalidEmail = "Enter a valid email address."
	MsgNegative     = "Ensure this value is greater than or equal to 0."
	MsgDecimals     = "Ensure that there are no more than 2 decimal places."
	MsgDigits       = "Ensure that there are no more than 5 digits in total."
	MsgInvalid      = "Invalid value."
)
