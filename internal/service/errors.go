package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for an unknown email, a
	// wrong password or an inactive account alike.
	ErrInvalidCredentials = errors.New("unable to authenticate with provided credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-facing messages of field and non-field validation errors raised by
// the services.
const (
	MsgInvalidCredentials = "Unable to authenticate with provided credentials."
	MsgEmailTaken         = "user with this email already exists."
	MsgPasswordTooLong    = "Ensure this field has no more than 72 characters."
	MsgNoImage            = "No file was submitted."
	MsgInvalidImage       = "Upload a valid image. The file you uploaded was either not an image or a corrupted image."
	msgInvalidPK          = "Invalid pk \"%d\" - object does not exist."
)
