package client

import "errors"

var (
	ErrNoAdapter       = errors.New("no api adapter given")
	ErrMissingCommand  = errors.New("missing command")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
	ErrInvalidArgument = errors.New("invalid argument")
)
