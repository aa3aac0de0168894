// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the client-facing message strings written into the
// "detail" and field error bodies of the recipe-keeper API.
//
// Messages ending in a format verb are passed through fmt.Sprintf first.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgNotAuthenticated is returned when a protected route is called
	// without an Authorization header.
	MsgNotAuthenticated = "Authentication credentials were not provided."

	// MsgInvalidToken is returned when the token is malformed, expired,
	// signed with another key or belongs to a user that no longer exists.
	MsgInvalidToken = "Invalid token."

	MsgNotFound = "Not found."

	// MsgMethodNotAllowed takes the request method.
	MsgMethodNotAllowed = "Method %q not allowed."

	MsgServerError = "A server error occurred."

	// MsgMalformedJSON takes the decoder error.
	MsgMalformedJSON = "JSON parse error - %s"

	// MsgMalformedMultipart takes the multipart reader error.
	MsgMalformedMultipart = "Multipart form parse error - %s"

	// MsgUnsupportedMediaType takes the request Content-Type.
	MsgUnsupportedMediaType = "Unsupported media type %q in request."

	MsgRequestTooLarge = "Request entity too large."

	// MsgThrottled is returned once the per-IP limit of the signup and
	// token endpoints is exhausted.
	MsgThrottled = "Request was throttled."

	// Field messages for values of the wrong JSON or query type.
	MsgExpectedInteger = "A valid integer is required."
	MsgExpectedString  = "Not a valid string."
	MsgExpectedList    = "Expected a list of items."
	MsgExpectedBoolean = "Must be a valid boolean."
	MsgExpectedNumber  = "A valid number is required."

	// MsgInvalidChoice takes the rejected value.
	MsgInvalidChoice = "Select a valid choice. %s is not one of the available choices."
)
