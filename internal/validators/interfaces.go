// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate request bodies.
//     Optional field names list the fields that must be present.
//
// Usage patterns:
//  1. Implement Validator for a group of request types.
//  2. Inject Validator implementations into service decorators.
//  3. Call Validate with context, value, and the required field names.
//
// Rejections are reported as [models.ValidationError], a field-to-messages
// map the transport layer renders as is.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations check every field that is present and report the listed
// fields that are absent.
type Validator interface {

	// Validate validates the provided input. Names passed after the
	// value are fields that must be present.
	Validate(context.Context, any, ...string) error
}
