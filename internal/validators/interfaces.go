// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request bodies before they reach the services.
//
// Every validator implements [Validator]. Optional field names restrict a
// call to a subset of the checks, which lets the entry service validate a
// partial update with the same rules as a create.
package validators

import "context"

// Validator validates the provided input and optionally restricts the
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
