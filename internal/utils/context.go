// Package utils provides small helpers shared by the HTTP layer and the
// services: typed context keys, JWT signing and parsing, and JSON response
// writing.
package utils

import (
	"context"

	"github.com/MKhiriev/press-pay/models"
)

// contextKey is a private type for context keys, so values set here never
// collide with string keys from other packages.
type contextKey string

// String implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the auth middleware stores the
// authenticated [models.Identity].
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying the caller's identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext retrieves the identity stored by WithIdentity.
// ok is false when the value is missing or has an unexpected type.
//
//	identity, ok := utils.GetIdentityFromContext(r.Context())
//	if !ok {
//	    // request did not pass the auth middleware
//	}
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}
