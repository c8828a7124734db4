// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the PressPay REST API.
//
// [ServerAdapter] hides the transport from callers. The HTTP implementation
// ([NewHTTPServerAdapter]) is built on resty. Failure envelopes are decoded
// into [*APIError] values that wrap a status sentinel from errors.go, so
// callers can branch with [errors.Is] (e.g. [ErrConflict] for 409) or read
// the server's error code with [errors.As].
package adapter

import (
	"context"

	"github.com/MKhiriev/press-pay/models"
)

// ServerAdapter defines communication with a PressPay server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Register and Login call it on success.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// ServiceInfo returns the service name reported by GET /.
	ServiceInfo(ctx context.Context) (string, error)

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates and stores the issued token.
	Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error)

	// Me returns the identity carried by the stored token.
	Me(ctx context.Context) (models.Identity, error)

	CreateEntry(ctx context.Context, request models.CreateEntryRequest) (models.ClothesEntry, error)
	ListEntries(ctx context.Context) ([]models.ClothesEntry, error)
	UpdateEntry(ctx context.Context, id int64, request models.UpdateEntryRequest) (models.ClothesEntry, error)
	DeleteEntry(ctx context.Context, id int64) error
}
