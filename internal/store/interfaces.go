package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/press-pay/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with the id and created_at
	// assigned by the database. A taken email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns ErrNoUserWasFound when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns ErrNoUserWasFound when no account matches.
	FindUserByID(ctx context.Context, id int64) (models.User, error)
}

// EntryRepository persists clothes entries.
type EntryRepository interface {
	// CreateEntry inserts entry and returns it with the id and date assigned
	// by the database. A dangling customer or vendor id yields
	// ErrInvalidReference.
	CreateEntry(ctx context.Context, entry models.ClothesEntry) (models.ClothesEntry, error)

	// FindEntryByID returns ErrEntryNotFound when no entry matches.
	FindEntryByID(ctx context.Context, id int64) (models.ClothesEntry, error)

	// ListEntries returns the entries matching filter, newest first.
	// The result is never nil.
	ListEntries(ctx context.Context, filter models.EntryFilter) ([]models.ClothesEntry, error)

	// UpdateEntry applies the non-nil fields of update and returns the
	// stored entry. ErrEntryNotFound is returned when the row is gone.
	UpdateEntry(ctx context.Context, update models.EntryUpdate) (models.ClothesEntry, error)

	// DeleteEntry removes the entry. ErrEntryNotFound is returned when
	// nothing was deleted.
	DeleteEntry(ctx context.Context, id int64) error
}
