package store

import (
	"context"

	"github.com/MKhiriev/press-pay/migrations"
)

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB)
}
