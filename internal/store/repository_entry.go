// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/press-pay/internal/logger"
	"github.com/MKhiriev/press-pay/models"
	"github.com/jackc/pgerrcode"
)

// entryRepository is the PostgreSQL implementation of [EntryRepository]
// over the "clothes_entries" table.
//
// Each method is a single statement. Existence and ownership checks live in
// the service, so a row that vanishes in between surfaces here as
// [ErrEntryNotFound].
type entryRepository struct {
	*DB
	logger *logger.Logger
}

// NewEntryRepository constructs an [EntryRepository] backed by db.
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	logger.Debug().Msg("creating entry repository")
	return &entryRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateEntry inserts entry.
//
// Error handling:
//   - foreign_key_violation (23503) → [ErrInvalidReference].
//   - any other driver error → wrapped [ErrExecutingStatement].
func (e *entryRepository) CreateEntry(ctx context.Context, entry models.ClothesEntry) (models.ClothesEntry, error) {
	log := logger.FromContext(ctx)

	row := e.DB.QueryRowContext(ctx, createEntry, entry.Type, entry.Count, entry.CustomerID, entry.VendorID)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "entryRepository.CreateEntry").
			Int64("customer_id", entry.CustomerID).
			Int64("vendor_id", entry.VendorID).
			Msg("failed to insert clothes entry")
		return models.ClothesEntry{}, insertEntryError(err)
	}

	created, err := scanEntry(row)
	if err != nil {
		log.Err(err).Str("func", "entryRepository.CreateEntry").Msg("failed to scan created entry")
		return models.ClothesEntry{}, insertEntryError(err)
	}

	return created, nil
}

func (e *entryRepository) FindEntryByID(ctx context.Context, id int64) (models.ClothesEntry, error) {
	log := logger.FromContext(ctx)

	row := e.DB.QueryRowContext(ctx, findEntryByID, id)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "entryRepository.FindEntryByID").Int64("entry_id", id).Msg("failed to query entry")
		return models.ClothesEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	entry, err := scanEntry(row)
	if errors.Is(err, ErrEntryNotFound) {
		return models.ClothesEntry{}, err
	}
	if err != nil {
		log.Err(err).Str("func", "entryRepository.FindEntryByID").Int64("entry_id", id).Msg("failed to scan entry")
		return models.ClothesEntry{}, err
	}

	return entry, nil
}

// ListEntries returns the entries matching filter ordered by date and then
// id, both descending. An empty result is an empty, non-nil slice.
func (e *entryRepository) ListEntries(ctx context.Context, filter models.EntryFilter) ([]models.ClothesEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "entryRepository.ListEntries").Msg("failed to create query")
		return nil, err
	}

	rows, err := e.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.ListEntries").
			Int64("customer_id", filter.CustomerID).
			Int64("vendor_id", filter.VendorID).
			Msg("failed to execute query for listing entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.ClothesEntry, 0, 16)
	for rows.Next() {
		var entry models.ClothesEntry
		if err := rows.Scan(&entry.ID, &entry.Type, &entry.Count, &entry.CustomerID, &entry.VendorID, &entry.Date); err != nil {
			log.Err(err).Str("func", "entryRepository.ListEntries").Msg("failed to scan entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "entryRepository.ListEntries").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (e *entryRepository) UpdateEntry(ctx context.Context, update models.EntryUpdate) (models.ClothesEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateEntryQuery(update)
	if err != nil {
		log.Err(err).Str("func", "entryRepository.UpdateEntry").Int64("entry_id", update.ID).Msg("failed to create query")
		return models.ClothesEntry{}, err
	}

	row := e.DB.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "entryRepository.UpdateEntry").Int64("entry_id", update.ID).Msg("failed to update entry")
		return models.ClothesEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	updated, err := scanEntry(row)
	if err != nil {
		if !errors.Is(err, ErrEntryNotFound) {
			log.Err(err).Str("func", "entryRepository.UpdateEntry").Int64("entry_id", update.ID).Msg("failed to scan updated entry")
		}
		return models.ClothesEntry{}, err
	}

	return updated, nil
}

func (e *entryRepository) DeleteEntry(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := e.DB.ExecContext(ctx, deleteEntry, id)
	if err != nil {
		log.Err(err).Str("func", "entryRepository.DeleteEntry").Int64("entry_id", id).Msg("failed to delete entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

func insertEntryError(err error) error {
	if postgresError(err) == pgerrcode.ForeignKeyViolation {
		return ErrInvalidReference
	}
	if errors.Is(err, ErrScanningRow) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

// scanEntry maps sql.ErrNoRows to ErrEntryNotFound.
func scanEntry(row *sql.Row) (models.ClothesEntry, error) {
	var entry models.ClothesEntry
	err := row.Scan(&entry.ID, &entry.Type, &entry.Count, &entry.CustomerID, &entry.VendorID, &entry.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ClothesEntry{}, ErrEntryNotFound
	}
	if err != nil {
		return models.ClothesEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}
