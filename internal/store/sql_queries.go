package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/press-pay/models"
)

const (
	createUser = `INSERT INTO users (role, name, email, password, phone, address, rate)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, role, name, email, password, phone, address, rate, created_at;`

	findUserByEmail = `SELECT id, role, name, email, password, phone, address, rate, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, role, name, email, password, phone, address, rate, created_at
    FROM users
    WHERE id = $1;`

	createEntry = `INSERT INTO clothes_entries (type, count, customer_id, vendor_id)
    VALUES ($1, $2, $3, $4)
    RETURNING id, type, count, customer_id, vendor_id, date;`

	findEntryByID = `SELECT id, type, count, customer_id, vendor_id, date
    FROM clothes_entries
    WHERE id = $1;`

	deleteEntry = `DELETE FROM clothes_entries
    WHERE id = $1;`
)

const entriesTable = "clothes_entries"

var entryColumns = []string{"id", "type", "count", "customer_id", "vendor_id", "date"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListEntriesQuery selects the entries of one customer or one vendor,
// newest first. When both ids are set the entry must match both.
func buildListEntriesQuery(filter models.EntryFilter) (string, []any, error) {
	if filter.CustomerID <= 0 && filter.VendorID <= 0 {
		return "", nil, ErrEmptyFilter
	}

	where := sq.Eq{}
	if filter.CustomerID > 0 {
		where["customer_id"] = filter.CustomerID
	}
	if filter.VendorID > 0 {
		where["vendor_id"] = filter.VendorID
	}

	query, args, err := psql.
		Select(entryColumns...).
		From(entriesTable).
		Where(where).
		OrderBy("date DESC", "id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateEntryQuery sets the non-nil fields of update and returns the
// resulting row.
func buildUpdateEntryQuery(update models.EntryUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNoFieldsToUpdate
	}

	builder := psql.Update(entriesTable)
	if update.Type != nil {
		builder = builder.Set("type", string(*update.Type))
	}
	if update.Count != nil {
		builder = builder.Set("count", *update.Count)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": update.ID}).
		Suffix("RETURNING id, type, count, customer_id, vendor_id, date").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
