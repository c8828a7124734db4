// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/MKhiriev/press-pay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildListEntriesQuery(t *testing.T) {
	tests := []struct {
		name      string
		filter    models.EntryFilter
		wantQuery string
		wantArgs  []any
		wantErr   error
	}{
		{
			name:      "customer",
			filter:    models.EntryFilter{CustomerID: 1},
			wantQuery: "SELECT id, type, count, customer_id, vendor_id, date FROM clothes_entries WHERE customer_id = $1 ORDER BY date DESC, id DESC",
			wantArgs:  []any{int64(1)},
		},
		{
			name:      "vendor",
			filter:    models.EntryFilter{VendorID: 2},
			wantQuery: "SELECT id, type, count, customer_id, vendor_id, date FROM clothes_entries WHERE vendor_id = $1 ORDER BY date DESC, id DESC",
			wantArgs:  []any{int64(2)},
		},
		{
			name:      "both",
			filter:    models.EntryFilter{CustomerID: 1, VendorID: 2},
			wantQuery: "SELECT id, type, count, customer_id, vendor_id, date FROM clothes_entries WHERE customer_id = $1 AND vendor_id = $2 ORDER BY date DESC, id DESC",
			wantArgs:  []any{int64(1), int64(2)},
		},
		{
			name:    "empty",
			filter:  models.EntryFilter{},
			wantErr: ErrEmptyFilter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListEntriesQuery(tt.filter)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildUpdateEntryQuery(t *testing.T) {
	entryType := models.EntryReceived
	count := int64(3)

	tests := []struct {
		name      string
		update    models.EntryUpdate
		wantQuery string
		wantArgs  []any
		wantErr   error
	}{
		{
			name:      "type and count",
			update:    models.EntryUpdate{ID: 7, Type: &entryType, Count: &count},
			wantQuery: "UPDATE clothes_entries SET type = $1, count = $2 WHERE id = $3 RETURNING id, type, count, customer_id, vendor_id, date",
			wantArgs:  []any{"RECEIVED", int64(3), int64(7)},
		},
		{
			name:      "count only",
			update:    models.EntryUpdate{ID: 7, Count: &count},
			wantQuery: "UPDATE clothes_entries SET count = $1 WHERE id = $2 RETURNING id, type, count, customer_id, vendor_id, date",
			wantArgs:  []any{int64(3), int64(7)},
		},
		{
			name:    "nothing to update",
			update:  models.EntryUpdate{ID: 7},
			wantErr: ErrNoFieldsToUpdate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateEntryQuery(tt.update)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
