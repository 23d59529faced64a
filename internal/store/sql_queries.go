// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

// metaRowID is the fixed primary key of the single vault_meta row holding
// the encrypted validation marker.
const metaRowID = 1

func buildSelectMarkerQuery() (string, []any, error) {
	return sq.Select("marker").
		From("vault_meta").
		Where(sq.Eq{"id": metaRowID}).
		ToSql()
}

func buildInsertMarkerQuery(marker string) (string, []any, error) {
	return sq.Insert("vault_meta").
		Columns("id", "marker").
		Values(metaRowID, marker).
		ToSql()
}

func buildSelectRecordsQuery() (string, []any, error) {
	// rowid preserves insert order, matching the append-only file layout.
	return sq.Select("label", "password").
		From("vault_records").
		OrderBy("rowid").
		ToSql()
}

func buildInsertRecordQuery(id, label, password string) (string, []any, error) {
	return sq.Insert("vault_records").
		Columns("id", "label", "password").
		Values(id, label, password).
		ToSql()
}
