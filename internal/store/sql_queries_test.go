// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSelectMarkerQuery(t *testing.T) {
	query, args, err := buildSelectMarkerQuery()
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "select")
	require.Contains(t, q, "marker")
	require.Contains(t, q, "from vault_meta")
	require.Contains(t, q, "where")

	// placeholder format should be ? (SQLite)
	require.Contains(t, query, "?")
	require.Equal(t, []any{metaRowID}, args)
}

func TestBuildInsertMarkerQuery(t *testing.T) {
	query, args, err := buildInsertMarkerQuery("ZW5jcnlwdGVk")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into vault_meta")
	require.Contains(t, q, "marker")

	require.Len(t, args, 2)
	assert.Equal(t, metaRowID, args[0])
	assert.Equal(t, "ZW5jcnlwdGVk", args[1])
}

func TestBuildSelectRecordsQuery(t *testing.T) {
	query, args, err := buildSelectRecordsQuery()
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "select label, password")
	require.Contains(t, q, "from vault_records")
	require.Contains(t, q, "order by rowid")

	assert.Empty(t, args)
}

func TestBuildInsertRecordQuery(t *testing.T) {
	query, args, err := buildInsertRecordQuery("id-1", "bGFiZWw=", "cGFzcw==")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into vault_records")
	require.Contains(t, q, "label")
	require.Contains(t, q, "password")

	require.Equal(t, []any{"id-1", "bGFiZWw=", "cGFzcw=="}, args)
}
