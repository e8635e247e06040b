// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/require"
)

func Test_buildGetQuery_Placeholders(t *testing.T) {
	query, args, err := buildGetQuery(sq.Dollar, "@lacnutry_profile")
	require.NoError(t, err)
	require.Equal(t, "SELECT entry_value FROM kv_entries WHERE entry_key = $1", query)
	require.Equal(t, []any{"@lacnutry_profile"}, args)

	query, _, err = buildGetQuery(sq.Question, "k")
	require.NoError(t, err)
	require.Contains(t, query, "entry_key = ?")
}

func Test_buildUpsertQuery(t *testing.T) {
	query, args, err := buildUpsertQuery(sq.Dollar, "k", "v", fixedNow)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.True(t, strings.HasPrefix(q, "insert into kv_entries"))
	require.Contains(t, q, "on conflict (entry_key) do update")
	require.Contains(t, query, "$3")
	require.Equal(t, []any{"k", "v", fixedNow}, args)
}

func Test_buildDeleteQuery(t *testing.T) {
	query, args, err := buildDeleteQuery(sq.Question, "k")
	require.NoError(t, err)
	require.Equal(t, "DELETE FROM kv_entries WHERE entry_key = ?", query)
	require.Equal(t, []any{"k"}, args)
}
