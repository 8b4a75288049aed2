package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/permits-dashboard-api/internal/domain"
)

func TestInsertSnapshotFetchQuery(t *testing.T) {
	startedAt := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

	sqlQuery, args, err := insertSnapshotFetchQuery(&domain.SnapshotFetch{
		ID:         "abc123",
		Source:     "google-sheets",
		Outcome:    domain.SnapshotFetchSuccess,
		Rows:       12000,
		DurationMS: 850,
		StartedAt:  startedAt,
	}).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO snapshot_fetches (id,source,outcome,row_count,duration_ms,error,started_at) VALUES ($1,$2,$3,$4,$5,$6,$7)",
		sqlQuery,
	)
	assert.Equal(t, []interface{}{"abc123", "google-sheets", "success", 12000, int64(850), nil, startedAt}, args)
}

func TestInsertSnapshotFetchQuery_WithError(t *testing.T) {
	_, args, err := insertSnapshotFetchQuery(&domain.SnapshotFetch{
		ID:      "def456",
		Outcome: domain.SnapshotFetchFailure,
		Error:   "googleapi: Error 503",
	}).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "failure", args[2])
	assert.Equal(t, "googleapi: Error 503", args[5])
}

func TestListSnapshotFetchesQuery(t *testing.T) {
	sqlQuery, args, err := listSnapshotFetchesQuery(5).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, source, outcome, row_count, duration_ms, error, started_at FROM snapshot_fetches ORDER BY started_at DESC LIMIT 5",
		sqlQuery,
	)
	assert.Empty(t, args)

	sqlQuery, _, err = listSnapshotFetchesQuery(0).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sqlQuery, "LIMIT 20")
}
