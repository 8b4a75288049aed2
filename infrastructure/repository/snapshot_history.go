// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/permits-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/permits-dashboard-api/internal/domain"
)

const (
	snapshotFetchTable = "snapshot_fetches"

	defaultHistoryLimit = 20
)

// snapshotFetchSchema cria a tabela do histórico de buscas na planilha
const snapshotFetchSchema = `
CREATE TABLE IF NOT EXISTS snapshot_fetches (
	id          VARCHAR(32) PRIMARY KEY,
	source      VARCHAR(64) NOT NULL,
	outcome     VARCHAR(16) NOT NULL,
	row_count   INTEGER NOT NULL DEFAULT 0,
	duration_ms BIGINT NOT NULL DEFAULT 0,
	error       TEXT,
	started_at  TIMESTAMPTZ NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS snapshot_fetches_started_at_idx ON snapshot_fetches (started_at DESC);
`

type SnapshotHistoryRepository interface {
	Save(ctx context.Context, fetch *domain.SnapshotFetch) error
	ListRecent(ctx context.Context, limit int) ([]*domain.SnapshotFetch, error)
	Migrate(ctx context.Context) error
}

type snapshotHistoryRepository struct {
	conn postgres.Queryer
}

func NewSnapshotHistoryRepository(conn postgres.Queryer) SnapshotHistoryRepository {
	return &snapshotHistoryRepository{
		conn: conn,
	}
}

// Migrate garante que a tabela do histórico exista
func (r *snapshotHistoryRepository) Migrate(ctx context.Context) error {
	if _, err := r.conn.ExecContext(ctx, snapshotFetchSchema); err != nil {
		return fmt.Errorf("erro ao criar tabela %s: %w", snapshotFetchTable, err)
	}
	return nil
}

func (r *snapshotHistoryRepository) Save(ctx context.Context, fetch *domain.SnapshotFetch) error {
	sqlQuery, args, err := insertSnapshotFetchQuery(fetch).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao salvar busca do snapshot: %w", err)
	}

	return nil
}

func (r *snapshotHistoryRepository) ListRecent(ctx context.Context, limit int) ([]*domain.SnapshotFetch, error) {
	sqlQuery, args, err := listSnapshotFetchesQuery(limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	fetches := make([]*domain.SnapshotFetch, 0)
	for rows.Next() {
		var (
			fetch   domain.SnapshotFetch
			outcome string
			message sql.NullString
		)

		if err := rows.Scan(
			&fetch.ID,
			&fetch.Source,
			&outcome,
			&fetch.Rows,
			&fetch.DurationMS,
			&message,
			&fetch.StartedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler busca do snapshot: %w", err)
		}

		fetch.Outcome = domain.SnapshotFetchOutcome(outcome)
		fetch.Error = message.String
		fetches = append(fetches, &fetch)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar buscas do snapshot: %w", err)
	}

	return fetches, nil
}

func insertSnapshotFetchQuery(fetch *domain.SnapshotFetch) squirrel.InsertBuilder {
	var message interface{}
	if fetch.Error != "" {
		message = fetch.Error
	}

	return squirrel.
		Insert(snapshotFetchTable).
		Columns("id", "source", "outcome", "row_count", "duration_ms", "error", "started_at").
		Values(fetch.ID, fetch.Source, string(fetch.Outcome), fetch.Rows, fetch.DurationMS, message, fetch.StartedAt).
		PlaceholderFormat(squirrel.Dollar)
}

func listSnapshotFetchesQuery(limit int) squirrel.SelectBuilder {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	return squirrel.
		Select("id", "source", "outcome", "row_count", "duration_ms", "error", "started_at").
		From(snapshotFetchTable).
		OrderBy("started_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)
}
