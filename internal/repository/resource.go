package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("record not found")

// Resource implements the shared read/update/delete surface for one
// resource table. Both resource tables have the same operational shape
// (string primary key, status column, created_at ordering), so the
// queries are generated from the table name and select list instead of
// being duplicated per type. T's db tags must match the select list.
type Resource[T any] struct {
	pool    *pgxpool.Pool
	table   string
	columns string
}

func NewResource[T any](pool *pgxpool.Pool, table string, columns []string) *Resource[T] {
	return &Resource[T]{
		pool:    pool,
		table:   table,
		columns: strings.Join(columns, ", "),
	}
}

// List returns rows newest-first, optionally filtered by exact status.
// limit <= 0 means no cap. The result is never nil.
func (r *Resource[T]) List(ctx context.Context, status string, limit int) ([]T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", r.columns, r.table)

	var args []any
	if status != "" {
		args = append(args, status)
		query += " WHERE status = $1"
	}
	query += " ORDER BY created_at DESC"
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (r *Resource[T]) GetByID(ctx context.Context, id string) (T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", r.columns, r.table)

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		var zero T
		return zero, err
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		var zero T
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, err
	}
	return item, nil
}

// UpdateFields applies a partial update: each entry becomes a column
// assignment and updated_at is bumped. Callers are responsible for
// allow-listing the column names before they reach this point.
func (r *Resource[T]) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	query, args := buildUpdate(r.table, id, fields)
	cmd, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.table)
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Resource[T]) CountByStatus(ctx context.Context) (map[string]int64, error) {
	query := fmt.Sprintf("SELECT status, COUNT(*) FROM %s GROUP BY status", r.table)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// buildUpdate assembles the SET clause in sorted column order so the
// generated SQL is deterministic.
func buildUpdate(table, id string, fields map[string]any) (string, []any) {
	columns := make([]string, 0, len(fields))
	for column := range fields {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	assignments := make([]string, 0, len(columns)+1)
	args := make([]any, 0, len(columns)+1)
	for i, column := range columns {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, i+1))
		args = append(args, fields[column])
	}
	assignments = append(assignments, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		table, strings.Join(assignments, ", "), len(args))
	return query, args
}
