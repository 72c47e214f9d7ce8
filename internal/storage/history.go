package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AppendSearchHistory records one search invocation for the user.
func (db *DB) AppendSearchHistory(ctx context.Context, rec *SearchHistoryRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	_, err := db.connection.ExecContext(ctx,
		`INSERT INTO search_history (id, user_id, query, result_count, created_at) VALUES ($1, $2, $3, $4, $5)`,
		rec.ID, rec.UserID, rec.Query, rec.ResultCount, rec.Timestamp)
	return err
}

// ListSearchHistory returns the user's history, newest first, capped at 50.
func (db *DB) ListSearchHistory(ctx context.Context, userID string) ([]*SearchHistoryRecord, error) {
	rows, err := db.connection.QueryContext(ctx,
		`SELECT id, user_id, query, result_count, created_at FROM search_history
		 WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`, userID, listLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*SearchHistoryRecord
	for rows.Next() {
		rec := &SearchHistoryRecord{}
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Query, &rec.ResultCount, &rec.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// DeleteSearchHistoryItem removes one record scoped by owner. Deleting a
// record that belongs to someone else reads as ErrNotFound, never as a
// cross-tenant delete.
func (db *DB) DeleteSearchHistoryItem(ctx context.Context, userID, recordID string) error {
	res, err := db.connection.ExecContext(ctx,
		`DELETE FROM search_history WHERE id = $1 AND user_id = $2`, recordID, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearSearchHistory removes all of the user's history records.
func (db *DB) ClearSearchHistory(ctx context.Context, userID string) (int64, error) {
	res, err := db.connection.ExecContext(ctx,
		`DELETE FROM search_history WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// PruneSearchHistory deletes history records older than the cutoff across all
// users. Used by the maintenance tool, not the API.
func (db *DB) PruneSearchHistory(ctx context.Context, olderThan time.Time) (int64, error) {
	res, err := db.connection.ExecContext(ctx,
		`DELETE FROM search_history WHERE created_at < $1`, olderThan)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
