package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// listLimit caps every per-user list query.
const listLimit = 50

// CreateConversation inserts a new conversation with its seeded messages.
func (db *DB) CreateConversation(ctx context.Context, conv *Conversation) error {
	if conv.ID == "" {
		conv.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	conv.CreatedAt = now
	conv.UpdatedAt = now

	msgJSON, err := json.Marshal(conv.Messages)
	if err != nil {
		return fmt.Errorf("marshal messages: %w", err)
	}

	query := `INSERT INTO conversations (id, user_id, title, messages, contact_count, follow_up_count, is_archived, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = db.connection.ExecContext(ctx, query,
		conv.ID, conv.UserID, conv.Title, msgJSON,
		conv.ContactCount, conv.FollowUpCount, conv.IsArchived,
		conv.CreatedAt, conv.UpdatedAt,
	)
	return err
}

// GetConversation loads a conversation scoped by owner. A conversation owned
// by another user reads as ErrNotFound.
func (db *DB) GetConversation(ctx context.Context, userID, conversationID string) (*Conversation, error) {
	query := `SELECT id, user_id, title, messages, contact_count, follow_up_count, is_archived, created_at, updated_at
	          FROM conversations WHERE id = $1 AND user_id = $2`
	row := db.connection.QueryRowContext(ctx, query, conversationID, userID)
	return scanConversation(row)
}

// ListConversations returns the user's conversations, most recently updated
// first, capped at 50.
func (db *DB) ListConversations(ctx context.Context, userID string) ([]*Conversation, error) {
	query := `SELECT id, user_id, title, messages, contact_count, follow_up_count, is_archived, created_at, updated_at
	          FROM conversations WHERE user_id = $1 ORDER BY updated_at DESC LIMIT $2`
	rows, err := db.connection.QueryContext(ctx, query, userID, listLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Conversation
	for rows.Next() {
		conv, err := scanConversation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, conv)
	}
	return out, rows.Err()
}

// SaveConversationTurn persists one completed turn: the appended messages,
// title, and counter deltas in a single statement so a turn is never half
// applied.
func (db *DB) SaveConversationTurn(ctx context.Context, conv *Conversation, contactDelta, followUpDelta int) error {
	msgJSON, err := json.Marshal(conv.Messages)
	if err != nil {
		return fmt.Errorf("marshal messages: %w", err)
	}

	query := `UPDATE conversations
	          SET messages = $1,
	              title = $2,
	              contact_count = contact_count + $3,
	              follow_up_count = follow_up_count + $4,
	              updated_at = NOW()
	          WHERE id = $5 AND user_id = $6`
	res, err := db.connection.ExecContext(ctx, query,
		msgJSON, conv.Title, contactDelta, followUpDelta, conv.ID, conv.UserID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	conv.UpdatedAt = time.Now().UTC()
	return nil
}

// DeleteConversation removes a conversation scoped by owner.
func (db *DB) DeleteConversation(ctx context.Context, userID, conversationID string) error {
	res, err := db.connection.ExecContext(ctx,
		`DELETE FROM conversations WHERE id = $1 AND user_id = $2`, conversationID, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// SetConversationArchived flips the archive flag scoped by owner.
func (db *DB) SetConversationArchived(ctx context.Context, userID, conversationID string, archived bool) error {
	res, err := db.connection.ExecContext(ctx,
		`UPDATE conversations SET is_archived = $1, updated_at = NOW() WHERE id = $2 AND user_id = $3`,
		archived, conversationID, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanConversation(row rowScanner) (*Conversation, error) {
	conv := &Conversation{}
	var msgJSON []byte
	err := row.Scan(&conv.ID, &conv.UserID, &conv.Title, &msgJSON,
		&conv.ContactCount, &conv.FollowUpCount, &conv.IsArchived,
		&conv.CreatedAt, &conv.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(msgJSON, &conv.Messages); err != nil {
		return nil, fmt.Errorf("unmarshal messages: %w", err)
	}
	if conv.Messages == nil {
		conv.Messages = []ConversationMessage{}
	}
	return conv, nil
}
