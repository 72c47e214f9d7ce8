package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// SaveContact upserts a contact chosen by the user. Uniqueness is enforced on
// (user_id, contact_id); saving the same contact twice refreshes the payload.
func (db *DB) SaveContact(ctx context.Context, userID string, contact Contact) (*SavedContact, error) {
	payload, err := json.Marshal(contact)
	if err != nil {
		return nil, fmt.Errorf("marshal contact: %w", err)
	}

	saved := &SavedContact{
		UserID:    userID,
		ContactID: contact.ID,
		Contact:   contact,
		SavedAt:   time.Now().UTC(),
	}
	query := `INSERT INTO saved_contacts (user_id, contact_id, payload, saved_at)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (user_id, contact_id) DO UPDATE
	            SET payload = EXCLUDED.payload`
	_, err = db.connection.ExecContext(ctx, query, saved.UserID, saved.ContactID, payload, saved.SavedAt)
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// ListSavedContacts returns the user's saved contacts, newest first, capped at 50.
func (db *DB) ListSavedContacts(ctx context.Context, userID string) ([]*SavedContact, error) {
	rows, err := db.connection.QueryContext(ctx,
		`SELECT user_id, contact_id, payload, saved_at FROM saved_contacts
		 WHERE user_id = $1 ORDER BY saved_at DESC LIMIT $2`, userID, listLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*SavedContact
	for rows.Next() {
		sc := &SavedContact{}
		var payload []byte
		if err := rows.Scan(&sc.UserID, &sc.ContactID, &payload, &sc.SavedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &sc.Contact); err != nil {
			return nil, fmt.Errorf("unmarshal contact: %w", err)
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

// DeleteSavedContact removes one saved contact scoped by owner.
func (db *DB) DeleteSavedContact(ctx context.Context, userID, contactID string) error {
	res, err := db.connection.ExecContext(ctx,
		`DELETE FROM saved_contacts WHERE user_id = $1 AND contact_id = $2`, userID, contactID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
