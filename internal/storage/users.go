package storage

import (
	"context"
	"database/sql"
)

// UpsertUser records the identity established by the auth collaborator and
// refreshes the last-login timestamp.
func (db *DB) UpsertUser(ctx context.Context, user *User) error {
	query := `INSERT INTO users (id, email, name, picture_url)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (id) DO UPDATE
	            SET email = EXCLUDED.email,
	                name = EXCLUDED.name,
	                picture_url = EXCLUDED.picture_url,
	                last_login_at = NOW()`
	_, err := db.connection.ExecContext(ctx, query, user.ID, user.Email, user.Name, user.PictureURL)
	return err
}

// GetUser loads one user record by id.
func (db *DB) GetUser(ctx context.Context, userID string) (*User, error) {
	user := &User{}
	err := db.connection.QueryRowContext(ctx,
		`SELECT id, email, name, picture_url, created_at, last_login_at FROM users WHERE id = $1`,
		userID).Scan(&user.ID, &user.Email, &user.Name, &user.PictureURL, &user.CreatedAt, &user.LastLoginAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
