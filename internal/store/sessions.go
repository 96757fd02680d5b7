package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/cesargomez89/jukebox/internal/domain"
)

func (db *DB) CreateSession(session *domain.Session) error {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	query := `INSERT INTO sessions (id, user_id, access_token, refresh_token, expires_at, created_at)
		VALUES (:id, :user_id, :access_token, :refresh_token, :expires_at, :created_at)`

	if _, err := db.NamedExec(query, session); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (db *DB) GetSession(id string) (*domain.Session, error) {
	var session domain.Session
	err := db.Get(&session, "SELECT * FROM sessions WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return nil, nil // Not found
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// UpdateSessionToken stores a refreshed access token and its expiry.
func (db *DB) UpdateSessionToken(id, accessToken string, expiresAt time.Time) error {
	_, err := db.Exec("UPDATE sessions SET access_token = ?, expires_at = ? WHERE id = ?",
		accessToken, expiresAt, id)
	return err
}

func (db *DB) DeleteSession(id string) error {
	_, err := db.Exec("DELETE FROM sessions WHERE id = ?", id)
	return err
}
