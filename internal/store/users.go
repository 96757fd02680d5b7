package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/cesargomez89/jukebox/internal/domain"
)

func (db *DB) GetUserBySpotifyID(spotifyID string) (*domain.User, error) {
	var user domain.User
	err := db.Get(&user, "SELECT * FROM users WHERE spotify_id = ?", spotifyID)
	if err == sql.ErrNoRows {
		return nil, nil // Not found
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *DB) GetUser(id int64) (*domain.User, error) {
	var user domain.User
	err := db.Get(&user, "SELECT * FROM users WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *DB) CreateUser(user *domain.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	query := `INSERT INTO users (spotify_id, display_name, created_at)
		VALUES (:spotify_id, :display_name, :created_at) RETURNING id`

	rows, err := db.NamedQuery(query, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&user.ID); err != nil {
			return fmt.Errorf("failed to scan user id: %w", err)
		}
	} else if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating returning rows: %w", err)
	}
	return nil
}

// GetOrCreateUser looks up a user by their Spotify account, creating the
// row on first login.
func (db *DB) GetOrCreateUser(spotifyID, displayName string) (*domain.User, error) {
	user, err := db.GetUserBySpotifyID(spotifyID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	user = &domain.User{
		SpotifyID:   spotifyID,
		DisplayName: displayName,
		CreatedAt:   time.Now(),
	}
	if err := db.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}
