package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cesargomez89/jukebox/internal/domain"
)

// ErrDuplicate is returned when an insert would violate the
// UNIQUE(user_id, album_id) constraint on albums.
var ErrDuplicate = errors.New("album already in library")

func (db *DB) CreateAlbum(album *domain.LibraryAlbum) error {
	if album.CreatedAt.IsZero() {
		album.CreatedAt = time.Now()
	}

	query := `INSERT INTO albums (user_id, album_id, album_uri, artist, album, image_url, created_at)
		VALUES (:user_id, :album_id, :album_uri, :artist, :album, :image_url, :created_at)
		RETURNING id`

	rows, err := db.NamedQuery(query, album)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create album: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&album.ID); err != nil {
			return fmt.Errorf("failed to scan album id: %w", err)
		}
	} else if err := rows.Err(); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("error iterating returning rows: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (db *DB) GetAlbum(userID int64, albumID string) (*domain.LibraryAlbum, error) {
	var album domain.LibraryAlbum
	err := db.Get(&album, "SELECT * FROM albums WHERE user_id = ? AND album_id = ?", userID, albumID)
	if err == sql.ErrNoRows {
		return nil, nil // Not found
	}
	if err != nil {
		return nil, err
	}
	return &album, nil
}

// ListAlbumsByUser returns the user's saved albums ordered by album name.
func (db *DB) ListAlbumsByUser(userID int64) ([]domain.LibraryAlbum, error) {
	var albums []domain.LibraryAlbum
	err := db.Select(&albums, "SELECT * FROM albums WHERE user_id = ? ORDER BY album ASC", userID)
	if err != nil {
		return nil, err
	}
	return albums, nil
}
