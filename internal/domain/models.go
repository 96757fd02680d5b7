package domain

import (
	"time"
)

// Control is a playback action submitted from an album card.
type Control string

const (
	ControlPlay  Control = "play"
	ControlQueue Control = "queue"
)

// CatalogAlbum is an album as returned by the streaming provider's search.
// It lives for one request and is never persisted.
type CatalogAlbum struct {
	ID        string `json:"id"`
	URI       string `json:"uri"`
	Name      string `json:"name"`
	Artist    string `json:"artist"`
	ImageURL  string `json:"image_url"`
	AlbumType string `json:"album_type"`
}

// Track belongs to a CatalogAlbum. Only the URI matters for queueing.
type Track struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URI  string `json:"uri"`
}

// LibraryAlbum is a saved album row owned by a user.
type LibraryAlbum struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	AlbumID   string    `db:"album_id" json:"album_id"`
	AlbumURI  string    `db:"album_uri" json:"album_uri"`
	Artist    string    `db:"artist" json:"artist"`
	Album     string    `db:"album" json:"album"`
	ImageURL  string    `db:"image_url" json:"image_url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// AnnotatedAlbum is a catalog search result marked with library membership.
// Recomputed on every search.
type AnnotatedAlbum struct {
	CatalogAlbum
	InLibrary bool `json:"in_library"`
}

// User is an application user keyed by their Spotify account.
type User struct {
	ID          int64     `db:"id" json:"id"`
	SpotifyID   string    `db:"spotify_id" json:"spotify_id"`
	DisplayName string    `db:"display_name" json:"display_name"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// SpotifyUser is the provider-side profile, used during the auth callback.
type SpotifyUser struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// Session ties a browser cookie to a user and their provider tokens.
type Session struct {
	ID           string    `db:"id" json:"id"`
	UserID       int64     `db:"user_id" json:"user_id"`
	AccessToken  string    `db:"access_token" json:"-"`
	RefreshToken string    `db:"refresh_token" json:"-"`
	ExpiresAt    time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Expired reports whether the session's access token is past its expiry.
func (s *Session) Expired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// AlbumAdd carries the form fields of an add submission.
type AlbumAdd struct {
	AlbumID  string
	AlbumURI string
	Artist   string
	Album    string
	ImageURL string
}
