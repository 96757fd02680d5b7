// Package constants contains application-wide constants to avoid magic numbers and strings.
package constants

import "time"

// Application defaults
const (
	DefaultPort        = "8080"
	DefaultDBPath      = "jukebox.db"
	DefaultSpotifyAPI  = "https://api.spotify.com"
	DefaultRedirectURL = "http://localhost:8080/auth/spotify/callback"
	DefaultHTTPTimeout = 30 * time.Second
)

// Session cookie
const (
	SessionCookieName = "_session"
	SessionTTL        = 30 * 24 * time.Hour
)

// Spotify endpoints outside the versioned API base
const (
	SpotifyAuthURL  = "https://accounts.spotify.com/authorize"
	SpotifyTokenURL = "https://accounts.spotify.com/api/token"
)

// Catalog limits
const (
	SearchLimit      = 20
	AlbumTracksLimit = 50
	MaxTrackPages    = 10
)

// AlbumTypeAlbum is the only album_type eligible for search display.
// Singles and compilations are filtered out.
const AlbumTypeAlbum = "album"
