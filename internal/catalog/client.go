package catalog

import (
	"context"

	"github.com/cesargomez89/jukebox/internal/domain"
)

// Client is the surface of the streaming provider's Web API that the
// application uses. All calls carry the caller's bearer token; the client
// attaches it but never validates it.
type Client interface {
	SearchAlbums(ctx context.Context, token, query string) ([]domain.CatalogAlbum, error)
	AlbumTracks(ctx context.Context, token, albumID string) ([]domain.Track, error)
	QueueTrack(ctx context.Context, token, trackURI string) error
	PlayContext(ctx context.Context, token, contextURI string) error
	Me(ctx context.Context, token string) (*domain.SpotifyUser, error)
}
