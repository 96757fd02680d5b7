package catalog

import (
	"context"
	"sync"

	"github.com/cesargomez89/jukebox/internal/domain"
)

// MockClient is an in-memory Client for tests. It records every call so
// tests can assert call counts and ordering.
type MockClient struct {
	mu sync.Mutex

	Albums []domain.CatalogAlbum
	Tracks []domain.Track
	User   *domain.SpotifyUser

	SearchErr error
	TracksErr error
	QueueErr  func(trackURI string) error
	PlayErr   error

	SearchCalls []string
	TracksCalls []string
	QueueCalls  []string
	PlayCalls   []string
}

func NewMockClient() *MockClient {
	return &MockClient{
		User: &domain.SpotifyUser{ID: "mock-user", DisplayName: "Mock User"},
	}
}

func (m *MockClient) SearchAlbums(ctx context.Context, token, query string) ([]domain.CatalogAlbum, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SearchCalls = append(m.SearchCalls, query)
	if m.SearchErr != nil {
		return nil, m.SearchErr
	}
	return m.Albums, nil
}

func (m *MockClient) AlbumTracks(ctx context.Context, token, albumID string) ([]domain.Track, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TracksCalls = append(m.TracksCalls, albumID)
	if m.TracksErr != nil {
		return nil, m.TracksErr
	}
	return m.Tracks, nil
}

func (m *MockClient) QueueTrack(ctx context.Context, token, trackURI string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.QueueCalls = append(m.QueueCalls, trackURI)
	if m.QueueErr != nil {
		return m.QueueErr(trackURI)
	}
	return nil
}

func (m *MockClient) PlayContext(ctx context.Context, token, contextURI string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PlayCalls = append(m.PlayCalls, contextURI)
	return m.PlayErr
}

func (m *MockClient) Me(ctx context.Context, token string) (*domain.SpotifyUser, error) {
	return m.User, nil
}
