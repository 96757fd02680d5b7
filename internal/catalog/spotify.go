package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/cesargomez89/jukebox/internal/constants"
	"github.com/cesargomez89/jukebox/internal/domain"
)

// SpotifyClient talks to the Spotify Web API over plain HTTP.
type SpotifyClient struct {
	BaseURL string
	Client  *http.Client
}

func NewSpotifyClient(baseURL string) *SpotifyClient {
	return &SpotifyClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: constants.DefaultHTTPTimeout},
	}
}

// SearchAlbums runs an album search and maps the response to domain albums.
// Provider relevance order is preserved.
func (c *SpotifyClient) SearchAlbums(ctx context.Context, token, query string) ([]domain.CatalogAlbum, error) {
	u := fmt.Sprintf("%s/v1/search?q=%s&type=album&limit=%d",
		c.BaseURL, url.QueryEscape(query), constants.SearchLimit)

	var resp searchResponse
	if err := c.do(ctx, token, http.MethodGet, u, nil, &resp); err != nil {
		return nil, err
	}

	var albums []domain.CatalogAlbum
	for _, item := range resp.Albums.Items {
		artist := "Unknown"
		if len(item.Artists) > 0 {
			artist = item.Artists[0].Name
		}
		imageURL := ""
		if len(item.Images) > 0 {
			imageURL = item.Images[0].URL
		}
		albums = append(albums, domain.CatalogAlbum{
			ID:        item.ID,
			URI:       item.URI,
			Name:      item.Name,
			Artist:    artist,
			ImageURL:  imageURL,
			AlbumType: item.AlbumType,
		})
	}
	return albums, nil
}

// AlbumTracks fetches the full track list of an album in catalog order,
// following the paging cursor so long albums come back complete.
func (c *SpotifyClient) AlbumTracks(ctx context.Context, token, albumID string) ([]domain.Track, error) {
	u := fmt.Sprintf("%s/v1/albums/%s/tracks?limit=%d", c.BaseURL, albumID, constants.AlbumTracksLimit)

	var tracks []domain.Track
	for page := 0; page < constants.MaxTrackPages; page++ {
		var resp albumTracksResponse
		if err := c.do(ctx, token, http.MethodGet, u, nil, &resp); err != nil {
			return nil, err
		}
		for _, item := range resp.Items {
			tracks = append(tracks, domain.Track{
				ID:   item.ID,
				Name: item.Name,
				URI:  item.URI,
			})
		}
		if resp.Next == nil || *resp.Next == "" {
			break
		}
		u = *resp.Next
	}
	return tracks, nil
}

// QueueTrack adds a single track to the user's active-device playback queue.
func (c *SpotifyClient) QueueTrack(ctx context.Context, token, trackURI string) error {
	u := fmt.Sprintf("%s/v1/me/player/queue?uri=%s", c.BaseURL, url.QueryEscape(trackURI))
	return c.do(ctx, token, http.MethodPost, u, nil, nil)
}

// PlayContext starts playback of a context (an album URI) on the active device.
func (c *SpotifyClient) PlayContext(ctx context.Context, token, contextURI string) error {
	u := c.BaseURL + "/v1/me/player/play"
	body := map[string]string{"context_uri": contextURI}
	return c.do(ctx, token, http.MethodPut, u, body, nil)
}

// Me fetches the authenticated user's profile.
func (c *SpotifyClient) Me(ctx context.Context, token string) (*domain.SpotifyUser, error) {
	var resp userResponse
	if err := c.do(ctx, token, http.MethodGet, c.BaseURL+"/v1/me", nil, &resp); err != nil {
		return nil, err
	}
	return &domain.SpotifyUser{ID: resp.ID, DisplayName: resp.DisplayName}, nil
}

func (c *SpotifyClient) do(ctx context.Context, token, method, url string, body, target interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("spotify API error: %s %s: status %d", method, req.URL.Path, resp.StatusCode)
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
