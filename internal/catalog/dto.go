package catalog

// Spotify Web API response shapes, reduced to the fields the app reads.
// https://developer.spotify.com/documentation/web-api/reference/

type imageDTO struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

type artistDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type albumDTO struct {
	ID        string      `json:"id"`
	URI       string      `json:"uri"`
	Name      string      `json:"name"`
	AlbumType string      `json:"album_type"`
	Artists   []artistDTO `json:"artists"`
	Images    []imageDTO  `json:"images"`
}

type searchResponse struct {
	Albums struct {
		Items []albumDTO `json:"items"`
		Next  *string    `json:"next"`
	} `json:"albums"`
}

type trackDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URI  string `json:"uri"`
}

type albumTracksResponse struct {
	Items []trackDTO `json:"items"`
	Next  *string    `json:"next"`
}

type userResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}
