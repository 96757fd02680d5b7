package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/cesargomez89/jukebox/internal/catalog"
	"github.com/cesargomez89/jukebox/internal/constants"
	"github.com/cesargomez89/jukebox/internal/domain"
	"github.com/cesargomez89/jukebox/internal/logger"
	"github.com/cesargomez89/jukebox/internal/store"
)

// LibraryStore is the persistence surface the library service needs.
// *store.DB satisfies it; tests substitute fakes.
type LibraryStore interface {
	ListAlbumsByUser(userID int64) ([]domain.LibraryAlbum, error)
	GetAlbum(userID int64, albumID string) (*domain.LibraryAlbum, error)
	CreateAlbum(album *domain.LibraryAlbum) error
}

// LibraryService merges catalog search results with the user's saved albums
// and handles add submissions.
type LibraryService struct {
	Catalog catalog.Client
	Store   LibraryStore
	Logger  *logger.Logger
}

func NewLibraryService(c catalog.Client, s LibraryStore, log *logger.Logger) *LibraryService {
	return &LibraryService{Catalog: c, Store: s, Logger: log}
}

// SearchAndAnnotate searches the catalog and marks each result with whether
// it is already in the user's library.
//
// An empty query returns an empty result without touching the catalog.
// A library read failure degrades to unannotated results rather than failing
// the search: the catalog is still reachable and search must keep working.
func (s *LibraryService) SearchAndAnnotate(ctx context.Context, userID int64, token, query string) ([]domain.AnnotatedAlbum, error) {
	if query == "" {
		return nil, nil
	}

	results, err := s.Catalog.SearchAlbums(ctx, token, query)
	if err != nil {
		return nil, fmt.Errorf("catalog search failed: %w", err)
	}

	saved := map[string]bool{}
	rows, err := s.Store.ListAlbumsByUser(userID)
	if err != nil {
		s.Logger.Warn("Library unavailable, returning results unannotated", "user_id", userID, "error", err)
	} else {
		for _, row := range rows {
			saved[row.AlbumID] = true
		}
	}

	// Provider relevance order is preserved. Only full albums are shown;
	// singles and compilations are dropped here.
	var annotated []domain.AnnotatedAlbum
	for _, album := range results {
		if album.AlbumType != constants.AlbumTypeAlbum {
			continue
		}
		annotated = append(annotated, domain.AnnotatedAlbum{
			CatalogAlbum: album,
			InLibrary:    saved[album.ID],
		})
	}
	return annotated, nil
}

// AddAlbum saves a catalog album to the user's library. Adding an album that
// is already saved is idempotent: the existing row is returned.
func (s *LibraryService) AddAlbum(ctx context.Context, userID int64, add domain.AlbumAdd) (*domain.LibraryAlbum, error) {
	album := &domain.LibraryAlbum{
		UserID:   userID,
		AlbumID:  add.AlbumID,
		AlbumURI: add.AlbumURI,
		Artist:   add.Artist,
		Album:    add.Album,
		ImageURL: add.ImageURL,
	}

	err := s.Store.CreateAlbum(album)
	if errors.Is(err, store.ErrDuplicate) {
		existing, getErr := s.Store.GetAlbum(userID, add.AlbumID)
		if getErr == nil && existing != nil {
			s.Logger.Info("Album already in library", "user_id", userID, "album_id", add.AlbumID)
			return existing, nil
		}
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save album: %w", err)
	}

	s.Logger.Info("Album added to library", "user_id", userID, "album_id", add.AlbumID, "album", add.Album)
	return album, nil
}

// ListLibrary returns the user's saved albums ordered by album name.
func (s *LibraryService) ListLibrary(ctx context.Context, userID int64) ([]domain.LibraryAlbum, error) {
	return s.Store.ListAlbumsByUser(userID)
}
