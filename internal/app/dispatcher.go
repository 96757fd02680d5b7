package app

import (
	"context"
	"fmt"

	"github.com/cesargomez89/jukebox/internal/catalog"
	"github.com/cesargomez89/jukebox/internal/domain"
	"github.com/cesargomez89/jukebox/internal/logger"
)

// Dispatcher routes play/queue controls from album cards to the catalog.
// It attaches the caller's token but never validates it; the route boundary
// checks the session first.
type Dispatcher struct {
	Catalog catalog.Client
	Logger  *logger.Logger
}

func NewDispatcher(c catalog.Client, log *logger.Logger) *Dispatcher {
	return &Dispatcher{Catalog: c, Logger: log}
}

// Dispatch executes a playback control.
//
// "queue" drains the album's tracks into the provider queue strictly one at
// a time, in catalog order, each call completing before the next is issued.
// The provider's queue endpoint processes in submission order, so parallel
// dispatch could reorder tracks. A failed enqueue is logged and the drain
// continues with the remaining tracks (best effort); the last failure is
// returned. Nothing here retries.
func (d *Dispatcher) Dispatch(ctx context.Context, token string, control domain.Control, albumID, albumURI string) error {
	switch control {
	case domain.ControlPlay:
		if err := d.Catalog.PlayContext(ctx, token, albumURI); err != nil {
			d.Logger.Error("Play failed", "album_id", albumID, "error", err)
			return err
		}
		d.Logger.Info("Playback started", "album_id", albumID)
		return nil

	case domain.ControlQueue:
		tracks, err := d.Catalog.AlbumTracks(ctx, token, albumID)
		if err != nil {
			d.Logger.Error("Failed to fetch album tracks", "album_id", albumID, "error", err)
			return fmt.Errorf("failed to fetch tracks for album %s: %w", albumID, err)
		}

		var lastErr error
		failed := 0
		for _, track := range tracks {
			if err := d.Catalog.QueueTrack(ctx, token, track.URI); err != nil {
				d.Logger.Warn("Failed to queue track, continuing", "album_id", albumID, "track_uri", track.URI, "error", err)
				lastErr = err
				failed++
			}
		}
		d.Logger.Info("Album queued", "album_id", albumID, "tracks", len(tracks), "failed", failed)
		return lastErr

	default:
		return fmt.Errorf("unknown control %q", control)
	}
}
