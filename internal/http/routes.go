package httpapp

import (
	"net/http"

	"github.com/cesargomez89/jukebox/internal/domain"
)

func (h *Handler) HomePage(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/library", http.StatusFound)
}

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.RenderPage(w, "login.html", map[string]interface{}{})
}

func (h *Handler) AuthBegin(w http.ResponseWriter, r *http.Request) {
	h.Auth.Begin(w, r)
}

func (h *Handler) AuthCallback(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Auth.HandleCallback(w, r); err != nil {
		h.Logger.Error("Auth callback failed", "error", err)
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/library", http.StatusFound)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Auth.Destroy(w, r)
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handler) LibraryPage(w http.ResponseWriter, r *http.Request) {
	session := h.sessionOrRedirect(w, r)
	if session == nil {
		return
	}

	albums, err := h.Library.ListLibrary(r.Context(), session.UserID)
	if err != nil {
		// Degrade to an empty library rather than failing the page.
		h.Logger.Error("Failed to load library", "user_id", session.UserID, "error", err)
		albums = nil
	}

	h.RenderPage(w, "library.html", map[string]interface{}{
		"User":   session.UserID,
		"Albums": albums,
	})
}

func (h *Handler) AddPage(w http.ResponseWriter, r *http.Request) {
	session := h.sessionOrRedirect(w, r)
	if session == nil {
		return
	}

	query := r.URL.Query().Get("query")
	results, err := h.Library.SearchAndAnnotate(r.Context(), session.UserID, session.AccessToken, query)
	if err != nil {
		h.Logger.Error("Search failed", "user_id", session.UserID, "query", query, "error", err)
		results = nil
	}

	h.RenderPage(w, "add.html", map[string]interface{}{
		"User":    session.UserID,
		"Query":   query,
		"Results": results,
	})
}

func (h *Handler) SearchHTMX(w http.ResponseWriter, r *http.Request) {
	session := h.sessionOrRedirect(w, r)
	if session == nil {
		return
	}

	query := r.URL.Query().Get("query")
	results, err := h.Library.SearchAndAnnotate(r.Context(), session.UserID, session.AccessToken, query)
	if err != nil {
		h.Logger.Error("Search failed", "user_id", session.UserID, "query", query, "error", err)
		h.RenderFragment(w, "error.html", map[string]interface{}{"Message": "Search failed"})
		return
	}

	h.RenderFragment(w, "search_results.html", map[string]interface{}{"Results": results})
}

func (h *Handler) AddAlbumHTMX(w http.ResponseWriter, r *http.Request) {
	session := h.sessionOrRedirect(w, r)
	if session == nil {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	add := domain.AlbumAdd{
		AlbumID:  r.FormValue("albumId"),
		AlbumURI: r.FormValue("albumUri"),
		Artist:   r.FormValue("artist"),
		Album:    r.FormValue("album"),
		ImageURL: r.FormValue("imageUrl"),
	}
	if add.AlbumID == "" || add.AlbumURI == "" {
		http.Error(w, "albumId and albumUri are required", http.StatusBadRequest)
		return
	}

	album, err := h.Library.AddAlbum(r.Context(), session.UserID, add)
	if err != nil {
		h.Logger.Error("Add failed", "user_id", session.UserID, "album_id", add.AlbumID, "error", err)
		h.RenderFragment(w, "error.html", map[string]interface{}{"Message": "Could not save album"})
		return
	}

	// The card re-renders in its added state, resolving the optimistic UI.
	h.RenderFragment(w, "search_result_card.html", domain.AnnotatedAlbum{
		CatalogAlbum: domain.CatalogAlbum{
			ID:       album.AlbumID,
			URI:      album.AlbumURI,
			Name:     album.Album,
			Artist:   album.Artist,
			ImageURL: album.ImageURL,
		},
		InLibrary: true,
	})
}

func (h *Handler) ControlHTMX(w http.ResponseWriter, r *http.Request) {
	session := h.sessionOrRedirect(w, r)
	if session == nil {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	control := domain.Control(r.FormValue("control"))
	albumID := r.FormValue("albumId")
	albumURI := r.FormValue("albumUri")

	if control != domain.ControlPlay && control != domain.ControlQueue {
		http.Error(w, "unknown control", http.StatusBadRequest)
		return
	}
	if albumID == "" || albumURI == "" {
		http.Error(w, "albumId and albumUri are required", http.StatusBadRequest)
		return
	}

	// Play and queue are best effort: failures are logged, never surfaced.
	if err := h.Dispatcher.Dispatch(r.Context(), session.AccessToken, control, albumID, albumURI); err != nil {
		h.Logger.Warn("Control failed", "control", control, "album_id", albumID, "error", err)
	}
	w.WriteHeader(http.StatusNoContent)
}
