package httpapp

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cesargomez89/jukebox/internal/app"
	"github.com/cesargomez89/jukebox/internal/auth"
	"github.com/cesargomez89/jukebox/internal/catalog"
	"github.com/cesargomez89/jukebox/internal/config"
	"github.com/cesargomez89/jukebox/internal/domain"
	"github.com/cesargomez89/jukebox/internal/logger"
	"github.com/cesargomez89/jukebox/internal/store"
)

type testEnv struct {
	router  *chi.Mux
	db      *store.DB
	mock    *catalog.MockClient
	session *domain.Session
}

func setupEnv(t *testing.T) (*testEnv, func()) {
	tmpFile := "test_http.db"
	db, err := store.NewSQLiteDB(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open db: %v", err)
	}
	cleanup := func() {
		db.Close()
		os.Remove(tmpFile)
	}

	log := logger.Default()
	mock := catalog.NewMockClient()

	cfg := &config.Config{
		SpotifyClientID:     "id",
		SpotifyClientSecret: "secret",
		SpotifyRedirectURL:  "http://localhost:8080/auth/spotify/callback",
	}
	am := auth.NewManager(cfg, db, mock, log)

	h := NewHandler(
		app.NewLibraryService(mock, db, log),
		app.NewDispatcher(mock, log),
		am,
		log,
	)
	r := chi.NewRouter()
	h.RegisterRoutes(r)

	user, err := db.GetOrCreateUser("spotify-1", "Alice")
	if err != nil {
		t.Fatalf("GetOrCreateUser failed: %v", err)
	}
	session := &domain.Session{
		ID:          "sess-1",
		UserID:      user.ID,
		AccessToken: "tok",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	if err := db.CreateSession(session); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	return &testEnv{router: r, db: db, mock: mock, session: session}, cleanup
}

func (e *testEnv) get(path string, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if authed {
		req.AddCookie(&http.Cookie{Name: "_session", Value: e.session.ID})
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) postForm(path string, form url.Values, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if authed {
		req.AddCookie(&http.Cookie{Name: "_session", Value: e.session.ID})
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestUnauthenticatedRedirects(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()

	for _, path := range []string{"/library", "/add", "/htmx/search"} {
		rec := env.get(path, false)
		if rec.Code != http.StatusFound {
			t.Errorf("%s: expected 302, got %d", path, rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/auth/spotify" {
			t.Errorf("%s: expected redirect to /auth/spotify, got %s", path, loc)
		}
	}
}

func TestLibraryPage(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()

	if err := env.db.CreateAlbum(&domain.LibraryAlbum{
		UserID: env.session.UserID, AlbumID: "A1", AlbumURI: "spotify:album:A1",
		Artist: "The Beatles", Album: "Abbey Road",
	}); err != nil {
		t.Fatalf("CreateAlbum failed: %v", err)
	}

	rec := env.get("/library", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Abbey Road") {
		t.Error("Expected saved album on the library page")
	}
}

func TestAddPage_SearchAndAnnotate(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()

	env.mock.Albums = []domain.CatalogAlbum{
		{ID: "A1", URI: "spotify:album:A1", Name: "Abbey Road", Artist: "The Beatles", AlbumType: "album"},
		{ID: "A2", URI: "spotify:album:A2", Name: "Revolver", Artist: "The Beatles", AlbumType: "album"},
	}
	env.db.CreateAlbum(&domain.LibraryAlbum{
		UserID: env.session.UserID, AlbumID: "A1", AlbumURI: "spotify:album:A1", Album: "Abbey Road",
	})

	rec := env.get("/add?query=beatles", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Abbey Road") || !strings.Contains(body, "Revolver") {
		t.Error("Expected both search results on the add page")
	}

	// Empty query means no catalog call at all.
	env.mock.SearchCalls = nil
	env.get("/add", true)
	if len(env.mock.SearchCalls) != 0 {
		t.Errorf("Expected zero catalog calls without a query, got %d", len(env.mock.SearchCalls))
	}
}

func TestAddAlbumHTMX(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()

	form := url.Values{
		"albumId":  {"A1"},
		"albumUri": {"spotify:album:A1"},
		"artist":   {"The Beatles"},
		"album":    {"Abbey Road"},
		"imageUrl": {"http://img/a1.jpg"},
	}
	rec := env.postForm("/htmx/album/add", form, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "added") {
		t.Error("Expected the card fragment to be rendered in its added state")
	}

	row, err := env.db.GetAlbum(env.session.UserID, "A1")
	if err != nil || row == nil {
		t.Fatalf("Expected album row to be persisted, got %v, %v", row, err)
	}
	if row.Artist != "The Beatles" || row.Album != "Abbey Road" {
		t.Errorf("Unexpected row: %+v", row)
	}
}

func TestAddAlbumHTMX_MissingFields(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()

	rec := env.postForm("/htmx/album/add", url.Values{"artist": {"x"}}, true)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing album fields, got %d", rec.Code)
	}
}

func TestControlHTMX_Queue(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()

	env.mock.Tracks = []domain.Track{
		{ID: "t1", URI: "spotify:track:t1"},
		{ID: "t2", URI: "spotify:track:t2"},
		{ID: "t3", URI: "spotify:track:t3"},
	}

	form := url.Values{
		"control":  {"queue"},
		"albumId":  {"A1"},
		"albumUri": {"spotify:album:A1"},
	}
	rec := env.postForm("/htmx/control", form, true)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d", rec.Code)
	}

	want := []string{"spotify:track:t1", "spotify:track:t2", "spotify:track:t3"}
	if len(env.mock.QueueCalls) != len(want) {
		t.Fatalf("Expected %d queue calls, got %d", len(want), len(env.mock.QueueCalls))
	}
	for i, uri := range want {
		if env.mock.QueueCalls[i] != uri {
			t.Errorf("Queue call %d: expected %s, got %s", i, uri, env.mock.QueueCalls[i])
		}
	}
}

func TestControlHTMX_Play(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()

	form := url.Values{
		"control":  {"play"},
		"albumId":  {"A1"},
		"albumUri": {"spotify:album:A1"},
	}
	rec := env.postForm("/htmx/control", form, true)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d", rec.Code)
	}
	if len(env.mock.PlayCalls) != 1 || env.mock.PlayCalls[0] != "spotify:album:A1" {
		t.Errorf("Expected one play call, got %v", env.mock.PlayCalls)
	}
}

func TestControlHTMX_UnknownControl(t *testing.T) {
	env, cleanup := setupEnv(t)
	defer cleanup()

	form := url.Values{
		"control":  {"shuffle"},
		"albumId":  {"A1"},
		"albumUri": {"spotify:album:A1"},
	}
	rec := env.postForm("/htmx/control", form, true)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown control, got %d", rec.Code)
	}
}
