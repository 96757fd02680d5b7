// Package auth implements the Spotify authorization code flow and the
// cookie session tied to it.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/cesargomez89/jukebox/internal/catalog"
	"github.com/cesargomez89/jukebox/internal/config"
	"github.com/cesargomez89/jukebox/internal/constants"
	"github.com/cesargomez89/jukebox/internal/domain"
	"github.com/cesargomez89/jukebox/internal/logger"
)

// ErrNoSession is returned when a request carries no usable session.
var ErrNoSession = errors.New("no session")

const stateCookieName = "_oauth_state"

// SessionStore is the persistence surface the auth manager needs.
// *store.DB satisfies it.
type SessionStore interface {
	GetOrCreateUser(spotifyID, displayName string) (*domain.User, error)
	CreateSession(session *domain.Session) error
	GetSession(id string) (*domain.Session, error)
	UpdateSessionToken(id, accessToken string, expiresAt time.Time) error
	DeleteSession(id string) error
}

// Manager drives login, session lookup and token refresh.
type Manager struct {
	OAuth        *oauth2.Config
	Store        SessionStore
	Catalog      catalog.Client
	Logger       *logger.Logger
	CookieSecure bool
}

func NewManager(cfg *config.Config, s SessionStore, c catalog.Client, log *logger.Logger) *Manager {
	return &Manager{
		OAuth: &oauth2.Config{
			ClientID:     cfg.SpotifyClientID,
			ClientSecret: cfg.SpotifyClientSecret,
			RedirectURL:  cfg.SpotifyRedirectURL,
			Scopes: []string{
				"user-read-private",
				"user-read-email",
				"user-read-playback-state",
				"user-modify-playback-state",
			},
			Endpoint: oauth2.Endpoint{
				AuthURL:  constants.SpotifyAuthURL,
				TokenURL: constants.SpotifyTokenURL,
			},
		},
		Store:        s,
		Catalog:      c,
		Logger:       log,
		CookieSecure: cfg.CookieSecure,
	}
}

// Begin starts the authorization flow: a random state goes into a short-lived
// cookie and the browser is sent to the provider's consent page.
func (m *Manager) Begin(w http.ResponseWriter, r *http.Request) {
	state := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   m.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, m.OAuth.AuthCodeURL(state), http.StatusFound)
}

// HandleCallback finishes the flow: it validates the state, exchanges the
// code, resolves the Spotify profile to a local user and opens a session.
func (m *Manager) HandleCallback(w http.ResponseWriter, r *http.Request) (*domain.Session, error) {
	stateCookie, err := r.Cookie(stateCookieName)
	if err != nil || stateCookie.Value == "" || r.URL.Query().Get("state") != stateCookie.Value {
		return nil, errors.New("invalid state parameter")
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		return nil, fmt.Errorf("authorization failed: %s", r.URL.Query().Get("error"))
	}

	token, err := m.OAuth.Exchange(r.Context(), code)
	if err != nil {
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}

	me, err := m.Catalog.Me(r.Context(), token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	user, err := m.Store.GetOrCreateUser(me.ID, me.DisplayName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	session := &domain.Session{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.Expiry,
	}
	if err := m.Store.CreateSession(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	m.SetCookie(w, session)
	m.Logger.Info("User logged in", "user_id", user.ID, "spotify_id", user.SpotifyID)
	return session, nil
}

// SessionFromRequest resolves the session cookie to a stored session,
// refreshing the access token if it has expired.
func (m *Manager) SessionFromRequest(r *http.Request) (*domain.Session, error) {
	cookie, err := r.Cookie(constants.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, ErrNoSession
	}

	session, err := m.Store.GetSession(cookie.Value)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNoSession
	}

	if session.Expired() {
		if session.RefreshToken == "" {
			return nil, ErrNoSession
		}
		if err := m.refresh(r.Context(), session); err != nil {
			m.Logger.Warn("Token refresh failed", "user_id", session.UserID, "error", err)
			return nil, ErrNoSession
		}
	}
	return session, nil
}

func (m *Manager) refresh(ctx context.Context, session *domain.Session) error {
	src := m.OAuth.TokenSource(ctx, &oauth2.Token{RefreshToken: session.RefreshToken})
	token, err := src.Token()
	if err != nil {
		return err
	}

	session.AccessToken = token.AccessToken
	session.ExpiresAt = token.Expiry
	return m.Store.UpdateSessionToken(session.ID, token.AccessToken, token.Expiry)
}

// Destroy removes the session row and clears the cookie.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(constants.SessionCookieName); err == nil && cookie.Value != "" {
		if err := m.Store.DeleteSession(cookie.Value); err != nil {
			m.Logger.Warn("Failed to delete session", "error", err)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SetCookie writes the session cookie.
func (m *Manager) SetCookie(w http.ResponseWriter, session *domain.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    session.ID,
		Path:     "/",
		MaxAge:   int(constants.SessionTTL / time.Second),
		HttpOnly: true,
		Secure:   m.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
