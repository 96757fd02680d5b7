package httpapp

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cesargomez89/jukebox/internal/app"
	"github.com/cesargomez89/jukebox/internal/auth"
	"github.com/cesargomez89/jukebox/internal/domain"
	"github.com/cesargomez89/jukebox/internal/logger"
	"github.com/cesargomez89/jukebox/web"
)

type Handler struct {
	Library    *app.LibraryService
	Dispatcher *app.Dispatcher
	Auth       *auth.Manager
	Logger     *logger.Logger
}

func NewHandler(lib *app.LibraryService, disp *app.Dispatcher, am *auth.Manager, log *logger.Logger) *Handler {
	return &Handler{
		Library:    lib,
		Dispatcher: disp,
		Auth:       am,
		Logger:     log,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HomePage)
	r.Get("/login", h.LoginPage)
	r.Get("/auth/spotify", h.AuthBegin)
	r.Get("/auth/spotify/callback", h.AuthCallback)
	r.Post("/logout", h.Logout)

	r.Get("/library", h.LibraryPage)
	r.Get("/add", h.AddPage)

	r.Get("/htmx/search", h.SearchHTMX)
	r.Post("/htmx/album/add", h.AddAlbumHTMX)
	r.Post("/htmx/control", h.ControlHTMX)
}

func (h *Handler) RenderPage(w http.ResponseWriter, pageTmpl string, data interface{}) {
	tmpl, err := template.ParseFS(web.Files,
		"templates/base.html",
		"templates/"+pageTmpl,
		"templates/search_results.html",
		"templates/components/*.html",
	)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}

	if err := tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		http.Error(w, err.Error(), 500)
	}
}

func (h *Handler) RenderFragment(w http.ResponseWriter, name string, data interface{}) {
	tmpl, err := template.ParseFS(web.Files,
		"templates/search_results.html",
		"templates/components/*.html",
	)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}

	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, err.Error(), 500)
	}
}

// sessionOrRedirect resolves the request's session, sending the browser to
// re-authentication when there is none.
func (h *Handler) sessionOrRedirect(w http.ResponseWriter, r *http.Request) *domain.Session {
	session, err := h.Auth.SessionFromRequest(r)
	if err != nil {
		http.Redirect(w, r, "/auth/spotify", http.StatusFound)
		return nil
	}
	return session
}
