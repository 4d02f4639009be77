package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/dukerupert/gazette/internal/handler"
	"github.com/dukerupert/gazette/internal/middleware"
	"github.com/dukerupert/gazette/internal/model"
	"github.com/dukerupert/gazette/internal/session"
	"github.com/dukerupert/gazette/internal/store"
)

type Server struct {
	sessions    *session.Store
	accounts    *store.AccountStore
	articles    *store.ArticleStore
	pages       *handler.Pages
	rateLimiter *middleware.RateLimiter
	logger      *slog.Logger
}

// New wires the stores and handlers against the given data directory.
func New(dataDir string, logger *slog.Logger) (*Server, error) {
	if err := os.MkdirAll(dataDir, 0o750); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	accounts, err := store.NewAccountStore(filepath.Join(dataDir, "accounts.json"))
	if err != nil {
		return nil, err
	}
	articles, err := store.NewArticleStore(filepath.Join(dataDir, "articles"))
	if err != nil {
		return nil, err
	}

	sessions := session.NewStore(logger.With("component", "session"))
	pages := handler.NewPages(sessions, accounts, articles, logger.With("component", "handler"))

	return &Server{
		sessions:    sessions,
		accounts:    accounts,
		articles:    articles,
		pages:       pages,
		rateLimiter: middleware.NewRateLimiter(10, time.Minute),
		logger:      logger,
	}, nil
}

func (s *Server) Sessions() *session.Store { return s.sessions }

func (s *Server) RateLimiter() *middleware.RateLimiter { return s.rateLimiter }

// Router builds the site's route table: the public pages on the outer mux,
// plus guarded sub-muxes for the admin and editor subtrees.
func (s *Server) Router() http.Handler {
	reject := http.HandlerFunc(s.pages.NotAuthorized)

	adminMux := http.NewServeMux()
	adminMux.HandleFunc("GET /admin", s.pages.AdminPage)
	adminMux.HandleFunc("GET /admin/profile/{username}", s.pages.AdminProfilePage)
	adminMux.HandleFunc("POST /admin/profile/{username}", s.pages.AdminProfileUpdate)
	requireAdmin := middleware.RequirePermission(s.sessions, s.accounts, model.PermAdmin, reject)

	editorMux := http.NewServeMux()
	editorMux.HandleFunc("GET /editor", s.pages.EditorPage)
	editorMux.HandleFunc("GET /editor/article/{id}", s.pages.EditorArticlePage)
	editorMux.HandleFunc("POST /editor/article/{id}", s.pages.EditorArticleUpdate)
	editorMux.HandleFunc("POST /editor/publish", s.pages.EditorPublish)
	requireEditor := middleware.RequirePermission(s.sessions, s.accounts, model.PermEditor, reject)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.pages.Home)
	mux.HandleFunc("GET /article/{id}", s.pages.Article)
	mux.HandleFunc("GET /enter", s.pages.EnterPage)
	mux.Handle("POST /enter", s.rateLimiter.Limit(http.HandlerFunc(s.pages.Enter)))
	mux.HandleFunc("GET /publish", s.pages.PublishPage)
	mux.HandleFunc("POST /publish", s.pages.Publish)
	mux.HandleFunc("GET /profile", s.pages.Profile)
	mux.HandleFunc("GET /profile/{username}", s.pages.ProfileNamed)
	mux.Handle("GET /css/", http.StripPrefix("/css/", http.FileServer(http.Dir("web/static/css"))))
	mux.HandleFunc("GET /health", s.healthHandler)

	mux.Handle("/admin", requireAdmin(adminMux))
	mux.Handle("/admin/", requireAdmin(adminMux))
	mux.Handle("/editor", requireEditor(editorMux))
	mux.Handle("/editor/", requireEditor(editorMux))

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "ok")
}
