package handler

import (
	"io"
	"log/slog"
	"net/http"
	"sort"

	"github.com/dukerupert/gazette/internal/model"
	"github.com/dukerupert/gazette/internal/session"
	"github.com/dukerupert/gazette/internal/store"
	"github.com/dukerupert/gazette/internal/tmpl"
)

const (
	sessionCookieName = "gazette_session"
	dateFormat        = "January 2, 2006"
)

// Pages renders every HTML page of the site from the embedded blueprints.
type Pages struct {
	sessions *session.Store
	accounts *store.AccountStore
	articles *store.ArticleStore
	logger   *slog.Logger
}

func NewPages(
	sessions *session.Store,
	accounts *store.AccountStore,
	articles *store.ArticleStore,
	logger *slog.Logger,
) *Pages {
	return &Pages{
		sessions: sessions,
		accounts: accounts,
		articles: articles,
		logger:   logger,
	}
}

// currentUser returns the username behind the request's session cookie,
// refreshing the session's idle timer.
func (p *Pages) currentUser(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return p.sessions.TouchAndValidate(cookie.Value)
}

// writePage wraps a rendered body in the site header and writes it with the
// given status. The header's banner reflects the session state at render
// time.
func (p *Pages) writePage(w http.ResponseWriter, r *http.Request, status int, body string) {
	_, loggedIn := p.currentUser(r)
	page := headerBlueprint.Render(
		tmpl.Bool("logged_in", loggedIn),
		tmpl.Text("main", body),
	)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	io.WriteString(w, page)
}

// articleCards renders one card per article, hrefs built as prefix + id.
func (p *Pages) articleCards(articles []model.Article, hrefPrefix string) string {
	var out string
	for _, a := range articles {
		out += articleCardBlueprint.Render(
			tmpl.Text("href", hrefPrefix+a.ID.String()),
			tmpl.Text("title", a.Title),
			tmpl.Text("author", a.Author),
			tmpl.Text("description", a.Summary()),
			tmpl.Text("date", a.CreatedAt.Format(dateFormat)),
		)
	}
	return out
}

// published returns the published articles newest first.
func (p *Pages) published() ([]model.Article, error) {
	all, err := p.articles.All()
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, a := range all {
		if a.Status == model.StatusPublished {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// publishedBy returns the published articles of one author, newest first.
func (p *Pages) publishedBy(author string) ([]model.Article, error) {
	articles, err := p.published()
	if err != nil {
		return nil, err
	}
	out := articles[:0]
	for _, a := range articles {
		if a.Author == author {
			out = append(out, a)
		}
	}
	return out, nil
}

// NotFound is the shared fallback page.
func (p *Pages) NotFound(w http.ResponseWriter, r *http.Request) {
	p.writePage(w, r, http.StatusNotFound, notFoundBlueprint.Render())
}

// NotAuthorized is the rejection page the permission guard renders for both
// missing sessions and wrong roles. It is written as a normal response so
// the page reads like any other.
func (p *Pages) NotAuthorized(w http.ResponseWriter, r *http.Request) {
	p.writePage(w, r, http.StatusOK, notAuthorizedBlueprint.Render())
}
