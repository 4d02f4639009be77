package handler

import (
	"net/http"
	"strconv"

	"github.com/dukerupert/gazette/internal/tmpl"
)

// Profile shows the logged-in account's own profile.
func (p *Pages) Profile(w http.ResponseWriter, r *http.Request) {
	username, ok := p.currentUser(r)
	if !ok {
		p.writePage(w, r, http.StatusOK, notLoggedInBlueprint.Render())
		return
	}
	p.renderProfile(w, r, username)
}

// ProfileNamed shows any account's public profile.
func (p *Pages) ProfileNamed(w http.ResponseWriter, r *http.Request) {
	p.renderProfile(w, r, r.PathValue("username"))
}

func (p *Pages) renderProfile(w http.ResponseWriter, r *http.Request, username string) {
	account, ok := p.accounts.Lookup(username)
	if !ok {
		p.writePage(w, r, http.StatusOK, accountNotFoundBlueprint.Render())
		return
	}

	articles, err := p.publishedBy(account.Username)
	if err != nil {
		p.logger.Error("load articles", "error", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	body := profileBlueprint.Render(
		tmpl.Text("username", account.Username),
		tmpl.Text("rank", account.Permission.Display()),
		tmpl.Text("created_at", account.CreatedAt.Format(dateFormat)),
		tmpl.Text("article_count", strconv.Itoa(len(articles))),
		tmpl.Text("articles", p.articleCards(articles, "/article/")),
	)
	p.writePage(w, r, http.StatusOK, body)
}
