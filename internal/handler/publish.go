package handler

import (
	"net/http"
	"strings"

	"github.com/dukerupert/gazette/internal/model"
	"github.com/dukerupert/gazette/internal/tmpl"
)

// PublishPage shows the submission form, or a login notice for guests.
func (p *Pages) PublishPage(w http.ResponseWriter, r *http.Request) {
	_, loggedIn := p.currentUser(r)
	body := publishBlueprint.Render(
		tmpl.Text("error", ""),
		tmpl.Bool("logged_in", loggedIn),
	)
	p.writePage(w, r, http.StatusOK, body)
}

// Publish accepts a submission and files it for editorial review.
func (p *Pages) Publish(w http.ResponseWriter, r *http.Request) {
	username, ok := p.currentUser(r)
	if !ok {
		p.writePage(w, r, http.StatusUnauthorized, notLoggedInBlueprint.Render())
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	content := strings.TrimSpace(r.FormValue("content"))
	if title == "" || content == "" {
		body := publishBlueprint.Render(
			tmpl.Text("error", "Title and content are both required."),
			tmpl.Bool("logged_in", true),
		)
		p.writePage(w, r, http.StatusBadRequest, body)
		return
	}

	article := model.NewArticle(title, content, username)
	if err := p.articles.Save(&article); err != nil {
		p.logger.Error("save article", "error", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	p.logger.Info("article submitted", "id", article.ID, "author", username)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
