package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/dukerupert/gazette/internal/model"
	"github.com/dukerupert/gazette/internal/tmpl"
)

// Home renders the front page: every published article, newest first.
func (p *Pages) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		p.NotFound(w, r)
		return
	}

	articles, err := p.published()
	if err != nil {
		p.logger.Error("load articles", "error", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	body := indexBlueprint.Render(
		tmpl.Text("articles", p.articleCards(articles, "/article/")),
	)
	p.writePage(w, r, http.StatusOK, body)
}

// Article renders a single published article. Articles still in review are
// indistinguishable from missing ones.
func (p *Pages) Article(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		p.NotFound(w, r)
		return
	}

	article, err := p.articles.Get(id)
	if err != nil {
		p.logger.Error("load article", "id", id, "error", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	if article == nil || article.Status != model.StatusPublished {
		p.NotFound(w, r)
		return
	}

	body := articleBlueprint.Render(
		tmpl.Text("title", article.Title),
		tmpl.Text("author", article.Author),
		tmpl.Text("date", article.CreatedAt.Format(dateFormat)),
		tmpl.Text("content", article.RenderContent()),
	)
	p.writePage(w, r, http.StatusOK, body)
}
