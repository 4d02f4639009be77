package handler

import (
	"net/http"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/dukerupert/gazette/internal/model"
	"github.com/dukerupert/gazette/internal/tmpl"
)

// EditorPage lists the articles waiting for review, oldest submission first.
func (p *Pages) EditorPage(w http.ResponseWriter, r *http.Request) {
	all, err := p.articles.All()
	if err != nil {
		p.logger.Error("load articles", "error", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	queue := all[:0]
	for _, a := range all {
		if a.Status == model.StatusNeedsReview {
			queue = append(queue, a)
		}
	}
	sort.Slice(queue, func(i, j int) bool {
		return queue[i].CreatedAt.Before(queue[j].CreatedAt)
	})

	body := editorBlueprint.Render(
		tmpl.Text("articles", p.articleCards(queue, "/editor/article/")),
	)
	p.writePage(w, r, http.StatusOK, body)
}

// EditorArticlePage shows the review form for one article.
func (p *Pages) EditorArticlePage(w http.ResponseWriter, r *http.Request) {
	article, ok := p.editorArticle(w, r)
	if !ok {
		return
	}
	p.renderEditorArticle(w, r, article, "")
}

// EditorArticleUpdate saves title and content edits from the review form.
func (p *Pages) EditorArticleUpdate(w http.ResponseWriter, r *http.Request) {
	article, ok := p.editorArticle(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	content := strings.TrimSpace(r.FormValue("content"))
	if title == "" || content == "" {
		p.renderEditorArticle(w, r, article, "Title and content are both required.")
		return
	}

	article.Title = title
	article.Content = content
	if err := p.articles.Save(article); err != nil {
		p.logger.Error("save article", "id", article.ID, "error", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/editor/article/"+article.ID.String(), http.StatusSeeOther)
}

// EditorPublish flips an article from needs-review to published.
func (p *Pages) EditorPublish(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	id, err := uuid.Parse(r.FormValue("uuid"))
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
	if article == nil {
		p.NotFound(w, r)
		return
	}

	article.Status = model.StatusPublished
	if err := p.articles.Save(article); err != nil {
		p.logger.Error("publish article", "id", id, "error", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	p.logger.Info("article published", "id", id, "title", article.Title)
	http.Redirect(w, r, "/editor", http.StatusSeeOther)
}

func (p *Pages) editorArticle(w http.ResponseWriter, r *http.Request) (*model.Article, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		p.NotFound(w, r)
		return nil, false
	}

	article, err := p.articles.Get(id)
	if err != nil {
		p.logger.Error("load article", "id", id, "error", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return nil, false
	}
	if article == nil {
		p.NotFound(w, r)
		return nil, false
	}
	return article, true
}

func (p *Pages) renderEditorArticle(w http.ResponseWriter, r *http.Request, a *model.Article, errMsg string) {
	body := editorArticleBlueprint.Render(
		tmpl.Text("uuid", a.ID.String()),
		tmpl.Text("author", a.Author),
		tmpl.Text("date", a.CreatedAt.Format(dateFormat)),
		tmpl.Text("error", errMsg),
		tmpl.Text("title", a.Title),
		tmpl.Text("content", a.Content),
	)
	p.writePage(w, r, http.StatusOK, body)
}
