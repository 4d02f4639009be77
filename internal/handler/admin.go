package handler

import (
	"net/http"
	"strconv"

	"github.com/dukerupert/gazette/internal/model"
	"github.com/dukerupert/gazette/internal/search"
	"github.com/dukerupert/gazette/internal/tmpl"
)

const searchResultLimit = 10

// AdminPage renders the admin search panel. Results are ranked by edit
// distance to the query, closest first.
func (p *Pages) AdminPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	kind := r.URL.Query().Get("type")

	var panel string
	if query != "" {
		switch kind {
		case "article":
			all, err := p.articles.All()
			if err != nil {
				p.logger.Error("load articles", "error", err)
				http.Error(w, "server error", http.StatusInternalServerError)
				return
			}
			ranked := search.RankBySimilarity(all, query, searchResultLimit,
				func(a model.Article) string { return a.Title })
			panel = p.articleCards(ranked, "/article/")
		default:
			ranked := search.RankBySimilarity(p.accounts.All(), query, searchResultLimit,
				func(a model.Account) string { return a.Username })
			for _, a := range ranked {
				panel += adminUserResultBlueprint.Render(
					tmpl.Text("username", a.Username),
					tmpl.Text("email", a.Email),
					tmpl.Text("rank", a.Permission.Display()),
					tmpl.Text("created_at", a.CreatedAt.Format(dateFormat)),
				)
			}
		}
	}

	body := adminBlueprint.Render(
		tmpl.Text("error", ""),
		tmpl.Text("panel", panel),
	)
	p.writePage(w, r, http.StatusOK, body)
}

// AdminProfilePage shows the profile editor for one account.
func (p *Pages) AdminProfilePage(w http.ResponseWriter, r *http.Request) {
	p.renderAdminProfile(w, r, r.PathValue("username"), "")
}

// AdminProfileUpdate changes an account's permission or deletes the account.
// Admin accounts are immutable through this form.
func (p *Pages) AdminProfileUpdate(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	account, ok := p.accounts.Lookup(username)
	if !ok {
		p.writePage(w, r, http.StatusOK, accountNotFoundBlueprint.Render())
		return
	}
	if account.Permission == model.PermAdmin {
		p.renderAdminProfile(w, r, username, "Admin accounts cannot be modified.")
		return
	}

	switch r.FormValue("action") {
	case "delete":
		if err := p.accounts.Delete(username); err != nil {
			p.logger.Error("delete account", "username", username, "error", err)
			http.Error(w, "server error", http.StatusInternalServerError)
			return
		}
		p.logger.Info("account deleted", "username", username)
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	default:
		perm, err := model.ParsePermission(r.FormValue("rank"))
		if err != nil {
			p.renderAdminProfile(w, r, username, "Unknown rank.")
			return
		}
		if err := p.accounts.SetPermission(username, perm); err != nil {
			p.logger.Error("set permission", "username", username, "error", err)
			http.Error(w, "server error", http.StatusInternalServerError)
			return
		}
		p.logger.Info("permission changed", "username", username, "permission", perm)
		http.Redirect(w, r, "/admin/profile/"+username, http.StatusSeeOther)
	}
}

func (p *Pages) renderAdminProfile(w http.ResponseWriter, r *http.Request, username, errMsg string) {
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

	body := adminProfileBlueprint.Render(
		tmpl.Text("username", account.Username),
		tmpl.Text("email", account.Email),
		tmpl.Text("rank", account.Permission.Display()),
		tmpl.Text("created_at", account.CreatedAt.Format(dateFormat)),
		tmpl.Text("article_count", strconv.Itoa(len(articles))),
		tmpl.Bool("admin_selected", account.Permission == model.PermAdmin),
		tmpl.Bool("editor_selected", account.Permission == model.PermEditor),
		tmpl.Bool("user_selected", account.Permission == model.PermUser),
		tmpl.Text("error", errMsg),
		tmpl.Text("articles", p.articleCards(articles, "/article/")),
	)
	p.writePage(w, r, http.StatusOK, body)
}
