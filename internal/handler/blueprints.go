package handler

import (
	"embed"
	"fmt"

	"github.com/dukerupert/gazette/internal/tmpl"
)

//go:embed html
var blueprintFS embed.FS

// load parses an embedded blueprint. A blueprint that fails to parse is a
// build defect, so this panics at package init.
func load(name string) *tmpl.Template {
	data, err := blueprintFS.ReadFile("html/" + name)
	if err != nil {
		panic(fmt.Sprintf("blueprint %s: %v", name, err))
	}
	return tmpl.Must(tmpl.Parse(string(data)))
}

var (
	headerBlueprint          = load("header.html")
	indexBlueprint           = load("index.html")
	articleBlueprint         = load("article.html")
	articleCardBlueprint     = load("article_card.html")
	publishBlueprint         = load("publish.html")
	profileBlueprint         = load("profile.html")
	loginBlueprint           = load("enter/login.html")
	signupBlueprint          = load("enter/signup.html")
	alreadyLoggedInBlueprint = load("enter/already_logged_in.html")
	notFoundBlueprint        = load("errors/404.html")
	notAuthorizedBlueprint   = load("errors/not_authorized.html")
	notLoggedInBlueprint     = load("errors/not_logged_in.html")
	accountNotFoundBlueprint = load("errors/account_not_found.html")
	adminBlueprint           = load("admin/index.html")
	adminUserResultBlueprint = load("admin/user_result.html")
	adminProfileBlueprint    = load("admin/edit_profile.html")
	editorBlueprint          = load("editor/index.html")
	editorArticleBlueprint   = load("editor/edit_article.html")
)
