package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dukerupert/gazette/internal/store"
	"github.com/dukerupert/gazette/internal/tmpl"
)

// EnterPage serves the login and signup forms and handles logout, selected
// by the action query parameter.
func (p *Pages) EnterPage(w http.ResponseWriter, r *http.Request) {
	action := r.URL.Query().Get("action")

	if action == "logout" {
		p.logout(w, r)
		return
	}

	if _, ok := p.currentUser(r); ok {
		p.writePage(w, r, http.StatusOK, alreadyLoggedInBlueprint.Render())
		return
	}

	switch action {
	case "signup":
		p.writePage(w, r, http.StatusOK, signupBlueprint.Render(tmpl.Text("error", "")))
	default:
		p.writePage(w, r, http.StatusOK, loginBlueprint.Render(tmpl.Text("error", "")))
	}
}

// Enter handles login and signup form submissions.
func (p *Pages) Enter(w http.ResponseWriter, r *http.Request) {
	if _, ok := p.currentUser(r); ok {
		p.writePage(w, r, http.StatusPreconditionFailed, alreadyLoggedInBlueprint.Render())
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	switch r.URL.Query().Get("action") {
	case "signup":
		p.signup(w, r)
	case "login":
		p.login(w, r)
	default:
		p.NotFound(w, r)
	}
}

func (p *Pages) signup(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if username == "" || email == "" || password == "" {
		body := signupBlueprint.Render(tmpl.Text("error", "All fields are required."))
		p.writePage(w, r, http.StatusBadRequest, body)
		return
	}

	account, err := p.accounts.Create(username, email, password)
	if errors.Is(err, store.ErrAccountExists) {
		body := signupBlueprint.Render(tmpl.Text("error", "That username or email is already taken."))
		p.writePage(w, r, http.StatusBadRequest, body)
		return
	}
	if err != nil {
		p.logger.Error("create account", "error", err)
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	p.openSession(w, r, account.Username)
}

func (p *Pages) login(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	account, ok := p.accounts.Authenticate(email, password)
	if !ok {
		body := loginBlueprint.Render(tmpl.Text("error", "Incorrect email or password."))
		p.writePage(w, r, http.StatusUnauthorized, body)
		return
	}

	p.openSession(w, r, account.Username)
}

func (p *Pages) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		p.sessions.Invalidate(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (p *Pages) openSession(w http.ResponseWriter, r *http.Request, username string) {
	token := p.sessions.Create(username)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
