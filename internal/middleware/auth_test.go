package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/dukerupert/gazette/internal/auth"
	"github.com/dukerupert/gazette/internal/model"
	"github.com/dukerupert/gazette/internal/session"
	"github.com/dukerupert/gazette/internal/store"
)

const rejectBody = "not authorized"

func setupGuard(t *testing.T) (*session.Store, *store.AccountStore) {
	t.Helper()
	accounts, err := store.NewAccountStore(filepath.Join(t.TempDir(), "accounts.json"))
	if err != nil {
		t.Fatalf("new account store: %v", err)
	}
	return session.NewStore(slog.Default()), accounts
}

func guardedHandler(t *testing.T, sessions *session.Store, accounts *store.AccountStore, required model.Permission, inner http.Handler) http.Handler {
	t.Helper()
	reject := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rejectBody))
	})
	return RequirePermission(sessions, accounts, required, reject)(inner)
}

func TestGuardNoCookie(t *testing.T) {
	sessions, accounts := setupGuard(t)

	handler := guardedHandler(t, sessions, accounts, model.PermAdmin, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not reach handler")
	}))

	req := httptest.NewRequest("GET", "/admin", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Body.String() != rejectBody {
		t.Errorf("body = %q, want rejection page", rec.Body.String())
	}
}

func TestGuardUnknownSession(t *testing.T) {
	sessions, accounts := setupGuard(t)

	handler := guardedHandler(t, sessions, accounts, model.PermAdmin, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not reach handler")
	}))

	req := httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "bogus"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Body.String() != rejectBody {
		t.Errorf("body = %q, want rejection page", rec.Body.String())
	}
}

func TestGuardWrongPermission(t *testing.T) {
	sessions, accounts := setupGuard(t)
	accounts.Create("alice", "alice@example.com", "pw") // PermUser
	token := sessions.Create("alice")

	handler := guardedHandler(t, sessions, accounts, model.PermAdmin, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not reach handler")
	}))

	req := httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Body.String() != rejectBody {
		t.Errorf("body = %q, want rejection page", rec.Body.String())
	}
}

func TestGuardExactPermissionOnly(t *testing.T) {
	// The check is equality, not "at least": an admin is turned away from an
	// editor page.
	sessions, accounts := setupGuard(t)
	accounts.Create("alice", "alice@example.com", "pw")
	accounts.SetPermission("alice", model.PermAdmin)
	token := sessions.Create("alice")

	handler := guardedHandler(t, sessions, accounts, model.PermEditor, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not reach handler")
	}))

	req := httptest.NewRequest("GET", "/editor", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Body.String() != rejectBody {
		t.Errorf("body = %q, want rejection page", rec.Body.String())
	}
}

func TestGuardForwardsUnmodified(t *testing.T) {
	sessions, accounts := setupGuard(t)
	accounts.Create("alice", "alice@example.com", "pw")
	accounts.SetPermission("alice", model.PermAdmin)
	token := sessions.Create("alice")

	var gotID auth.Identity
	handler := guardedHandler(t, sessions, accounts, model.PermAdmin, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := auth.FromContext(r.Context())
		if !ok {
			t.Fatal("expected identity in request context")
		}
		gotID = id
		w.Header().Set("X-Custom", "kept")
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("handler output"))
	}))

	req := httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
	if rec.Body.String() != "handler output" {
		t.Errorf("body = %q, want handler output", rec.Body.String())
	}
	if rec.Header().Get("X-Custom") != "kept" {
		t.Error("response header dropped by guard")
	}
	if gotID.Username != "alice" || gotID.Permission != model.PermAdmin {
		t.Errorf("identity = %+v", gotID)
	}
}

func TestGuardTouchesSession(t *testing.T) {
	sessions, accounts := setupGuard(t)
	accounts.Create("alice", "alice@example.com", "pw")
	accounts.SetPermission("alice", model.PermEditor)
	token := sessions.Create("alice")

	handler := guardedHandler(t, sessions, accounts, model.PermEditor, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest("GET", "/editor", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	// The guard refreshed the session, so it still validates.
	if _, ok := sessions.TouchAndValidate(token); !ok {
		t.Error("session gone after guarded request")
	}
}
