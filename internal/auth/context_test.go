package auth

import (
	"context"
	"testing"

	"github.com/dukerupert/gazette/internal/model"
)

func TestIdentityRoundTrip(t *testing.T) {
	ctx := WithIdentity(context.Background(), Identity{Username: "alice", Permission: model.PermEditor})

	id, ok := FromContext(ctx)
	if !ok {
		t.Fatal("expected identity in context")
	}
	if id.Username != "alice" {
		t.Errorf("username = %q, want %q", id.Username, "alice")
	}
	if id.Permission != model.PermEditor {
		t.Errorf("permission = %q, want %q", id.Permission, model.PermEditor)
	}
}

func TestEmptyContext(t *testing.T) {
	if _, ok := FromContext(context.Background()); ok {
		t.Error("expected no identity in empty context")
	}
	if got := Username(context.Background()); got != "" {
		t.Errorf("username = %q, want empty", got)
	}
}
