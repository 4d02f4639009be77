package model

import (
	"strings"
	"testing"
)

func TestSummary(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"short", "hello", "hello..."},
		{"tags stripped", "a<b>c</b>d", "acd..."},
		{"empty", "", "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Article{Content: tt.content}
			if got := a.Summary(); got != tt.want {
				t.Errorf("summary = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummaryCapsLength(t *testing.T) {
	a := Article{Content: strings.Repeat("x", 500)}
	got := a.Summary()
	if len(got) != 103 { // 100 chars + "..."
		t.Errorf("len = %d, want 103", len(got))
	}
}

func TestRenderContent(t *testing.T) {
	a := Article{Content: "line one\nline two"}
	want := "line one<br />line two"
	if got := a.RenderContent(); got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestParsePermission(t *testing.T) {
	for _, s := range []string{"admin", "editor", "user"} {
		if _, err := ParsePermission(s); err != nil {
			t.Errorf("ParsePermission(%q) = %v", s, err)
		}
	}
	if _, err := ParsePermission("root"); err == nil {
		t.Error("ParsePermission(\"root\") succeeded, want error")
	}
}
