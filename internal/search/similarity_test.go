package search

import (
	"testing"
)

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"kitten", "sitting", 3},
		{"ABC", "abc", 0}, // case-insensitive
		{"", "abc", 3},
	}
	for _, tt := range tests {
		if got := EditDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("EditDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRankBySimilarity(t *testing.T) {
	names := []string{"charlie", "alice", "alicia", "bob"}

	got := RankBySimilarity(names, "alice", 2, func(s string) string { return s })
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0] != "alice" {
		t.Errorf("first = %q, want %q", got[0], "alice")
	}
	if got[1] != "alicia" {
		t.Errorf("second = %q, want %q", got[1], "alicia")
	}
}

func TestRankBySimilarityDoesNotMutate(t *testing.T) {
	names := []string{"zed", "alice"}
	RankBySimilarity(names, "alice", 10, func(s string) string { return s })
	if names[0] != "zed" {
		t.Error("input slice was reordered")
	}
}
