package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type ArticleStatus string

const (
	StatusPublished   ArticleStatus = "published"
	StatusNeedsReview ArticleStatus = "needs_review"
)

type Article struct {
	ID        uuid.UUID     `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Author    string        `json:"author"` // author username
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	Status    ArticleStatus `json:"status"`
}

// NewArticle creates an unreviewed article owned by the given author.
func NewArticle(title, content, author string) Article {
	now := time.Now().UTC()
	return Article{
		ID:        uuid.New(),
		Title:     title,
		Content:   content,
		Author:    author,
		CreatedAt: now,
		UpdatedAt: now,
		Status:    StatusNeedsReview,
	}
}

// RenderContent converts stored article text to display HTML.
func (a Article) RenderContent() string {
	return strings.ReplaceAll(a.Content, "\n", "<br />")
}

// Summary returns the first 100 characters of the content with HTML tags
// stripped, for article cards.
func (a Article) Summary() string {
	var b strings.Builder
	count := 0
	inTag := false
	for _, r := range a.Content {
		if count >= 100 {
			break
		}
		count++
		switch {
		case inTag:
			if r == '>' {
				inTag = false
			}
		case r == '<':
			inTag = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String() + "..."
}
