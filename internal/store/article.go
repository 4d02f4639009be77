package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dukerupert/gazette/internal/model"
)

// ArticleStore persists articles as one JSON file per article, keyed by
// UUID, under a single directory.
type ArticleStore struct {
	dir string
}

// NewArticleStore opens the article directory, creating it if needed.
func NewArticleStore(dir string) (*ArticleStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create articles directory: %w", err)
	}
	return &ArticleStore{dir: dir}, nil
}

func (s *ArticleStore) path(id uuid.UUID) string {
	return filepath.Join(s.dir, id.String()+".json")
}

// Save writes an article to disk, refreshing its UpdatedAt stamp.
func (s *ArticleStore) Save(a *model.Article) error {
	a.UpdatedAt = time.Now().UTC()
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode article: %w", err)
	}
	if err := os.WriteFile(s.path(a.ID), data, 0o644); err != nil {
		return fmt.Errorf("write article: %w", err)
	}
	return nil
}

// Get returns the article with the given id, or nil if it does not exist.
func (s *ArticleStore) Get(id uuid.UUID) (*model.Article, error) {
	data, err := os.ReadFile(s.path(id))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read article: %w", err)
	}
	var a model.Article
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode article %s: %w", id, err)
	}
	return &a, nil
}

// All returns every stored article, in no particular order.
func (s *ArticleStore) All() ([]model.Article, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read articles directory: %w", err)
	}

	var articles []model.Article
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read article %s: %w", entry.Name(), err)
		}
		var a model.Article
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, fmt.Errorf("decode article %s: %w", entry.Name(), err)
		}
		articles = append(articles, a)
	}
	return articles, nil
}

// Delete removes an article from disk.
func (s *ArticleStore) Delete(id uuid.UUID) error {
	if err := os.Remove(s.path(id)); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}
