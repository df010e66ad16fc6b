package pipeline

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/danuarta/newswatch/internal/types"
)

// Middleware processes an article and returns the (possibly modified)
// article. Return nil to drop it from the pipeline.
type Middleware interface {
	// Name returns the middleware's identifier.
	Name() string

	// Process transforms an article. Return nil to drop it.
	Process(article *types.Article) (*types.Article, error)
}

// Pipeline chains middleware processors together. It runs between the
// result sink's consumer and the export backends.
type Pipeline struct {
	middlewares []Middleware
	logger      *slog.Logger
}

// New creates a new Pipeline.
func New(logger *slog.Logger) *Pipeline {
	return &Pipeline{
		logger: logger.With("component", "pipeline"),
	}
}

// Use adds a middleware to the pipeline chain.
func (p *Pipeline) Use(mw Middleware) {
	p.middlewares = append(p.middlewares, mw)
	p.logger.Debug("middleware added", "name", mw.Name(), "position", len(p.middlewares))
}

// Process runs the article through all middleware in order.
func (p *Pipeline) Process(article *types.Article) (*types.Article, error) {
	current := article

	for _, mw := range p.middlewares {
		result, err := mw.Process(current)
		if err != nil {
			return nil, err
		}
		if result == nil {
			p.logger.Debug("article dropped", "stage", mw.Name(), "link", article.Link)
			return nil, nil
		}
		current = result
	}

	return current, nil
}

// Len returns the number of middleware in the chain.
func (p *Pipeline) Len() int {
	return len(p.middlewares)
}

// --- Built-in Middleware ---

// TrimMiddleware trims whitespace from all text fields.
type TrimMiddleware struct{}

func (m *TrimMiddleware) Name() string { return "trim" }

func (m *TrimMiddleware) Process(article *types.Article) (*types.Article, error) {
	article.Title = strings.TrimSpace(article.Title)
	article.Author = strings.TrimSpace(article.Author)
	article.Content = strings.TrimSpace(article.Content)
	article.Category = strings.TrimSpace(article.Category)
	return article, nil
}

// DefaultsMiddleware fills the "Unknown" sentinel into empty non-required
// fields, so every exported row carries the full column set.
type DefaultsMiddleware struct{}

func (m *DefaultsMiddleware) Name() string { return "defaults" }

func (m *DefaultsMiddleware) Process(article *types.Article) (*types.Article, error) {
	if article.Author == "" {
		article.Author = types.UnknownField
	}
	if article.Category == "" {
		article.Category = types.UnknownField
	}
	return article, nil
}

// RequiredFieldsMiddleware drops articles missing a required field. The
// crawler never emits such records; this is the consumer-side guard.
type RequiredFieldsMiddleware struct{}

func (m *RequiredFieldsMiddleware) Name() string { return "required_fields" }

func (m *RequiredFieldsMiddleware) Process(article *types.Article) (*types.Article, error) {
	if !article.Complete() {
		return nil, nil // Drop article
	}
	return article, nil
}

// DedupMiddleware drops articles whose link has been seen before. The link
// is the record's identity; concurrent crawls for overlapping keywords can
// surface the same article more than once.
type DedupMiddleware struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewDedupMiddleware() *DedupMiddleware {
	return &DedupMiddleware{
		seen: make(map[string]struct{}),
	}
}

func (m *DedupMiddleware) Name() string { return "dedup" }

func (m *DedupMiddleware) Process(article *types.Article) (*types.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.seen[article.Link]; exists {
		return nil, nil // Drop duplicate
	}
	m.seen[article.Link] = struct{}{}
	return article, nil
}
