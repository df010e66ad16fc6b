package export

import (
	"github.com/danuarta/newswatch/internal/types"
)

// Store is the interface for all export backends.
type Store interface {
	// Store persists a batch of articles.
	Store(articles []*types.Article) error

	// Close flushes pending writes and releases resources.
	Close() error

	// Name returns the backend identifier.
	Name() string
}
