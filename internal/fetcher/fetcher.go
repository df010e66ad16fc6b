package fetcher

import (
	"context"

	"github.com/danuarta/newswatch/internal/types"
)

// Fetcher retrieves pages for one source. Implementations bound the number
// of simultaneously in-flight requests; callers over the limit suspend in
// Fetch until a slot frees.
type Fetcher interface {
	// Fetch retrieves the content at url. A *types.FetchError return is
	// the "no response" signal: the caller skips the page or article.
	// No retry happens at this layer.
	Fetch(ctx context.Context, url string) (*types.Response, error)

	// Close releases any resources held by the fetcher.
	Close() error
}
