package repositories

import (
	"context"
)

// SourceRepository abstracts access to raw formula files on the source host.
type SourceRepository interface {
	// Exists probes whether the given URL serves content, preferring a
	// HEAD request and falling back to a bounded GET probe.
	Exists(ctx context.Context, url string) (bool, error)
	// Download fetches the URL to the given local path with bounded
	// retries, returning the number of bytes written.
	Download(ctx context.Context, url, dest string) (int64, error)
}
