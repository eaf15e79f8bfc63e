package ports

import "context"

// FileFetcher downloads a remote file to a local path.
type FileFetcher interface {
	Fetch(ctx context.Context, url, destPath string) error
}
