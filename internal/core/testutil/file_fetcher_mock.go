package testutil

import "context"

// MockFileFetcher is a mock implementation of ports.FileFetcher. Fetched
// records every url -> dest pair in call order.
type MockFileFetcher struct {
	Fetched   [][2]string
	FetchFunc func(ctx context.Context, url, destPath string) error
}

// Fetch records the call and delegates to FetchFunc when set.
func (m *MockFileFetcher) Fetch(ctx context.Context, url, destPath string) error {
	m.Fetched = append(m.Fetched, [2]string{url, destPath})
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, url, destPath)
	}
	return nil
}
