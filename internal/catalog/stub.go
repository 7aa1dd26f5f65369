package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/any-source/lokio/internal/messages"
)

const maxStubBytes = int64(1 << 20)

// HTTPStubFetcher downloads the config stub of a template as a raw file.
type HTTPStubFetcher struct {
	Catalog Catalog
	Client  *http.Client
}

// NewHTTPStubFetcher returns a fetcher with its own client using timeout.
func NewHTTPStubFetcher(cat Catalog, timeout time.Duration) *HTTPStubFetcher {
	return &HTTPStubFetcher{
		Catalog: cat,
		Client:  &http.Client{Timeout: timeout},
	}
}

// FetchStub returns the raw stub for templateID. A 404 yields ErrStubNotFound.
// Every other failure is returned as is; nothing is retried.
func (f *HTTPStubFetcher) FetchStub(ctx context.Context, templateID string, _ string) ([]byte, error) {
	stubURL, err := f.Catalog.StubURL(templateID)
	if err != nil {
		return nil, fmt.Errorf(messages.CatalogStubRequestFmt, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, stubURL, nil)
	if err != nil {
		return nil, fmt.Errorf(messages.CatalogStubRequestFmt, err)
	}
	req.Header.Set("User-Agent", "lokio")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf(messages.CatalogStubFetchFmt, stubURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrStubNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(messages.CatalogStubStatusFmt, stubURL, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxStubBytes+1))
	if err != nil {
		return nil, fmt.Errorf(messages.CatalogStubReadFmt, stubURL, err)
	}
	if int64(len(data)) > maxStubBytes {
		return nil, fmt.Errorf(messages.CatalogStubTooLargeFmt, stubURL, maxStubBytes)
	}
	return data, nil
}

// LocalStubFetcher reads the stub that acquisition already placed in the
// relocated project tree.
type LocalStubFetcher struct {
	ConfigFile string
}

// FetchStub reads <projectDir>/<ConfigFile>. A missing file yields ErrStubNotFound.
func (f LocalStubFetcher) FetchStub(_ context.Context, _ string, projectDir string) ([]byte, error) {
	path := filepath.Join(projectDir, f.ConfigFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrStubNotFound
	}
	if err != nil {
		return nil, fmt.Errorf(messages.CatalogLocalStubReadFmt, path, err)
	}
	return data, nil
}
