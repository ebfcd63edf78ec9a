// Package download fetches pronunciation corpora over HTTP when they are
// not already present locally.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/sony/gobreaker"
)

// DefaultCMUDictURL is the raw cmusphinx dictionary file.
const DefaultCMUDictURL = "https://raw.githubusercontent.com/cmusphinx/cmudict/master/cmudict.dict"

// Downloader fetches corpus files onto disk, guarding the remote host
// with a circuit breaker so repeated failures stop further requests.
type Downloader struct {
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

// New creates a Downloader with default timeouts.
func New() *Downloader {
	return &Downloader{
		client: &http.Client{Timeout: 2 * time.Minute},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "corpus-download",
			MaxRequests: 1,
			Timeout:     30 * time.Second,
		}),
	}
}

// EnsureFile downloads url to path unless path already exists. The file
// is written to a temporary sibling and renamed into place, so an aborted
// download never leaves a truncated corpus behind.
func (d *Downloader) EnsureFile(ctx context.Context, url, path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	fmt.Printf("Corpus not found at %s, downloading from %s...\n", path, url)

	_, err := d.breaker.Execute(func() (interface{}, error) {
		return nil, d.fetch(ctx, url, path)
	})
	if err != nil {
		return fmt.Errorf("download %s: %w", url, err)
	}

	fmt.Printf("Saved corpus to %s\n", path)
	return nil
}

func (d *Downloader) fetch(ctx context.Context, url, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "rhymerank-cli")

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".download-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
