// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pdiddy/paper-scout/internal/httputil"
	"github.com/pdiddy/paper-scout/pkg/types"
)

// Fetch downloads a corpus snapshot to destPath. The body streams to a
// temp file that is renamed on success, so a failed download never
// leaves a truncated snapshot behind. Rate-limit responses retry with
// backoff via httputil.
func Fetch(ctx context.Context, client *http.Client, url, destPath string, cfg types.HTTPConfig, w io.Writer) error {
	if url == "" {
		return fmt.Errorf("%w: corpus snapshot URL (set corpus.snapshot_url in the config)", ErrMissingResource)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building snapshot request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	fmt.Fprintf(w, "downloading: %s\n", url)

	resp, err := httputil.DoWithRetry(ctx, client, req, 0, w)
	if err != nil {
		return fmt.Errorf("downloading snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("downloading snapshot: server returned %s", resp.Status)
	}

	if dir := filepath.Dir(destPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating snapshot directory: %w", err)
		}
	}

	tmp := destPath + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	n, err := io.Copy(f, resp.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing snapshot: %w", err)
	}

	if err := os.Rename(tmp, destPath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("finalizing snapshot: %w", err)
	}

	fmt.Fprintf(w, "saved %d bytes to %s\n", n, destPath)
	return nil
}
