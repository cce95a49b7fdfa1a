// Package fetch retrieves a published winapp2.ini over HTTP for
// download-mode trims, with a reachability gate so offline hosts decline
// cleanly instead of timing out mid-run.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lwd-temp/Winapp2/pkg/types"
)

// DefaultURL is the canonical published winapp2.ini.
const DefaultURL = "https://raw.githubusercontent.com/MoscaDotTo/Winapp2/master/Winapp2.ini"

const defaultTimeout = 30 * time.Second

// Online reports whether the remote host answers at all. Any HTTP
// response counts; only transport failure means offline.
func Online(ctx context.Context, client *http.Client, rawURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return false
	}
	resp, err := httpClient(client).Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}

// Ruleset downloads the ruleset bytes. The offline gate is the caller's
// job; this surfaces transport and HTTP status errors directly.
func Ruleset(ctx context.Context, client *http.Client, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building download request: %w", err)
	}
	resp, err := httpClient(client).Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrOffline, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("downloading ruleset: unexpected status %s", resp.Status)
	}
	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("downloading ruleset: %w", err)
	}
	return buf, nil
}

func httpClient(client *http.Client) *http.Client {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultTimeout}
}
