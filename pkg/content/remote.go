package content

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// FetchTimeout bounds a remote content download.
const FetchTimeout = 30 * time.Second

// maxRemoteSize caps the body read from a remote content source.
const maxRemoteSize = 4 << 20

// IsRemote reports whether source is an http(s) URL rather than a file path.
func IsRemote(source string) (remote bool) {
	parsedURL, err := url.Parse(source)
	remote = err == nil && (parsedURL.Scheme == "http" || parsedURL.Scheme == "https") && parsedURL.Host != ""
	return remote
}

// Fetch downloads a content file from an http(s) URL.
func Fetch(ctx context.Context, urlStr string) (data []byte, err error) {
	ctx, cancel := context.WithTimeout(ctx, FetchTimeout)
	defer cancel()

	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return data, err
	}

	req.Header.Set("User-Agent", "cvgen/1.0")
	req.Header.Set("Accept", "application/json, application/yaml, text/plain")

	var resp *http.Response
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		err = errors.Wrapf(err, "failed to fetch content from %s", urlStr)
		return data, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("failed to fetch content from %s: HTTP status %d", urlStr, resp.StatusCode)
		return data, err
	}

	data, err = io.ReadAll(io.LimitReader(resp.Body, maxRemoteSize+1))
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return data, err
	}

	if len(data) > maxRemoteSize {
		err = errors.Errorf("content from %s exceeds %d bytes", urlStr, maxRemoteSize)
		return data, err
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		err = errors.Errorf("content from %s is empty", urlStr)
		return data, err
	}

	return data, err
}

// formatExt returns the lowercased extension that selects the decoder for source.
func formatExt(source string) (ext string) {
	name := source
	if IsRemote(source) {
		if parsedURL, err := url.Parse(source); err == nil {
			name = parsedURL.Path
		}
	}
	ext = strings.ToLower(filepath.Ext(name))
	return ext
}
