// Package imagecache stores downloaded images on disk, keyed by URL.
package imagecache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	httputil "github.com/jmylchreest/swatch/internal/util/http"
)

// CacheOptions configures image caching behavior.
type CacheOptions struct {
	// CacheDir is the directory where images will be cached.
	// If empty, DefaultCacheDir is used.
	CacheDir string

	// Refresh forces a new download even when a cached copy exists.
	Refresh bool
}

// DefaultCacheDir returns the default cache directory path.
func DefaultCacheDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine cache directory: %w", err)
		}
		return filepath.Join(home, ".cache", "swatch", "images"), nil
	}
	return filepath.Join(cacheDir, "swatch", "images"), nil
}

// Filename returns the cache filename for rawURL: a hash of the URL plus the
// extension of its path, so compressed and typed images keep their suffix.
func Filename(rawURL string) string {
	sum := sha256.Sum256([]byte(rawURL))
	name := hex.EncodeToString(sum[:16])

	ext := ""
	if u, err := url.Parse(rawURL); err == nil {
		ext = strings.ToLower(path.Ext(u.Path))
	}
	if ext == "" || len(ext) > 5 {
		ext = ".img"
	}
	return name + ext
}

// DownloadAndCache returns the local path of rawURL, downloading it first
// when no cached copy exists or opts.Refresh is set.
func DownloadAndCache(ctx context.Context, rawURL string, opts CacheOptions, fetch httputil.FetchOptions) (string, error) {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return "", fmt.Errorf("invalid URL: must start with http:// or https://")
	}

	cacheDir := opts.CacheDir
	if cacheDir == "" {
		dir, err := DefaultCacheDir()
		if err != nil {
			return "", err
		}
		cacheDir = dir
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil { // #nosec G301 - Cache directory needs standard permissions
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	cachedPath := filepath.Join(cacheDir, Filename(rawURL))
	if !opts.Refresh {
		if info, err := os.Stat(cachedPath); err == nil && info.Size() > 0 {
			return cachedPath, nil
		}
	}

	data, err := httputil.Fetch(ctx, rawURL, fetch)
	if err != nil {
		return "", fmt.Errorf("failed to download image: %w", err)
	}

	// Rename into place so readers never see a partial image.
	tmp, err := os.CreateTemp(cacheDir, ".download-*")
	if err != nil {
		return "", fmt.Errorf("failed to create cache file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write cached image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write cached image: %w", err)
	}
	if err := os.Rename(tmp.Name(), cachedPath); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to store cached image: %w", err)
	}

	return cachedPath, nil
}
