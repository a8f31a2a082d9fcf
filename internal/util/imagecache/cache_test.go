package imagecache

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	httputil "github.com/jmylchreest/swatch/internal/util/http"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		url     string
		wantExt string
	}{
		{"https://example.com/wall.png", ".png"},
		{"https://example.com/wall.JPG?size=large", ".jpg"},
		{"https://example.com/wall.png.gz", ".gz"},
		{"https://example.com/image", ".img"},
		{"https://example.com/file.verylongext", ".img"},
	}

	for _, tt := range tests {
		got := Filename(tt.url)
		if !strings.HasSuffix(got, tt.wantExt) {
			t.Errorf("Filename(%q) = %q, want suffix %q", tt.url, got, tt.wantExt)
		}
		if len(got) != 32+len(tt.wantExt) {
			t.Errorf("Filename(%q) = %q, want 32 hex characters before the extension", tt.url, got)
		}
	}

	if Filename("https://a.example/x.png") == Filename("https://b.example/x.png") {
		t.Error("different URLs should not share a cache file")
	}
}

func TestDownloadAndCache(t *testing.T) {
	body := "image-bytes"
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "cache")
	url := server.URL + "/wall.png"
	opts := CacheOptions{CacheDir: dir}

	path, err := DownloadAndCache(ctx, url, opts, httputil.FetchOptions{})
	if err != nil {
		t.Fatalf("DownloadAndCache() error = %v", err)
	}
	if path != filepath.Join(dir, Filename(url)) {
		t.Errorf("path = %q, want file in %q", path, dir)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != body {
		t.Fatalf("cached content = %q, %v", data, err)
	}

	if _, err := DownloadAndCache(ctx, url, opts, httputil.FetchOptions{}); err != nil {
		t.Fatalf("second DownloadAndCache() error = %v", err)
	}
	if requests != 1 {
		t.Errorf("requests = %d, want 1 with a warm cache", requests)
	}

	body = "fresh-bytes"
	opts.Refresh = true
	if _, err := DownloadAndCache(ctx, url, opts, httputil.FetchOptions{}); err != nil {
		t.Fatalf("refresh DownloadAndCache() error = %v", err)
	}
	if requests != 2 {
		t.Errorf("requests = %d, want 2 after refresh", requests)
	}
	if data, _ := os.ReadFile(path); string(data) != "fresh-bytes" {
		t.Errorf("cached content after refresh = %q", data)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("cache holds %d files, want 1 with no temp files left", len(entries))
	}
}

func TestDownloadAndCacheRejectsNonHTTP(t *testing.T) {
	_, err := DownloadAndCache(context.Background(), "file:///etc/passwd", CacheOptions{CacheDir: t.TempDir()}, httputil.FetchOptions{})
	if err == nil {
		t.Error("DownloadAndCache() should reject non-HTTP URLs")
	}
}
