// Package image loads images from files, URLs and streams, and rasterises
// regions of them into RGBA byte buffers.
package image

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/tiff" // Register TIFF format
	_ "golang.org/x/image/webp" // Register WebP format

	httputil "github.com/jmylchreest/swatch/internal/util/http"
	"github.com/jmylchreest/swatch/internal/util/imagecache"
)

// Loader handles loading images from various sources.
type Loader interface {
	// Load loads an image from the given path.
	Load(ctx context.Context, path string) (image.Image, error)
}

// Decode decodes image data, unwrapping gzip, bzip2 or xz compression first.
func Decode(data []byte) (image.Image, error) {
	raw, err := Decompress(data)
	if err != nil {
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}
	return img, nil
}

// DecodeReader reads r to the end and decodes the result.
func DecodeReader(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxDecompressedSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	return Decode(data)
}

// FileLoader loads images from the local filesystem.
type FileLoader struct{}

// NewFileLoader creates a new FileLoader instance.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load loads an image from a file path.
// Supported formats: JPEG, PNG, GIF, WebP, BMP, TIFF, optionally compressed
// with gzip, bzip2 or xz.
func (l *FileLoader) Load(_ context.Context, path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	data, err := os.ReadFile(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}

	return Decode(data)
}

// SupportedImageExtensions returns a list of supported image file extensions.
func SupportedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".tif", ".tiff"}
}

// compressedExtensions are suffixes that may wrap a supported image.
var compressedExtensions = []string{".gz", ".bz2", ".xz"}

// IsImageFile checks if a file has a supported image extension, looking
// through one compression suffix.
func IsImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if slices.Contains(compressedExtensions, ext) {
		ext = strings.ToLower(filepath.Ext(strings.TrimSuffix(path, filepath.Ext(path))))
	}
	return slices.Contains(SupportedImageExtensions(), ext)
}

// IsURL reports whether path is an HTTP(S) URL.
func IsURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// ScanDirectoryForImages scans a directory and returns all valid image files.
// It does not recurse into subdirectories, but follows symlinks.
func ScanDirectoryForImages(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var imageFiles []string
	for _, entry := range entries {
		fullPath := filepath.Join(dirPath, entry.Name())

		// For symlinks, stat the target to determine if it's a file.
		info, err := os.Stat(fullPath)
		if err != nil {
			continue
		}
		if info.IsDir() {
			continue
		}

		if IsImageFile(entry.Name()) {
			imageFiles = append(imageFiles, fullPath)
		}
	}

	if len(imageFiles) == 0 {
		return nil, fmt.Errorf("no supported image files found in directory: %s", dirPath)
	}

	return imageFiles, nil
}

// SmartLoader loads images from both local files and HTTP(S) URLs.
type SmartLoader struct {
	fileLoader *FileLoader
	fetch      httputil.FetchOptions

	// cache, when set, stores downloaded images on disk and reuses them.
	cache *imagecache.CacheOptions
}

// SmartLoaderOption configures a SmartLoader.
type SmartLoaderOption func(*SmartLoader)

// WithFetchOptions sets the HTTP options used for remote images.
func WithFetchOptions(opts httputil.FetchOptions) SmartLoaderOption {
	return func(l *SmartLoader) {
		l.fetch = opts
	}
}

// WithCache enables the on-disk cache for remote images.
func WithCache(opts imagecache.CacheOptions) SmartLoaderOption {
	return func(l *SmartLoader) {
		l.cache = &opts
	}
}

// NewSmartLoader creates a new SmartLoader instance.
func NewSmartLoader(opts ...SmartLoaderOption) *SmartLoader {
	l := &SmartLoader{
		fileLoader: NewFileLoader(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load loads an image from either a local file path or HTTP(S) URL.
func (l *SmartLoader) Load(ctx context.Context, path string) (image.Image, error) {
	if !IsURL(path) {
		return l.fileLoader.Load(ctx, path)
	}

	if l.cache != nil {
		cached, err := imagecache.DownloadAndCache(ctx, path, *l.cache, l.fetch)
		if err != nil {
			return nil, fmt.Errorf("failed to cache image from URL: %w", err)
		}
		return l.fileLoader.Load(ctx, cached)
	}

	data, err := httputil.Fetch(ctx, path, l.fetch)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image from URL: %w", err)
	}

	return Decode(data)
}
