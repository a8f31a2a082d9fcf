package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/jmylchreest/swatch/internal/colour"
	imageutil "github.com/jmylchreest/swatch/internal/image"
	"github.com/jmylchreest/swatch/internal/security"
	httputil "github.com/jmylchreest/swatch/internal/util/http"
	"github.com/jmylchreest/swatch/internal/util/imagecache"
)

// stdinInput is the argument that reads an image from standard input.
const stdinInput = "-"

// Preview modes accepted by --preview.
const (
	previewAuto   = "auto"
	previewAlways = "always"
	previewNever  = "never"
)

// extractOptions holds the extract command flags.
type extractOptions struct {
	colours      int
	strategy     string
	ratio        float64
	region       string
	format       string
	output       string
	preview      string
	workers      int
	timeout      time.Duration
	cache        bool
	cacheDir     string
	refresh      bool
	allowPrivate bool
}

// newExtractCmd creates the extract command.
func newExtractCmd() *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract <image|url|dir|->...",
		Short: "Extract a colour palette from one or more images",
		Long: `Extract a colour palette from images.

Each input may be a local file, a directory of images, an HTTP(S) URL, or "-"
for standard input. Files compressed with gzip, bzip2 or xz are decoded
transparently. Multiple inputs are processed in parallel.

Supported image formats: JPEG, PNG, GIF, WebP, BMP, TIFF

Environment:
  SWATCH_COLOURS, SWATCH_STRATEGY, SWATCH_RATIO and SWATCH_FORMAT set the
  defaults for the matching flags.

Examples:
  # Extract 8 colours (default) from an image
  swatch extract wallpaper.jpg

  # Use median cut on the top-left 200x100 corner
  swatch extract --strategy cut --region 0,0,200,100 wallpaper.png

  # Sample every pixel and print JSON
  swatch extract --ratio 1 --format json wallpaper.jpg

  # Palettes for a whole directory, as tables
  swatch extract -f table ~/Pictures/wallpapers

  # Download, cache and extract
  swatch extract --cache https://example.com/wallpaper.jpg`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	addPaletteFlags(flags, opts)
	flags.StringVar(&opts.region, "region", "", "only use the rectangle x,y,width,height")
	flags.IntVarP(&opts.workers, "workers", "w", 0, "parallel extractions (default: number of CPUs)")
	flags.DurationVar(&opts.timeout, "timeout", httputil.DefaultTimeout, "timeout for fetching remote images")
	flags.BoolVar(&opts.cache, "cache", false, "cache downloaded images on disk")
	flags.StringVar(&opts.cacheDir, "cache-dir", "", "directory for cached images (default: user cache dir)")
	flags.BoolVar(&opts.refresh, "cache-refresh", false, "re-download cached images")
	flags.BoolVar(&opts.allowPrivate, "allow-private", false, "allow URLs that resolve to local or private hosts")

	return cmd
}

// addPaletteFlags registers the flags shared by every palette command.
func addPaletteFlags(flags *pflag.FlagSet, opts *extractOptions) {
	flags.IntVarP(&opts.colours, "colours", "c", colour.DefaultOptions().ColorCount, "number of colours to extract (4-256)")
	flags.StringVarP(&opts.strategy, "strategy", "s", string(colour.StrategyCentroid), "clustering strategy (centroid, cut)")
	flags.Float64VarP(&opts.ratio, "ratio", "r", colour.DefaultPixelRatio, "fraction of pixels to sample, in (0,1]")
	flags.StringVarP(&opts.format, "format", "f", formatHex, "output format (hex, rgb, json, table)")
	flags.StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	flags.StringVar(&opts.preview, "preview", previewAuto, "show colour previews (auto, always, never)")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string, opts *extractOptions) error {
	logger := newLogger(cmd)

	if err := applyEnvOverrides(cmd.Flags()); err != nil {
		return err
	}
	if err := validateFormat(opts.format); err != nil {
		return err
	}

	imageOpts, err := opts.imageOptions()
	if err != nil {
		return err
	}

	loader, err := opts.loader()
	if err != nil {
		return err
	}

	jobs, err := buildJobs(args, cmd.InOrStdin(), loader, imageOpts, opts.allowPrivate)
	if err != nil {
		return err
	}

	logger.Debug("extracting palettes",
		"inputs", len(jobs),
		"colours", imageOpts.ColorCount,
		"strategy", imageOpts.Strategy,
		"ratio", opts.ratio,
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results := colour.ExtractBatch(ctx, jobs, opts.workers)

	var succeeded []colour.JobResult
	var firstErr error
	for _, res := range results {
		if res.Err != nil {
			logger.Error("extraction failed", "source", res.Name, "error", res.Err)
			if firstErr == nil {
				firstErr = res.Err
			}
			continue
		}
		logResultSummary(logger, res.Name, res.Result)
		succeeded = append(succeeded, res)
	}

	if len(succeeded) > 0 {
		out := cmd.OutOrStdout()
		showPreview := resolvePreview(opts.preview, opts.format, opts.output, out)

		output, err := renderResults(succeeded, opts.format, showPreview, len(jobs) > 1)
		if err != nil {
			return err
		}
		if err := writeOutput(out, opts.output, output); err != nil {
			return err
		}
		if opts.output != "" {
			logger.Debug("wrote palette", "path", opts.output)
		}
	}

	switch {
	case firstErr == nil:
		return nil
	case len(jobs) == 1:
		return firstErr
	default:
		return fmt.Errorf("failed to extract %d of %d inputs", len(jobs)-len(succeeded), len(jobs))
	}
}

// imageOptions converts the flags into extraction options.
func (o *extractOptions) imageOptions() (colour.ImageOptions, error) {
	strategy, err := colour.ParseStrategy(o.strategy)
	if err != nil {
		return colour.ImageOptions{}, err
	}

	opts := colour.ImageOptions{
		Options: colour.Options{
			ColorCount: o.colours,
			Strategy:   strategy,
			PixelRatio: colour.Ratio(o.ratio),
		},
	}
	if err := opts.Validate(); err != nil {
		return colour.ImageOptions{}, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := validatePreview(o.preview); err != nil {
		return colour.ImageOptions{}, err
	}

	if o.region != "" {
		region, err := imageutil.ParseRegion(o.region)
		if err != nil {
			return colour.ImageOptions{}, fmt.Errorf("invalid --region: %w", err)
		}
		opts.Region = &region
	}

	return opts, nil
}

// loader builds the image loader for file and URL inputs.
func (o *extractOptions) loader() (imageutil.Loader, error) {
	loaderOpts := []imageutil.SmartLoaderOption{
		imageutil.WithFetchOptions(httputil.FetchOptions{Timeout: o.timeout}),
	}

	if o.cache {
		dir := o.cacheDir
		if dir == "" {
			var err error
			dir, err = imagecache.DefaultCacheDir()
			if err != nil {
				return nil, err
			}
		}
		loaderOpts = append(loaderOpts, imageutil.WithCache(imagecache.CacheOptions{
			CacheDir: dir,
			Refresh:  o.refresh,
		}))
	}

	return imageutil.NewSmartLoader(loaderOpts...), nil
}

// buildJobs expands the inputs into extraction jobs. Directories contribute
// one job per supported image they contain.
func buildJobs(inputs []string, stdin io.Reader, loader imageutil.Loader, opts colour.ImageOptions, allowPrivate bool) ([]colour.Job, error) {
	var jobs []colour.Job
	usedStdin := false

	addPath := func(path string) {
		jobs = append(jobs, colour.Job{
			Name: path,
			Load: func(ctx context.Context) (image.Image, error) {
				return loader.Load(ctx, path)
			},
			Options: opts,
		})
	}

	for _, input := range inputs {
		switch {
		case input == stdinInput:
			if usedStdin {
				return nil, fmt.Errorf("standard input can only be read once")
			}
			usedStdin = true
			jobs = append(jobs, colour.Job{
				Name: "stdin",
				Load: func(context.Context) (image.Image, error) {
					return imageutil.DecodeReader(stdin)
				},
				Options: opts,
			})

		case imageutil.IsURL(input):
			if err := security.ValidateRemoteURL(input, allowPrivate); err != nil {
				return nil, fmt.Errorf("invalid image URL: %w", err)
			}
			addPath(input)

		default:
			info, err := os.Stat(input)
			if err != nil {
				return nil, fmt.Errorf("invalid image path: %w", err)
			}
			if !info.IsDir() {
				addPath(input)
				continue
			}
			paths, err := imageutil.ScanDirectoryForImages(input)
			if err != nil {
				return nil, err
			}
			for _, path := range paths {
				addPath(path)
			}
		}
	}

	return jobs, nil
}

// validatePreview rejects unknown --preview values.
func validatePreview(mode string) error {
	switch mode {
	case previewAuto, previewAlways, previewNever:
		return nil
	}
	return fmt.Errorf("invalid preview mode: %s (valid: auto, always, never)", mode)
}

// resolvePreview decides whether to draw colour blocks. In auto mode they
// are drawn only when writing text to a terminal.
func resolvePreview(mode, format, outputPath string, out io.Writer) bool {
	if format == formatJSON {
		return false
	}
	switch mode {
	case previewAlways:
		return true
	case previewNever:
		return false
	}
	if outputPath != "" {
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// sourceJSON is one entry of the JSON output for several inputs.
type sourceJSON struct {
	Source  string          `json:"source"`
	Palette json.RawMessage `json:"palette"`
}

// renderResults formats every successful result. Several inputs are either
// separated by "# source" headers or, for JSON, wrapped in an array.
func renderResults(results []colour.JobResult, format string, showPreview, multi bool) (string, error) {
	if !multi {
		return formatResult(results[0].Result, format, showPreview)
	}

	if format == formatJSON {
		entries := make([]sourceJSON, len(results))
		for i, res := range results {
			data, err := res.Result.ToJSON()
			if err != nil {
				return "", fmt.Errorf("failed to convert to JSON: %w", err)
			}
			entries[i] = sourceJSON{Source: res.Name, Palette: data}
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(data) + "\n", nil
	}

	var sb strings.Builder
	for i, res := range results {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "# %s\n", res.Name)
		text, err := formatResult(res.Result, format, showPreview)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

// writeOutput writes to path, or to out when path is empty.
func writeOutput(out io.Writer, path, output string) error {
	if path == "" {
		_, err := io.WriteString(out, output)
		return err
	}
	if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// logResultSummary is used by commands that extract a single palette.
func logResultSummary(logger hclog.Logger, source string, result *colour.Result) {
	logger.Debug("extracted palette",
		"source", source,
		"colours", result.Len(),
		"sampled", len(result.UsedPixels),
	)
}
