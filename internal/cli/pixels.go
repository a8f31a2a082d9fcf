package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
)

// newPixelsCmd creates the pixels command.
func newPixelsCmd() *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "pixels [file|-]",
		Short: "Extract a colour palette from a list of pixels",
		Long: `Extract a colour palette from a plain list of pixels.

Pixels are separated by whitespace or newlines and written either as
r,g,b triples (0-255) or as #rrggbb / #rgb hex codes. With no argument,
or "-", the list is read from standard input.

Examples:
  # Palette of a handful of colours
  echo "255,0,0 #00ff00 0,0,255 #fff 10,10,10" | swatch pixels -c 4 -r 1

  # Palette from a file, as JSON
  swatch pixels --format json pixels.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPixels(cmd, args, opts)
		},
	}

	addPaletteFlags(cmd.Flags(), opts)

	return cmd
}

// runPixels executes the pixels command.
func runPixels(cmd *cobra.Command, args []string, opts *extractOptions) error {
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

	source := "stdin"
	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != stdinInput {
		source = args[0]
		f, err := os.Open(source)
		if err != nil {
			return fmt.Errorf("failed to open pixel list: %w", err)
		}
		defer f.Close()
		in = f
	}

	pixels, err := readPixels(in)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}
	logger.Debug("read pixels", "source", source, "count", len(pixels))

	result, err := colour.PaletteFromPixels(pixels, imageOpts.Options)
	if err != nil {
		return err
	}
	logResultSummary(logger, source, result)

	out := cmd.OutOrStdout()
	output, err := formatResult(result, opts.format, resolvePreview(opts.preview, opts.format, opts.output, out))
	if err != nil {
		return err
	}
	return writeOutput(out, opts.output, output)
}

// readPixels parses every whitespace separated token in r as a pixel.
func readPixels(r io.Reader) ([]colour.Pixel, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var pixels []colour.Pixel
	for scanner.Scan() {
		p, err := colour.ParsePixel(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("pixel %d: %w", len(pixels)+1, err)
		}
		pixels = append(pixels, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pixels: %w", err)
	}
	return pixels, nil
}
