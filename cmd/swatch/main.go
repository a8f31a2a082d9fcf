// Swatch - representative colour palettes from images
//
// Swatch samples the pixels of an image, clusters them with k-means or
// median cut, and prints the dominant colours, most vivid first.
package main

import (
	"os"

	"github.com/jmylchreest/swatch/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
