package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// ColourPreview returns a solid block of width cells in the colour p, using a
// 24-bit ANSI background.
func ColourPreview(p Pixel, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, p.R, p.G, p.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// ColourPreviewWithText returns a preview block with text centred on it, in
// black or white depending on which reads better.
func ColourPreviewWithText(p Pixel, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	var fg uint8 = 255
	if perceivedBrightness(p) > 0.5 {
		fg = 0
	}

	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, p.R, p.G, p.B, ansiSuffix)
	fgCode := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fg, fg, fg, ansiSuffix)
	return bg + fgCode + displayText + ansiReset
}

// perceivedBrightness is the Rec. 601 luma of p, in 0-1.
func perceivedBrightness(p Pixel) float64 {
	return (0.299*float64(p.R) + 0.587*float64(p.G) + 0.114*float64(p.B)) / 255.0
}

// FormatColourWithPreview formats a colour with its preview and hex code.
func FormatColourWithPreview(p Pixel, width int) string {
	return fmt.Sprintf("%s %s", ColourPreview(p, width), p.Hex())
}
