package image

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"
)

// solidImage returns a w x h image filled with c.
func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestExtractRegionFullImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{G: 255, A: 255})
	img.Set(0, 1, color.RGBA{B: 255, A: 255})
	img.Set(1, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	got, err := ExtractRegion(img, FullRegion(img))
	if err != nil {
		t.Fatalf("ExtractRegion() error = %v", err)
	}

	want := []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 10, 20, 30, 255,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("ExtractRegion() = %v, want %v", got, want)
	}
}

func TestExtractRegionSubRectangle(t *testing.T) {
	img := solidImage(100, 100, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	got, err := ExtractRegion(img, Region{X: 50, Y: 50, Width: 20, Height: 20})
	if err != nil {
		t.Fatalf("ExtractRegion() error = %v", err)
	}
	if len(got) != 20*20*4 {
		t.Fatalf("len = %d, want %d", len(got), 20*20*4)
	}
	if got[0] != 200 || got[1] != 100 || got[2] != 50 || got[3] != 255 {
		t.Errorf("first pixel = %v, want [200 100 50 255]", got[:4])
	}
}

func TestExtractRegionOutsideImage(t *testing.T) {
	img := solidImage(4, 4, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	got, err := ExtractRegion(img, Region{X: 2, Y: 0, Width: 4, Height: 1})
	if err != nil {
		t.Fatalf("ExtractRegion() error = %v", err)
	}

	want := []byte{
		255, 255, 255, 255, 255, 255, 255, 255,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("ExtractRegion() = %v, want %v", got, want)
	}
}

func TestExtractRegionRelativeToOrigin(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(2, 2, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	sub := img.SubImage(image.Rect(2, 2, 4, 4))

	got, err := ExtractRegion(sub, Region{Width: 1, Height: 1})
	if err != nil {
		t.Fatalf("ExtractRegion() error = %v", err)
	}
	if !bytes.Equal(got, []byte{1, 2, 3, 255}) {
		t.Errorf("ExtractRegion() = %v, want [1 2 3 255]", got)
	}
}

func TestExtractRegionUnpremultiplies(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 0, A: 128})

	got, err := ExtractRegion(img, FullRegion(img))
	if err != nil {
		t.Fatalf("ExtractRegion() error = %v", err)
	}
	if !bytes.Equal(got, []byte{200, 100, 0, 128}) {
		t.Errorf("ExtractRegion() = %v, want [200 100 0 128]", got)
	}
}

func TestExtractRegionPaletted(t *testing.T) {
	pal := color.Palette{color.RGBA{A: 255}, color.RGBA{R: 9, G: 8, B: 7, A: 255}}
	img := image.NewPaletted(image.Rect(0, 0, 2, 1), pal)
	img.SetColorIndex(1, 0, 1)

	got, err := ExtractRegion(img, FullRegion(img))
	if err != nil {
		t.Fatalf("ExtractRegion() error = %v", err)
	}
	if !bytes.Equal(got, []byte{0, 0, 0, 255, 9, 8, 7, 255}) {
		t.Errorf("ExtractRegion() = %v", got)
	}
}

func TestExtractRegionEmpty(t *testing.T) {
	img := solidImage(2, 2, color.White)

	for _, region := range []Region{{}, {Width: 0, Height: 5}, {Width: 5, Height: 0}} {
		got, err := ExtractRegion(img, region)
		if err != nil {
			t.Errorf("ExtractRegion(%s) error = %v", region, err)
		}
		if len(got) != 0 {
			t.Errorf("ExtractRegion(%s) returned %d bytes, want 0", region, len(got))
		}
	}
}

func TestExtractRegionTooLarge(t *testing.T) {
	img := solidImage(1, 1, color.White)

	_, err := ExtractRegion(img, Region{Width: 1 << 15, Height: 1 << 14})
	if err == nil || !strings.Contains(err.Error(), "too large") {
		t.Errorf("ExtractRegion() error = %v, want too large", err)
	}
}

func TestParseRegion(t *testing.T) {
	tests := []struct {
		input   string
		want    Region
		wantErr bool
	}{
		{"0,0,10,10", Region{Width: 10, Height: 10}, false},
		{"50, 50, 20, 20", Region{X: 50, Y: 50, Width: 20, Height: 20}, false},
		{"-5,-5,10,10", Region{X: -5, Y: -5, Width: 10, Height: 10}, false},
		{"0,0,0,0", Region{}, false},
		{"1,2,3", Region{}, true},
		{"1,2,3,4,5", Region{}, true},
		{"a,b,c,d", Region{}, true},
		{"0,0,-1,10", Region{}, true},
		{"", Region{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRegion(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRegion(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseRegion(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRegionString(t *testing.T) {
	r := Region{X: 1, Y: 2, Width: 3, Height: 4}
	if got := r.String(); got != "1,2,3,4" {
		t.Errorf("String() = %q, want %q", got, "1,2,3,4")
	}
	if parsed, err := ParseRegion(r.String()); err != nil || parsed != r {
		t.Errorf("ParseRegion(String()) = %+v, %v", parsed, err)
	}
}
