package bleed

import (
	"errors"
	"image"
	"testing"

	"github.com/disintegration/imaging"
)

func TestStripPixels_Size(t *testing.T) {
	tests := []struct {
		name         string
		edges        []Edge
		wantW, wantH int
	}{
		{"none", nil, 10, 6},
		{"left", []Edge{EdgeLeft}, 9, 6},
		{"left and right", []Edge{EdgeLeft, EdgeRight}, 8, 6},
		{"top and bottom", []Edge{EdgeTop, EdgeBottom}, 10, 4},
		{"all four", []Edge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight}, 8, 4},
		{"duplicates collapse", []Edge{EdgeLeft, EdgeLeft}, 9, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := StripPixels(patternImage(10, 6), tt.edges...)
			if err != nil {
				t.Fatalf("StripPixels failed: %v", err)
			}
			if out.Bounds().Dx() != tt.wantW || out.Bounds().Dy() != tt.wantH {
				t.Errorf("dimensions: got %dx%d, want %dx%d",
					out.Bounds().Dx(), out.Bounds().Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestStripPixels_LeftContent(t *testing.T) {
	img := patternImage(10, 6)

	out, err := StripPixels(img, EdgeLeft)
	if err != nil {
		t.Fatalf("StripPixels failed: %v", err)
	}

	// The result must be the source minus its leftmost column.
	samePixels(t, out, imaging.Crop(img, image.Rect(1, 0, 10, 6)))
}

func TestStripPixels_NoEdgesIsIdentity(t *testing.T) {
	img := patternImage(10, 6)

	out, err := StripPixels(img)
	if err != nil {
		t.Fatalf("StripPixels failed: %v", err)
	}
	samePixels(t, out, img)
}

func TestStripPixels_CaseInsensitive(t *testing.T) {
	out, err := StripPixels(patternImage(10, 6), Edge("TOP"), Edge("Bottom"))
	if err != nil {
		t.Fatalf("StripPixels failed: %v", err)
	}
	if out.Bounds().Dx() != 10 || out.Bounds().Dy() != 4 {
		t.Errorf("dimensions: got %dx%d, want 10x4", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestStripPixels_InvalidEdge(t *testing.T) {
	_, err := StripPixels(patternImage(10, 6), EdgeLeft, Edge("center"))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}
