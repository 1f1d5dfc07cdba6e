package folio

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
	"time"
)

func pngOf(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return &buf
}

func TestProcessThumbnailScalesWideImages(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	img, data, err := processThumbnail(pngOf(t, 2560, 1440), "Hero Shot.PNG", now)
	if err != nil {
		t.Fatalf("processThumbnail: %v", err)
	}
	if img.Width != maxThumbWidth || img.Height != 720 {
		t.Fatalf("size = %dx%d", img.Width, img.Height)
	}
	if img.Filename != "hero-shot.jpg" || img.OriginalName != "Hero Shot.PNG" {
		t.Fatalf("names = %q, %q", img.Filename, img.OriginalName)
	}
	if img.UploadedAt != "2026-03-01T12:00:00Z" || img.Size != len(data) {
		t.Fatalf("metadata = %+v", img)
	}
	if _, err := jpeg.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("output is not a jpeg: %v", err)
	}
}

func TestProcessThumbnailKeepsSmallImages(t *testing.T) {
	img, _, err := processThumbnail(pngOf(t, 320, 200), "small.png", time.Now())
	if err != nil {
		t.Fatalf("processThumbnail: %v", err)
	}
	if img.Width != 320 || img.Height != 200 {
		t.Fatalf("size = %dx%d", img.Width, img.Height)
	}
}

func TestProcessThumbnailRejectsGarbage(t *testing.T) {
	if _, _, err := processThumbnail(bytes.NewBufferString("not an image"), "x.png", time.Now()); err == nil {
		t.Fatalf("expected a decode error")
	}
}

func TestThumbnailName(t *testing.T) {
	for in, want := range map[string]string{
		"My Photo.png": "my-photo.jpg",
		"!!!.gif":      "image.jpg",
		"a.b.jpeg":     "a-b.jpg",
	} {
		if got := thumbnailName(in); got != want {
			t.Errorf("thumbnailName(%q) = %q, want %q", in, got, want)
		}
	}
}
