package folio

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/views"
)

// Project thumbnails are shown in a 16:9 card, so anything wider than a
// card at 2x density is scaled down.
const (
	maxThumbWidth = 1280
	jpegQuality   = 82
	maxUploadSize = 10 << 20
	uploadsSubdir = "uploads"
)

// processThumbnail decodes src, scales it down to maxThumbWidth when wider
// and re-encodes it as JPEG.
func processThumbnail(src io.Reader, originalName string, now time.Time) (Image, []byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return Image{}, nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxThumbWidth {
		newH := h * maxThumbWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxThumbWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
		w, h = maxThumbWidth, newH
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return Image{}, nil, fmt.Errorf("encode jpeg: %w", err)
	}

	return Image{
		Filename:     thumbnailName(originalName),
		OriginalName: originalName,
		Width:        w,
		Height:       h,
		Size:         buf.Len(),
		UploadedAt:   now.UTC().Format(time.RFC3339),
	}, buf.Bytes(), nil
}

// thumbnailName turns an upload name into "<slug>.jpg".
func thumbnailName(name string) string {
	base := content.Slugify(strings.TrimSuffix(name, filepath.Ext(name)))
	if base == "" {
		base = "image"
	}
	return base + ".jpg"
}

// uniqueFilename appends a counter until the name is free on disk and in
// the store.
func (a *App) uniqueFilename(ctx context.Context, name string) (string, error) {
	dir := filepath.Join(a.staticDir, uploadsSubdir)
	base := strings.TrimSuffix(name, ".jpg")
	candidate := name
	for n := 2; ; n++ {
		taken, err := a.Store.HasImage(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken && !fileExists(filepath.Join(dir, candidate)) {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d.jpg", base, n)
	}
}

func (a *App) handleImageUpload(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.String(http.StatusBadRequest, "No image file provided")
	}
	if file.Size > maxUploadSize {
		return c.String(http.StatusBadRequest, "File too large (max 10MB)")
	}
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	img, data, err := processThumbnail(src, file.Filename, a.now())
	if err != nil {
		return c.String(http.StatusBadRequest, "Invalid image: "+err.Error())
	}

	ctx := c.Request().Context()
	if img.Filename, err = a.uniqueFilename(ctx, img.Filename); err != nil {
		return err
	}
	dir := filepath.Join(a.staticDir, uploadsSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create uploads dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, img.Filename), data, 0o644); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	if err := a.Store.SaveImage(ctx, img); err != nil {
		return err
	}
	c.Logger().Infof("uploaded %s (%dx%d)", img.Filename, img.Width, img.Height)
	return c.Redirect(http.StatusSeeOther, "/admin/images/")
}

func (a *App) handleImageDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	filename := filepath.Base(c.Param("filename"))
	if filename == "" || filename == "." || filename == "/" {
		return c.String(http.StatusBadRequest, "Filename required")
	}
	_ = os.Remove(filepath.Join(a.staticDir, uploadsSubdir, filename))
	if err := a.Store.DeleteImage(c.Request().Context(), filename); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/images/")
}

func (a *App) handleImageList(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	images, err := a.Store.ListImages(c.Request().Context())
	if err != nil {
		return err
	}
	return Render(c, views.AdminImages(images, CsrfToken(c)))
}
