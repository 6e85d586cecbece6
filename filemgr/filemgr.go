package filemgr

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// SaveImageWithThumb stores an uploaded image under dir as <name>.jpg plus a
// resized copy under dir/thumb. Width is the thumbnail width; height keeps the
// aspect ratio.
func SaveImageWithThumb(file multipart.File, dir, name string, thumbWidth int) (string, error) {
	buf, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory %q: %w", dir, err)
	}
	origName := name + ".jpg"
	origPath := filepath.Join(dir, origName)
	if err := writeJPEG(origPath, img); err != nil {
		return "", err
	}

	thumbDir := filepath.Join(dir, "thumb")
	if err := os.MkdirAll(thumbDir, 0o755); err != nil {
		return origName, fmt.Errorf("failed to create thumbnail directory %q: %w", thumbDir, err)
	}
	thumbImg := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	if err := writeJPEG(filepath.Join(thumbDir, origName), thumbImg); err != nil {
		return origName, err
	}

	return origName, nil
}

func writeJPEG(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}
	defer out.Close()
	if err := jpeg.Encode(out, img, &jpeg.Options{Quality: 85}); err != nil {
		return fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return nil
}
