// Package media stores uploaded product and banner images and
// generates the thumbnails the listing pages use.
package media

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	applog "dunestore/internal/log"
)

const thumbWidth = 320

var allowedExt = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}

// SaveImage writes the upload under dir with a generated name and
// produces a width-bounded thumbnail next to it (thumb_<name>). It
// returns the stored file name.
func SaveImage(file multipart.File, header *multipart.FileHeader, dir string) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExt[ext] {
		return "", fmt.Errorf("media: unsupported image type %q", ext)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	full := filepath.Join(dir, name)
	out, err := os.Create(full)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(out, file); err != nil {
		out.Close()
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", err
	}

	// The full-size image is already saved; a missing thumbnail only
	// costs bandwidth on listing pages.
	if err := writeThumb(full, filepath.Join(dir, "thumb_"+name)); err != nil {
		applog.Error(nil, "media.thumbnail", err, map[string]any{"file": name})
	}
	return name, nil
}

func writeThumb(src, dst string) error {
	img, err := imaging.Open(src)
	if err != nil {
		return err
	}
	thumb := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	return imaging.Save(thumb, dst)
}
