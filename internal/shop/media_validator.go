package shop

import (
	"errors"
	"path/filepath"
	"strings"
)

var allowedMedia = map[string]string{
	".jpg":  "IMAGE",
	".jpeg": "IMAGE",
	".png":  "IMAGE",
	".webp": "IMAGE",
	".gif":  "IMAGE",
	".mp4":  "VIDEO",
	".webm": "VIDEO",
}

// MediaTypeFor validates a gallery upload by extension and returns the
// media kind (IMAGE or VIDEO).
func MediaTypeFor(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext == "" {
		return "", errors.New("file extension missing")
	}

	kind, ok := allowedMedia[ext]
	if !ok {
		return "", errors.New("file type not allowed")
	}

	return kind, nil
}
