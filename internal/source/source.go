// Package source lists and decodes the image files that make up a playback
// sequence.
package source

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	// Registered decoders for image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/san-kum/ndviplay/internal/frame"
)

const DefaultPattern = "*.jpg"

type Source struct {
	dir     string
	pattern string
}

func New(dir, pattern string) *Source {
	if dir == "" {
		dir = "."
	}
	if pattern == "" {
		pattern = DefaultPattern
	}
	return &Source{dir: dir, pattern: pattern}
}

// List returns the matching files in listing order. Directories matching
// the pattern are skipped.
func (s *Source) List() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, s.pattern))
	if err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", s.pattern, err)
	}
	files := make([]string, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, m)
	}
	return files, nil
}

// Decode reads one image file into a color frame. On failure an empty frame
// is returned together with the error.
func (s *Source) Decode(path string) (*frame.Color, error) {
	f, err := os.Open(path)
	if err != nil {
		return frame.NewColor(0, 0), &frame.DecodeError{Path: path, Wrapped: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return frame.NewColor(0, 0), &frame.DecodeError{Path: path, Wrapped: fmt.Errorf("%w: %v", frame.ErrUnreadable, err)}
	}
	return frame.FromImage(img), nil
}
