// Package report collects per-frame index statistics for a sequence and
// writes them as JSON or CSV.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/ndviplay/internal/frame"
)

type FrameStats struct {
	Path   string  `json:"path"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Error  string  `json:"error,omitempty"`
}

type Series struct {
	Dir       string       `json:"dir"`
	Pattern   string       `json:"pattern"`
	Timestamp time.Time    `json:"timestamp"`
	Frames    []FrameStats `json:"frames"`
}

func New(dir, pattern string) *Series {
	return &Series{Dir: dir, Pattern: pattern, Timestamp: time.Now()}
}

// Add records the statistics of one index field.
func (s *Series) Add(path string, f *frame.Field) {
	lo, hi := f.MinMax()
	s.Frames = append(s.Frames, FrameStats{
		Path:   path,
		Width:  f.Width,
		Height: f.Height,
		Min:    lo,
		Max:    hi,
		Mean:   f.Mean(f.Bounds()),
	})
}

// AddError records a frame that could not be decoded.
func (s *Series) AddError(path string, err error) {
	s.Frames = append(s.Frames, FrameStats{Path: path, Error: err.Error()})
}

// Means returns the mean of every readable frame in order.
func (s *Series) Means() []float64 {
	out := make([]float64, 0, len(s.Frames))
	for _, fs := range s.Frames {
		if fs.Error == "" {
			out = append(out, fs.Mean)
		}
	}
	return out
}

func (s *Series) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

func (s *Series) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"path", "width", "height", "min", "max", "mean", "error"}); err != nil {
		return err
	}
	for _, fs := range s.Frames {
		row := []string{
			fs.Path,
			strconv.Itoa(fs.Width),
			strconv.Itoa(fs.Height),
			strconv.FormatFloat(fs.Min, 'f', 6, 64),
			strconv.FormatFloat(fs.Max, 'f', 6, 64),
			strconv.FormatFloat(fs.Mean, 'f', 6, 64),
			fs.Error,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Save writes the series to path, choosing the format by extension.
func (s *Series) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return s.WriteJSON(file)
	case ".csv":
		return s.WriteCSV(file)
	}
	return fmt.Errorf("report: unsupported format %q", filepath.Ext(path))
}

// Load reads a series previously saved as JSON.
func Load(path string) (*Series, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var s Series
	if err := json.NewDecoder(file).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}
