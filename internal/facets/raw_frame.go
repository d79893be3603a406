package facets

import (
	"bufio"
	"encoding/binary"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// SaveRaw dumps the frame: width, height as little-endian int32, then one
// (hit, value) byte pair per pixel in row-major order.
func (f *Frame) SaveRaw(path string) error {
	// Sanity checks
	if f.Width < 0 || f.Height < 0 {
		return errors.Errorf("negative dimensions: %dx%d", f.Width, f.Height)
	}
	if exp := f.Width * f.Height; len(f.Samples) != exp {
		return errors.Errorf("samples length mismatch: got %d, expected %d", len(f.Samples), exp)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "raw dir")
	}

	fh, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "raw create")
	}
	defer fh.Close()

	w := bufio.NewWriter(fh)
	if err := binary.Write(w, binary.LittleEndian, int32(f.Width)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(f.Height)); err != nil {
		return err
	}

	body := make([]byte, 0, 2*len(f.Samples))
	for _, s := range f.Samples {
		var hit byte
		if s.Hit {
			hit = 1
		}
		body = append(body, hit, s.Value)
	}
	if _, err := w.Write(body); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return fh.Sync()
}
