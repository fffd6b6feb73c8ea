// Package pagefile writes backends that produce one document per page.
package pagefile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/plot/recording"
)

// Encoder writes page i (0-based) to w.
type Encoder func(w io.Writer, page int) error

// WriteSingle writes the only page to w. It fails with
// recording.ErrMultiPage unless exactly one page was rendered.
func WriteSingle(w io.Writer, pages int, enc Encoder) (int64, error) {
	if pages == 0 {
		return 0, errors.New("pagefile: no pages rendered")
	}
	if pages > 1 {
		return 0, fmt.Errorf("pagefile: %d pages: %w", pages, recording.ErrMultiPage)
	}
	cw := &CountingWriter{W: w}
	err := enc(cw, 0)
	return cw.N, err
}

// SaveFamily writes every page to its own file named by recording.FamilyName.
func SaveFamily(path string, pages int, enc Encoder) error {
	if pages == 0 {
		return errors.New("pagefile: no pages rendered")
	}
	for i := 0; i < pages; i++ {
		name := recording.FamilyName(path, i+1, pages)
		if err := saveOne(name, i, enc); err != nil {
			return err
		}
	}
	return nil
}

func saveOne(name string, page int, enc Encoder) (err error) {
	f, err := os.Create(name) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return enc(f, page)
}

// CountingWriter wraps an io.Writer and counts bytes written.
type CountingWriter struct {
	W io.Writer
	N int64
}

func (cw *CountingWriter) Write(p []byte) (int, error) {
	n, err := cw.W.Write(p)
	cw.N += int64(n)
	return n, err
}
