package source

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"

	"github.com/dgallion1/outsplit/internal/outline"
)

// PDFSource reads the embedded bookmark tree and page count via pdfcpu.
type PDFSource struct{}

func (s *PDFSource) Read(r io.Reader, filename string) (*Document, error) {
	// pdfcpu wants a ReadSeeker, so spool to a temp file.
	tmp, err := os.CreateTemp("", "outsplit-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	doc, err := s.ReadFile(tmpPath)
	if err != nil {
		return nil, err
	}
	doc.Title = strings.TrimSuffix(filename, ".pdf")
	return doc, nil
}

// ReadFile reads a PDF already on disk, avoiding the temp-file copy.
func (s *PDFSource) ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	pageCount, err := api.PageCount(f, nil)
	if err != nil {
		return nil, fmt.Errorf("page count: %w", err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek pdf: %w", err)
	}

	doc := &Document{TotalPages: pageCount}

	// A PDF without an outline is a valid, splittable document; callers
	// fall back to fixed-size segments. Treat extraction failure the
	// same way rather than failing the whole read.
	bms, err := api.Bookmarks(f, nil)
	if err == nil {
		doc.Entries = flattenBookmarks(bms, 0, nil)
	}

	return doc, nil
}

// flattenBookmarks walks the bookmark tree depth-first, siblings in
// authored order, emitting one leveled entry per node.
func flattenBookmarks(bms []pdfcpu.Bookmark, level int, entries []outline.Entry) []outline.Entry {
	for _, bm := range bms {
		entries = append(entries, outline.Entry{
			Title: strings.TrimSpace(bm.Title),
			Page:  bm.PageFrom,
			Level: level,
		})
		entries = flattenBookmarks(bm.Kids, level+1, entries)
	}
	return entries
}
