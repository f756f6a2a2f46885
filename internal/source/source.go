package source

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/outsplit/internal/outline"
)

// Document is a source file reduced to what splitting needs: its title,
// page count, and the flat pre-order outline entry list.
type Document struct {
	Title      string
	TotalPages int // 0 for sources without pagination
	Entries    []outline.Entry
}

// Source derives a Document from raw file bytes.
type Source interface {
	Read(r io.Reader, filename string) (*Document, error)
}

// SupportedExtensions lists file extensions an outline can be derived from.
// Flat formats (.txt, .csv) carry no heading hierarchy and are rejected.
var SupportedExtensions = map[string]bool{
	".pdf":  true,
	".md":   true,
	".html": true,
	".htm":  true,
	".docx": true,
}

// ForFile returns the appropriate source for a filename.
func ForFile(filename string) (Source, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFSource{}, nil
	case ".md", ".markdown":
		return &MarkdownSource{}, nil
	case ".html", ".htm":
		return &HTMLSource{}, nil
	case ".docx":
		return &DOCXSource{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// IsSplittable reports whether a filename's format supports page-level
// splitting, not just outline planning.
func IsSplittable(filename string) bool {
	return strings.ToLower(filepath.Ext(filename)) == ".pdf"
}
