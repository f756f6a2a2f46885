// Package writer emits one standalone PDF per resolved segment and
// bundles the results into a zip archive.
package writer

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/dgallion1/outsplit/internal/outline"
)

// Part describes one emitted output PDF.
type Part struct {
	Filename  string `json:"filename"`
	Title     string `json:"title"`
	StartPage int    `json:"start_page"`
	EndPage   int    `json:"end_page"`
}

// WritePart trims the source PDF down to one segment's page range and
// writes it under outDir. n is the segment's 1-based position in the
// plan, used as the filename's ordering prefix.
func WritePart(srcPath, outDir string, n int, seg outline.Segment) (Part, error) {
	name := PartFilename(n, seg)
	outPath := filepath.Join(outDir, name)

	pages := []string{fmt.Sprintf("%d-%d", seg.StartPage, seg.EndPage)}
	if err := api.TrimFile(srcPath, outPath, pages, nil); err != nil {
		return Part{}, fmt.Errorf("trim pages %d-%d: %w", seg.StartPage, seg.EndPage, err)
	}

	return Part{
		Filename:  name,
		Title:     seg.Title,
		StartPage: seg.StartPage,
		EndPage:   seg.EndPage,
	}, nil
}

// SplitPDF writes every segment of a plan as its own PDF, honoring
// cancellation between segments.
func SplitPDF(ctx context.Context, srcPath, outDir string, segs []outline.Segment) ([]Part, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	parts := make([]Part, 0, len(segs))
	for i, seg := range segs {
		if err := ctx.Err(); err != nil {
			return parts, err
		}
		part, err := WritePart(srcPath, outDir, i+1, seg)
		if err != nil {
			return parts, fmt.Errorf("segment %q: %w", seg.Title, err)
		}
		parts = append(parts, part)
	}
	return parts, nil
}

// PartFilename builds the output name for one segment: an ordering
// prefix, the parent title when the segment sits below the shallowest
// selected level, and the sanitized segment title.
func PartFilename(n int, seg outline.Segment) string {
	title := seg.Title
	if seg.ParentTitle != "" {
		title = seg.ParentTitle + " - " + title
	}
	return fmt.Sprintf("%03d_%s.pdf", n, SanitizeFilename(title))
}

// SanitizeFilename strips path components and characters that are
// invalid or awkward in filenames, collapsing whitespace to underscores.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
	name = strings.Join(strings.Fields(name), "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "unnamed"
	}
	return name
}

// Bundle zips the emitted parts into a single archive at zipPath.
func Bundle(zipPath, dir string, parts []Part) error {
	f, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, part := range parts {
		src, err := os.Open(filepath.Join(dir, part.Filename))
		if err != nil {
			zw.Close()
			return fmt.Errorf("open part %s: %w", part.Filename, err)
		}
		w, err := zw.Create(part.Filename)
		if err == nil {
			_, err = io.Copy(w, src)
		}
		src.Close()
		if err != nil {
			zw.Close()
			return fmt.Errorf("archive part %s: %w", part.Filename, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize archive: %w", err)
	}
	return nil
}
