package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dgallion1/outsplit/internal/outline"
	"github.com/dgallion1/outsplit/internal/source"
	"github.com/dgallion1/outsplit/internal/writer"
)

// plannedSegment is one segment of a plan response, optionally carrying
// a text preview of its first page.
type plannedSegment struct {
	outline.Segment
	Preview string `json:"preview,omitempty"`
}

// handlePlan resolves a split plan synchronously without writing any
// parts. Unlike /api/split it accepts any supported source format;
// formats without pagination plan with page 0 entries.
func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := writer.SanitizeFilename(header.Filename)
	if !source.IsSupportedExtension(filename) {
		jsonError(w, "unsupported file type", http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	depth, complete, pagesPerPart := s.splitParams(r)

	var doc *source.Document
	srcPath := "" // set for PDFs so previews can be extracted
	if source.IsSplittable(filename) {
		tmp, err := os.CreateTemp("", "outsplit-plan-*.pdf")
		if err != nil {
			jsonError(w, "failed to stage file", http.StatusInternalServerError)
			return
		}
		srcPath = tmp.Name()
		defer os.Remove(srcPath)
		if _, err := tmp.Write(data); err != nil {
			tmp.Close()
			jsonError(w, "failed to stage file", http.StatusInternalServerError)
			return
		}
		tmp.Close()

		doc, err = (&source.PDFSource{}).ReadFile(srcPath)
		if err != nil {
			jsonError(w, "parse: "+err.Error(), http.StatusUnprocessableEntity)
			return
		}
	} else {
		src, err := source.ForFile(filename)
		if err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		doc, err = src.Read(bytes.NewReader(data), filename)
		if err != nil {
			jsonError(w, "parse: "+err.Error(), http.StatusUnprocessableEntity)
			return
		}
	}

	totalPages := doc.TotalPages
	if totalPages < 1 {
		totalPages = 1
	}

	segs := outline.Plan(doc.Entries, depth, totalPages, complete)
	if len(segs) == 0 && doc.TotalPages > 0 {
		segs = outline.FixedPlan(doc.TotalPages, pagesPerPart)
	}

	planned := make([]plannedSegment, 0, len(segs))
	for _, seg := range segs {
		p := plannedSegment{Segment: seg}
		if srcPath != "" {
			p.Preview = source.PagePreview(srcPath, seg.StartPage, s.cfg.PreviewRunes)
		}
		planned = append(planned, p)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"title":       doc.Title,
		"total_pages": doc.TotalPages,
		"depth":       depth,
		"complete":    complete,
		"segments":    planned,
	})
}
