package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dgallion1/outsplit/internal/outline"
	"github.com/dgallion1/outsplit/internal/source"
	"github.com/dgallion1/outsplit/internal/writer"
)

// Worker processes a single split job.
type Worker struct {
	log    *slog.Logger
	outDir string
}

func NewWorker(log *slog.Logger, outDir string) *Worker {
	return &Worker{log: log, outDir: outDir}
}

// Process runs the full split pipeline for a job: read the outline,
// resolve the segment plan, write one PDF per segment, bundle a zip.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	jobDir := filepath.Join(w.outDir, job.ID)
	if err := os.MkdirAll(jobDir, 0o755); err != nil {
		log.Error("create job dir failed", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "setup")
		return
	}

	// Phase 1: Parse. The source PDF lands on disk here because both
	// pdfcpu reads and the per-segment trims want a file path.
	job.SetStatus(StatusParsing, "parsing")
	srcPath := filepath.Join(jobDir, "source.pdf")
	if err := os.WriteFile(srcPath, job.FileData(), 0o644); err != nil {
		log.Error("write source failed", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	job.SetFileData(nil)

	pdfSrc := &source.PDFSource{}
	doc, err := pdfSrc.ReadFile(srcPath)
	if err != nil {
		log.Error("read pdf failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if doc.TotalPages < 1 {
		job.AddError("document has no pages")
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	// Phase 2: Plan. Outline-less documents fall back to fixed-size
	// segments instead of failing.
	job.SetStatus(StatusPlanning, "planning")
	segs := outline.Plan(doc.Entries, job.Depth, doc.TotalPages, job.Complete)
	if len(segs) == 0 {
		log.Info("no outline, using fixed-size segments", "pages_per_part", job.PagesPerPart)
		segs = outline.FixedPlan(doc.TotalPages, job.PagesPerPart)
	}
	job.SetSegments(segs)
	log.Info("planned segments", "segments", len(segs), "pages", doc.TotalPages, "depth", job.Depth)

	// Phase 3: Write one PDF per segment.
	job.SetStatus(StatusWriting, "writing")
	for i, seg := range segs {
		if err := ctx.Err(); err != nil {
			job.AddError(err.Error())
			job.SetStatus(StatusFailed, "writing")
			return
		}
		part, err := writer.WritePart(srcPath, jobDir, i+1, seg)
		if err != nil {
			log.Error("write part failed", "segment", seg.Title, "error", err)
			job.AddError(fmt.Sprintf("segment %q: %s", seg.Title, err))
			job.SetStatus(StatusFailed, "writing")
			return
		}
		job.AddPart(part)
	}

	// Phase 4: Bundle.
	job.SetStatus(StatusBundling, "bundling")
	zipPath := filepath.Join(jobDir, "parts.zip")
	if err := writer.Bundle(zipPath, jobDir, job.Parts()); err != nil {
		log.Error("bundle failed", "error", err)
		job.AddError(fmt.Sprintf("bundle: %s", err))
		job.SetStatus(StatusFailed, "bundling")
		return
	}
	job.SetArchive(zipPath)

	job.SetStatus(StatusCompleted, "done")
	log.Info("split complete", "parts", len(job.Parts()))
}
