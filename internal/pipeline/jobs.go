package pipeline

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/dgallion1/outsplit/internal/outline"
	"github.com/dgallion1/outsplit/internal/writer"
)

// JobStatus represents the state of a split job.
type JobStatus string

const (
	StatusQueued    JobStatus = "queued"
	StatusParsing   JobStatus = "parsing"
	StatusPlanning  JobStatus = "planning"
	StatusWriting   JobStatus = "writing"
	StatusBundling  JobStatus = "bundling"
	StatusCompleted JobStatus = "completed"
	StatusFailed    JobStatus = "failed"
)

// Job tracks the state of a single document split.
type Job struct {
	mu sync.Mutex

	ID     string `json:"job_id"`
	UserID string `json:"user_id"`

	Status   JobStatus `json:"status"`
	Phase    string    `json:"phase"`
	Filename string    `json:"filename"`
	Title    string    `json:"title"`

	// Split parameters.
	Depth        int  `json:"depth"`
	Complete     bool `json:"complete"`
	PagesPerPart int  `json:"pages_per_part"`

	Progress Progress `json:"progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	fileData []byte
	segments []outline.Segment
	parts    []writer.Part
	archive  string
	errors   []string
}

// Progress tracks processing progress.
type Progress struct {
	TotalSegments int      `json:"total_segments"`
	PartsWritten  int      `json:"parts_written"`
	Errors        []string `json:"errors"`
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// SetSegments records the resolved split plan.
func (j *Job) SetSegments(segs []outline.Segment) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.segments = segs
	j.Progress.TotalSegments = len(segs)
	j.UpdatedAt = time.Now()
}

// Segments returns the resolved split plan.
func (j *Job) Segments() []outline.Segment {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.segments
}

// AddPart records one emitted output PDF.
func (j *Job) AddPart(p writer.Part) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.parts = append(j.parts, p)
	j.Progress.PartsWritten = len(j.parts)
	j.UpdatedAt = time.Now()
}

// Parts returns the emitted parts.
func (j *Job) Parts() []writer.Part {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.parts
}

// SetArchive records the path of the bundled zip.
func (j *Job) SetArchive(path string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.archive = path
	j.UpdatedAt = time.Now()
}

// Archive returns the bundled zip path, empty until bundling finishes.
func (j *Job) Archive() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.archive
}

// SetFileData sets the raw file bytes for processing.
func (j *Job) SetFileData(data []byte) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.fileData = data
}

// FileData returns the raw file bytes.
func (j *Job) FileData() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fileData
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID       string            `json:"job_id"`
	UserID   string            `json:"user_id"`
	Status   JobStatus         `json:"status"`
	Phase    string            `json:"phase"`
	Filename string            `json:"filename"`
	Title    string            `json:"title"`
	Depth    int               `json:"depth"`
	Complete bool              `json:"complete"`
	Progress Progress          `json:"progress"`
	Segments []outline.Segment `json:"segments,omitempty"`
	Parts    []writer.Part     `json:"parts,omitempty"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.Progress.Errors
	if errs == nil {
		errs = []string{}
	}
	segs := make([]outline.Segment, len(j.segments))
	copy(segs, j.segments)
	parts := make([]writer.Part, len(j.parts))
	copy(parts, j.parts)
	return JobSnapshot{
		ID:       j.ID,
		UserID:   j.UserID,
		Status:   j.Status,
		Phase:    j.Phase,
		Filename: j.Filename,
		Title:    j.Title,
		Depth:    j.Depth,
		Complete: j.Complete,
		Progress: Progress{
			TotalSegments: j.Progress.TotalSegments,
			PartsWritten:  j.Progress.PartsWritten,
			Errors:        errs,
		},
		Segments: segs,
		Parts:    parts,
	}
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
