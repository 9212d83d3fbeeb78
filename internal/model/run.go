package model

import (
	"math"
	"path/filepath"
	"time"
)

// BatchRun represents one batch keywording pass over a folder
type BatchRun struct {
	ID          string
	Folder      string
	Status      RunStatus
	Processed   int       // images handled so far (including skipped ones)
	Total       int       // images in the work list
	Percent     int       // 0 to 100
	RowsWritten int       // CSV rows written (successes only)
	CurrentFile string    // path of the image currently in flight
	LastError   string    // last error message if any
	StartedAt   time.Time // when the run started
	FinishedAt  time.Time // when the run finished
}

// ProgressPercent returns the rounded completion percentage for the given
// counters. A zero total reports zero instead of dividing by it.
func ProgressPercent(processed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(processed) / float64(total) * 100))
}

// GetDisplayFile returns the base name of the image currently in flight,
// or a dash placeholder when the run is idle.
func (r *BatchRun) GetDisplayFile() string {
	if r.CurrentFile == "" {
		return "—"
	}
	return filepath.Base(r.CurrentFile)
}
