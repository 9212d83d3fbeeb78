package batch

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/imgtag/img-keyworder/internal/metadata"
	"github.com/imgtag/img-keyworder/internal/model"
	"github.com/imgtag/img-keyworder/internal/platform"
)

// CSV output settings
const (
	// OutputCSVName is created (or truncated) inside the processed folder
	OutputCSVName = "image_metadata.csv"

	// KeywordSeparator joins the keyword list into one CSV field
	KeywordSeparator = ", "

	RunIDPrefix = "run-"
)

// CSVHeader is the fixed first row of the output file
var CSVHeader = []string{"Image Name", "Title", "Description", "Keywords"}

// Service runs one batch keywording pass at a time
type Service struct {
	fetcher  metadata.Fetcher
	enricher ContextEnricher

	runMutex sync.RWMutex
	run      *model.BatchRun
	onUpdate func(*model.BatchRun) // callback for UI updates
}

// NewService creates a new batch service
func NewService(fetcher metadata.Fetcher) *Service {
	return &Service{fetcher: fetcher}
}

// SetUpdateCallback sets the callback function for run updates
func (s *Service) SetUpdateCallback(callback func(*model.BatchRun)) {
	s.onUpdate = callback
}

// SetContextEnricher sets the optional context enricher
func (s *Service) SetContextEnricher(enricher ContextEnricher) {
	s.enricher = enricher
}

// CurrentRun returns the most recent run, if any
func (s *Service) CurrentRun() (*model.BatchRun, bool) {
	s.runMutex.RLock()
	defer s.runMutex.RUnlock()
	return s.run, s.run != nil
}

// Start begins processing the folder on a background goroutine. Only one
// run may be active at a time.
func (s *Service) Start(folderPath string) (*model.BatchRun, error) {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	if s.run != nil && !s.run.Status.IsFinished() {
		return nil, fmt.Errorf("a run is already active for folder: %s", s.run.Folder)
	}

	run := &model.BatchRun{
		ID:        generateRunID(),
		Folder:    folderPath,
		Status:    model.RunStatusPending,
		StartedAt: time.Now(),
	}
	s.run = run

	go s.processFolder(run)

	return run, nil
}

// processFolder is the run worker: enumerate, fetch, write CSV, report.
func (s *Service) processFolder(run *model.BatchRun) {
	s.runMutex.Lock()
	run.Status = model.RunStatusStarting
	s.runMutex.Unlock()
	s.notifyUpdate(run)

	files, err := platform.ListImageFiles(run.Folder)
	if err != nil {
		s.setRunError(run, err)
		return
	}

	s.runMutex.Lock()
	run.Total = len(files)
	run.Status = model.RunStatusProcessing
	s.runMutex.Unlock()
	s.notifyUpdate(run)

	csvPath := filepath.Join(run.Folder, OutputCSVName)
	out, err := os.Create(csvPath)
	if err != nil {
		s.setRunError(run, fmt.Errorf("failed to create %s: %w", OutputCSVName, err))
		return
	}
	defer out.Close()

	writer := csv.NewWriter(out)
	if err := writer.Write(CSVHeader); err != nil {
		s.setRunError(run, fmt.Errorf("failed to write CSV header: %w", err))
		return
	}
	// Flush per row so rows written before a hard failure survive on disk
	writer.Flush()

	for _, name := range files {
		imagePath := filepath.Join(run.Folder, name)

		s.runMutex.Lock()
		run.CurrentFile = imagePath
		s.runMutex.Unlock()
		s.notifyUpdate(run)

		hint := s.contextHint(name, imagePath)

		result, err := s.fetcher.Fetch(context.Background(), imagePath, hint)
		if err != nil {
			s.setRunError(run, err)
			return
		}

		if result.IsUsable() {
			row := []string{name, result.Title, result.Description, strings.Join(result.Keywords, KeywordSeparator)}
			if err := writer.Write(row); err != nil {
				s.setRunError(run, fmt.Errorf("failed to write CSV row for %s: %w", name, err))
				return
			}
			writer.Flush()
			if err := writer.Error(); err != nil {
				s.setRunError(run, fmt.Errorf("failed to flush CSV row for %s: %w", name, err))
				return
			}

			s.runMutex.Lock()
			run.RowsWritten++
			s.runMutex.Unlock()
		} else {
			log.Printf("Skipping %s: no usable metadata returned", name)
		}

		s.runMutex.Lock()
		run.Processed++
		run.Percent = model.ProgressPercent(run.Processed, run.Total)
		s.runMutex.Unlock()
		s.notifyUpdate(run)
	}

	s.runMutex.Lock()
	run.Status = model.RunStatusCompleted
	run.CurrentFile = ""
	run.FinishedAt = time.Now()
	s.runMutex.Unlock()
	s.notifyUpdate(run)

	log.Printf("Run %s completed: %d/%d images described in %s",
		run.ID, run.RowsWritten, run.Total, run.Folder)
}

// contextHint derives the filename hint and appends the enricher text when
// one is configured.
func (s *Service) contextHint(name, imagePath string) string {
	hint := metadata.DeriveContext(name)

	if s.enricher == nil {
		return hint
	}

	extra, err := s.enricher.Describe(imagePath)
	if err != nil {
		log.Printf("Context enrichment failed for %s: %v", name, err)
		return hint
	}
	if extra == "" {
		return hint
	}
	return strings.TrimSpace(hint + " " + extra)
}

// setRunError marks the run failed and reports it
func (s *Service) setRunError(run *model.BatchRun, err error) {
	log.Printf("Run %s aborted: %v", run.ID, err)

	s.runMutex.Lock()
	run.Status = model.RunStatusError
	run.LastError = err.Error()
	run.FinishedAt = time.Now()
	s.runMutex.Unlock()

	s.notifyUpdate(run)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(run *model.BatchRun) {
	if s.onUpdate != nil {
		s.onUpdate(run)
	}
}

// generateRunID generates a unique run ID using UUID v7 for better
// uniqueness and time ordering
func generateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(RunIDPrefix+"%d", time.Now().UnixNano())
	}
	return RunIDPrefix + id.String()
}
