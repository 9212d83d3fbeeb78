package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/imgtag/img-keyworder/internal/model"
)

// fakeFetcher returns canned results per image base name without touching
// the network.
type fakeFetcher struct {
	mu      sync.Mutex
	results map[string]model.MetadataResult
	failOn  string // base name that triggers a hard error
	calls   []string
	hints   map[string]string
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		results: make(map[string]model.MetadataResult),
		hints:   make(map[string]string),
	}
}

func (f *fakeFetcher) Fetch(_ context.Context, imagePath, contextHint string) (model.MetadataResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	name := filepath.Base(imagePath)
	f.calls = append(f.calls, name)
	f.hints[name] = contextHint

	if name == f.failOn {
		return model.MetadataResult{}, errors.New("connection refused")
	}
	return f.results[name], nil
}

type fakeEnricher struct {
	text string
	err  error
}

func (f *fakeEnricher) Describe(string) (string, error) {
	return f.text, f.err
}

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("jpeg-bytes"), 0644); err != nil {
		t.Fatalf("Failed to create %s: %v", name, err)
	}
}

// runToCompletion starts a run and blocks until it reaches a finished
// state, returning the final run snapshot.
func runToCompletion(t *testing.T, service *Service, folder string) *model.BatchRun {
	t.Helper()

	done := make(chan *model.BatchRun, 1)
	service.SetUpdateCallback(func(run *model.BatchRun) {
		if run.Status.IsFinished() {
			select {
			case done <- run:
			default:
			}
		}
	})

	if _, err := service.Start(folder); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	select {
	case run := <-done:
		return run
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not finish in time")
		return nil
	}
}

func readCSV(t *testing.T, folder string) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(folder, OutputCSVName))
	if err != nil {
		t.Fatalf("Failed to read output CSV: %v", err)
	}
	content := strings.TrimRight(string(data), "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}

func TestProcessFolder_WritesCSVInOrder(t *testing.T) {
	folder := t.TempDir()
	touch(t, folder, "zebra.jpg")
	touch(t, folder, "apple.jpg")
	touch(t, folder, "middle.jpeg")
	touch(t, folder, "ignored.png")

	fetcher := newFakeFetcher()
	for _, name := range []string{"apple.jpg", "middle.jpeg", "zebra.jpg"} {
		fetcher.results[name] = model.MetadataResult{
			Title:       "Title " + name,
			Description: "Desc",
			Keywords:    []string{"one", "two"},
		}
	}

	service := NewService(fetcher)
	run := runToCompletion(t, service, folder)

	if run.Status != model.RunStatusCompleted {
		t.Fatalf("Expected Completed run, got %s (%s)", run.Status, run.LastError)
	}
	if run.Total != 3 {
		t.Errorf("Expected 3 images in the work list, got %d", run.Total)
	}
	if run.RowsWritten != 3 {
		t.Errorf("Expected 3 rows written, got %d", run.RowsWritten)
	}

	lines := readCSV(t, folder)
	if len(lines) != 4 {
		t.Fatalf("Expected header + 3 rows, got %d lines: %v", len(lines), lines)
	}
	if lines[0] != "Image Name,Title,Description,Keywords" {
		t.Errorf("Unexpected header: %q", lines[0])
	}

	// Rows follow the pinned name order
	wantOrder := []string{"apple.jpg", "middle.jpeg", "zebra.jpg"}
	for i, name := range wantOrder {
		if !strings.HasPrefix(lines[i+1], name+",") {
			t.Errorf("Row %d should be for %s, got %q", i+1, name, lines[i+1])
		}
	}

	// The PNG never reached the fetcher
	for _, call := range fetcher.calls {
		if call == "ignored.png" {
			t.Error("Non-JPEG file was sent to the API")
		}
	}
}

func TestProcessFolder_SkipsUnusableResults(t *testing.T) {
	folder := t.TempDir()
	touch(t, folder, "beach_01.jpg")
	touch(t, folder, "city_99_g.jpg")

	fetcher := newFakeFetcher()
	fetcher.results["beach_01.jpg"] = model.MetadataResult{
		Title:       "Sunset",
		Description: "A beach",
		Keywords:    []string{"sand", "sunset"},
	}
	// city_99_g.jpg keeps the empty result, like a failed API call

	service := NewService(fetcher)
	run := runToCompletion(t, service, folder)

	if run.Status != model.RunStatusCompleted {
		t.Fatalf("Expected Completed run, got %s", run.Status)
	}
	if run.Processed != 2 {
		t.Errorf("Expected both images processed, got %d", run.Processed)
	}
	if run.RowsWritten != 1 {
		t.Errorf("Expected 1 row written, got %d", run.RowsWritten)
	}

	lines := readCSV(t, folder)
	expected := []string{
		"Image Name,Title,Description,Keywords",
		`beach_01.jpg,Sunset,A beach,"sand, sunset"`,
	}
	if len(lines) != len(expected) {
		t.Fatalf("Expected %d lines, got %d: %v", len(expected), len(lines), lines)
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("Line %d = %q, expected %q", i, lines[i], expected[i])
		}
	}

	// Context hints derived from the filenames
	if fetcher.hints["beach_01.jpg"] != "beach" {
		t.Errorf("Expected hint 'beach', got %q", fetcher.hints["beach_01.jpg"])
	}
	if fetcher.hints["city_99_g.jpg"] != "city" {
		t.Errorf("Expected hint 'city', got %q", fetcher.hints["city_99_g.jpg"])
	}
}

func TestProcessFolder_EmptyFolder(t *testing.T) {
	folder := t.TempDir()

	service := NewService(newFakeFetcher())
	run := runToCompletion(t, service, folder)

	if run.Status != model.RunStatusCompleted {
		t.Fatalf("Expected Completed run, got %s (%s)", run.Status, run.LastError)
	}
	if run.Total != 0 || run.Processed != 0 || run.Percent != 0 {
		t.Errorf("Expected idle counters for empty folder, got %+v", run)
	}

	lines := readCSV(t, folder)
	if len(lines) != 1 {
		t.Fatalf("Expected header-only CSV, got %d lines", len(lines))
	}
	if lines[0] != "Image Name,Title,Description,Keywords" {
		t.Errorf("Unexpected header: %q", lines[0])
	}
}

func TestProcessFolder_AbortsOnTransportError(t *testing.T) {
	folder := t.TempDir()
	touch(t, folder, "a.jpg")
	touch(t, folder, "b.jpg")
	touch(t, folder, "c.jpg")

	fetcher := newFakeFetcher()
	fetcher.results["a.jpg"] = model.MetadataResult{Title: "A", Keywords: []string{"k"}}
	fetcher.failOn = "b.jpg"

	service := NewService(fetcher)
	run := runToCompletion(t, service, folder)

	if run.Status != model.RunStatusError {
		t.Fatalf("Expected Error run, got %s", run.Status)
	}
	if !strings.Contains(run.LastError, "connection refused") {
		t.Errorf("Expected transport error recorded, got %q", run.LastError)
	}

	// Rows written before the failure survive on disk
	lines := readCSV(t, folder)
	if len(lines) != 2 {
		t.Fatalf("Expected header + 1 partial row, got %d lines: %v", len(lines), lines)
	}
	if !strings.HasPrefix(lines[1], "a.jpg,") {
		t.Errorf("Expected partial row for a.jpg, got %q", lines[1])
	}

	// c.jpg was never attempted
	for _, call := range fetcher.calls {
		if call == "c.jpg" {
			t.Error("Processing continued past a hard failure")
		}
	}
}

func TestProcessFolder_TruncatesPreviousCSV(t *testing.T) {
	folder := t.TempDir()
	touch(t, folder, "a.jpg")
	if err := os.WriteFile(filepath.Join(folder, OutputCSVName), []byte("stale\nrows\nhere\n"), 0644); err != nil {
		t.Fatalf("Failed to seed stale CSV: %v", err)
	}

	fetcher := newFakeFetcher()
	fetcher.results["a.jpg"] = model.MetadataResult{Title: "A", Keywords: []string{"k"}}

	service := NewService(fetcher)
	runToCompletion(t, service, folder)

	lines := readCSV(t, folder)
	if len(lines) != 2 {
		t.Fatalf("Expected stale CSV to be truncated, got %d lines: %v", len(lines), lines)
	}
}

func TestProcessFolder_ProgressReachesHundred(t *testing.T) {
	folder := t.TempDir()
	touch(t, folder, "a.jpg")
	touch(t, folder, "b.jpg")
	touch(t, folder, "c.jpg")

	fetcher := newFakeFetcher()

	service := NewService(fetcher)

	var mu sync.Mutex
	var percents []int
	done := make(chan struct{})
	service.SetUpdateCallback(func(run *model.BatchRun) {
		mu.Lock()
		percents = append(percents, run.Percent)
		mu.Unlock()
		if run.Status.IsFinished() {
			select {
			case <-done:
			default:
				close(done)
			}
		}
	})

	if _, err := service.Start(folder); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not finish in time")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(percents) == 0 {
		t.Fatal("No progress updates received")
	}
	last := percents[len(percents)-1]
	if last != 100 {
		t.Errorf("Expected final percent 100, got %d", last)
	}
	for i := 1; i < len(percents); i++ {
		if percents[i] < percents[i-1] {
			t.Errorf("Progress went backwards: %v", percents)
			break
		}
	}
}

func TestStart_RejectsActiveRun(t *testing.T) {
	service := NewService(newFakeFetcher())

	// Simulate an in-flight run
	service.runMutex.Lock()
	service.run = &model.BatchRun{ID: "run-1", Status: model.RunStatusProcessing}
	service.runMutex.Unlock()

	_, err := service.Start(t.TempDir())
	if err == nil {
		t.Error("Expected error while a run is active, got nil")
	}
	if !strings.Contains(err.Error(), "already active") {
		t.Errorf("Expected 'already active' error, got: %v", err)
	}
}

func TestContextEnricher_AppendsToHint(t *testing.T) {
	folder := t.TempDir()
	touch(t, folder, "beach_01.jpg")

	fetcher := newFakeFetcher()
	service := NewService(fetcher)
	service.SetContextEnricher(&fakeEnricher{text: "golden hour"})

	runToCompletion(t, service, folder)

	if got := fetcher.hints["beach_01.jpg"]; got != "beach golden hour" {
		t.Errorf("Expected enriched hint 'beach golden hour', got %q", got)
	}
}

func TestContextEnricher_ErrorIsIgnored(t *testing.T) {
	folder := t.TempDir()
	touch(t, folder, "beach_01.jpg")

	fetcher := newFakeFetcher()
	service := NewService(fetcher)
	service.SetContextEnricher(&fakeEnricher{err: errors.New("exiftool gone")})

	run := runToCompletion(t, service, folder)

	if run.Status != model.RunStatusCompleted {
		t.Errorf("Enricher failure must not abort the run, got %s", run.Status)
	}
	if got := fetcher.hints["beach_01.jpg"]; got != "beach" {
		t.Errorf("Expected plain hint 'beach', got %q", got)
	}
}

func TestGenerateRunID(t *testing.T) {
	id1 := generateRunID()
	id2 := generateRunID()

	if id1 == id2 {
		t.Error("Expected different run IDs")
	}
	if !strings.HasPrefix(id1, RunIDPrefix) {
		t.Errorf("Expected ID to start with %q, got: %s", RunIDPrefix, id1)
	}
}
