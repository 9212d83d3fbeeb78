package batch

import (
	"github.com/imgtag/img-keyworder/internal/model"
)

// Runner defines the interface for the batch service.
type Runner interface {
	SetUpdateCallback(func(*model.BatchRun))
	SetContextEnricher(ContextEnricher)
	Start(folderPath string) (*model.BatchRun, error)
	CurrentRun() (*model.BatchRun, bool)
}

// ContextEnricher supplies extra context text for an image, such as an EXIF
// description. Enrichment is best effort; errors are logged and ignored.
type ContextEnricher interface {
	Describe(path string) (string, error)
}
