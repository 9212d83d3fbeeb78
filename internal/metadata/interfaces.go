package metadata

import (
	"context"

	"github.com/imgtag/img-keyworder/internal/model"
)

// Fetcher defines the interface for the metadata client.
type Fetcher interface {
	Fetch(ctx context.Context, imagePath, contextHint string) (model.MetadataResult, error)
}
