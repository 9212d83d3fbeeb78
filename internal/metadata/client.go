package metadata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/imgtag/img-keyworder/internal/downsize"
	"github.com/imgtag/img-keyworder/internal/model"
)

// Multipart form field names expected by the keywords API
const (
	FieldLanguage      = "language"
	FieldMaxKeywords   = "maxKeywords"
	FieldCustomContext = "customContext"
	FieldFile          = "file"

	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "

	// RequestTimeout bounds one upload round trip; uploads past it fail
	// the run the same way any other transport error does
	RequestTimeout = 5 * time.Minute
)

// ClientConfig carries the static API configuration. The token is an
// explicit value here rather than package state so one process can never
// pick up a credential the caller did not hand it.
type ClientConfig struct {
	Token          string
	Endpoint       string
	Language       string
	MaxKeywords    int
	MaxUploadBytes int64
}

// Client uploads images to the keywords API and parses the responses
type Client struct {
	cfg        ClientConfig
	httpClient *http.Client
	downsizer  downsize.Downsizer
}

// NewClient creates a new metadata client. The downsizer is applied to
// every image before upload so files stay under the configured ceiling.
func NewClient(cfg ClientConfig, downsizer downsize.Downsizer) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: RequestTimeout},
		downsizer:  downsizer,
	}
}

// apiResponse mirrors the success shape of the keywords endpoint
type apiResponse struct {
	Data *apiData `json:"data"`
}

type apiData struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// Fetch downsizes the image, uploads it with the context hint, and returns
// the parsed metadata. A non-200 status or a missing data object yields the
// empty result with a nil error; that image is simply skipped by the
// caller. Transport and downsize errors are returned and abort the run.
func (c *Client) Fetch(ctx context.Context, imagePath, contextHint string) (model.MetadataResult, error) {
	if c.downsizer != nil {
		if err := c.downsizer.Downsize(imagePath, c.cfg.MaxUploadBytes); err != nil {
			return model.MetadataResult{}, err
		}
	}

	body, contentType, err := c.buildRequestBody(imagePath, contextHint)
	if err != nil {
		return model.MetadataResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, body)
	if err != nil {
		return model.MetadataResult{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set(AuthorizationHeader, BearerPrefix+c.cfg.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.MetadataResult{}, fmt.Errorf("upload failed for %s: %w", imagePath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Failed to fetch metadata for %s. Check your API token. Status code: %d",
			imagePath, resp.StatusCode)
		return model.MetadataResult{}, nil
	}

	var parsed apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return model.MetadataResult{}, fmt.Errorf("failed to parse response for %s: %w", imagePath, err)
	}

	if parsed.Data == nil {
		log.Printf("Empty metadata payload for %s", imagePath)
		return model.MetadataResult{}, nil
	}

	log.Printf("Metadata fetched for image: %s (title=%q keywords=%d)",
		imagePath, parsed.Data.Title, len(parsed.Data.Keywords))

	return model.MetadataResult{
		Title:       parsed.Data.Title,
		Description: parsed.Data.Description,
		Keywords:    parsed.Data.Keywords,
	}, nil
}

// buildRequestBody assembles the multipart payload: the request fields
// first, then the image bytes as the file part.
func (c *Client) buildRequestBody(imagePath, contextHint string) (*bytes.Buffer, string, error) {
	f, err := os.Open(imagePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	fields := map[string]string{
		FieldLanguage:      c.cfg.Language,
		FieldMaxKeywords:   strconv.Itoa(c.cfg.MaxKeywords),
		FieldCustomContext: contextHint,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("failed to write form field %s: %w", name, err)
		}
	}

	part, err := writer.CreateFormFile(FieldFile, filepath.Base(imagePath))
	if err != nil {
		return nil, "", fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", fmt.Errorf("failed to read image bytes: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return &body, writer.FormDataContentType(), nil
}
