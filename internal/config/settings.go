package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyAPIToken       = "api_token"
	KeyAPIEndpoint    = "api_endpoint"
	KeyLanguage       = "keyword_language"
	KeyMaxKeywords    = "max_keywords"
	KeyMaxUploadBytes = "max_upload_bytes"
	KeyUseExifContext = "use_exif_context"
)

// Default values
const (
	DefaultAPIEndpoint    = "https://server.phototag.ai/api/keywords"
	DefaultLanguage       = "en"
	DefaultMaxKeywords    = 40
	DefaultMaxUploadBytes = 10 * 1024 * 1024
	DefaultUseExifContext = false

	MinMaxKeywords = 1
	MaxMaxKeywords = 200
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAPIToken returns the configured API bearer token. An empty token means
// the API has not been configured yet; every upload will come back 401.
func (s *Settings) GetAPIToken() string {
	return s.app.Preferences().String(KeyAPIToken)
}

// SetAPIToken sets the API bearer token
func (s *Settings) SetAPIToken(token string) {
	s.app.Preferences().SetString(KeyAPIToken, token)
}

// GetAPIEndpoint returns the configured keywords API endpoint
func (s *Settings) GetAPIEndpoint() string {
	endpoint := s.app.Preferences().String(KeyAPIEndpoint)
	if endpoint == "" {
		s.SetAPIEndpoint(DefaultAPIEndpoint)
		return DefaultAPIEndpoint
	}
	return endpoint
}

// SetAPIEndpoint sets the keywords API endpoint
func (s *Settings) SetAPIEndpoint(endpoint string) {
	if endpoint == "" {
		endpoint = DefaultAPIEndpoint
	}
	s.app.Preferences().SetString(KeyAPIEndpoint, endpoint)
}

// GetLanguage returns the language requested for generated keywords
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the language requested for generated keywords
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetMaxKeywords returns the maximum number of keywords requested per image
func (s *Settings) GetMaxKeywords() int {
	value := s.app.Preferences().Int(KeyMaxKeywords)
	if value <= 0 {
		s.SetMaxKeywords(DefaultMaxKeywords)
		return DefaultMaxKeywords
	}
	return value
}

// SetMaxKeywords sets the maximum number of keywords requested per image
func (s *Settings) SetMaxKeywords(count int) {
	if count < MinMaxKeywords {
		count = MinMaxKeywords
	}
	if count > MaxMaxKeywords {
		count = MaxMaxKeywords
	}
	s.app.Preferences().SetInt(KeyMaxKeywords, count)
}

// GetMaxUploadBytes returns the upload size ceiling; images above it are
// downsized in place before the upload.
func (s *Settings) GetMaxUploadBytes() int64 {
	value := s.app.Preferences().Int(KeyMaxUploadBytes)
	if value <= 0 {
		s.SetMaxUploadBytes(DefaultMaxUploadBytes)
		return DefaultMaxUploadBytes
	}
	return int64(value)
}

// SetMaxUploadBytes sets the upload size ceiling
func (s *Settings) SetMaxUploadBytes(limit int64) {
	if limit <= 0 {
		limit = DefaultMaxUploadBytes
	}
	s.app.Preferences().SetInt(KeyMaxUploadBytes, int(limit))
}

// GetUseExifContext returns whether EXIF descriptions are appended to the
// context hint sent to the API
func (s *Settings) GetUseExifContext() bool {
	return s.app.Preferences().BoolWithFallback(KeyUseExifContext, DefaultUseExifContext)
}

// SetUseExifContext sets whether EXIF descriptions enrich the context hint
func (s *Settings) SetUseExifContext(enabled bool) {
	s.app.Preferences().SetBool(KeyUseExifContext, enabled)
}

// GetLanguageOptions returns available keyword language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"en": "English",
		"de": "Deutsch",
		"es": "Español",
		"fr": "Français",
		"pt": "Português",
		"ru": "Русский",
	}
}
