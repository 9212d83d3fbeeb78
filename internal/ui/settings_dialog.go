package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/imgtag/img-keyworder/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	tokenEntry       *widget.Entry
	endpointEntry    *widget.Entry
	languageSelect   *widget.Select
	maxKeywordsEntry *widget.Entry
	exifCheck        *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// API token is the only secret in the app; keep it masked
	sd.tokenEntry = widget.NewPasswordEntry()
	sd.tokenEntry.SetPlaceHolder("PhotoTag.ai bearer token")

	sd.endpointEntry = widget.NewEntry()
	sd.endpointEntry.SetPlaceHolder(config.DefaultAPIEndpoint)

	// Keyword language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.maxKeywordsEntry = widget.NewEntry()
	sd.maxKeywordsEntry.SetPlaceHolder("1-200")

	sd.exifCheck = widget.NewCheck(sd.localization.GetText(KeyUseExifContext), nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyAPIToken)),
		sd.tokenEntry,

		widget.NewLabel(sd.localization.GetText(KeyAPIEndpoint)),
		sd.endpointEntry,

		widget.NewLabel(sd.localization.GetText(KeyKeywordLanguage)),
		sd.languageSelect,

		widget.NewLabel(sd.localization.GetText(KeyMaxKeywords)),
		sd.maxKeywordsEntry,

		widget.NewSeparator(),
		sd.exifCheck,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(460, 380))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.tokenEntry.SetText(sd.settings.GetAPIToken())
	sd.endpointEntry.SetText(sd.settings.GetAPIEndpoint())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.maxKeywordsEntry.SetText(strconv.Itoa(sd.settings.GetMaxKeywords()))
	sd.exifCheck.SetChecked(sd.settings.GetUseExifContext())
}

// onSave handles saving the settings. API settings are read once at
// startup, so changes here apply to the next launch.
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetAPIToken(sd.tokenEntry.Text)
	sd.settings.SetAPIEndpoint(sd.endpointEntry.Text)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.maxKeywordsEntry.Text != "" {
		if count, err := strconv.Atoi(sd.maxKeywordsEntry.Text); err == nil {
			sd.settings.SetMaxKeywords(count)
		}
	}

	sd.settings.SetUseExifContext(sd.exifCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
