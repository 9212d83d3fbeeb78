package ui

import (
	"log"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/imgtag/img-keyworder/internal/batch"
	"github.com/imgtag/img-keyworder/internal/config"
	"github.com/imgtag/img-keyworder/internal/downsize"
	"github.com/imgtag/img-keyworder/internal/model"
	"github.com/imgtag/img-keyworder/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	batchSvc     batch.Runner
	downsizer    downsize.Downsizer
	settings     *config.Settings
	localization *Localization

	selectFolderBtn *widget.Button
	revealBtn       *widget.Button
	statusBox       *widget.Entry
	progressBar     *widget.ProgressBar
	preview         *canvas.Image

	statusLines   []string
	lastPreviewed string
	csvPath       string
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, batchSvc batch.Runner, downsizer downsize.Downsizer) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		batchSvc:     batchSvc,
		downsizer:    downsizer,
		settings:     settings,
		localization: localization,
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for run updates
	ui.batchSvc.SetUpdateCallback(ui.onRunUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Read-only status area, mirrors the run phases
	ui.statusBox = widget.NewMultiLineEntry()
	ui.statusBox.Wrapping = fyne.TextWrapWord
	ui.statusBox.Disable()
	ui.setStatus(ui.localization.GetText(KeyProcessingNotStarted))

	ui.selectFolderBtn = widget.NewButton(ui.localization.GetText(KeySelectFolder), ui.onSelectFolder)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.revealBtn = widget.NewButton(ui.localization.GetText(KeyRevealCSV), ui.onRevealCSV)
	ui.revealBtn.Disable()

	ui.progressBar = widget.NewProgressBar()

	// Preview of the image currently in flight
	ui.preview = &canvas.Image{FillMode: canvas.ImageFillContain}
	ui.preview.SetMinSize(fyne.NewSize(PreviewMinWidth, PreviewMinHeight))

	controls := container.NewBorder(nil, nil, settingsBtn, ui.revealBtn, ui.selectFolderBtn)
	bottom := container.NewVBox(controls, ui.progressBar)

	content := container.NewBorder(
		nil,        // top
		bottom,     // bottom
		nil,        // left
		ui.preview, // right
		ui.statusBox,
	)

	ui.window.SetContent(content)

	log.Printf("UI setup completed")
}

// onSelectFolder opens the native folder chooser and starts a run on the
// chosen folder. Cancelling the dialog takes no action.
func (ui *RootUI) onSelectFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			log.Printf("Folder selection failed: %v", err)
			widget.ShowPopUp(widget.NewLabel("Error: "+err.Error()), ui.window.Canvas())
			return
		}
		if uri == nil {
			return
		}
		ui.startRun(uri.Path())
	}, ui.window)
}

// startRun kicks the batch service and resets the run-scoped UI state
func (ui *RootUI) startRun(folder string) {
	ui.setStatus(ui.localization.GetText(KeyProcessingRunning))
	ui.progressBar.SetValue(0)
	ui.revealBtn.Disable()
	ui.lastPreviewed = ""
	ui.csvPath = filepath.Join(folder, batch.OutputCSVName)

	run, err := ui.batchSvc.Start(folder)
	if err != nil {
		log.Printf("Failed to start run for %s: %v", folder, err)
		ui.setStatus(ui.localization.GetText(KeyRunAlreadyActive))
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyRunAlreadyActive)), ui.window.Canvas())
		return
	}

	log.Printf("Run %s started for folder %s", run.ID, folder)
}

// onRunUpdate handles run updates from the batch service. It is called
// from the worker goroutine, so every widget touch goes through fyne.Do.
func (ui *RootUI) onRunUpdate(run *model.BatchRun) {
	status := run.Status
	percent := run.Percent
	current := run.CurrentFile
	lastError := run.LastError

	fyne.Do(func() {
		ui.progressBar.SetValue(float64(percent) / 100)

		if current != "" && current != ui.lastPreviewed {
			ui.lastPreviewed = current
			go ui.loadPreview(current)
		}

		switch status {
		case model.RunStatusCompleted:
			ui.appendStatus(ui.localization.GetText(KeyProcessingCompleted))
			ui.appendStatus(ui.localization.GetText(KeyCloseToExit))
			ui.revealBtn.Enable()
			ui.sendCompletionNotification()
		case model.RunStatusError:
			ui.appendStatus(ui.localization.GetText(KeyProcessingFailed) + ": " + lastError)
		}
	})
}

// loadPreview renders the thumbnail off the UI thread and hands the result
// back with fyne.Do
func (ui *RootUI) loadPreview(path string) {
	img, err := ui.downsizer.Thumbnail(path, PreviewMaxEdge)
	if err != nil {
		log.Printf("Preview failed for %s: %v", path, err)
		return
	}

	fyne.Do(func() {
		ui.preview.Image = img
		ui.preview.Refresh()
	})
}

// sendCompletionNotification sends a system notification when a run ends
func (ui *RootUI) sendCompletionNotification() {
	fyne.CurrentApp().SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyAppTitle),
		Content: ui.localization.GetText(KeyProcessingCompleted),
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeySettingsSaved)), ui.window.Canvas())
	}).Show()
}

// onRevealCSV reveals the output CSV in the system file manager
func (ui *RootUI) onRevealCSV() {
	if ui.csvPath == "" {
		return
	}

	if err := platform.RevealInFileManager(ui.csvPath); err != nil {
		log.Printf("Error revealing CSV %s: %v", ui.csvPath, err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window.Canvas())
	}
}

// setStatus replaces the status area content with a single line
func (ui *RootUI) setStatus(line string) {
	ui.statusLines = []string{line}
	ui.statusBox.SetText(line)
}

// appendStatus adds a line to the status area
func (ui *RootUI) appendStatus(line string) {
	ui.statusLines = append(ui.statusLines, line)
	ui.statusBox.SetText(strings.Join(ui.statusLines, StatusLineSeparator))
}
