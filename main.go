package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/imgtag/img-keyworder/internal/batch"
	"github.com/imgtag/img-keyworder/internal/config"
	"github.com/imgtag/img-keyworder/internal/downsize"
	"github.com/imgtag/img-keyworder/internal/metadata"
	"github.com/imgtag/img-keyworder/internal/platform"
	"github.com/imgtag/img-keyworder/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.imgtag.img-keyworder"
	AppName = "Image Keywording Tool"

	WindowWidth  = 600
	WindowHeight = 400
)

func main() {
	// Log version information
	fmt.Printf("Image Keywording Tool v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	downsizeSvc := downsize.NewService()

	client := metadata.NewClient(metadata.ClientConfig{
		Token:          settings.GetAPIToken(),
		Endpoint:       settings.GetAPIEndpoint(),
		Language:       settings.GetLanguage(),
		MaxKeywords:    settings.GetMaxKeywords(),
		MaxUploadBytes: settings.GetMaxUploadBytes(),
	}, downsizeSvc)

	batchSvc := batch.NewService(client)

	if settings.GetUseExifContext() {
		enricher, err := platform.NewExifReader()
		if err != nil {
			fmt.Printf("exiftool unavailable, continuing without EXIF context: %v\n", err)
		} else {
			defer enricher.Close()
			batchSvc.SetContextEnricher(enricher)
		}
	}

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, batchSvc, downsizeSvc)

	// Show and run
	myWindow.ShowAndRun()
}
