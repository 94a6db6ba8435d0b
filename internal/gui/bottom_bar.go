package gui

import (
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// CreateBottomBar shows which API host is queried and the application version.
func CreateBottomBar(apiBaseURL, version string) fyne.CanvasObject {
	host := apiBaseURL
	if u, err := url.Parse(apiBaseURL); err == nil && u.Host != "" {
		host = u.Host
	}

	return container.NewHBox(
		widget.NewLabel("API:"),
		widget.NewLabel(host),
		layout.NewSpacer(),
		widget.NewLabel("v"+version),
	)
}
