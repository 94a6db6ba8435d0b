package panels

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/pokeapi-desk/pokemon-viewer/internal/gui/state"
)

// InfoPanel is the right pane showing the formatted species text.
type InfoPanel struct {
	Info    *widget.Label
	content fyne.CanvasObject
}

// NewInfoPanel binds the info label to the view state's text.
func NewInfoPanel(viewState *state.ViewState) *InfoPanel {
	info := widget.NewLabelWithData(viewState.InfoBinding)
	info.Alignment = fyne.TextAlignCenter
	info.Wrapping = fyne.TextWrapWord

	card := container.NewStack(
		canvas.NewRectangle(theme.Color(theme.ColorNameBackground)),
		container.NewPadded(container.NewVScroll(info)),
	)

	return &InfoPanel{
		Info: info,
		content: container.NewStack(
			canvas.NewRectangle(PanelColor),
			container.NewPadded(card),
		),
	}
}

func (p *InfoPanel) Content() fyne.CanvasObject {
	return p.content
}
