package panels

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/pokeapi-desk/pokemon-viewer/internal/gui/state"
)

var (
	// PanelColor is the red background behind both panes.
	PanelColor = color.NRGBA{R: 0xE0, G: 0x2A, B: 0x2A, A: 0xFF}
	textColor  = color.White
)

// SearchPanel is the left pane: title, name entry, Search button and artwork.
type SearchPanel struct {
	state    *state.ViewState
	onSearch func(query string)

	Entry        *widget.Entry
	SearchButton *widget.Button
	Artwork      *canvas.Image
	statusLabel  *widget.Label

	content fyne.CanvasObject
}

// NewSearchPanel builds the left pane. onSearch receives the raw entry text.
func NewSearchPanel(viewState *state.ViewState, artworkSize fyne.Size, onSearch func(query string)) *SearchPanel {
	p := &SearchPanel{
		state:    viewState,
		onSearch: onSearch,
	}
	p.createUI(artworkSize)
	return p
}

func (p *SearchPanel) createUI(artworkSize fyne.Size) {
	title := canvas.NewText("Pokemon API", textColor)
	title.TextSize = 22
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	prompt := canvas.NewText("Enter your Pokemon name:", textColor)
	prompt.TextSize = 13
	prompt.TextStyle = fyne.TextStyle{Bold: true}
	prompt.Alignment = fyne.TextAlignCenter

	p.Entry = widget.NewEntry()
	p.Entry.SetPlaceHolder("e.g. pikachu")
	p.Entry.OnSubmitted = func(text string) { p.submit() }

	p.SearchButton = widget.NewButton("Search", p.submit)
	p.SearchButton.Importance = widget.HighImportance

	p.Artwork = canvas.NewImageFromImage(nil)
	p.Artwork.FillMode = canvas.ImageFillContain
	p.Artwork.SetMinSize(artworkSize)

	artworkFrame := container.NewStack(
		canvas.NewRectangle(color.White),
		container.NewPadded(p.Artwork),
	)

	p.statusLabel = widget.NewLabelWithData(p.state.StatusBinding)
	p.statusLabel.Alignment = fyne.TextAlignCenter

	form := container.NewVBox(
		layout.NewSpacer(),
		title,
		prompt,
		container.NewGridWrap(fyne.NewSize(260, p.Entry.MinSize().Height), p.Entry),
		p.SearchButton,
		p.statusLabel,
	)

	p.content = container.NewStack(
		canvas.NewRectangle(PanelColor),
		container.NewPadded(container.NewBorder(
			container.NewCenter(form),
			nil, nil, nil,
			container.NewCenter(artworkFrame),
		)),
	)
}

func (p *SearchPanel) submit() {
	if p.onSearch != nil {
		p.onSearch(p.Entry.Text)
	}
}

// SetImage shows img in the artwork region.
func (p *SearchPanel) SetImage(img image.Image) {
	p.Artwork.Image = img
	p.Artwork.Refresh()
}

// SetBusy disables input while a search is running.
func (p *SearchPanel) SetBusy(busy bool) {
	if busy {
		p.SearchButton.Disable()
		p.Entry.Disable()
		return
	}
	p.SearchButton.Enable()
	p.Entry.Enable()
}

func (p *SearchPanel) Content() fyne.CanvasObject {
	return p.content
}
