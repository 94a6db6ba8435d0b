package state

import (
	"image"
	"sync"

	"fyne.io/fyne/v2/data/binding"

	"github.com/pokeapi-desk/pokemon-viewer/internal/services"
	"github.com/pokeapi-desk/pokemon-viewer/internal/species"
)

const (
	StatusIdle      = "Enter a Pokémon name and press Search."
	StatusSearching = "Searching..."
)

// ViewState is everything the window displays. Render is the only writer of
// the record, image and info text.
type ViewState struct {
	InfoBinding   binding.String
	StatusBinding binding.String

	mu        sync.RWMutex
	record    *species.Record
	image     image.Image
	requestID string
	searching bool
}

// NewViewState creates an empty view state.
func NewViewState() *ViewState {
	s := &ViewState{
		InfoBinding:   binding.NewString(),
		StatusBinding: binding.NewString(),
	}
	_ = s.StatusBinding.Set(StatusIdle)
	return s
}

// Render replaces the displayed record with the one in res. The image is only
// replaced when res carries one, so a failed artwork download keeps the
// previous picture. It reports whether the image changed.
func (s *ViewState) Render(res *services.Result) bool {
	if res == nil || res.Record == nil {
		return false
	}

	s.mu.Lock()
	s.record = res.Record
	s.requestID = res.RequestID
	s.searching = false
	imageChanged := res.Image != nil
	if imageChanged {
		s.image = res.Image
	}
	s.mu.Unlock()

	_ = s.InfoBinding.Set(species.Format(res.Record))
	_ = s.StatusBinding.Set("Showing " + res.Record.Name)
	return imageChanged
}

// SetSearching marks a search as in flight or finished without a result.
func (s *ViewState) SetSearching(query string, searching bool) {
	s.mu.Lock()
	s.searching = searching
	s.mu.Unlock()

	if searching {
		_ = s.StatusBinding.Set(StatusSearching + " " + query)
		return
	}
	_ = s.StatusBinding.Set(StatusIdle)
}

func (s *ViewState) Searching() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searching
}

func (s *ViewState) Record() *species.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.record
}

func (s *ViewState) Image() image.Image {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.image
}

func (s *ViewState) RequestID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.requestID
}
