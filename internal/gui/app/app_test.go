package app

import (
	"context"
	"image"
	"sync"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokeapi-desk/pokemon-viewer/internal/config"
	"github.com/pokeapi-desk/pokemon-viewer/internal/pokeapi"
	"github.com/pokeapi-desk/pokemon-viewer/internal/services"
	"github.com/pokeapi-desk/pokemon-viewer/internal/species"
)

type fakeSearcher struct {
	mu      sync.Mutex
	queries []string
	results []*services.Result
	errs    []error
}

func (f *fakeSearcher) Search(_ context.Context, raw string) (*services.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := len(f.queries)
	f.queries = append(f.queries, raw)
	return f.results[i], f.errs[i]
}

type notice struct {
	kind           noticeKind
	title, message string
}

func newTestApplication(t *testing.T, s *fakeSearcher) (*Application, *[]notice) {
	t.Helper()
	fyneApp := test.NewTempApp(t)

	a := NewApplication(nil, config.Default(), fyneApp, s)
	var notices []notice
	a.notify = func(kind noticeKind, title, message string) {
		notices = append(notices, notice{kind, title, message})
	}
	a.dispatch = func(f func()) { f() }
	require.NoError(t, a.Initialize())
	t.Cleanup(a.Stop)
	return a, &notices
}

func record(name string) *species.Record {
	return &species.Record{Name: name, Index: 1, Height: "1.0 m", Weight: "6.0 kg", Stats: species.NewStats(nil)}
}

func TestInitialize_RequiresSearcher(t *testing.T) {
	a := NewApplication(nil, config.Default(), test.NewTempApp(t), nil)
	assert.Error(t, a.Initialize())
}

func TestHandleSearch_EmptyInputShowsInputError(t *testing.T) {
	s := &fakeSearcher{}
	a, notices := newTestApplication(t, s)

	a.HandleSearch("   ")

	assert.Empty(t, s.queries, "no search is started")
	assert.Equal(t, []notice{{noticeWarning, "Input Error", "Please enter a Pokémon name."}}, *notices)
	assert.False(t, a.state.Searching())
}

func TestHandleSearch_RendersResult(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 330, 330))
	s := &fakeSearcher{
		results: []*services.Result{{RequestID: "r1", Record: record("Pikachu"), Image: img}},
		errs:    []error{nil},
	}
	a, notices := newTestApplication(t, s)

	test.Type(a.searchPanel.Entry, "pikachu")
	test.Tap(a.searchPanel.SearchButton)
	a.wg.Wait()

	assert.Equal(t, []string{"pikachu"}, s.queries)
	assert.Empty(t, *notices)
	assert.Equal(t, img, a.CurrentImage())
	info, _ := a.state.InfoBinding.Get()
	assert.Contains(t, info, "Name: Pikachu")
	assert.False(t, a.searchPanel.SearchButton.Disabled())
	assert.False(t, a.state.Searching())
}

func TestApplyResult_NotFoundShowsDialogAndKeepsRecord(t *testing.T) {
	s := &fakeSearcher{
		results: []*services.Result{{Record: record("Pikachu")}, nil},
		errs:    []error{nil, &pokeapi.NotFoundError{Name: "notaspecies123"}},
	}
	a, notices := newTestApplication(t, s)

	a.runSearch("pikachu")
	a.runSearch("notaspecies123")

	assert.Equal(t, []notice{{noticeError, "Not Found", "Pokémon not found."}}, *notices)
	require.NotNil(t, a.state.Record())
	assert.Equal(t, "Pikachu", a.state.Record().Name)
}

func TestApplyResult_ArtworkFailureKeepsPreviousImage(t *testing.T) {
	first := image.NewRGBA(image.Rect(0, 0, 10, 10))
	s := &fakeSearcher{
		results: []*services.Result{
			{Record: record("Pikachu"), Image: first},
			{Record: record("Missingno"), ImageErr: assert.AnError},
		},
		errs: []error{nil, nil},
	}
	a, notices := newTestApplication(t, s)

	a.runSearch("pikachu")
	a.runSearch("missingno")

	assert.Empty(t, *notices)
	assert.Equal(t, first, a.CurrentImage())
	info, _ := a.state.InfoBinding.Get()
	assert.Contains(t, info, "Name: Missingno")
}

func TestApplyResult_TransportFailureMessage(t *testing.T) {
	s := &fakeSearcher{
		results: []*services.Result{nil},
		errs:    []error{&pokeapi.LookupError{Name: "pikachu", Err: assert.AnError}},
	}
	a, notices := newTestApplication(t, s)

	a.runSearch("pikachu")

	assert.Equal(t, []notice{{noticeError, "Not Found", "Could not reach the Pokémon service."}}, *notices)
	assert.Nil(t, a.state.Record())
}

func TestNoticeContent_IconMatchesKind(t *testing.T) {
	test.NewTempApp(t)

	tests := []struct {
		kind noticeKind
		icon fyne.Resource
	}{
		{noticeWarning, theme.WarningIcon()},
		{noticeError, theme.ErrorIcon()},
	}

	for _, tt := range tests {
		box := noticeContent(tt.kind, "Pokémon not found.")
		require.Len(t, box.Objects, 2)
		icon, ok := box.Objects[0].(*widget.Icon)
		require.True(t, ok)
		assert.Equal(t, tt.icon.Name(), icon.Resource.Name())
		label, ok := box.Objects[1].(*widget.Label)
		require.True(t, ok)
		assert.Equal(t, "Pokémon not found.", label.Text)
	}
}
