// Package tui is the terminal rendition of the viewer: one name input, the
// formatted species text and the outcome of the artwork download.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pokeapi-desk/pokemon-viewer/internal/services"
	"github.com/pokeapi-desk/pokemon-viewer/internal/species"
)

// Searcher runs one species search. *services.LookupService implements it.
type Searcher interface {
	Search(ctx context.Context, raw string) (*services.Result, error)
}

type searchDoneMsg struct {
	result *services.Result
	err    error
}

type styles struct {
	title  lipgloss.Style
	prompt lipgloss.Style
	panel  lipgloss.Style
	notice lipgloss.Style
	muted  lipgloss.Style
}

func defaultStyles() styles {
	red := lipgloss.Color("#E02A2A")
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(red).
			Padding(0, 2),
		prompt: lipgloss.NewStyle().Bold(true),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(red).
			Padding(0, 2),
		notice: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D9CD31")),
		muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Model is the Bubble Tea model for the terminal shell.
type Model struct {
	ctx      context.Context
	searcher Searcher
	styles   styles

	input     textinput.Model
	searching bool

	result *services.Result
	notice string
}

// New creates a model bound to ctx; searches are cancelled with it.
func New(ctx context.Context, searcher Searcher) Model {
	if ctx == nil {
		ctx = context.Background()
	}

	ti := textinput.New()
	ti.Placeholder = "pikachu"
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Focus()

	return Model{
		ctx:      ctx,
		searcher: searcher,
		styles:   defaultStyles(),
		input:    ti,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.startSearch()
		}

	case searchDoneMsg:
		m.searching = false
		if msg.err != nil {
			title, text := services.UserMessage(msg.err)
			m.notice = title + ": " + text
			return m, nil
		}
		m.notice = ""
		m.result = msg.result
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) startSearch() (tea.Model, tea.Cmd) {
	if m.searching {
		return m, nil
	}

	raw := m.input.Value()
	if _, err := services.ValidateQuery(raw); err != nil {
		title, text := services.UserMessage(err)
		m.notice = title + ": " + text
		return m, nil
	}

	m.searching = true
	m.notice = ""
	return m, searchCmd(m.ctx, m.searcher, raw)
}

func searchCmd(ctx context.Context, searcher Searcher, raw string) tea.Cmd {
	return func() tea.Msg {
		res, err := searcher.Search(ctx, raw)
		return searchDoneMsg{result: res, err: err}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("Pokemon API"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.prompt.Render("Enter your Pokemon name:"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.searching:
		b.WriteString(m.styles.muted.Render("Searching..."))
		b.WriteString("\n")
	case m.notice != "":
		b.WriteString(m.styles.notice.Render(m.notice))
		b.WriteString("\n")
	}

	if m.result != nil && m.result.Record != nil {
		b.WriteString(m.styles.panel.Render(species.Format(m.result.Record)))
		b.WriteString("\n")
		b.WriteString(m.styles.muted.Render(artworkLine(m.result)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.muted.Render("enter: search • esc: quit"))
	return b.String()
}

func artworkLine(res *services.Result) string {
	switch {
	case res.Image != nil:
		bounds := res.Image.Bounds()
		return fmt.Sprintf("Artwork: %s (%dx%d)", res.Record.ImageURL, bounds.Dx(), bounds.Dy())
	case res.ImageErr != nil:
		return "Artwork unavailable"
	default:
		return "Artwork: none"
	}
}

// Run starts the terminal shell and blocks until the user quits.
func Run(ctx context.Context, searcher Searcher) error {
	p := tea.NewProgram(New(ctx, searcher), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
