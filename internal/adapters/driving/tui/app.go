// Package tui implements the interactive terminal interface: a query
// input on top, matched candidates below, with keyboard navigation.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hiresift/hiresift/internal/core/domain"
	"github.com/hiresift/hiresift/internal/core/ports/driving"
)

// searchCompleted carries a finished scan back into the update loop.
type searchCompleted struct {
	report *domain.SearchReport
}

// searchFailed carries a scan or parse failure.
type searchFailed struct {
	err error
}

// App is the top-level bubbletea model.
type App struct {
	styles *Styles
	input  textinput.Model

	search driving.SearchService
	corpus driving.CorpusService
	ctx    context.Context

	report    *domain.SearchReport
	selected  int
	err       error
	searching bool

	focusInput bool
	width      int
	height     int
}

// NewApp creates the TUI application model.
func NewApp(search driving.SearchService, corpus driving.CorpusService) *App {
	ti := textinput.New()
	ti.Placeholder = `e.g. Python AND (Django OR Flask)`
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &App{
		styles:     NewStyles(DefaultTheme()),
		input:      ti,
		search:     search,
		corpus:     corpus,
		ctx:        context.Background(),
		focusInput: true,
		width:      80,
		height:     24,
	}
}

// WithContext sets the context used for searches.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx != nil {
		a.ctx = ctx
	}
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.Width = max(20, msg.Width-12)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case searchCompleted:
		a.searching = false
		a.err = nil
		a.report = msg.report
		a.selected = 0
		return a, nil

	case searchFailed:
		a.searching = false
		a.err = msg.err
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return a, tea.Quit

	case tea.KeyTab:
		a.focusInput = !a.focusInput
		if a.focusInput {
			return a, a.input.Focus()
		}
		a.input.Blur()
		return a, nil

	case tea.KeyEnter:
		if a.focusInput {
			query := strings.TrimSpace(a.input.Value())
			if query == "" || a.searching {
				return a, nil
			}
			a.searching = true
			return a, a.runSearch(query)
		}
		return a, nil
	}

	if !a.focusInput {
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "up", "k":
			if a.selected > 0 {
				a.selected--
			}
			return a, nil
		case "down", "j":
			if a.report != nil && a.selected < len(a.report.Matches)-1 {
				a.selected++
			}
			return a, nil
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// runSearch scans the corpus off the update loop.
func (a *App) runSearch(query string) tea.Cmd {
	return func() tea.Msg {
		report, err := a.search.Search(a.ctx, query, domain.SearchOptions{})
		if err != nil {
			return searchFailed{err: err}
		}
		return searchCompleted{report: report}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("hiresift"))
	b.WriteString("  ")
	b.WriteString(a.styles.Muted.Render("boolean resume search"))
	b.WriteString("\n\n")

	b.WriteString(a.styles.InputField.Render(a.input.View()))
	b.WriteString("\n\n")

	switch {
	case a.err != nil:
		b.WriteString(a.styles.Error.Render(a.err.Error()))
		b.WriteString("\n")
	case a.searching:
		b.WriteString(a.styles.Muted.Render("Scanning corpus..."))
		b.WriteString("\n")
	case a.report != nil:
		a.renderResults(&b)
	default:
		b.WriteString(a.styles.Muted.Render("Enter a boolean query and press Enter."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render(
		"enter search · tab toggle focus · ↑/k ↓/j navigate · esc quit"))
	return b.String()
}

func (a *App) renderResults(b *strings.Builder) {
	if len(a.report.Matches) == 0 {
		b.WriteString(a.styles.Muted.Render(
			fmt.Sprintf("No matches (scanned %d resumes).", a.report.Scanned)))
		b.WriteString("\n")
		return
	}

	b.WriteString(a.styles.Subtitle.Render(
		fmt.Sprintf("%d matching candidates", len(a.report.Matches))))
	b.WriteString("\n\n")

	visible := a.height - 12
	if visible < 3 {
		visible = 3
	}
	start := 0
	if a.selected >= visible {
		start = a.selected - visible + 1
	}

	for i := start; i < len(a.report.Matches) && i < start+visible; i++ {
		r := &a.report.Matches[i]
		line := candidateLine(r)
		if i == a.selected && !a.focusInput {
			b.WriteString(a.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(a.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if len(a.report.Skipped) > 0 {
		b.WriteString("\n")
		b.WriteString(a.styles.Error.Render(
			fmt.Sprintf("%d resumes skipped (unreadable)", len(a.report.Skipped))))
		b.WriteString("\n")
	}
}

// candidateLine builds the one-line summary for a result row.
func candidateLine(r *domain.Resume) string {
	name := r.Name()
	if name == "" {
		name = "Unknown Candidate"
	}

	parts := []string{name}
	if email := r.Email(); email != "" {
		parts = append(parts, email)
	}
	if skills := r.Skills(); len(skills) > 0 {
		preview := skills
		if len(preview) > 3 {
			preview = preview[:3]
		}
		parts = append(parts, strings.Join(preview, ", "))
	}
	return strings.Join(parts, " · ")
}
