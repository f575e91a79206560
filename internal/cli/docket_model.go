package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rsanghvi/courtsched/internal/cli/formatter"
	"github.com/rsanghvi/courtsched/internal/domain"
)

// docketKeyMap defines the docket browser's key bindings.
type docketKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Filter key.Binding
	Reload key.Binding
	Back   key.Binding
	Quit   key.Binding
}

var docketKeys = docketKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "detail")),
	Filter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
	Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// docketLoadedMsg signals that the case list has been loaded.
type docketLoadedMsg struct {
	cases []*domain.Case
	err   error
}

// caseDetailMsg carries a loaded case with its judge and hearings.
type caseDetailMsg struct {
	c        *domain.Case
	judge    *domain.Judge
	hearings []*domain.Hearing
	err      error
}

// docketModel is an interactive browser over the docket: a navigable case
// list with an inline detail pane for the selected case.
type docketModel struct {
	app    *App
	cases  []*domain.Case
	cursor int

	loading bool
	err     error

	// Detail pane for the selected case; nil when collapsed.
	detail *caseDetailMsg

	// Status filter cycled with "f".
	filter domain.CaseStatus
}

var docketFilters = []domain.CaseStatus{
	"", // all
	domain.CasePending,
	domain.CaseScheduled,
	domain.CaseInProgress,
	domain.CaseCompleted,
	domain.CaseAdjourned,
}

func newDocketModel(app *App) *docketModel {
	return &docketModel{app: app, loading: true}
}

func (m *docketModel) Init() tea.Cmd {
	return m.loadDocket()
}

func (m *docketModel) loadDocket() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var cases []*domain.Case
		var err error
		if m.filter == "" {
			cases, err = m.app.Cases.List(ctx)
		} else {
			cases, err = m.app.Cases.ListByStatus(ctx, m.filter)
		}
		return docketLoadedMsg{cases: cases, err: err}
	}
}

func (m *docketModel) loadDetail(c *domain.Case) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		msg := caseDetailMsg{c: c}
		if c.JudgeID != nil {
			msg.judge, msg.err = m.app.Judges.GetByID(ctx, *c.JudgeID)
			if msg.err != nil {
				return msg
			}
		}
		msg.hearings, msg.err = m.app.Cases.ListHearings(ctx, c.ID)
		return msg
	}
}

func (m *docketModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case docketLoadedMsg:
		m.loading = false
		m.cases = msg.cases
		m.err = msg.err
		if m.cursor >= len(m.cases) {
			m.cursor = 0
		}
		return m, nil

	case caseDetailMsg:
		m.detail = &msg
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, docketKeys.Back):
			if m.detail != nil {
				m.detail = nil
				return m, nil
			}
			return m, tea.Quit
		case key.Matches(msg, docketKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, docketKeys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.detail = nil
			}
		case key.Matches(msg, docketKeys.Down):
			if m.cursor < len(m.cases)-1 {
				m.cursor++
				m.detail = nil
			}
		case key.Matches(msg, docketKeys.Select):
			if m.cursor < len(m.cases) {
				return m, m.loadDetail(m.cases[m.cursor])
			}
		case key.Matches(msg, docketKeys.Filter):
			m.filter = nextFilter(m.filter)
			m.loading = true
			m.detail = nil
			return m, m.loadDocket()
		case key.Matches(msg, docketKeys.Reload):
			m.loading = true
			return m, m.loadDocket()
		}
	}
	return m, nil
}

func nextFilter(current domain.CaseStatus) domain.CaseStatus {
	for i, f := range docketFilters {
		if f == current {
			return docketFilters[(i+1)%len(docketFilters)]
		}
	}
	return ""
}

func (m *docketModel) View() string {
	var b strings.Builder

	title := "Docket"
	if m.filter != "" {
		title = fmt.Sprintf("Docket (%s)", m.filter)
	}
	b.WriteString(formatter.Header(title) + "\n")

	switch {
	case m.loading:
		b.WriteString(formatter.Dim("Loading...") + "\n")
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	case len(m.cases) == 0:
		b.WriteString(formatter.Dim("No cases.") + "\n")
	default:
		for i, c := range m.cases {
			cursor := "  "
			line := fmt.Sprintf("%s  %s  %s", c.CaseNumber, formatter.Status(c.Status), c.Title)
			if i == m.cursor {
				cursor = formatter.StyleHeader.Render("> ")
				line = formatter.Bold(c.CaseNumber) + "  " + formatter.Status(c.Status) + "  " + c.Title
			}
			b.WriteString(cursor + line + "\n")
		}
	}

	if m.detail != nil {
		b.WriteString("\n")
		if m.detail.err != nil {
			b.WriteString(formatter.StyleRed.Render("Error: "+m.detail.err.Error()) + "\n")
		} else {
			b.WriteString(formatter.RenderCaseDetail(m.detail.c, m.detail.judge))
			if len(m.detail.hearings) > 0 {
				b.WriteString(formatter.RenderHearingTable(m.detail.hearings))
			}
		}
	}

	b.WriteString("\n" + formatter.Dim("enter detail · f filter · r reload · q quit") + "\n")
	return b.String()
}
