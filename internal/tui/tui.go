// Package tui provides a Bubble Tea terminal user interface for browsing
// fresh releases.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/fresh-releases/internal/config"
	"github.com/handiism/fresh-releases/internal/logger"
	"github.com/handiism/fresh-releases/internal/model"
	"github.com/handiism/fresh-releases/internal/session"
)

// toastTimeout is how long a notification stays on screen.
const toastTimeout = 5 * time.Second

// Focus names the pane receiving cursor keys.
type Focus int

const (
	FocusReleases Focus = iota
	FocusFilters
)

// filterItem is one selectable facet value in the sidebar.
type filterItem struct {
	tag   bool
	value string
	count int
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	session   *session.Session
	spinner   spinner.Model
	paginator paginator.Model
	log       *logger.Logger

	focus        Focus
	cursor       int
	filterCursor int

	// toastGen identifies the fetch whose failure is currently shown.
	toastGen uint64

	ctx    context.Context
	cancel context.CancelFunc

	now func() time.Time

	width  int
	height int
}

// NewModel creates a new TUI model around a session.
func NewModel(s *session.Session, log *logger.Logger) Model {
	if log == nil {
		log = logger.NewNop()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	pg := paginator.New()
	pg.Type = paginator.Dots
	pg.PerPage = 10
	pg.ActiveDot = subtitleStyle.Render("•")
	pg.InactiveDot = dimStyle.Render("•")

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		session:   s,
		spinner:   sp,
		paginator: pg,
		log:       log,
		ctx:       ctx,
		cancel:    cancel,
		now:       time.Now,
	}
}

// Init initializes the model and starts the first fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

// Message types
type (
	// FetchDoneMsg is sent when a fetch completes.
	FetchDoneMsg struct {
		Result session.Result
	}

	// toastExpiredMsg dismisses the notification raised by a fetch.
	toastExpiredMsg struct {
		generation uint64
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.paginator.PerPage = max(msg.Height-14, 3)
		m.syncPages()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.session.State().Loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case FetchDoneMsg:
		if !m.session.Commit(msg.Result) {
			return m, nil
		}
		m.clampCursors()
		m.syncPages()
		if msg.Result.Err != nil {
			m.toastGen = msg.Result.Generation
			gen := msg.Result.Generation
			cmds = append(cmds, tea.Tick(toastTimeout, func(time.Time) tea.Msg {
				return toastExpiredMsg{generation: gen}
			}))
		}

	case toastExpiredMsg:
		if msg.generation == m.toastGen {
			m.session.DismissNotification()
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.session.State()
	refetch := false

	switch msg.String() {
	case "ctrl+c", "q":
		m.cancel()
		m.session.Close()
		return m, tea.Quit

	case "tab":
		if m.focus == FocusReleases {
			m.focus = FocusFilters
		} else {
			m.focus = FocusReleases
		}

	case "up", "k":
		m.moveCursor(-1)

	case "down", "j":
		m.moveCursor(1)

	case "left", "pgup":
		m.paginator.PrevPage()
		m.cursor = m.paginator.Page * m.paginator.PerPage

	case "right", "pgdown":
		m.paginator.NextPage()
		m.cursor = m.paginator.Page * m.paginator.PerPage

	case " ", "enter":
		if m.focus == FocusFilters {
			m.toggleFilter()
		}

	case "c":
		m.session.ClearFilters()

	case "s":
		refetch = m.session.SetSort(state.Sort.Next())

	case "r":
		refetch = m.session.SetRange(state.Range.Next())

	case "p":
		refetch = m.session.SetShowPast(!state.ShowPast)

	case "f":
		refetch = m.session.SetShowFuture(!state.ShowFuture)

	case "u":
		next := model.PageTypeSitewide
		if state.PageType == model.PageTypeSitewide {
			next = model.PageTypeUser
		}
		refetch = m.session.SetPageType(next)

	case "R":
		refetch = true

	case "x", "esc":
		m.session.DismissNotification()

	case "1", "2", "3", "4", "5":
		i := int(msg.String()[0] - '1')
		m.session.ToggleColumn(model.Columns[i])
	}

	m.clampCursors()
	m.syncPages()

	if refetch {
		return m, tea.Batch(m.fetch(), m.spinner.Tick)
	}
	return m, nil
}

// fetch begins a session fetch and returns the command performing it.
// Starting a fetch supersedes the one in flight.
func (m Model) fetch() tea.Cmd {
	req := m.session.Begin(m.ctx)
	s := m.session
	return func() tea.Msg {
		return FetchDoneMsg{Result: s.Fetch(req)}
	}
}

func (m *Model) moveCursor(delta int) {
	if m.focus == FocusFilters {
		m.filterCursor += delta
	} else {
		m.cursor += delta
	}
	m.clampCursors()
	m.paginator.Page = m.cursor / max(m.paginator.PerPage, 1)
}

func (m *Model) toggleFilter() {
	items := m.filterItems()
	if m.filterCursor >= len(items) {
		return
	}
	item := items[m.filterCursor]
	if item.tag {
		m.session.ToggleTag(item.value)
	} else {
		m.session.ToggleType(item.value)
	}
}

func (m *Model) clampCursors() {
	n := len(m.session.State().View)
	m.cursor = min(m.cursor, n-1)
	m.cursor = max(m.cursor, 0)

	f := len(m.filterItems())
	m.filterCursor = min(m.filterCursor, f-1)
	m.filterCursor = max(m.filterCursor, 0)
}

func (m *Model) syncPages() {
	if n := len(m.session.State().View); n > 0 {
		m.paginator.SetTotalPages(n)
	} else {
		m.paginator.TotalPages = 1
	}
	m.paginator.Page = min(m.cursor/max(m.paginator.PerPage, 1), m.paginator.TotalPages-1)
}

// filterItems lists the sidebar entries: release types, then tags.
func (m Model) filterItems() []filterItem {
	facets := m.session.State().Facets
	items := make([]filterItem, 0, len(facets.ReleaseTypes)+len(facets.ReleaseTags))
	for _, v := range facets.ReleaseTypes {
		items = append(items, filterItem{value: v.Value, count: v.Count})
	}
	for _, v := range facets.ReleaseTags {
		items = append(items, filterItem{tag: true, value: v.Value, count: v.Count})
	}
	return items
}

// Run starts the TUI application.
func Run(settings *config.Settings, fetcher session.Fetcher, log *logger.Logger) error {
	if log == nil {
		log = logger.NewNop()
	}
	s := session.New(fetcher, settings, session.WithLogger(log))
	defer s.Close()

	p := tea.NewProgram(NewModel(s, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
