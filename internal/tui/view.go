package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/handiism/fresh-releases/internal/model"
	"github.com/handiism/fresh-releases/internal/releases"
	"github.com/handiism/fresh-releases/internal/render"
	"github.com/handiism/fresh-releases/internal/session"
)

const (
	sidebarWidth  = 30
	timelineWidth = 10
)

// View renders the UI.
func (m Model) View() string {
	state := m.session.State()
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("♫ Fresh Releases"))
	b.WriteString("\n")
	if state.HasUser() {
		b.WriteString(m.viewPills(state))
		b.WriteString("\n")
	}
	b.WriteString(m.viewControls(state))
	b.WriteString("\n")
	if toast := m.viewToast(state); toast != "" {
		b.WriteString(toast)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	body := m.viewReleases(state)
	if state.PageType == model.PageTypeSitewide && !state.Loading && len(state.View) > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", m.viewTimeline(state))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.viewSidebar(state), "  ", body))
	b.WriteString("\n\n")

	// Footer
	b.WriteString(dimStyle.Render(m.helpText(state)))

	return b.String()
}

func (m Model) viewPills(state session.State) string {
	user := pillStyle.Render("For You")
	all := pillStyle.Render("All")
	if state.PageType == model.PageTypeUser {
		user = activePillStyle.Render("For You")
	} else {
		all = activePillStyle.Render("All")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, user, " ", all)
}

func (m Model) viewControls(state session.State) string {
	return infoStyle.Render(fmt.Sprintf("Range: %s  Past %s  Future %s  Sort: %s",
		state.Range.Label(),
		check(state.ShowPast),
		check(state.ShowFuture),
		state.Sort.Label(),
	))
}

func (m Model) viewToast(state session.State) string {
	n := state.Notification
	if n == nil {
		return ""
	}

	var style lipgloss.Style
	prefix := "•"
	switch n.Level {
	case session.LevelError:
		style = errorStyle
		prefix = "✗"
	case session.LevelWarning:
		style = warningStyle
		prefix = "!"
	case session.LevelSuccess:
		style = successStyle
		prefix = "✓"
	default:
		style = infoStyle
	}

	text := prefix + " " + n.Title
	if n.Message != "" {
		text += ": " + n.Message
	}
	return style.Render(text)
}

func (m Model) viewSidebar(state session.State) string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Filters"))
	b.WriteString("\n")

	items := m.filterItems()
	if len(items) == 0 {
		b.WriteString(dimStyle.Render("no facets"))
		b.WriteString("\n")
	}

	heading := ""
	for i, item := range items {
		section := "Release types"
		selected := state.SelectedTypes.Has(item.value)
		label := item.value
		if item.tag {
			section = "Tags"
			selected = state.SelectedTags.Has(item.value)
			label = render.TruncateTag(item.value)
		}
		if section != heading {
			heading = section
			b.WriteString(dimStyle.Render(section))
			b.WriteString("\n")
		}

		line := fmt.Sprintf("%s %s (%d)", check(selected), label, item.count)
		if m.focus == FocusFilters && i == m.filterCursor {
			line = selectedStyle.Render("› " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Columns"))
	b.WriteString("\n")
	for i, c := range model.Columns {
		b.WriteString(fmt.Sprintf("  %d %s %s\n", i+1, check(state.Display.Visible(c)), c))
	}

	return boxStyle.Width(sidebarWidth).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) viewReleases(state session.State) string {
	if state.Loading {
		return m.spinner.View() + " " + subtitleStyle.Render("Fetching fresh releases...")
	}
	if len(state.View) == 0 {
		return dimStyle.Render("No releases found")
	}

	var b strings.Builder
	b.WriteString(dimStyle.Render(render.Summary(state.View, state.Releases)))
	b.WriteString("\n\n")

	now := m.now()
	fit := lipgloss.NewStyle().MaxWidth(m.listWidth())
	start, end := m.paginator.GetSliceBounds(len(state.View))
	for i := start; i < end; i++ {
		line := m.viewRelease(state.View[i], state.Display, now)
		line = fit.Render(line)
		if m.focus == FocusReleases && i == m.cursor {
			b.WriteString(selectedStyle.Render("› ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.paginator.TotalPages > 1 {
		b.WriteString("\n  ")
		b.WriteString(m.paginator.View())
	}

	if m.focus == FocusReleases && m.cursor < len(state.View) {
		b.WriteString("\n\n  ")
		b.WriteString(fit.Render(dimStyle.Render(viewDetail(state.View[m.cursor], now))))
	}

	return strings.TrimRight(b.String(), "\n")
}

// viewDetail describes the release under the cursor: the full type,
// the date relative to today and the player link.
func viewDetail(r model.Release, now time.Time) string {
	parts := []string{render.TypeTooltip(r)}
	if rel := render.RelativeDate(r.ReleaseDate, now); rel != "" {
		parts = append(parts, rel)
	}
	if url := r.PlayerURL(); url != "" {
		parts = append(parts, url)
	}
	return strings.Join(parts, " · ")
}

// viewRelease renders one release on a single line, showing only the
// visible columns.
func (m Model) viewRelease(r model.Release, display model.DisplaySettings, now time.Time) string {
	var parts []string
	for _, c := range display.VisibleColumns() {
		switch c {
		case model.ColumnReleaseTitle:
			parts = append(parts, releaseStyle.Render(r.ReleaseName))
		case model.ColumnArtist:
			parts = append(parts, r.ArtistCreditName)
		case model.ColumnInformation:
			parts = append(parts, chipStyle.Render("["+render.TypeChip(r)+"]")+" "+render.FormatReleaseDate(r, now))
		case model.ColumnTags:
			if tags := render.FormatTags(r.Tags); tags != "" {
				parts = append(parts, dimStyle.Render(tags))
			}
		case model.ColumnListens:
			if listens := render.FormatListenCount(r.ListenCount); listens != "" {
				parts = append(parts, dimStyle.Render(listens+" listens"))
			}
		}
	}
	return strings.Join(parts, "  ")
}

// viewTimeline renders the timeline rail, highlighting the section of
// the release under the cursor.
func (m Model) viewTimeline(state session.State) string {
	sections := releases.Timeline(state.View, state.Sort)

	var b strings.Builder
	for _, s := range sections {
		label := runewidth.Truncate(s.Label, timelineWidth, "")
		if m.cursor >= s.Index && m.cursor < s.Index+s.Count {
			b.WriteString(selectedStyle.Render("● " + label))
		} else {
			b.WriteString(dimStyle.Render("│ " + label))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) listWidth() int {
	if m.width == 0 {
		return 100
	}
	return max(m.width-sidebarWidth-timelineWidth-12, 20)
}

func (m Model) helpText(state session.State) string {
	keys := []string{"↑/↓: move", "←/→: page", "tab: filters", "s: sort", "r: range", "p: past", "f: future"}
	if state.HasUser() {
		keys = append(keys, "u: page")
	}
	keys = append(keys, "1-5: columns", "c: clear", "R: reload", "q: quit")
	return strings.Join(keys, " • ")
}

func check(on bool) string {
	if on {
		return "[×]"
	}
	return "[ ]"
}
