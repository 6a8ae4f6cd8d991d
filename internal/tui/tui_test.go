package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/fresh-releases/internal/config"
	"github.com/handiism/fresh-releases/internal/model"
	"github.com/handiism/fresh-releases/internal/session"
)

var now = time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)

type fakeFetcher struct {
	releases []model.Release
	err      error
	calls    int
}

func (f *fakeFetcher) FetchSitewideReleases(context.Context, int, bool, bool, model.SortKey) ([]model.Release, error) {
	f.calls++
	return f.releases, f.err
}

func (f *fakeFetcher) FetchUserReleases(context.Context, string) ([]model.Release, error) {
	f.calls++
	return f.releases, f.err
}

func (f *fakeFetcher) FetchUsersReleases(context.Context, []string) ([]model.Release, error) {
	f.calls++
	return f.releases, f.err
}

func sample() []model.Release {
	return []model.Release{
		{ReleaseName: "Northern Lights", ArtistCreditName: "Amy", ReleaseDate: time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC), PrimaryType: "Album", Tags: []string{"jazz"}, ReleaseMBID: "rel-nl", ListenCount: 1500},
		{ReleaseName: "Coming Soon", ArtistCreditName: "Bob", ReleaseDate: time.Date(2024, 6, 18, 0, 0, 0, 0, time.UTC), PrimaryType: "Single", Tags: []string{"pop"}},
	}
}

func newModel(f *fakeFetcher, user string) Model {
	settings := config.DefaultSettings()
	settings.UserName = user
	s := session.New(f, settings, session.WithClock(func() time.Time { return now }))
	m := NewModel(s, nil)
	m.now = func() time.Time { return now }
	return m
}

// load runs a fetch through the model the way the program would.
func load(t *testing.T, m Model) Model {
	t.Helper()
	msg := m.fetch()()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, s string) (Model, tea.Cmd) {
	updated, cmd := m.Update(key(s))
	return updated.(Model), cmd
}

func TestModel_Loading(t *testing.T) {
	m := newModel(&fakeFetcher{releases: sample()}, "")
	_ = m.fetch()

	assert.Contains(t, m.View(), "Fetching fresh releases...")
}

func TestModel_ShowsReleases(t *testing.T) {
	m := load(t, newModel(&fakeFetcher{releases: sample()}, ""))
	view := m.View()

	assert.Contains(t, view, "Northern Lights")
	assert.Contains(t, view, "Coming Soon")
	assert.Contains(t, view, "[Album] 13 Jun")
	assert.Contains(t, view, "Showing 2 of 2 releases")
	assert.Contains(t, view, "Range: 1 Week")
	assert.NotContains(t, view, "For You", "pills need a user")
	assert.Less(t, strings.Index(view, "Northern Lights"), strings.Index(view, "Coming Soon"))
}

func TestModel_Pills(t *testing.T) {
	m := load(t, newModel(&fakeFetcher{releases: sample()}, "rob"))
	view := m.View()

	assert.Contains(t, view, "For You")
	assert.Contains(t, view, "All")
	assert.Contains(t, view, "u: page")
}

func TestModel_FetchErrorToast(t *testing.T) {
	f := &fakeFetcher{releases: sample()}
	m := load(t, newModel(f, ""))

	f.releases = nil
	f.err = errors.New("boom")

	msg := m.fetch()()
	updated, cmd := m.Update(msg)
	m = updated.(Model)
	require.NotNil(t, cmd, "a toast expiry should be scheduled")

	view := m.View()
	assert.Contains(t, view, "Couldn't fetch fresh releases: boom")
	assert.Contains(t, view, "Northern Lights", "previous releases stay visible")

	updated, _ = m.Update(toastExpiredMsg{generation: msg.(FetchDoneMsg).Result.Generation})
	m = updated.(Model)
	assert.NotContains(t, m.View(), "Couldn't fetch fresh releases")
}

func TestModel_IgnoresSupersededFetch(t *testing.T) {
	f := &fakeFetcher{releases: sample()}
	m := newModel(f, "")

	stale := m.fetch()()
	fresh := m.fetch()()

	updated, _ := m.Update(stale)
	m = updated.(Model)
	assert.Contains(t, m.View(), "Fetching fresh releases...")

	updated, _ = m.Update(fresh)
	m = updated.(Model)
	assert.Contains(t, m.View(), "Northern Lights")
}

func TestModel_SortRefetchesSitewide(t *testing.T) {
	m := load(t, newModel(&fakeFetcher{releases: sample()}, ""))

	m, cmd := press(m, "s")
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Fetching fresh releases...")
	assert.Equal(t, model.SortArtistCreditName, m.session.State().Sort)
}

func TestModel_SortIsLocalOnUserPage(t *testing.T) {
	m := load(t, newModel(&fakeFetcher{releases: sample()}, "rob"))

	m, cmd := press(m, "s")
	assert.Nil(t, cmd)
	assert.Equal(t, model.SortArtistCreditName, m.session.State().Sort)

	m, _ = press(m, "f")
	view := m.View()
	assert.NotContains(t, view, "Coming Soon")
	assert.Contains(t, view, "Northern Lights")
}

func TestModel_ToggleFacet(t *testing.T) {
	m := load(t, newModel(&fakeFetcher{releases: sample()}, "rob"))

	m, _ = press(m, "tab")
	m, _ = press(m, "down")
	m, _ = press(m, " ")

	state := m.session.State()
	assert.True(t, state.SelectedTypes.Has("Single"))
	require.Len(t, state.View, 1)
	assert.Equal(t, "Coming Soon", state.View[0].ReleaseName)

	m, _ = press(m, "c")
	assert.Len(t, m.session.State().View, 2)
}

func TestModel_ToggleColumns(t *testing.T) {
	m := load(t, newModel(&fakeFetcher{releases: sample()}, ""))

	m, _ = press(m, "4")
	assert.True(t, m.session.State().Display.Visible(model.ColumnTags))

	m, _ = press(m, "1")
	assert.False(t, m.session.State().Display.Visible(model.ColumnReleaseTitle))
}

func TestModel_ListensHiddenWhenZero(t *testing.T) {
	m := load(t, newModel(&fakeFetcher{releases: sample()}, ""))

	m, _ = press(m, "5")
	view := m.View()

	assert.Contains(t, view, "1.5k listens")
	assert.Equal(t, 1, strings.Count(view, " listens"), "a release without listens shows no count")
}

func TestModel_DetailFollowsCursor(t *testing.T) {
	m := load(t, newModel(&fakeFetcher{releases: sample()}, ""))

	view := m.View()
	assert.Contains(t, view, "Album · 2 days ago · https://listenbrainz.org/player/release/rel-nl")

	m, _ = press(m, "down")
	view = m.View()
	assert.Contains(t, view, "Single · 2 days from now")
	assert.NotContains(t, view, "player/release")
}

func TestModel_Quit(t *testing.T) {
	m := newModel(&fakeFetcher{}, "")

	_, cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Error(t, m.ctx.Err())
}
