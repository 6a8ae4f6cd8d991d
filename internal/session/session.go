package session

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/handiism/fresh-releases/internal/config"
	"github.com/handiism/fresh-releases/internal/logger"
	"github.com/handiism/fresh-releases/internal/model"
	"github.com/handiism/fresh-releases/internal/releases"
)

// Fetcher retrieves fresh releases. *listenbrainz.Client implements it.
type Fetcher interface {
	FetchSitewideReleases(ctx context.Context, days int, past, future bool, sort model.SortKey) ([]model.Release, error)
	FetchUserReleases(ctx context.Context, user string) ([]model.Release, error)
	FetchUsersReleases(ctx context.Context, users []string) ([]model.Release, error)
}

// Request describes one fetch, as captured by Begin.
type Request struct {
	Generation uint64
	PageType   model.PageType
	Users      []string
	Days       int
	Past       bool
	Future     bool
	Sort       model.SortKey

	ctx context.Context
}

// Result is the outcome of a fetch.
type Result struct {
	Generation uint64
	Releases   []model.Release
	Err        error
}

// Session is the state machine behind a fresh releases page.
type Session struct {
	ID string

	state   State
	fetcher Fetcher
	log     *logger.Logger
	now     func() time.Time

	generation uint64
	cancel     context.CancelFunc

	onNotify func(Notification)
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(log *logger.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock overrides the clock used for the date window.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// WithNotify registers a callback invoked for every raised notification.
func WithNotify(fn func(Notification)) Option {
	return func(s *Session) {
		s.onNotify = fn
	}
}

// New creates a Session whose initial state comes from settings.
//
// The session starts empty; call Refresh or Begin to load releases.
func New(fetcher Fetcher, settings *config.Settings, opts ...Option) *Session {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	s := &Session{
		ID:      uuid.NewString(),
		fetcher: fetcher,
		log:     logger.NewNop(),
		now:     time.Now,
		state: State{
			PageType:      settings.PageType(),
			Users:         ParseUsers(settings.UserName),
			Range:         model.Range(settings.Range),
			Sort:          settings.ToCriteria().SortKey,
			ShowPast:      settings.ShowPastReleases,
			ShowFuture:    settings.ShowFutureReleases,
			SelectedTypes: model.StringSet{},
			SelectedTags:  model.StringSet{},
			Display:       settings.ToDisplaySettings(),
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithSession(s.ID)

	return s
}

// ParseUsers splits a comma separated list of user names, dropping blanks
// and repeated names.
func ParseUsers(names string) []string {
	var users []string
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		if name != "" && !slices.Contains(users, name) {
			users = append(users, name)
		}
	}
	return users
}

// State returns a snapshot of the current state.
func (s *Session) State() State {
	return s.state.clone()
}

// Begin starts a new fetch for the current page, superseding any fetch
// still in flight. The previous fetch's context is cancelled and its
// result will be ignored by Commit.
func (s *Session) Begin(ctx context.Context) Request {
	if s.cancel != nil {
		s.cancel()
	}
	s.generation++

	fetchCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.state.Loading = true

	req := Request{
		Generation: s.generation,
		PageType:   s.state.PageType,
		Users:      append([]string(nil), s.state.Users...),
		Days:       s.state.Range.Days(),
		Past:       s.state.ShowPast,
		Future:     s.state.ShowFuture,
		Sort:       s.state.Sort,
		ctx:        fetchCtx,
	}

	s.log.WithPage(string(req.PageType)).Debugw("fetch started",
		"generation", req.Generation,
		"days", req.Days,
		"past", req.Past,
		"future", req.Future,
		"sort", req.Sort,
	)

	return req
}

// Fetch performs the request. It only reads the request and the fetcher,
// so it may run on a goroutine other than the session owner's.
func (s *Session) Fetch(req Request) Result {
	ctx := req.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		fetched []model.Release
		err     error
	)
	switch {
	case req.PageType == model.PageTypeUser && len(req.Users) == 1:
		fetched, err = s.fetcher.FetchUserReleases(ctx, req.Users[0])
	case req.PageType == model.PageTypeUser:
		fetched, err = s.fetcher.FetchUsersReleases(ctx, req.Users)
	default:
		fetched, err = s.fetcher.FetchSitewideReleases(ctx, req.Days, req.Past, req.Future, req.Sort)
	}

	return Result{Generation: req.Generation, Releases: fetched, Err: err}
}

// Commit applies a fetch result and reports whether it was current.
//
// Results of superseded fetches are dropped. A failed fetch raises the
// fetch error notification and keeps releases, facets and view as they
// were.
func (s *Session) Commit(res Result) bool {
	if res.Generation != s.generation {
		s.log.Debugw("dropping superseded fetch result", "generation", res.Generation, "current", s.generation)
		return false
	}

	s.state.Loading = false
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	if res.Err != nil {
		s.log.Errorw("fetch failed", "generation", res.Generation, "error", res.Err)
		s.notify(fetchErrorNotification(res.Err))
		return true
	}

	clean, facets := releases.Process(res.Releases)
	s.state.Releases = clean
	s.state.Facets = facets
	s.state.SelectedTypes = keepKnown(s.state.SelectedTypes, facets.TypeNames())
	s.state.SelectedTags = keepKnown(s.state.SelectedTags, facets.TagNames())
	s.recompute()

	s.log.Infow("releases loaded",
		"fetched", len(res.Releases),
		"unique", len(clean),
		"visible", len(s.state.View),
	)
	return true
}

// Refresh fetches the current page synchronously. The returned error is
// the fetch failure, already raised as a notification.
func (s *Session) Refresh(ctx context.Context) error {
	res := s.Fetch(s.Begin(ctx))
	s.Commit(res)
	return res.Err
}

// Close cancels any fetch in flight.
func (s *Session) Close() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// SetPageType switches between the user and sitewide page. It reports
// whether a refetch is needed. The user page cannot be selected without a
// user.
func (s *Session) SetPageType(p model.PageType) bool {
	if p == s.state.PageType || (p == model.PageTypeUser && !s.state.HasUser()) {
		return false
	}
	s.state.PageType = p
	return true
}

// SetRange changes the date window. It reports whether a refetch is
// needed; the user page only re-applies the local window.
func (s *Session) SetRange(r model.Range) bool {
	if r == s.state.Range {
		return false
	}
	s.state.Range = r
	s.recompute()
	return s.sitewide()
}

// SetSort changes the sort key and reports whether a refetch is needed.
func (s *Session) SetSort(k model.SortKey) bool {
	if k == s.state.Sort {
		return false
	}
	s.state.Sort = k
	s.recompute()
	return s.sitewide()
}

// SetShowPast toggles past releases and reports whether a refetch is needed.
func (s *Session) SetShowPast(show bool) bool {
	if show == s.state.ShowPast {
		return false
	}
	s.state.ShowPast = show
	s.recompute()
	return s.sitewide()
}

// SetShowFuture toggles future releases and reports whether a refetch is
// needed.
func (s *Session) SetShowFuture(show bool) bool {
	if show == s.state.ShowFuture {
		return false
	}
	s.state.ShowFuture = show
	s.recompute()
	return s.sitewide()
}

// ToggleType selects or deselects a release type facet.
func (s *Session) ToggleType(t string) {
	s.state.SelectedTypes.Toggle(t)
	s.recompute()
}

// ToggleTag selects or deselects a release tag facet.
func (s *Session) ToggleTag(tag string) {
	s.state.SelectedTags.Toggle(tag)
	s.recompute()
}

// SelectTypes adds release type facets to the selection. Values already
// selected stay selected.
func (s *Session) SelectTypes(types ...string) {
	for _, t := range types {
		s.state.SelectedTypes[t] = struct{}{}
	}
	s.recompute()
}

// SelectTags adds release tag facets to the selection.
func (s *Session) SelectTags(tags ...string) {
	for _, tag := range tags {
		s.state.SelectedTags[tag] = struct{}{}
	}
	s.recompute()
}

// ClearFilters deselects every type and tag facet.
func (s *Session) ClearFilters() {
	s.state.SelectedTypes = model.StringSet{}
	s.state.SelectedTags = model.StringSet{}
	s.recompute()
}

// ToggleColumn shows or hides a display column.
func (s *Session) ToggleColumn(c model.Column) {
	s.state.Display = s.state.Display.Toggle(c)
}

// DismissNotification clears the current toast.
func (s *Session) DismissNotification() {
	s.state.Notification = nil
}

func (s *Session) sitewide() bool {
	return s.state.PageType == model.PageTypeSitewide
}

func (s *Session) recompute() {
	s.state.View = releases.Apply(s.state.Releases, s.state.Criteria(), s.now())
}

func (s *Session) notify(n Notification) {
	s.state.Notification = &n
	if s.onNotify != nil {
		s.onNotify(n)
	}
}

// keepKnown drops selected facet values that no longer occur.
func keepKnown(selected model.StringSet, known []string) model.StringSet {
	kept := model.StringSet{}
	for _, v := range known {
		if selected.Has(v) {
			kept[v] = struct{}{}
		}
	}
	return kept
}
