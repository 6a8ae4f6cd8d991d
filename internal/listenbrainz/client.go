package listenbrainz

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	lbhttp "github.com/handiism/fresh-releases/internal/http"
	"github.com/handiism/fresh-releases/internal/listenbrainz/dto"
	"github.com/handiism/fresh-releases/internal/logger"
	"github.com/handiism/fresh-releases/internal/model"
)

// DefaultAPIURL is the public ListenBrainz API root.
const DefaultAPIURL = "https://api.listenbrainz.org"

// Client fetches fresh releases from ListenBrainz.
//
// Client is safe for concurrent use; the underlying HTTP client enforces
// the configured rate limit across all calls.
type Client struct {
	http          *lbhttp.Client
	baseURL       string
	maxConcurrent int
	log           *logger.Logger
}

// NewClient creates a new ListenBrainz client.
//
// An empty baseURL selects DefaultAPIURL; a nil log discards log output.
func NewClient(baseURL string, httpClient *lbhttp.Client, log *logger.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	if httpClient == nil {
		httpClient = lbhttp.NewClient()
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Client{
		http:          httpClient,
		baseURL:       strings.TrimRight(baseURL, "/"),
		maxConcurrent: 4,
		log:           log,
	}
}

// SetMaxConcurrent sets how many user pages FetchUsersReleases fetches in
// parallel. Values below 1 are ignored.
func (c *Client) SetMaxConcurrent(n int) {
	if n >= 1 {
		c.maxConcurrent = n
	}
}

// FetchSitewideReleases fetches the sitewide fresh releases.
//
// Parameters:
//   - days: the window around today, in days
//   - past: include releases dated today or earlier
//   - future: include releases dated after today
//   - sort: the server-side sort order
func (c *Client) FetchSitewideReleases(ctx context.Context, days int, past, future bool, sort model.SortKey) ([]model.Release, error) {
	const op = "fetch sitewide releases"

	q := url.Values{}
	q.Set("days", strconv.Itoa(days))
	q.Set("past", strconv.FormatBool(past))
	q.Set("future", strconv.FormatBool(future))
	q.Set("sort", string(sort))

	endpoint := c.baseURL + "/1/explore/fresh-releases/?" + q.Encode()
	return c.fetch(ctx, op, endpoint)
}

// FetchUserReleases fetches the fresh releases recommended to a user.
func (c *Client) FetchUserReleases(ctx context.Context, user string) ([]model.Release, error) {
	op := fmt.Sprintf("fetch releases for %s", user)
	if user == "" {
		return nil, &FetchError{Op: op, Message: "no user name given"}
	}

	endpoint := c.baseURL + "/1/user/" + url.PathEscape(user) + "/fresh_releases"
	return c.fetch(ctx, op, endpoint)
}

// FetchUsersReleases fetches the fresh releases of several users
// concurrently and concatenates them in the order the users were given.
//
// At most SetMaxConcurrent requests run at once. The first failure cancels
// the remaining requests and is returned.
//
// The result may contain the same release several times; callers
// deduplicate it, keeping the copy of the earliest listed user.
func (c *Client) FetchUsersReleases(ctx context.Context, users []string) ([]model.Release, error) {
	results := make([][]model.Release, len(users))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxConcurrent)

	for i, user := range users {
		g.Go(func() error {
			releases, err := c.FetchUserReleases(ctx, user)
			if err != nil {
				return err
			}
			results[i] = releases
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []model.Release
	for _, releases := range results {
		merged = append(merged, releases...)
	}
	return merged, nil
}

func (c *Client) fetch(ctx context.Context, op, endpoint string) ([]model.Release, error) {
	c.log.Debugw("requesting fresh releases", "op", op, "url", endpoint)

	var resp dto.FreshReleasesResponse
	if err := c.http.GetJSON(ctx, endpoint, &resp); err != nil {
		fe := newFetchError(op, err)
		c.log.Warnw("fresh releases request failed", "op", op, "status", fe.StatusCode, "error", fe.Error())
		return nil, fe
	}

	releases := resp.Payload.ToReleases()
	c.log.Debugw("received fresh releases", "op", op, "count", len(releases))
	return releases, nil
}
