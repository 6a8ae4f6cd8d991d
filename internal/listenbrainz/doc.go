// Package listenbrainz fetches fresh releases from the ListenBrainz API.
//
// # Endpoints
//
// Two endpoints are supported:
//
//	GET /1/explore/fresh-releases/?days=7&past=true&future=true&sort=release_date
//	GET /1/user/{user}/fresh_releases
//
// # Basic Usage
//
//	client := listenbrainz.NewClient(listenbrainz.DefaultAPIURL, http.NewClient(), log)
//
//	sitewide, err := client.FetchSitewideReleases(ctx, 7, true, true, model.SortReleaseDate)
//	mine, err := client.FetchUserReleases(ctx, "rob")
//
// # Errors
//
// Every failure is returned as *FetchError, carrying the HTTP status and
// the API error message when the server answered:
//
//	var fe *listenbrainz.FetchError
//	if errors.As(err, &fe) && fe.StatusCode == 404 {
//	    // unknown user
//	}
package listenbrainz
