// Package http provides an HTTP client configured for ListenBrainz API requests.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Timeout handling
//   - Rate limiting
//   - JSON response decoding
//
// # Basic Usage
//
//	client := http.NewClient(http.WithTimeout(10*time.Second))
//
//	// Fetch raw bytes
//	body, err := client.Get(ctx, "https://api.listenbrainz.org/1/explore/fresh-releases/")
//
//	// Decode JSON
//	var resp dto.FreshReleasesResponse
//	err = client.GetJSON(ctx, url, &resp)
//
// # Errors
//
// Non-200 responses are returned as *StatusError carrying the response
// body, so API error payloads can be decoded by the caller:
//
//	var se *http.StatusError
//	if errors.As(err, &se) {
//	    fmt.Println(se.StatusCode, string(se.Body))
//	}
package http
