// Package session holds the explicit state of one fresh releases page.
//
// A Session owns the loaded release set, its facets, the user selected
// criteria and the display settings. Every change recomputes the visible
// view through the pure functions of package releases; nothing is mutated
// behind the caller's back.
//
// # Fetching
//
// Fetches are split into three steps so that interactive callers can run
// the network call off the event loop:
//
//	req := s.Begin(ctx)  // cancels the previous fetch, marks loading
//	res := s.Fetch(req)  // blocking, safe to call from another goroutine
//	s.Commit(res)        // applies the result unless it was superseded
//
// Synchronous callers use Refresh, which runs all three.
//
// # Failures
//
// A failed fetch leaves releases, facets and view untouched and raises a
// Notification:
//
//	s := session.New(client, settings, session.WithNotify(func(n session.Notification) {
//	    fmt.Println(n.Title, n.Message)
//	}))
//
// A Session is not safe for concurrent use; only Fetch may run on another
// goroutine.
package session
