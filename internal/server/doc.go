// Package server provides HTTP routing, middleware, and handlers for the section API.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method-qualified route patterns.
//
// # Section API
//
// [SectionHandler] serves section payloads from a [feed.Service]:
//
//   - GET /api/sections/{name} returns the raw grouped payload for a section
//   - GET /api/sections/{name}/tabs/{tab} returns one tab's normalized items
//
// When wired to a caching service the handlers serve from the local snapshot
// store and fall through to the portal only on cache misses.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
//
// # Web Application Integration
//
// The web package (internal/web) will extend this infrastructure with HTMX
// templates rendering section rails in the browser.
package server
