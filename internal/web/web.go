// Package web implements an HTMX-based web application mirroring the TUI functionality.
//
// # HTMX Web Application Implementation Plan
//
// # Architecture
//
// The web app replicates the TUI's browse and viewer workflow using
// server-side rendering with HTMX for dynamic updates. Each view corresponds
// to a template and handler:
//
//  1. Section Rail: Server-rendered tab strip plus item cards, hx-get per tab
//  2. Tab Switch: HTMX partial swap replacing the visible item row
//  3. Viewer Overlay: Full-screen modal with prev/next hx-get navigation
//  4. Refresh Monitor: SSE (Server-Sent Events) streaming cache refresh progress
//
// Core Components
//
//   - HTTP Server: the server package's BasicRouter with html/template rendering
//   - Service Integration: Uses the same feed.Service and tasks.RefreshEngine as the TUI
//   - Tab Persistence: the store package's TabStore keyed by session cookie
//   - SSE Handler: Streams real-time progress during refreshes
//
// Routes
//
//	GET  /                          → Section rail view
//	GET  /sections/{name}           → Rail for one section
//	GET  /sections/{name}/tabs/{t}  → HTMX partial: one tab's item cards
//	GET  /viewer/{name}/{id}        → Viewer overlay for an item
//	POST /refresh                   → Start refresh, return SSE endpoint
//	GET  /refresh/{id}/stream       → SSE progress stream
//
// Templates
//
//   - base.html: Layout with section navigation
//   - rail.html: Tab strip with hx-get on tab headers
//   - items.html: Partial template for one tab's cards
//   - viewer.html: Overlay with keyboard navigation script
//   - progress.html: SSE consumer with progress bar
//
// # State Management
//
// Unlike the TUI's in-memory state, the web app persists state in:
//   - TabStore records: active tab per rail, shared with the TUI
//   - Section snapshots: the SQLite cache backing all reads
//   - In-memory channels: SSE connections for active refreshes
//
// # Progress Streaming
//
// Refresh progress uses Server-Sent Events:
//  1. POST /refresh starts a RefreshEngine run, returns run ID
//  2. Client opens SSE connection to /refresh/{id}/stream
//  3. Handler launches goroutine running RefreshEngine.Run
//  4. Progress channel updates stream as SSE events
//  5. On completion, send "done" event with redirect URL
package web
