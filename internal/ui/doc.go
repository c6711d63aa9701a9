// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for browsing portal sections:
//  1. [BrowseView] : Tab bar plus item list for the configured section
//  2. [ViewerView] : Full-frame media overlay with circular navigation
//  3. [RefreshView] : Monitor real-time cache refresh progress
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Progress updates flow through a channel from the RefreshEngine, providing non-blocking status reporting during refreshes.
//
// Tab switches persist through the tab store, so the active tab survives restarts.
// Selecting an aggregate opens the viewer on its sub-videos; article and single-video
// routes open in the system browser instead.
//
// Keyboard navigation uses vim-style bindings (j/k, h/l, tab, enter, esc, f, r, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
