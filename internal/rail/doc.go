// Package rail implements the tabbed media rail: a collection browser holding
// an active category tab over externally supplied grouped data.
//
// A [Rail] never fetches or mutates data. It derives the visible item slice
// from its [models.MediaGroup], resolves display thumbnails, and turns item
// selection into typed [Selection] events for a single top-level handler to
// act on (open a viewer, follow a route). Tab switches are pure local state
// transitions; unknown tab keys resolve to an empty item sequence.
package rail
