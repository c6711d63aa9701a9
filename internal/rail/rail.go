package rail

import (
	"github.com/tadkalabs/tadka/internal/models"
)

// Rail is a tabbed collection browser over one grouped section.
type Rail struct {
	name      string
	group     *models.MediaGroup
	active    string
	limit     int
	quality   Quality
	fallbacks []string
}

// Opts contains presentation options for a Rail.
type Opts struct {
	// DisplayLimit caps visible items per tab; 0 means unlimited (scrollable rails).
	DisplayLimit int
	// Quality selects the YouTube thumbnail variant for this rail.
	Quality Quality
	// FallbackPool overrides the deterministic placeholder pool.
	FallbackPool []string
}

// New creates a Rail over the given group. The first tab starts active.
func New(name string, group *models.MediaGroup, opts Opts) *Rail {
	if group == nil {
		group = models.NewMediaGroup(nil, nil)
	}
	if opts.Quality == "" {
		opts.Quality = QualityMQ
	}
	if len(opts.FallbackPool) == 0 {
		opts.FallbackPool = DefaultFallbackPool
	}

	r := &Rail{
		name:      name,
		group:     group,
		limit:     opts.DisplayLimit,
		quality:   opts.Quality,
		fallbacks: opts.FallbackPool,
	}

	if tabs := group.Tabs(); len(tabs) > 0 {
		r.active = tabs[0]
	}

	return r
}

// Name returns the rail's section name.
func (r *Rail) Name() string { return r.name }

// Tabs returns the rail's tab keys in document order.
func (r *Rail) Tabs() []string { return r.group.Tabs() }

// ActiveTab returns the currently active tab key.
func (r *Rail) ActiveTab() string { return r.active }

// SetActiveTab switches the active tab. Unrecognized keys are accepted and
// simply resolve to an empty item sequence.
func (r *Rail) SetActiveTab(tab string) {
	r.active = tab
}

// NextTab cycles the active tab forward, wrapping at the end.
func (r *Rail) NextTab() {
	r.stepTab(1)
}

// PrevTab cycles the active tab backward, wrapping at the start.
func (r *Rail) PrevTab() {
	r.stepTab(-1)
}

func (r *Rail) stepTab(delta int) {
	tabs := r.group.Tabs()
	if len(tabs) == 0 {
		return
	}

	idx := 0
	for i, tab := range tabs {
		if tab == r.active {
			idx = i
			break
		}
	}

	idx = (idx + delta + len(tabs)) % len(tabs)
	r.active = tabs[idx]
}

// VisibleItems returns the active tab's items truncated to the display limit.
// Pure and deterministic; never triggers a fetch.
func (r *Rail) VisibleItems() []models.MediaItem {
	items := r.group.Items(r.active)
	if r.limit > 0 && len(items) > r.limit {
		return items[:r.limit]
	}
	return items
}

// Selection is the typed event emitted when an item is selected. The caller
// (TUI, router glue) owns the side effects; the rail only decides which kind
// of transition the selection asks for.
type Selection interface {
	selection()
}

// OpenViewer asks the handler to open a media viewer session.
type OpenViewer struct {
	Items      []models.MediaItem
	StartIndex int
}

// Navigate asks the handler to follow a detail route.
type Navigate struct {
	Route string
}

func (OpenViewer) selection() {}
func (Navigate) selection()   {}

// Select resolves the selection event for the visible item at index.
// Out-of-range indices return nil.
//
// Items carrying a populated sub-list open the viewer over exactly that
// sub-list from its start. Single videos open a one-item viewer. Photo items
// open the viewer over their visible siblings at the clicked position.
// Everything else resolves to a detail route, the family chosen by content
// type.
func (r *Rail) Select(index int) Selection {
	items := r.VisibleItems()
	if index < 0 || index >= len(items) {
		return nil
	}

	item := items[index]
	switch {
	case item.HasSubList():
		return OpenViewer{Items: item.AllVideos, StartIndex: 0}
	case item.YouTubeURL != "":
		return OpenViewer{Items: []models.MediaItem{item}, StartIndex: 0}
	case item.ContentType == models.ContentPhoto || len(item.Images) > 0:
		return OpenViewer{Items: items, StartIndex: index}
	case item.IsVideo():
		return Navigate{Route: "/video/" + item.ID}
	default:
		return Navigate{Route: "/article/" + item.ID}
	}
}
