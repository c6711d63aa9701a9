package ui

import (
	"github.com/tadkalabs/tadka/internal/models"
	"github.com/tadkalabs/tadka/internal/tasks"
)

// sectionFetchedMsg delivers a parsed section group or the fetch error.
type sectionFetchedMsg struct {
	group *models.MediaGroup
	err   error
}

// mediaLoadedMsg reports a frame load outcome for the viewer. The generation
// token ties the result to the load that requested it.
type mediaLoadedMsg struct {
	generation uint64
	width      int
	height     int
	err        error
}

type progressUpdateMsg tasks.ProgressUpdate

// tabScrollMsg carries the marquee offset for a tab bar that overflows the
// terminal width.
type tabScrollMsg int

// refreshDoneMsg delivers the outcome of a bulk section refresh.
type refreshDoneMsg struct {
	result *tasks.RefreshRunResult
	err    error
}
