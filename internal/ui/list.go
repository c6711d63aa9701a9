package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/tadkalabs/tadka/internal/models"
)

var _ list.Item = mediaListItem{}

// mediaListItem wraps [models.MediaItem] to implement [list.Item].
type mediaListItem struct {
	item models.MediaItem
}

func (i mediaListItem) FilterValue() string { return i.item.Title }
func (i mediaListItem) Title() string       { return i.item.Title }
func (i mediaListItem) Description() string {
	desc := i.item.ContentType
	if desc == "" {
		desc = "article"
	}
	if i.item.HasSubList() {
		desc = fmt.Sprintf("%s • %d videos", desc, i.item.VideoCount)
	}
	if i.item.PublishedAt != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.item.PublishedAt)
	}
	return desc
}
