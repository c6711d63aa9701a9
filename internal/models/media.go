package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Content type values seen in portal payloads.
const (
	ContentVideo     = "video"
	ContentVideoPost = "video_post"
	ContentArticle   = "article"
	ContentPhoto     = "photo"
)

// MediaItem represents one content card: an article, a video, or a photo.
//
// Portal payloads are loose about field presence and types; UnmarshalJSON
// normalizes them so downstream code never branches on shape. Ids arrive as
// numbers or strings, `images` arrives as an array or as a JSON-encoded
// string of an array.
type MediaItem struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Slug         string      `json:"slug,omitempty"`
	ContentType  string      `json:"content_type,omitempty"`
	Image        string      `json:"image,omitempty"`
	ImageURL     string      `json:"image_url,omitempty"`
	MainImageURL string      `json:"main_image_url,omitempty"`
	YouTubeURL   string      `json:"youtube_url,omitempty"`
	Images       []string    `json:"images,omitempty"`
	VideoCount   int         `json:"video_count,omitempty"`
	AllVideos    []MediaItem `json:"all_videos,omitempty"`
	PublishedAt  string      `json:"published_at,omitempty"`
}

type rawMediaItem struct {
	ID           json.RawMessage `json:"id"`
	Title        string          `json:"title"`
	Slug         string          `json:"slug"`
	ContentType  string          `json:"content_type"`
	Image        string          `json:"image"`
	ImageURL     string          `json:"image_url"`
	MainImageURL string          `json:"main_image_url"`
	YouTubeURL   string          `json:"youtube_url"`
	Images       json.RawMessage `json:"images"`
	VideoCount   int             `json:"video_count"`
	AllVideos    []MediaItem     `json:"all_videos"`
	PublishedAt  string          `json:"published_at"`
}

// UnmarshalJSON decodes a portal item into the canonical shape.
func (m *MediaItem) UnmarshalJSON(data []byte) error {
	var raw rawMediaItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode media item: %w", err)
	}

	*m = MediaItem{
		Title:        raw.Title,
		Slug:         raw.Slug,
		ContentType:  raw.ContentType,
		Image:        raw.Image,
		ImageURL:     raw.ImageURL,
		MainImageURL: raw.MainImageURL,
		YouTubeURL:   raw.YouTubeURL,
		VideoCount:   raw.VideoCount,
		AllVideos:    raw.AllVideos,
		PublishedAt:  raw.PublishedAt,
	}

	m.ID = decodeID(raw.ID)
	m.Images = decodeImages(raw.Images)
	m.normalizeCount()

	return nil
}

// decodeID accepts a JSON number or string id and returns its string form.
func decodeID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}

	return ""
}

// decodeImages accepts an array of strings or a JSON-encoded string holding
// such an array, degrading to nil on anything else.
func decodeImages(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var imgs []string
	if err := json.Unmarshal(raw, &imgs); err == nil {
		return imgs
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		if json.Unmarshal([]byte(encoded), &imgs) == nil {
			return imgs
		}
		// a bare URL string counts as a one-element list
		if strings.TrimSpace(encoded) != "" {
			return []string{encoded}
		}
	}

	return nil
}

// normalizeCount reconciles video_count with all_videos so viewer logic can
// trust the sub-list: counts above the actual sequence length are clamped,
// and a populated sequence with no count adopts the sequence length.
func (m *MediaItem) normalizeCount() {
	if m.VideoCount > 1 && m.VideoCount > len(m.AllVideos) {
		m.VideoCount = len(m.AllVideos)
	}
	if m.VideoCount == 0 && len(m.AllVideos) > 1 {
		m.VideoCount = len(m.AllVideos)
	}
	if m.VideoCount < 0 {
		m.VideoCount = 0
	}
}

// IsVideo reports whether the item should open in a video context.
func (m MediaItem) IsVideo() bool {
	switch m.ContentType {
	case ContentVideo, ContentVideoPost:
		return true
	}
	return m.YouTubeURL != ""
}

// HasSubList reports whether selecting the item should expand its sibling
// video list rather than the item itself.
func (m MediaItem) HasSubList() bool {
	return m.VideoCount > 1 && len(m.AllVideos) > 0
}
