package rail

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/tadkalabs/tadka/internal/models"
)

// Quality selects the YouTube thumbnail variant for a rail.
type Quality string

const (
	QualityMQ Quality = "mqdefault"
	QualityHQ Quality = "hqdefault"
)

// DefaultFallbackPool holds the deterministic placeholder images used when an
// item resolves no thumbnail of its own.
var DefaultFallbackPool = []string{
	"https://static.tadka.example.com/placeholders/reel-1.jpg",
	"https://static.tadka.example.com/placeholders/reel-2.jpg",
	"https://static.tadka.example.com/placeholders/reel-3.jpg",
	"https://static.tadka.example.com/placeholders/reel-4.jpg",
}

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{6,}$`)

// ExtractYouTubeID pulls the video id out of a YouTube URL.
//
// Handles watch?v=, youtu.be/, shorts/, and embed/ shapes. Returns false for
// anything unparseable so callers fall through to placeholder resolution.
func ExtractYouTubeID(raw string) (string, bool) {
	if strings.TrimSpace(raw) == "" {
		return "", false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}

	var id string
	host := strings.TrimPrefix(u.Hostname(), "www.")
	path := strings.Trim(u.Path, "/")

	switch host {
	case "youtu.be":
		id = firstSegment(path)
	case "youtube.com", "m.youtube.com", "youtube-nocookie.com":
		switch {
		case path == "watch":
			id = u.Query().Get("v")
		case strings.HasPrefix(path, "shorts/"):
			id = firstSegment(strings.TrimPrefix(path, "shorts/"))
		case strings.HasPrefix(path, "embed/"):
			id = firstSegment(strings.TrimPrefix(path, "embed/"))
		}
	}

	if !videoIDPattern.MatchString(id) {
		return "", false
	}

	return id, true
}

func firstSegment(path string) string {
	if idx := strings.IndexByte(path, '/'); idx >= 0 {
		return path[:idx]
	}
	return path
}

// YouTubeThumbnail builds the img.youtube.com thumbnail URL for a video id.
func YouTubeThumbnail(id string, quality Quality) string {
	if quality == "" {
		quality = QualityMQ
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/%s.jpg", id, quality)
}

// Thumbnail deterministically resolves the display image for the item at the
// given position in the rail.
//
// Precedence: a video item with a parseable YouTube URL derives the
// img.youtube.com thumbnail at the rail's quality; otherwise the item's own
// image fields are tried in order (image, image_url, main_image_url, first
// of images); otherwise the placeholder pool is indexed by position.
func (r *Rail) Thumbnail(item models.MediaItem, index int) string {
	if item.IsVideo() {
		if id, ok := ExtractYouTubeID(item.YouTubeURL); ok {
			return YouTubeThumbnail(id, r.quality)
		}
	}

	for _, candidate := range []string{item.Image, item.ImageURL, item.MainImageURL} {
		if candidate != "" {
			return candidate
		}
	}
	if len(item.Images) > 0 && item.Images[0] != "" {
		return item.Images[0]
	}

	return r.Fallback(index)
}

// Fallback returns the deterministic placeholder for a rail position.
// The same position always maps to the same placeholder, which also serves
// as the swap target when an image fails at render time.
func (r *Rail) Fallback(index int) string {
	if index < 0 {
		index = -index
	}
	return r.fallbacks[index%len(r.fallbacks)]
}
