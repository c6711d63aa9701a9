package models

import (
	"encoding/json"
	"testing"
)

func TestMediaItem(t *testing.T) {
	t.Run("UnmarshalJSON", func(t *testing.T) {
		t.Run("accepts numeric ids", func(t *testing.T) {
			var item MediaItem
			if err := json.Unmarshal([]byte(`{"id": 42, "title": "Pushpa 3 Review"}`), &item); err != nil {
				t.Fatalf("failed to decode: %v", err)
			}
			if item.ID != "42" {
				t.Errorf("expected id 42, got %q", item.ID)
			}
		})

		t.Run("accepts string ids", func(t *testing.T) {
			var item MediaItem
			if err := json.Unmarshal([]byte(`{"id": "abc-1", "title": "A"}`), &item); err != nil {
				t.Fatalf("failed to decode: %v", err)
			}
			if item.ID != "abc-1" {
				t.Errorf("expected id abc-1, got %q", item.ID)
			}
		})

		t.Run("accepts images as array", func(t *testing.T) {
			var item MediaItem
			data := `{"id": 1, "images": ["https://cdn.tadka.example.com/a.jpg", "https://cdn.tadka.example.com/b.jpg"]}`
			if err := json.Unmarshal([]byte(data), &item); err != nil {
				t.Fatalf("failed to decode: %v", err)
			}
			if len(item.Images) != 2 {
				t.Fatalf("expected 2 images, got %d", len(item.Images))
			}
		})

		t.Run("accepts images as JSON-encoded string", func(t *testing.T) {
			var item MediaItem
			data := `{"id": 1, "images": "[\"https://cdn.tadka.example.com/a.jpg\"]"}`
			if err := json.Unmarshal([]byte(data), &item); err != nil {
				t.Fatalf("failed to decode: %v", err)
			}
			if len(item.Images) != 1 || item.Images[0] != "https://cdn.tadka.example.com/a.jpg" {
				t.Fatalf("expected decoded image list, got %v", item.Images)
			}
		})

		t.Run("accepts images as bare URL string", func(t *testing.T) {
			var item MediaItem
			data := `{"id": 1, "images": "https://cdn.tadka.example.com/a.jpg"}`
			if err := json.Unmarshal([]byte(data), &item); err != nil {
				t.Fatalf("failed to decode: %v", err)
			}
			if len(item.Images) != 1 {
				t.Fatalf("expected one image, got %v", item.Images)
			}
		})

		t.Run("missing fields degrade to zero values", func(t *testing.T) {
			var item MediaItem
			if err := json.Unmarshal([]byte(`{}`), &item); err != nil {
				t.Fatalf("failed to decode: %v", err)
			}
			if item.ID != "" || item.Images != nil || item.VideoCount != 0 {
				t.Error("expected zero values for missing fields")
			}
		})

		t.Run("clamps video_count above all_videos length", func(t *testing.T) {
			var item MediaItem
			data := `{"id": 1, "video_count": 5, "all_videos": [{"id": 2}, {"id": 3}]}`
			if err := json.Unmarshal([]byte(data), &item); err != nil {
				t.Fatalf("failed to decode: %v", err)
			}
			if item.VideoCount != 2 {
				t.Errorf("expected clamped count 2, got %d", item.VideoCount)
			}
		})

		t.Run("adopts all_videos length when count missing", func(t *testing.T) {
			var item MediaItem
			data := `{"id": 1, "all_videos": [{"id": 2}, {"id": 3}, {"id": 4}]}`
			if err := json.Unmarshal([]byte(data), &item); err != nil {
				t.Fatalf("failed to decode: %v", err)
			}
			if item.VideoCount != 3 {
				t.Errorf("expected count 3, got %d", item.VideoCount)
			}
		})
	})

	t.Run("IsVideo", func(t *testing.T) {
		cases := []struct {
			name string
			item MediaItem
			want bool
		}{
			{"video content type", MediaItem{ContentType: ContentVideo}, true},
			{"video_post content type", MediaItem{ContentType: ContentVideoPost}, true},
			{"youtube url only", MediaItem{YouTubeURL: "https://youtu.be/abc"}, true},
			{"article", MediaItem{ContentType: ContentArticle}, false},
			{"empty", MediaItem{}, false},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if got := tc.item.IsVideo(); got != tc.want {
					t.Errorf("IsVideo() = %v, want %v", got, tc.want)
				}
			})
		}
	})

	t.Run("HasSubList", func(t *testing.T) {
		sub := []MediaItem{{ID: "a"}, {ID: "b"}, {ID: "c"}}

		if !(MediaItem{VideoCount: 3, AllVideos: sub}).HasSubList() {
			t.Error("expected sub-list for count 3 with videos")
		}
		if (MediaItem{VideoCount: 1}).HasSubList() {
			t.Error("count 1 means single item, not a sub-list")
		}
		if (MediaItem{VideoCount: 3}).HasSubList() {
			t.Error("no sub-list without all_videos")
		}
	})
}
