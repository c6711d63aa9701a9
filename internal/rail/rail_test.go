package rail

import (
	"testing"

	"github.com/tadkalabs/tadka/internal/models"
)

func testGroup() *models.MediaGroup {
	return models.NewMediaGroup(
		[]string{"this_week", "coming_soon"},
		map[string][]models.MediaItem{
			"this_week": {
				{ID: "1", Title: "A"},
				{ID: "2", Title: "B"},
				{ID: "3", Title: "C"},
				{ID: "4", Title: "D"},
				{ID: "5", Title: "E"},
			},
			"coming_soon": {
				{ID: "6", Title: "F"},
			},
		},
	)
}

func TestRail(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		t.Run("activates first tab", func(t *testing.T) {
			r := New("box-office", testGroup(), Opts{})
			if r.ActiveTab() != "this_week" {
				t.Errorf("expected first tab active, got %q", r.ActiveTab())
			}
		})

		t.Run("tolerates nil group", func(t *testing.T) {
			r := New("empty", nil, Opts{})
			if items := r.VisibleItems(); len(items) != 0 {
				t.Errorf("expected no items, got %d", len(items))
			}
		})
	})

	t.Run("SetActiveTab", func(t *testing.T) {
		t.Run("switching returns exactly the tab slice", func(t *testing.T) {
			r := New("box-office", testGroup(), Opts{DisplayLimit: 4})

			r.SetActiveTab("coming_soon")
			items := r.VisibleItems()
			if len(items) != 1 || items[0].ID != "6" {
				t.Errorf("expected coming_soon items, got %v", items)
			}

			r.SetActiveTab("this_week")
			items = r.VisibleItems()
			if len(items) != 4 {
				t.Fatalf("expected 4 items at display limit, got %d", len(items))
			}
			for i, want := range []string{"1", "2", "3", "4"} {
				if items[i].ID != want {
					t.Errorf("item %d: expected id %s, got %s", i, want, items[i].ID)
				}
			}
		})

		t.Run("unknown tab resolves to empty sequence", func(t *testing.T) {
			r := New("box-office", testGroup(), Opts{})
			r.SetActiveTab("nonexistent")
			if items := r.VisibleItems(); len(items) != 0 {
				t.Errorf("expected empty sequence for unknown tab, got %d items", len(items))
			}
		})

		t.Run("zero limit shows everything", func(t *testing.T) {
			r := New("box-office", testGroup(), Opts{})
			if items := r.VisibleItems(); len(items) != 5 {
				t.Errorf("expected all 5 items, got %d", len(items))
			}
		})
	})

	t.Run("tab cycling", func(t *testing.T) {
		r := New("box-office", testGroup(), Opts{})

		r.NextTab()
		if r.ActiveTab() != "coming_soon" {
			t.Errorf("expected coming_soon, got %q", r.ActiveTab())
		}
		r.NextTab()
		if r.ActiveTab() != "this_week" {
			t.Errorf("expected wrap to this_week, got %q", r.ActiveTab())
		}
		r.PrevTab()
		if r.ActiveTab() != "coming_soon" {
			t.Errorf("expected wrap back to coming_soon, got %q", r.ActiveTab())
		}
	})

	t.Run("Select", func(t *testing.T) {
		t.Run("sub-list opens viewer over exactly the sub-items", func(t *testing.T) {
			sub := []models.MediaItem{{ID: "s1"}, {ID: "s2"}, {ID: "s3"}}
			group := models.NewMediaGroup([]string{"shorts"}, map[string][]models.MediaItem{
				"shorts": {{ID: "parent", VideoCount: 3, AllVideos: sub}},
			})

			r := New("viral-shorts", group, Opts{})
			sel := r.Select(0)

			open, ok := sel.(OpenViewer)
			if !ok {
				t.Fatalf("expected OpenViewer, got %T", sel)
			}
			if len(open.Items) != 3 {
				t.Fatalf("expected 3 sub-items, got %d", len(open.Items))
			}
			if open.StartIndex != 0 {
				t.Errorf("expected start index 0, got %d", open.StartIndex)
			}
			for i, want := range []string{"s1", "s2", "s3"} {
				if open.Items[i].ID != want {
					t.Errorf("sub-item %d: expected %s, got %s", i, want, open.Items[i].ID)
				}
			}
		})

		t.Run("single video opens one-item viewer", func(t *testing.T) {
			group := models.NewMediaGroup([]string{"videos"}, map[string][]models.MediaItem{
				"videos": {{ID: "v1", ContentType: models.ContentVideoPost, YouTubeURL: "https://youtu.be/dQw4w9WgXcQ", VideoCount: 1}},
			})

			r := New("events", group, Opts{})
			open, ok := r.Select(0).(OpenViewer)
			if !ok {
				t.Fatal("expected OpenViewer")
			}
			if len(open.Items) != 1 || open.Items[0].ID != "v1" {
				t.Errorf("expected single-item viewer, got %v", open.Items)
			}
		})

		t.Run("photo opens viewer over siblings at clicked index", func(t *testing.T) {
			group := models.NewMediaGroup([]string{"pics"}, map[string][]models.MediaItem{
				"pics": {
					{ID: "p1", ContentType: models.ContentPhoto},
					{ID: "p2", ContentType: models.ContentPhoto},
					{ID: "p3", ContentType: models.ContentPhoto},
				},
			})

			r := New("tadka-pics", group, Opts{})
			open, ok := r.Select(1).(OpenViewer)
			if !ok {
				t.Fatal("expected OpenViewer")
			}
			if len(open.Items) != 3 || open.StartIndex != 1 {
				t.Errorf("expected sibling viewer at index 1, got %d items at %d", len(open.Items), open.StartIndex)
			}
		})

		t.Run("article navigates to article route", func(t *testing.T) {
			group := models.NewMediaGroup([]string{"news"}, map[string][]models.MediaItem{
				"news": {{ID: "42", ContentType: models.ContentArticle}},
			})

			r := New("political", group, Opts{})
			nav, ok := r.Select(0).(Navigate)
			if !ok {
				t.Fatal("expected Navigate")
			}
			if nav.Route != "/article/42" {
				t.Errorf("expected /article/42, got %s", nav.Route)
			}
		})

		t.Run("video without URL navigates to video route", func(t *testing.T) {
			group := models.NewMediaGroup([]string{"tv"}, map[string][]models.MediaItem{
				"tv": {{ID: "7", ContentType: models.ContentVideo}},
			})

			r := New("tv-shows", group, Opts{})
			nav, ok := r.Select(0).(Navigate)
			if !ok {
				t.Fatal("expected Navigate")
			}
			if nav.Route != "/video/7" {
				t.Errorf("expected /video/7, got %s", nav.Route)
			}
		})

		t.Run("out of range returns nil", func(t *testing.T) {
			r := New("box-office", testGroup(), Opts{})
			if sel := r.Select(99); sel != nil {
				t.Errorf("expected nil selection, got %v", sel)
			}
			if sel := r.Select(-1); sel != nil {
				t.Errorf("expected nil selection, got %v", sel)
			}
		})
	})
}
