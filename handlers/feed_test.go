package handlers

import (
	"reflect"
	"testing"

	"magazine/models"
)

func samplePosts() []models.Post {
	return []models.Post{
		{Title: "Summer Cocktails", Hashtags: []string{"칵테일", "drinks"}},
		{Title: "Street Food in Seoul", Hashtags: []string{"food", "seoul"}},
		{Title: "칵테일 바 투어", Hashtags: []string{"bar", "nightlife"}},
		{Title: "Autumn Lookbook", Hashtags: []string{"fashion"}},
	}
}

func TestMatchesSearch(t *testing.T) {
	tests := []struct {
		name  string
		post  models.Post
		query string
		want  bool
	}{
		{
			name:  "Empty query matches everything",
			post:  models.Post{Title: "anything"},
			query: "",
			want:  true,
		},
		{
			name:  "Whitespace-only query matches everything",
			post:  models.Post{Title: "anything"},
			query: "   ",
			want:  true,
		},
		{
			name:  "Case-insensitive title substring",
			post:  models.Post{Title: "Summer Cocktails"},
			query: "COCKTAIL",
			want:  true,
		},
		{
			name:  "Hashtag substring match",
			post:  models.Post{Title: "untitled", Hashtags: []string{"nightlife"}},
			query: "night",
			want:  true,
		},
		{
			name:  "Korean substring in title",
			post:  models.Post{Title: "칵테일 바 투어"},
			query: "칵테일",
			want:  true,
		},
		{
			name:  "No match anywhere",
			post:  models.Post{Title: "Street Food", Hashtags: []string{"food"}},
			query: "fashion",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesSearch(tt.post, tt.query); got != tt.want {
				t.Errorf("MatchesSearch(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestMatchesTag(t *testing.T) {
	post := models.Post{Title: "Summer Cocktails", Hashtags: []string{"칵테일", "drinks"}}

	tests := []struct {
		name string
		tag  string
		want bool
	}{
		{name: "Empty tag matches", tag: "", want: true},
		{name: "Exact element match", tag: "drinks", want: true},
		{name: "Substring is not a match", tag: "drink", want: false},
		{name: "Title text is not a tag", tag: "Summer", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesTag(post, tt.tag); got != tt.want {
				t.Errorf("MatchesTag(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestFilterPosts(t *testing.T) {
	posts := samplePosts()

	t.Run("No filters returns all posts", func(t *testing.T) {
		got := FilterPosts(posts, "", "")
		if !reflect.DeepEqual(got, posts) {
			t.Errorf("FilterPosts with no filters = %v, want original list", got)
		}
	})

	t.Run("Tag filter keeps exact hashtag holders only", func(t *testing.T) {
		got := FilterPosts(posts, "", "food")
		if len(got) != 1 || got[0].Title != "Street Food in Seoul" {
			t.Errorf("FilterPosts tag=food = %v, want only the Seoul post", got)
		}
	})

	t.Run("Search matches title or hashtag", func(t *testing.T) {
		got := FilterPosts(posts, "칵테일", "")
		if len(got) != 2 {
			t.Errorf("FilterPosts q=칵테일 returned %d posts, want 2", len(got))
		}
	})

	t.Run("Tag and search compose with AND", func(t *testing.T) {
		got := FilterPosts(posts, "칵테일", "bar")
		if len(got) != 1 || got[0].Title != "칵테일 바 투어" {
			t.Errorf("FilterPosts q=칵테일 tag=bar = %v, want the bar tour post", got)
		}
	})

	t.Run("Filtering is idempotent", func(t *testing.T) {
		once := FilterPosts(posts, "cocktail", "")
		twice := FilterPosts(once, "cocktail", "")
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("second filter pass changed the result: %v vs %v", once, twice)
		}
	})

	t.Run("Clearing the tag restores the unfiltered list", func(t *testing.T) {
		// Tag toggle: activate, then deactivate.
		_ = FilterPosts(posts, "", "fashion")
		got := FilterPosts(posts, "", "")
		if !reflect.DeepEqual(got, posts) {
			t.Errorf("clearing the tag did not restore the full list")
		}
	})

	t.Run("Input slice is not mutated", func(t *testing.T) {
		before := samplePosts()
		FilterPosts(posts, "food", "")
		if !reflect.DeepEqual(posts, before) {
			t.Errorf("FilterPosts mutated its input")
		}
	})
}

func TestShouldLogSearch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "Three hangul runes qualify", query: "칵테일", want: true},
		{name: "Single hangul rune does not", query: "칵", want: false},
		{name: "Two runes do not", query: "칵테", want: false},
		{name: "Three ascii runes qualify", query: "bar", want: true},
		{name: "Whitespace padding is ignored", query: "  칵  ", want: false},
		{name: "Empty query does not", query: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldLogSearch(tt.query); got != tt.want {
				t.Errorf("ShouldLogSearch(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}
