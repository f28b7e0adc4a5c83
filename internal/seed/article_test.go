package seed

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestResolvedImageURL_PreferenceOrder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		row  ArticleRow
		want string
	}{
		{
			name: "imageFile_wins",
			row:  ArticleRow{ImageFile: "a.jpg", Image: "b.jpg", ImageURLSnake: "c.jpg", ImageURL: "d.jpg"},
			want: "/public/images/artikel/a.jpg",
		},
		{
			name: "image_second",
			row:  ArticleRow{Image: "b.jpg", ImageURL: "d.jpg"},
			want: "/public/images/artikel/b.jpg",
		},
		{
			name: "image_url_third",
			row:  ArticleRow{ImageURLSnake: "c.jpg", ImageURL: "d.jpg"},
			want: "/public/images/artikel/c.jpg",
		},
		{
			name: "imageUrl_last",
			row:  ArticleRow{ImageURL: "d.jpg"},
			want: "/public/images/artikel/d.jpg",
		},
		{
			name: "absolute_url_passes_through",
			row:  ArticleRow{ImageFile: "https://cdn.example.com/x.jpg"},
			want: "https://cdn.example.com/x.jpg",
		},
		{
			name: "public_path_passes_through",
			row:  ArticleRow{ImageFile: "/public/images/custom/x.png"},
			want: "/public/images/custom/x.png",
		},
		{
			name: "duplicate_slashes_collapse",
			row:  ArticleRow{ImageFile: "sub//x.jpg"},
			want: "/public/images/artikel/sub/x.jpg",
		},
		{
			name: "no_image",
			row:  ArticleRow{},
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.row.ResolvedImageURL(); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestLoadArticleRows_MissingFileIsFatal(t *testing.T) {
	t.Parallel()

	_, err := LoadArticleRows([]string{filepath.Join(t.TempDir(), "article_seed.json")})
	if !errors.Is(err, ErrNoSeedFile) {
		t.Fatalf("err=%v, want ErrNoSeedFile", err)
	}
}

func TestLoadArticleRows_TagsAcceptListOrString(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "article_seed.json")
	writeFile(t, path, `[
		{"title":"Satu","tags":["a"," b "]},
		{"title":"Dua","tags":"x, y |z"}
	]`)

	rows, err := LoadArticleRows([]string{path})
	if err != nil {
		t.Fatalf("LoadArticleRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	if len(rows[0].Tags) != 2 || rows[0].Tags[0] != "a" || rows[0].Tags[1] != "b" {
		t.Fatalf("list tags: %v", rows[0].Tags)
	}
	if len(rows[1].Tags) != 3 || rows[1].Tags[2] != "z" {
		t.Fatalf("string tags: %v", rows[1].Tags)
	}
}
