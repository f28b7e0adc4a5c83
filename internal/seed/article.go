package seed

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"

	"santara/pkg/utils"
)

// Bare image filenames in article seed rows resolve under this folder.
const articleImageDir = "/public/images/artikel"

// ArticleRow is one raw article seed entry. The image may arrive under
// four different keys; ResolvedImageURL applies the ordered preference.
type ArticleRow struct {
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	Content     string     `json:"content"`
	Author      string     `json:"author"`
	URL         string     `json:"url"`
	PublishedAt string     `json:"publishedAt"`
	Tags        utils.Tags `json:"tags"`

	ImageFile     string `json:"imageFile"`
	Image         string `json:"image"`
	ImageURLSnake string `json:"image_url"`
	ImageURL      string `json:"imageUrl"`
}

var multiSlash = regexp.MustCompile(`/{2,}`)

// ResolvedImageURL picks the first non-empty image key, in order
// imageFile, image, image_url, imageUrl. Absolute http(s) URLs and
// /public/** paths pass through; bare names get the article image folder
// prefix. Returns "" when no key is set.
func (r ArticleRow) ResolvedImageURL() string {
	img := firstNonEmpty(r.ImageFile, r.Image, r.ImageURLSnake, r.ImageURL)
	if img == "" {
		return ""
	}
	lower := strings.ToLower(img)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return img
	}
	if !strings.HasPrefix(img, "/public/") {
		img = articleImageDir + "/" + img
	}
	return multiSlash.ReplaceAllString(img, "/")
}

// LoadArticleRows reads the first existing candidate article seed file.
// Only a missing file is fatal; an empty list simply seeds nothing.
func LoadArticleRows(paths []string) ([]ArticleRow, error) {
	path := firstExisting(paths)
	if path == "" {
		return nil, fmt.Errorf("%w: %v", ErrNoSeedFile, paths)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var rows []ArticleRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		rows = nil
	}

	log.Printf("seed: %d article rows from %s", len(rows), path)
	return rows, nil
}
