package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
)

var (
	ErrNoSeedFile   = errors.New("no seed file found among candidate paths")
	ErrNoUsableRows = errors.New("seed file contains no usable rows")
)

// Default candidate paths, checked in order. The first existing file wins.
var (
	TenunSeedPaths = []string{
		"tenun_seed.json",
		"tenun_no_images.json",
		"data/tenun_seed.json",
	}
	ArticleSeedPaths = []string{
		"article_seed.json",
		"data/article_seed.json",
	}
)

// LoadCanonical reads the first existing candidate file, normalizes every
// row and dedupes the result. A missing file or an input that yields zero
// canonical rows is an error; callers are expected to abort on it.
func LoadCanonical(paths []string) ([]Canonical, error) {
	path := firstExisting(paths)
	if path == "" {
		return nil, fmt.Errorf("%w: %v", ErrNoSeedFile, paths)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	// Anything that is not a JSON array counts as empty input.
	var rows []Record
	if err := json.Unmarshal(raw, &rows); err != nil {
		rows = nil
	}

	canonical := make([]Canonical, 0, len(rows))
	for _, r := range rows {
		if c, ok := Normalize(r); ok {
			canonical = append(canonical, c)
		}
	}
	canonical = Dedupe(canonical)

	log.Printf("seed: %d raw rows from %s, %d canonical after dedupe", len(rows), path, len(canonical))

	if len(canonical) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoUsableRows, path)
	}
	return canonical, nil
}

func firstExisting(paths []string) string {
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}
