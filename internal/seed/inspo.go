package seed

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Web prefix for seeded inspiration images.
const inspoImageDir = "/public/images/inspo"

var inspoExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

// InspoFile is one image-derived inspiration row.
type InspoFile struct {
	Slug     string
	Title    string
	ImageURL string
}

// ScanInspoDir enumerates image files in dir and derives slug, title and
// image URL from each filename. Non-image files are skipped.
func ScanInspoDir(dir string) ([]InspoFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read inspo dir %s: %w", dir, err)
	}

	files := make([]InspoFile, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if _, ok := inspoExts[ext]; !ok {
			continue
		}
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		files = append(files, InspoFile{
			Slug:     strings.ToLower(stem),
			Title:    TitleFromStem(stem),
			ImageURL: inspoImageDir + "/" + name,
		})
	}

	log.Printf("seed: found %d images in %s", len(files), dir)
	return files, nil
}

// TitleFromStem turns "gaun-tenun_ntt" into "Gaun Tenun Ntt": hyphen and
// underscore runs become spaces, each word gets a capital first letter.
func TitleFromStem(stem string) string {
	words := strings.FieldsFunc(stem, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
