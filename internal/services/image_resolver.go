package services

import (
	"os"
	"path/filepath"
	"strings"

	"santara/pkg/utils"
)

// provinceImageKeys maps province names (normalized lowercase) to the
// short key used in image filenames. Names missing here fall back to the
// slug of the name.
var provinceImageKeys = map[string]string{
	"nanggroe aceh darussalam": "aceh", "aceh": "aceh",
	"sumatra utara": "sumut", "sumatera utara": "sumut",
	"sumatra selatan": "sumsel", "sumatera selatan": "sumsel",
	"sumatra barat": "sumbar", "sumatera barat": "sumbar",
	"riau": "riau", "kepulauan riau": "kepri", "jambi": "jambi", "bengkulu": "bengkulu",
	"bangka belitung": "babel", "kepulauan bangka belitung": "babel",
	"lampung":     "lampung",
	"dki jakarta": "jakarta", "jakarta": "jakarta",
	"jawa barat": "jabar", "jawa tengah": "jateng", "jawa timur": "jatim", "banten": "banten",
	"daerah istimewa yogyakarta": "yogyakarta", "diy yogyakarta": "yogyakarta", "yogyakarta": "yogyakarta",
	"bali":                "bali",
	"nusa tenggara barat": "ntb", "nusa tenggara timur": "ntt",
	"kalimantan barat": "kalbar", "kalimantan tengah": "kalteng",
	"kalimantan timur": "kaltim", "kalimantan selatan": "kalsel", "kalimantan utara": "kalut",
	"gorontalo":      "gorontalo",
	"sulawesi barat": "sulbar", "sulawesi selatan": "sulsel",
	"sulawesi tengah": "sulteng", "sulawesi tenggara": "sultra", "sulawesi utara": "sulut",
	"maluku": "maluku", "maluku utara": "malut",
	"papua": "papua", "papua barat": "papuabarat",
}

// Extension preference order for auto-discovered images.
var imageExts = []string{".jpg", ".jpeg", ".png", ".webp"}

// ImageResolver probes the public directory for province-keyed weaving
// images. It is plain configuration, constructed once and injected.
type ImageResolver struct {
	publicDir string
}

func NewImageResolver(publicDir string) *ImageResolver {
	return &ImageResolver{publicDir: publicDir}
}

// Key resolves a province name to its image filename key.
func (r *ImageResolver) Key(provinceName string) string {
	n := normalizeProvinceName(provinceName)
	if key, ok := provinceImageKeys[n]; ok {
		return key
	}
	return utils.Slugify(n)
}

// TenunImage returns the web path of images/tenun/tenun-<key>.<ext> for
// the first extension that exists on disk, or nil.
func (r *ImageResolver) TenunImage(provinceName string) *string {
	return r.find("tenun", "tenun", r.Key(provinceName))
}

// PemakaianImage is the same probe against the pemakaian folder.
func (r *ImageResolver) PemakaianImage(provinceName string) *string {
	return r.find("pemakaian", "pemakaian", r.Key(provinceName))
}

func (r *ImageResolver) find(folder, prefix, key string) *string {
	for _, ext := range imageExts {
		rel := filepath.Join("images", folder, prefix+"-"+key+ext)
		if _, err := os.Stat(filepath.Join(r.publicDir, rel)); err == nil {
			url := "/public/" + filepath.ToSlash(rel)
			return &url
		}
	}
	return nil
}

func normalizeProvinceName(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
