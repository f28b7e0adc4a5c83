package seed

import "strings"

// Record is one raw seed row. Two shapes share this struct: the canonical
// one (province/jenisTenun/description) and the legacy rich one
// (provinsi/namaTenun plus optional labeled fields). Legacy fields win
// when both are present.
type Record struct {
	Province    string `json:"province"`
	JenisTenun  string `json:"jenisTenun"`
	Description string `json:"description"`

	Provinsi          string `json:"provinsi"`
	NamaTenun         string `json:"namaTenun"`
	PenjelasanSingkat string `json:"penjelasanSingkat"`
	MotifCiriKhas     string `json:"motifCiriKhas"`
	FunFact           string `json:"funFact"`
	KapanDipakai      string `json:"kapanDipakai"`
}

// Canonical is the shape every seed input converges to.
type Canonical struct {
	Province    string `json:"province"`
	JenisTenun  string `json:"jenisTenun"`
	Description string `json:"description"`
}

// Normalize converts a raw row into its canonical form. Rows with an
// empty province or weaving name after trimming are rejected.
func Normalize(r Record) (Canonical, bool) {
	c := Canonical{
		Province:    firstNonEmpty(r.Provinsi, r.Province),
		JenisTenun:  firstNonEmpty(r.NamaTenun, r.JenisTenun),
		Description: buildDescription(r),
	}
	if c.Province == "" || c.JenisTenun == "" {
		return Canonical{}, false
	}
	return c, true
}

// buildDescription joins the short explanation with the labeled segments,
// in fixed order, skipping empties, one blank line between segments.
func buildDescription(r Record) string {
	parts := make([]string, 0, 4)
	if s := firstNonEmpty(r.PenjelasanSingkat, r.Description); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(r.MotifCiriKhas); s != "" {
		parts = append(parts, "Motif & Ciri Khas: "+s)
	}
	if s := strings.TrimSpace(r.FunFact); s != "" {
		parts = append(parts, "Fakta Unik: "+s)
	}
	if s := strings.TrimSpace(r.KapanDipakai); s != "" {
		parts = append(parts, "Kapan dipakai: "+s)
	}
	return strings.Join(parts, "\n\n")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
