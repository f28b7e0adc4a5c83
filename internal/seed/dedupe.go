package seed

import "strings"

// Dedupe collapses canonical rows by case-insensitive (province, jenisTenun),
// keeping the first occurrence and its order. Later duplicates are dropped
// whole; their fields are not merged.
func Dedupe(in []Canonical) []Canonical {
	seen := make(map[string]struct{}, len(in))
	out := make([]Canonical, 0, len(in))
	for _, c := range in {
		key := strings.ToLower(c.Province) + "|" + strings.ToLower(c.JenisTenun)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}
