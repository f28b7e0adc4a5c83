package utils

import (
	"encoding/json"
	"errors"
	"strings"
)

// Tags accepts either a native JSON list or a single delimited string
// ("a, b|c;d") and always stores a list of trimmed, non-empty values.
type Tags []string

func (t *Tags) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = NormalizeTags(list)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = SplitTags(s)
		return nil
	}

	return errors.New("tags must be a list or a delimited string")
}

// SplitTags breaks a comma/pipe/semicolon separated string into clean tags.
func SplitTags(s string) Tags {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '|' || r == ';'
	})
	return NormalizeTags(parts)
}

func NormalizeTags(in []string) Tags {
	out := make(Tags, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
