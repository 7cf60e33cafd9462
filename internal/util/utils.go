package util

import "strings"

// SplitCommaList splits the first query value on commas, trimming spaces
// around each part. Repeated query keys beyond the first are ignored.
func SplitCommaList(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	raw := values[0]
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
