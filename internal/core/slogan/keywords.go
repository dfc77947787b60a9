package slogan

import "strings"

// ParseKeywords splits comma-separated input into trimmed, non-empty keywords.
//
//	ParseKeywords("innovation, , quality ") // returns ["innovation", "quality"]
func ParseKeywords(raw string) []string {
	return CleanKeywords(strings.Split(raw, ","))
}

// CleanKeywords trims each keyword and drops empty ones.
func CleanKeywords(in []string) []string {
	out := make([]string, 0, len(in))
	for _, k := range in {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
