package sanitizer

import "strings"

// NormalizeExtras lowercases and trims extra names, dropping empties
// and duplicates while preserving order. Unknown names survive here;
// pricing decides what they are worth.
func NormalizeExtras(extras []string) []string {
	seen := make(map[string]struct{})
	out := []string{}

	for _, extra := range extras {
		s := strings.ToLower(TrimAndNormalize(extra))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	return out
}
