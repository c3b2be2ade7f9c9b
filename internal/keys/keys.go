package keys

import "strings"

// CanonicalName normalizes a designer-entered attribute or stat name into
// its stored form: trimmed, lower-cased, inner spaces replaced with
// underscores. Formula lookups use exact string matching, so every write
// path must canonicalize before storing.
func CanonicalName(name string) string {
	s := strings.TrimSpace(name)
	if s == "" {
		return ""
	}
	return strings.ToLower(strings.ReplaceAll(s, " ", "_"))
}

// CanonicalNames normalizes a list of names, dropping empties and
// duplicates while preserving first-seen order.
func CanonicalNames(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		c := CanonicalName(n)
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
