package membership

import "strings"

const (
	escapedQuoteSequenceConstant = `\"`
)

// NormalizePath canonicalizes a descriptor path for set comparison: every
// literal escaped-quote sequence is removed and surrounding whitespace is
// trimmed. Removal loops until stable because deleting one occurrence can
// splice a new one together, and idempotence must hold for all inputs.
func NormalizePath(path string) string {
	cleaned := path
	for strings.Contains(cleaned, escapedQuoteSequenceConstant) {
		cleaned = strings.ReplaceAll(cleaned, escapedQuoteSequenceConstant, "")
	}
	return strings.TrimSpace(cleaned)
}

// normalizePathSet normalizes every entry into a set, dropping values that
// normalize to the empty string.
func normalizePathSet(paths []string) map[string]struct{} {
	normalized := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		cleaned := NormalizePath(path)
		if len(cleaned) == 0 {
			continue
		}
		normalized[cleaned] = struct{}{}
	}
	return normalized
}
