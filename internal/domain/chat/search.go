package chat

import (
	"regexp"
	"strings"
)

var (
	fillerWordsRe   = regexp.MustCompile(`(?i)\b(product|item|called|named|the|a|an)\b`)
	reorderTargetRe = regexp.MustCompile(`(?i)^.*\b(?:for|predict|reorder)\s+(.+?)\s*$`)
)

// SearchTerm returns the words following the first search keyword found in
// message, with filler words removed. Keywords are tried in list order, not by
// position. Returns "" when no keyword occurs.
func SearchTerm(message string) string {
	lower := Lower(message)
	src := message
	if len(src) != len(lower) {
		// case mapping changed byte offsets; slice the lower-cased text instead
		src = lower
	}
	for _, kw := range searchKeywords {
		idx := strings.Index(lower, kw)
		if idx == -1 {
			continue
		}
		term := strings.TrimSpace(src[idx+len(kw):])
		return strings.TrimSpace(fillerWordsRe.ReplaceAllString(term, ""))
	}
	return ""
}

// ReorderTarget returns the lower-cased words after the last "for", "predict"
// or "reorder" in message, or "" when nothing follows them.
func ReorderTarget(message string) string {
	m := reorderTargetRe.FindStringSubmatch(message)
	if m == nil {
		return ""
	}
	return Lower(strings.TrimSpace(m[1]))
}
