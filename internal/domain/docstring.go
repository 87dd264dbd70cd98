package domain

import (
	"strings"
)

// docstringCap bounds the purpose hint pulled from a module docstring.
const docstringCap = 300

// PeekModuleDocstring reads, without removing, a Python module docstring when
// it is the first statement after the prolog. The docstring stays in the
// file; its text only seeds the Purpose field when that is still placeholder.
func PeekModuleDocstring(body []string) string {
	i := 0
	for i < len(body) && strings.TrimSpace(body[i]) == "" {
		i++
	}
	if i >= len(body) {
		return ""
	}

	opener := strings.TrimLeft(body[i], " \t")
	var quote string
	switch {
	case strings.HasPrefix(opener, `"""`):
		quote = `"""`
	case strings.HasPrefix(opener, "'''"):
		quote = "'''"
	default:
		return ""
	}

	// Single-line docstring.
	if strings.Count(opener, quote) >= 2 && strings.TrimSpace(opener) != quote {
		parts := strings.SplitN(opener, quote, 3)
		if len(parts) >= 2 {
			return Truncate(parts[1], docstringCap)
		}
	}

	var collected []string
	limit := i + 2000
	if limit > len(body) {
		limit = len(body)
	}
	for j := i + 1; j < limit; j++ {
		if strings.Contains(body[j], quote) {
			return Truncate(strings.Join(collected, " "), docstringCap)
		}
		collected = append(collected, strings.TrimRight(body[j], "\r\n"))
	}
	return ""
}
