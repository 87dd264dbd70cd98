package domain

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/topline/internal/model"
)

// markerScanWindow bounds how far past the prolog we look for a marker.
const markerScanWindow = 60

var (
	headerPrefixRe = regexp.MustCompile(`^\s*(?:/\*+|<!--)?\s*(?:\*+\s*)?(?:#|//|--)?\s*`)
	headerSuffixRe = regexp.MustCompile(`\s*(?:\*/|-->)\s*$`)
)

// LocateHeader scans the lines after the prolog for the version marker and
// captures the contiguous block anchored at it.
//
// A block that runs past end-of-file or lacks the trailing Last-update field
// classifies as HeaderCorrupt: the captured region is removed from the body
// so the rebuild cannot duplicate headers, and the caller treats the header
// as absent. No marker within the scan window is HeaderAbsent.
//
// The returned body is always the file content without any header block,
// whatever the state.
func LocateHeader(rest []string) (header, body []string, state m.HeaderState) {
	scanEnd := len(rest)
	if scanEnd > markerScanWindow {
		scanEnd = markerScanWindow
	}

	markerIdx := -1
	for i, line := range rest[:scanEnd] {
		if strings.Contains(line, m.Marker) {
			markerIdx = i
			break
		}
	}
	if markerIdx < 0 {
		return nil, rest, m.HeaderAbsent
	}

	end := markerIdx + m.HeaderLines
	if end > len(rest) {
		// Truncated block: drop it down to end-of-file.
		return nil, rest[:markerIdx], m.HeaderCorrupt
	}

	block := rest[markerIdx:end]
	if !strings.Contains(StripCommentSyntax(block[m.HeaderLines-1]), string(m.FieldLastUpdate)+":") {
		body = append(append([]string{}, rest[:markerIdx]...), rest[end:]...)
		return nil, body, m.HeaderCorrupt
	}

	body = append(append([]string{}, rest[:markerIdx]...), rest[end:]...)
	return block, body, m.HeaderPresent
}

// StripCommentSyntax removes the comment wrapping from one header line,
// tolerating any supported style.
func StripCommentSyntax(line string) string {
	s := strings.TrimRight(line, "\r\n")
	s = headerSuffixRe.ReplaceAllString(s, "")
	s = headerPrefixRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// ParseHeaderFields reads the field values out of an existing header block.
// Unrecognized lines are ignored.
func ParseHeaderFields(header []string) map[m.Field]string {
	fields := make(map[m.Field]string)
	for _, line := range header {
		clean := StripCommentSyntax(line)
		for _, f := range m.FieldOrder {
			prefix := string(f) + ":"
			if strings.HasPrefix(clean, prefix) {
				fields[f] = strings.TrimSpace(clean[len(prefix):])
				break
			}
		}
	}
	return fields
}

// IsPlaceholder reports whether a field value is the designated "not yet
// known" marker.
func IsPlaceholder(value string) bool {
	v := strings.TrimSpace(value)
	if v == "" || v == m.Placeholder {
		return true
	}
	for _, prefix := range []string{"TODO ", "TODO:", "TODO;"} {
		if strings.HasPrefix(v, prefix) {
			return true
		}
	}
	return false
}
