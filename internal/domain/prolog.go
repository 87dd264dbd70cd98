// Package domain implements the header annotation engine: prolog handling,
// header location, symbol extraction, cross-file resolution, field merging
// and verification.
package domain

import (
	"regexp"
	"strings"
)

var codingCookieRe = regexp.MustCompile(`^#.*coding[:=]\s*[-\w.]+`)

// SplitProlog separates the leading lines that must remain first in the file
// (shebang, XML declaration, Python coding cookie, Go build tags, Rust inner
// attributes) from the rest. No header insertion ever precedes a prolog line.
//
// Go build tags get a blank separator line appended when the source lacks
// one, so the header comment cannot attach to the build constraint.
func SplitProlog(lines []string, langName string) (prolog, rest []string) {
	if len(lines) == 0 {
		return nil, nil
	}

	i := 0

	if strings.HasPrefix(lines[0], "#!") {
		prolog = append(prolog, lines[0])
		i = 1
	}

	if i < len(lines) && strings.HasPrefix(strings.TrimLeft(lines[i], " \t"), "<?xml") {
		prolog = append(prolog, lines[i])
		i++
	}

	// PEP 263: the encoding cookie must stay within the first two lines.
	if langName == "python" {
		if i < len(lines) && codingCookieRe.MatchString(lines[i]) {
			prolog = append(prolog, lines[i])
			i++
		}
	}

	if i < len(lines) && isGoBuildTag(lines[i]) {
		for i < len(lines) && isGoBuildTag(lines[i]) {
			prolog = append(prolog, lines[i])
			i++
		}
		if i < len(lines) && strings.TrimSpace(lines[i]) == "" {
			prolog = append(prolog, lines[i])
			i++
		} else {
			prolog = append(prolog, "")
		}
	}

	if i < len(lines) && strings.HasPrefix(strings.TrimLeft(lines[i], " \t"), "#![") {
		for i < len(lines) && strings.HasPrefix(strings.TrimLeft(lines[i], " \t"), "#![") {
			prolog = append(prolog, lines[i])
			i++
		}
		if i < len(lines) && strings.TrimSpace(lines[i]) == "" {
			prolog = append(prolog, lines[i])
			i++
		}
	}

	return prolog, lines[i:]
}

func isGoBuildTag(line string) bool {
	return strings.HasPrefix(line, "//go:build") || strings.HasPrefix(line, "// +build")
}
