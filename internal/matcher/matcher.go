// Package matcher selects document paths with CLI patterns.
package matcher

import "strings"

// Match reports whether path satisfies pattern. "*" matches every path and
// an empty pattern none. Otherwise pattern is compared segment by segment
// with the leading segments of path, where a "*" segment matches any member
// and "[*]" any index, so "zones" selects "zones.[0].loot".
func Match(pattern, path string) bool {
	if pattern == "*" {
		return true
	}
	if pattern == "" {
		return false
	}
	patternSegments := strings.Split(pattern, ".")
	pathSegments := strings.Split(path, ".")
	if len(patternSegments) > len(pathSegments) {
		return false
	}
	for i, want := range patternSegments {
		if !matchSegment(want, pathSegments[i]) {
			return false
		}
	}
	return true
}

// IsPattern reports whether pattern holds wildcards.
func IsPattern(pattern string) bool {
	return strings.Contains(pattern, "*")
}

func matchSegment(pattern, segment string) bool {
	isIndex := strings.HasPrefix(segment, "[")
	switch pattern {
	case "*":
		return !isIndex
	case "[*]":
		return isIndex
	}
	return pattern == segment
}
