// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package note derives file names and renders note bodies from normalized
// bibliographic records. Everything in this package is a pure string
// transform; persistence belongs to the importer.
package note

import "strings"

// illegalSegmentChars are the characters rejected by common filesystems in
// a path segment.
const illegalSegmentChars = `<>:"/\|?*`

// Sanitize replaces every character that is illegal in a filesystem path
// segment (the set < > : " / \ | ? * plus all control characters) with "_",
// then trims surrounding whitespace. It is total and idempotent: any input
// yields a valid segment, and sanitizing twice equals sanitizing once.
func Sanitize(name string) string {
	replaced := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f || strings.ContainsRune(illegalSegmentChars, r) {
			return '_'
		}
		return r
	}, name)
	return strings.TrimSpace(replaced)
}
