// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package importer

import (
	"regexp"
	"strings"
)

// doiPattern matches a DOI embedded anywhere in the input: registrant
// prefix "10." followed by 4-9 digits, a slash, and the suffix character
// set. Case-insensitive, so resolver URLs like
// "https://doi.org/10.1038/s41586-020-2649-2" match on the DOI alone.
var doiPattern = regexp.MustCompile(`(?i)10\.\d{4,9}/[-._;()/:a-z0-9]+`)

// ExtractDOI pulls the first DOI-shaped substring out of raw input,
// discarding any surrounding URL scheme, host, or other text. It returns
// false when the input contains no DOI, in which case no network call
// should be made.
func ExtractDOI(raw string) (string, bool) {
	match := doiPattern.FindString(strings.TrimSpace(raw))
	if match == "" {
		return "", false
	}
	return match, true
}
