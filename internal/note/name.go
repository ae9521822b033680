// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package note

import (
	"strings"

	"github.com/ShangtingYou/zoteroid/pkg/types"
)

// Extension is the document extension appended to every note file name.
const Extension = ".md"

// maxBaseNameLen bounds the note base name, measured before sanitization.
const maxBaseNameLen = 100

// Naming holds the folder and file names derived for a record. Both are
// sanitized path segments; File is Folder plus the note extension.
type Naming struct {
	Folder string
	File   string
}

// Name derives the folder and file names for a record.
//
// The base string is "<journal> - <year> - <title>" for journal-like and
// unclassified records, with "UNKNOWN" substituted for an empty journal,
// and "BOOK - <year> - <title>" for book-like records. The base is
// truncated to its first 100 characters, trimmed, and then sanitized —
// in that order, so replacement of illegal characters cannot shift the
// truncation boundary.
func Name(r types.Record) Naming {
	var base string
	if r.IsBookLike() {
		base = "BOOK - " + r.Year + " - " + r.Title
	} else {
		journal := r.Journal
		if journal == "" {
			journal = "UNKNOWN"
		}
		base = journal + " - " + r.Year + " - " + r.Title
	}

	if runes := []rune(base); len(runes) > maxBaseNameLen {
		base = string(runes[:maxBaseNameLen])
	}
	base = Sanitize(strings.TrimSpace(base))

	return Naming{Folder: base, File: base + Extension}
}
