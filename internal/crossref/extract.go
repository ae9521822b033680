// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package crossref

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ShangtingYou/zoteroid/pkg/types"
)

// tagPattern matches markup tags in abstracts (Crossref returns JATS XML,
// e.g. "<jats:p>...</jats:p>").
var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Extract normalizes a work into a fully-populated Record. It is total:
// every absent or malformed field degrades to a typed default, so no
// Record field is ever unset downstream. A nil work yields an all-default
// record.
func Extract(doi string, w *Work) types.Record {
	if w == nil {
		w = &Work{}
	}
	return types.Record{
		DOI:      doi,
		Title:    extractTitle(w),
		Journal:  w.ContainerTitle.First(),
		Year:     extractYear(w),
		Authors:  extractAuthors(w.Author),
		Abstract: strings.TrimSpace(tagPattern.ReplaceAllString(w.Abstract, "")),
		Kind:     w.Type,
	}
}

func extractTitle(w *Work) string {
	if t := w.Title.First(); t != "" {
		return t
	}
	return types.DefaultTitle
}

// extractYear reads the issued date first, then the print and online
// publication dates. Only the year component is used.
func extractYear(w *Work) string {
	for _, d := range []PartedDate{w.Issued, w.PublishedPrint, w.PublishedOnline} {
		if y, ok := d.Year(); ok {
			return strconv.Itoa(y)
		}
	}
	return types.DefaultYear
}

// extractAuthors resolves each author entry to a display name: the
// literal name when present, otherwise given and family joined with a
// single space. Entries that resolve to an empty name are dropped; order
// is preserved.
func extractAuthors(authors []Author) []string {
	var names []string
	for _, a := range authors {
		name := a.Name
		if name == "" {
			name = strings.TrimSpace(a.Given + " " + a.Family)
		}
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}
