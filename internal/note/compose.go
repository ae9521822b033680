// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package note

import (
	"fmt"
	"strings"
	"time"

	"github.com/ShangtingYou/zoteroid/pkg/types"
)

// KindTag is the front-matter tag that marks a note as a literature note.
// The overview queries select on it.
const KindTag = "literature-note"

// doiResolverBase prefixes the canonical identifier to form a
// dereferenceable link.
const doiResolverBase = "https://doi.org/"

// Compose renders a record into a literature note body: a front-matter
// block carrying the kind tag and creation date, a fixed-order sequence of
// labeled fields, and three empty sections left for manual annotation.
// Field labels are stable so the overview queries can address them by name.
func Compose(r types.Record, created time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "---\ntags: %s\ncreated: %s\n---\n\n", KindTag, created.Format("2006-01-02"))

	fmt.Fprintf(&b, "Title:: %s\n", r.Title)
	fmt.Fprintf(&b, "Journal:: %s\n", r.Journal)
	fmt.Fprintf(&b, "Year:: %s\n", r.Year)
	fmt.Fprintf(&b, "DOI:: [%s](%s%s)\n", r.DOI, doiResolverBase, r.DOI)
	b.WriteString("Lab:: #lab/unassigned\n")
	b.WriteString("Keyword:: #keyword/one #keyword/two\n")
	fmt.Fprintf(&b, "Authors:: %s\n", r.JoinedAuthors())
	fmt.Fprintf(&b, "Abstract:: %s\n", r.Abstract)

	b.WriteString("\n# Main idea\n\n\n# Materials and methods\n\n\n# Comment\n")

	return b.String()
}
