// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package note

import "fmt"

// overviewTemplate is the body of the aggregate overview note. It embeds
// the configured root path verbatim three times (records table, keyword
// index, journal index); the lab index selects on the lab tag alone. The
// path is not escaped, so a root path containing a double quote corrupts
// the queries. Known limitation.
const overviewTemplate = "# Literature Overview\n" +
	"\n" +
	"## Papers\n" +
	"\n" +
	"```dataview\n" +
	"TABLE Journal, Year, Authors, Lab\n" +
	"FROM \"%[1]s\" AND #" + KindTag + "\n" +
	"SORT Year DESC\n" +
	"```\n" +
	"\n" +
	"## Keywords\n" +
	"\n" +
	"```dataview\n" +
	"TABLE rows.file.link AS Papers\n" +
	"FROM \"%[1]s\" AND #" + KindTag + "\n" +
	"FLATTEN file.etags AS Tag\n" +
	"WHERE startswith(Tag, \"#keyword/\")\n" +
	"GROUP BY Tag\n" +
	"```\n" +
	"\n" +
	"## Journals\n" +
	"\n" +
	"```dataview\n" +
	"TABLE rows.file.link AS Papers\n" +
	"FROM \"%[1]s\" AND #" + KindTag + "\n" +
	"GROUP BY Journal\n" +
	"```\n" +
	"\n" +
	"## Labs\n" +
	"\n" +
	"```dataview\n" +
	"TABLE rows.file.link AS Papers\n" +
	"FROM #lab\n" +
	"GROUP BY file.etags\n" +
	"```\n"

// Overview renders the aggregate overview note body for the given root
// path. The output depends only on rootPath, so regeneration is a full,
// idempotent replace.
func Overview(rootPath string) string {
	return fmt.Sprintf(overviewTemplate, rootPath)
}
