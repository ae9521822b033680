// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package importer

import (
	"github.com/ShangtingYou/zoteroid/internal/note"
)

// OverviewResult reports a completed overview regeneration.
type OverviewResult struct {
	// Path is the store-relative path of the overview note.
	Path string

	// Overwritten is true when an existing note was replaced, false when
	// the note was newly created.
	Overwritten bool
}

// RegenerateOverview renders the aggregate overview for the configured
// root path and writes it to the configured overview path, replacing any
// previous content in full. The result depends only on current settings,
// never on prior note content. Write failures are returned, not
// swallowed.
func (i *Importer) RegenerateOverview() (OverviewResult, error) {
	result := OverviewResult{
		Path:        i.cfg.OverviewPath,
		Overwritten: i.vault.Exists(i.cfg.OverviewPath),
	}

	body := note.Overview(i.cfg.RootPath)
	if err := i.vault.OverwriteDocument(i.cfg.OverviewPath, body); err != nil {
		return OverviewResult{}, err
	}
	return result, nil
}
