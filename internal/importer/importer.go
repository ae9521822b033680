// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package importer coordinates the import pipeline: validate the
// identifier, fetch and normalize registry metadata, derive the note
// location, and persist the note without ever overwriting an existing
// one. It also regenerates the aggregate overview note.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ShangtingYou/zoteroid/internal/catalog"
	"github.com/ShangtingYou/zoteroid/internal/crossref"
	"github.com/ShangtingYou/zoteroid/internal/note"
	"github.com/ShangtingYou/zoteroid/internal/vault"
	"github.com/ShangtingYou/zoteroid/pkg/types"
)

// Registry resolves a canonical DOI to its bibliographic record.
// *crossref.Client satisfies it; tests substitute fakes.
type Registry interface {
	Lookup(ctx context.Context, doi string) (*crossref.Work, error)
}

// Importer runs imports against a vault. One Importer may serve
// concurrent calls: a per-note-path lock closes the window between the
// collision check and the create, so two imports of the same identifier
// cannot both persist.
type Importer struct {
	registry Registry
	vault    *vault.Vault
	catalog  *catalog.Catalog
	cfg      types.VaultConfig

	// now supplies note creation dates; tests pin it.
	now func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New builds an Importer. catalog may be nil to disable index recording.
func New(registry Registry, v *vault.Vault, cat *catalog.Catalog, cfg types.VaultConfig) *Importer {
	return &Importer{
		registry: registry,
		vault:    v,
		catalog:  cat,
		cfg:      cfg,
		now:      time.Now,
		locks:    make(map[string]*sync.Mutex),
	}
}

// lockPath acquires the mutex for a derived note path and returns its
// release func. Mutexes are kept for the life of the Importer; the key
// space is one entry per imported note path.
func (i *Importer) lockPath(path string) func() {
	i.mu.Lock()
	l, ok := i.locks[path]
	if !ok {
		l = &sync.Mutex{}
		i.locks[path] = l
	}
	i.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// Import runs the full pipeline for one raw identifier. It never returns
// an error: every failure mode is folded into the Outcome with a short
// user-visible reason, and no partial state is left beyond an already
// committed folder (harmless and reusable on retry).
func (i *Importer) Import(ctx context.Context, raw string) Outcome {
	// Validation precedes any network call.
	doi, ok := ExtractDOI(raw)
	if !ok {
		return Outcome{
			Status: StatusRejected,
			Reason: fmt.Sprintf("no DOI found in %q", raw),
		}
	}

	work, err := i.registry.Lookup(ctx, doi)
	if err != nil {
		return Outcome{
			Status: StatusFailed,
			DOI:    doi,
			Reason: lookupReason(err),
			Err:    err,
		}
	}

	record := crossref.Extract(doi, work)
	naming := note.Name(record)
	folderPath := vault.Join(i.cfg.RootPath, naming.Folder)
	notePath := vault.Join(folderPath, naming.File)

	unlock := i.lockPath(notePath)
	defer unlock()

	if !i.vault.Exists(folderPath) {
		if err := i.vault.CreateFolder(folderPath); err != nil {
			return Outcome{
				Status: StatusFailed,
				DOI:    doi,
				Reason: fmt.Sprintf("cannot create folder %q — is the root path %q present and writable?", naming.Folder, i.cfg.RootPath),
				Err:    err,
			}
		}
	}

	// Collision check before composition: an existing note is surfaced,
	// never replaced.
	if i.vault.Exists(notePath) {
		return Outcome{Status: StatusAlreadyExists, DOI: doi, NotePath: notePath}
	}

	createdAt := i.now()
	body := note.Compose(record, createdAt)
	if err := i.vault.CreateDocument(notePath, body); err != nil {
		return Outcome{
			Status: StatusFailed,
			DOI:    doi,
			Reason: "cannot create note",
			Err:    err,
		}
	}

	outcome := Outcome{Status: StatusCreated, DOI: doi, NotePath: notePath}
	if i.catalog != nil {
		if err := i.catalog.Record(record, notePath, createdAt); err != nil {
			// The note exists; a catalog miss only degrades listings.
			outcome.Err = err
		}
	}
	return outcome
}

// lookupReason maps a registry error to its user-visible message.
func lookupReason(err error) string {
	switch {
	case errors.Is(err, crossref.ErrNotFound):
		return "identifier not found"
	case errors.Is(err, crossref.ErrDecode):
		return "metadata read error"
	default:
		return "network error"
	}
}

// BatchResult holds the outcome counts of a batch import run.
type BatchResult struct {
	Created  int
	Existing int
	Rejected int
	Failed   int
	Outcomes []Outcome
}

// Total returns the number of identifiers processed.
func (r BatchResult) Total() int {
	return r.Created + r.Existing + r.Rejected + r.Failed
}

// HasFailures reports whether any import ended in rejection or failure.
func (r BatchResult) HasFailures() bool {
	return r.Rejected > 0 || r.Failed > 0
}

// ImportBatch processes identifiers in order, printing per-item status
// lines and a summary to w. It continues after individual failures.
func (i *Importer) ImportBatch(ctx context.Context, identifiers []string, w io.Writer) BatchResult {
	var result BatchResult
	for _, raw := range identifiers {
		outcome := i.Import(ctx, raw)
		result.Outcomes = append(result.Outcomes, outcome)

		switch outcome.Status {
		case StatusCreated:
			result.Created++
			fmt.Fprintf(w, "created: %s\n", outcome.NotePath)
		case StatusAlreadyExists:
			result.Existing++
			fmt.Fprintf(w, "exists:  %s\n", outcome.NotePath)
		case StatusRejected:
			result.Rejected++
			fmt.Fprintf(w, "rejected: %s\n", outcome.Reason)
		case StatusFailed:
			result.Failed++
			fmt.Fprintf(w, "failed:  %s (%s)\n", outcome.DOI, outcome.Reason)
		}
		if outcome.Status == StatusCreated && outcome.Err != nil {
			fmt.Fprintf(w, "  warning: catalog update failed: %v\n", outcome.Err)
		}
	}
	fmt.Fprintf(w, "\nImport summary: %d created, %d existing, %d rejected, %d failed (total: %d)\n",
		result.Created, result.Existing, result.Rejected, result.Failed, result.Total())
	return result
}
