// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vault is the document store: a hierarchical folder/file
// workspace of plain-text notes rooted at a single directory. Paths are
// store-relative and forward-slash separated regardless of host OS.
package vault

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// Vault provides note persistence under a root directory.
type Vault struct {
	root string
}

// Open returns a Vault rooted at dir. The directory itself is not
// created; importing into a missing root surfaces as a folder creation
// failure.
func Open(dir string) *Vault {
	return &Vault{root: dir}
}

// Root returns the vault's filesystem root directory.
func (v *Vault) Root() string {
	return v.root
}

// abs maps a store-relative, forward-slash path to a filesystem path.
func (v *Vault) abs(rel string) string {
	return filepath.Join(v.root, filepath.FromSlash(path.Clean(rel)))
}

// Join builds a normalized store-relative path from segments.
func Join(segments ...string) string {
	return path.Join(segments...)
}

// Exists reports whether an entry (file or folder) exists at rel.
func (v *Vault) Exists(rel string) bool {
	_, err := os.Stat(v.abs(rel))
	return err == nil
}

// CreateFolder creates the folder at rel, including missing parents.
// Creating an existing folder is a no-op.
func (v *Vault) CreateFolder(rel string) error {
	if err := os.MkdirAll(v.abs(rel), 0o755); err != nil {
		return fmt.Errorf("creating folder %s: %w", rel, err)
	}
	return nil
}

// CreateDocument writes a new document at rel. It fails if an entry
// already exists at that path; the store never silently replaces a note
// through this operation.
func (v *Vault) CreateDocument(rel, content string) error {
	f, err := os.OpenFile(v.abs(rel), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("creating document %s: %w", rel, err)
	}
	_, writeErr := f.WriteString(content)
	closeErr := f.Close()
	if writeErr != nil {
		return fmt.Errorf("writing document %s: %w", rel, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing document %s: %w", rel, closeErr)
	}
	return nil
}

// OverwriteDocument replaces the document at rel in full, creating it
// when absent.
func (v *Vault) OverwriteDocument(rel, content string) error {
	if err := os.WriteFile(v.abs(rel), []byte(content), 0o644); err != nil {
		return fmt.Errorf("overwriting document %s: %w", rel, err)
	}
	return nil
}

// ReadDocument returns the content of the document at rel.
func (v *Vault) ReadDocument(rel string) (string, error) {
	data, err := os.ReadFile(v.abs(rel))
	if err != nil {
		return "", fmt.Errorf("reading document %s: %w", rel, err)
	}
	return string(data), nil
}

// Locate returns the filesystem path of a store-relative path, for
// surfacing a note to the user (e.g. handing it to an editor).
func (v *Vault) Locate(rel string) string {
	return v.abs(rel)
}
