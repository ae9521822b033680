// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vault

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateFolderIdempotent(t *testing.T) {
	v := Open(t.TempDir())

	if v.Exists("Literature/Some Paper") {
		t.Fatal("folder exists before creation")
	}
	if err := v.CreateFolder("Literature/Some Paper"); err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}
	if !v.Exists("Literature/Some Paper") {
		t.Error("folder missing after creation")
	}
	// Creating again is a no-op.
	if err := v.CreateFolder("Literature/Some Paper"); err != nil {
		t.Errorf("CreateFolder on existing folder: %v", err)
	}
}

func TestCreateDocumentRefusesOverwrite(t *testing.T) {
	v := Open(t.TempDir())

	if err := v.CreateDocument("note.md", "original"); err != nil {
		t.Fatalf("CreateDocument: %v", err)
	}
	if err := v.CreateDocument("note.md", "replacement"); err == nil {
		t.Fatal("CreateDocument on existing path succeeded, want error")
	}

	content, err := v.ReadDocument("note.md")
	if err != nil {
		t.Fatal(err)
	}
	if content != "original" {
		t.Errorf("content = %q, want %q", content, "original")
	}
}

func TestOverwriteDocument(t *testing.T) {
	v := Open(t.TempDir())

	// Overwrite creates when absent.
	if err := v.OverwriteDocument("overview.md", "v1"); err != nil {
		t.Fatalf("OverwriteDocument: %v", err)
	}
	// And fully replaces when present.
	if err := v.OverwriteDocument("overview.md", "v2"); err != nil {
		t.Fatalf("OverwriteDocument: %v", err)
	}
	content, err := v.ReadDocument("overview.md")
	if err != nil {
		t.Fatal(err)
	}
	if content != "v2" {
		t.Errorf("content = %q, want %q", content, "v2")
	}
}

func TestPathsAreForwardSlashRelative(t *testing.T) {
	dir := t.TempDir()
	v := Open(dir)

	if err := v.CreateFolder("a/b"); err != nil {
		t.Fatal(err)
	}
	if err := v.CreateDocument("a/b/c.md", "x"); err != nil {
		t.Fatal(err)
	}

	// The note lands under the vault root using OS separators.
	if _, err := os.Stat(filepath.Join(dir, "a", "b", "c.md")); err != nil {
		t.Errorf("document not at expected filesystem path: %v", err)
	}
	if got := v.Locate("a/b/c.md"); got != filepath.Join(dir, "a", "b", "c.md") {
		t.Errorf("Locate = %q", got)
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		segments []string
		want     string
	}{
		{[]string{"Literature", "Paper"}, "Literature/Paper"},
		{[]string{"Literature", "Paper", "Paper.md"}, "Literature/Paper/Paper.md"},
		{[]string{"", "x"}, "x"},
	}
	for _, tt := range tests {
		if got := Join(tt.segments...); got != tt.want {
			t.Errorf("Join(%v) = %q, want %q", tt.segments, got, tt.want)
		}
	}
}
