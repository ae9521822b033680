// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the zoteroid pipeline:
// the normalized bibliographic record produced by extraction and the
// configuration blocks threaded into each stage.
package types

import "strings"

// Defaults substituted by extraction when the registry response lacks a field.
// Every Record field is always populated; downstream stages never see an
// absent value.
const (
	DefaultTitle = "Untitled"
	DefaultYear  = "UnknownYear"
)

// Record is a normalized bibliographic record extracted from a registry
// response. All fields are populated: missing registry data degrades to the
// defaults above or to the empty string.
type Record struct {
	// DOI is the canonical identifier the record was resolved from.
	DOI string `json:"doi" yaml:"doi"`

	// Title is the work title, or DefaultTitle when absent.
	Title string `json:"title" yaml:"title"`

	// Journal is the first container title, empty when absent.
	Journal string `json:"journal" yaml:"journal"`

	// Year is the publication year as a string, or DefaultYear when absent.
	Year string `json:"year" yaml:"year"`

	// Authors lists author display names in source order. Entries that
	// resolved to an empty name have already been discarded.
	Authors []string `json:"authors" yaml:"authors"`

	// Abstract is the abstract text with markup tags stripped, empty when absent.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Kind is the registry's type field, verbatim, empty when absent
	// (e.g. "journal-article", "book-chapter").
	Kind string `json:"kind" yaml:"kind"`
}

// JoinedAuthors returns the author names joined with "; " in source order.
func (r Record) JoinedAuthors() string {
	return strings.Join(r.Authors, "; ")
}

// IsBookLike reports whether the record's kind contains "book"
// (book, book-chapter, edited-book, ...).
func (r Record) IsBookLike() bool {
	return strings.Contains(r.Kind, "book")
}

// IsJournalLike reports whether the record's kind contains "journal".
// Records that are neither book-like nor journal-like fall back to the
// journal naming template downstream.
func (r Record) IsJournalLike() bool {
	return strings.Contains(r.Kind, "journal")
}
