// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package crossref resolves DOIs against the Crossref works API and
// normalizes the loosely-typed response into a Record. The raw response
// types never leave this package.
package crossref

import "encoding/json"

// response is the top-level registry envelope. A parsable body without a
// message payload is treated as an unknown identifier.
type response struct {
	Message *Work `json:"message"`
}

// Work is the subset of the registry's bibliographic record that
// extraction consumes. Fields with unstable shapes use tolerant types so
// a malformed field degrades to its zero value instead of failing the
// whole decode.
type Work struct {
	Type            string     `json:"type"`
	Title           StringList `json:"title"`
	ContainerTitle  StringList `json:"container-title"`
	Abstract        string     `json:"abstract"`
	Author          []Author   `json:"author"`
	Issued          PartedDate `json:"issued"`
	PublishedPrint  PartedDate `json:"published-print"`
	PublishedOnline PartedDate `json:"published-online"`
}

// Author is a single author entry. Name is the literal display name used
// for organizational authors; personal authors carry Given and Family.
type Author struct {
	Name   string `json:"name"`
	Given  string `json:"given"`
	Family string `json:"family"`
}

// StringList accepts a JSON array of strings or a bare string. Any other
// shape decodes to nil.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single != "" {
			*s = StringList{single}
		}
		return nil
	}
	*s = nil
	return nil
}

// First returns the first element, or "" for an empty list.
func (s StringList) First() string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

// PartedDate holds a registry date as nested date-parts,
// e.g. {"date-parts": [[2020, 8, 12]]}. A malformed field decodes to the
// zero value.
type PartedDate struct {
	Parts [][]int
}

func (d *PartedDate) UnmarshalJSON(data []byte) error {
	var raw struct {
		DateParts [][]int `json:"date-parts"`
	}
	if err := json.Unmarshal(data, &raw); err == nil {
		d.Parts = raw.DateParts
	}
	return nil
}

// Year returns the first component of the first date-parts entry, which
// is the year, and false when no year is present.
func (d PartedDate) Year() (int, bool) {
	if len(d.Parts) == 0 || len(d.Parts[0]) == 0 {
		return 0, false
	}
	return d.Parts[0][0], true
}
