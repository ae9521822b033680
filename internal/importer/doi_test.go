// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package importer

import "testing"

func TestExtractDOI(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		// Positive: bare identifiers and resolver URLs.
		{"bare DOI", "10.1038/s41586-020-2649-2", "10.1038/s41586-020-2649-2", true},
		{"resolver URL", "https://doi.org/10.1038/s41586-020-2649-2", "10.1038/s41586-020-2649-2", true},
		{"dx resolver URL", "http://dx.doi.org/10.1145/1234567.1234568", "10.1145/1234567.1234568", true},
		{"embedded in text", "see 10.1000/xyz(123):4 for details", "10.1000/xyz(123):4", true},
		{"uppercase suffix", "10.1002/ANIE.202012345", "10.1002/ANIE.202012345", true},
		{"nine digit registrant", "10.123456789/abc", "10.123456789/abc", true},
		{"surrounding whitespace", "  10.1038/nature  ", "10.1038/nature", true},

		// Negative: nothing DOI-shaped.
		{"empty", "", "", false},
		{"plain text", "not an identifier", "", false},
		{"registrant too short", "10.123/abc", "", false},
		{"missing suffix", "10.1038/", "", false},
		{"missing slash", "10.1038", "", false},
		{"wrong prefix", "11.1038/x", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractDOI(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ExtractDOI(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ExtractDOI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
