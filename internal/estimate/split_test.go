package estimate

import "testing"

func TestSplitTypeCode(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantCode    string
		wantSummary string
	}{
		{name: "empty", raw: "", wantCode: "", wantSummary: ""},
		{name: "spaced dash", raw: "D - Donor Room", wantCode: "D", wantSummary: "Donor Room"},
		{name: "tight dash", raw: "A1-Lobby Directory", wantCode: "A1", wantSummary: "Lobby Directory"},
		{name: "dotted code", raw: "E5.W-12x18 DOT", wantCode: "E5.W", wantSummary: "12x18 DOT"},
		{name: "slash code", raw: "B/2 - Wayfinding", wantCode: "B/2", wantSummary: "Wayfinding"},
		{name: "no delimiter", raw: "no dash here", wantCode: "no dash here", wantSummary: ""},
		{
			name:        "left side not a code",
			raw:         "Main Lobby - Donor Wall",
			wantCode:    "Main Lobby - Donor Wall",
			wantSummary: "",
		},
		{
			name:        "later dashes stay in summary",
			raw:         "C2 - Double-Sided Blade",
			wantCode:    "C2",
			wantSummary: "Double-Sided Blade",
		},
		{name: "leading dash", raw: "-orphan", wantCode: "-orphan", wantSummary: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, summary := SplitTypeCode(tt.raw)
			if code != tt.wantCode || summary != tt.wantSummary {
				t.Errorf("SplitTypeCode(%q) = (%q, %q), want (%q, %q)",
					tt.raw, code, summary, tt.wantCode, tt.wantSummary)
			}
		})
	}
}
