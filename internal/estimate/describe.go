package estimate

import "strings"

// MaxComponentLines is the number of components rendered into a sign
// description before the remainder is condensed into one overflow line.
const MaxComponentLines = 4

const overflowLine = "• (additional components omitted)"

// SummarizeComponents condenses component detail into short bullet
// lines of the form "• description | dimensions | Qty n", omitting
// absent fields. At most max components are rendered; an overflow
// bullet marks the rest.
func SummarizeComponents(components []Component, max int) string {
	var lines []string
	for _, c := range components {
		var parts []string
		if c.Description != "" {
			parts = append(parts, c.Description)
		}
		if c.Dimensions != "" {
			parts = append(parts, c.Dimensions)
		}
		if qty := Stringify(c.Qty); qty != "" {
			parts = append(parts, "Qty "+qty)
		}
		if len(parts) > 0 {
			lines = append(lines, "• "+strings.Join(parts, " | "))
		}
		if len(lines) >= max {
			break
		}
	}
	if len(components) > max {
		lines = append(lines, overflowLine)
	}
	return strings.Join(lines, "\n")
}

// ComposeDescription builds the multi-line description cell text for a
// sign type: the summary extracted from the raw type text, the sign's
// own description when it is not a case-insensitive duplicate of that
// summary, and the condensed component list. Empty lines are dropped.
func ComposeDescription(sign SignType) string {
	_, summary := SplitTypeCode(sign.RawType)

	var lines []string
	if summary != "" {
		lines = append(lines, summary)
	}
	if sign.Description != "" && !strings.EqualFold(sign.Description, summary) {
		lines = append(lines, sign.Description)
	}
	if comp := SummarizeComponents(sign.Components, MaxComponentLines); comp != "" {
		lines = append(lines, comp)
	}
	return strings.Join(lines, "\n")
}
