package estimate

import "regexp"

// Sign type text follows the convention "CODE - SUMMARY" with up to two
// spaces on either side of the dash. The code charset is the extended
// set: letters, digits, and ". / & _", which covers production codes
// like "E5.W". Only the first delimiter counts; dashes later in the
// summary are plain text.
var (
	typeDelimiter = regexp.MustCompile(`[ ]{0,2}-[ ]{0,2}`)
	typeCode      = regexp.MustCompile(`^[A-Za-z0-9./&_]+$`)
)

// SplitTypeCode splits raw sign type text into its code and summary.
// When the text has no delimiter, or the left-hand side is not a valid
// code, the whole string is returned as the code with an empty summary.
// Empty input yields ("", "").
func SplitTypeCode(raw string) (code, summary string) {
	if raw == "" {
		return "", ""
	}
	loc := typeDelimiter.FindStringIndex(raw)
	if loc == nil {
		return raw, ""
	}
	left, right := raw[:loc[0]], raw[loc[1]:]
	if !typeCode.MatchString(left) {
		return raw, ""
	}
	return left, right
}
