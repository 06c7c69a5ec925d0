package models

import (
	"strings"
	"unicode/utf8"
)

// Match is a half-open [Start, End) range of rune offsets into a buffer.
type Match struct {
	Start int
	End   int
}

// FindAll returns every non-overlapping, case-sensitive occurrence of query in
// text, scanning forward from the start. Each search resumes where the
// previous match ended. An empty query matches nothing.
func FindAll(text, query string) []Match {
	if query == "" {
		return nil
	}

	queryRunes := utf8.RuneCountInString(query)
	var matches []Match

	bytePos, runePos := 0, 0
	for {
		idx := strings.Index(text[bytePos:], query)
		if idx < 0 {
			break
		}
		runePos += utf8.RuneCountInString(text[bytePos : bytePos+idx])
		matches = append(matches, Match{Start: runePos, End: runePos + queryRunes})

		bytePos += idx + len(query)
		runePos += queryRunes
	}

	return matches
}
