package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindAll(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query string
		want  []Match
	}{
		{"non overlapping tiling", "ababab", "ab", []Match{{0, 2}, {2, 4}, {4, 6}}},
		{"overlap candidates skipped", "aaaa", "aa", []Match{{0, 2}, {2, 4}}},
		{"no occurrence", "hello world", "xyz", nil},
		{"case sensitive", "Go go GO", "go", []Match{{3, 5}}},
		{"regex metacharacters are literal", "a.b a*b", ".", []Match{{1, 2}}},
		{"empty query", "anything", "", nil},
		{"empty text", "", "a", nil},
		{"offsets count runes", "héllo héllo", "llo", []Match{{2, 5}, {8, 11}}},
		{"multi-line", "one\ntwo\none", "one", []Match{{0, 3}, {8, 11}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindAll(tt.text, tt.query))
		})
	}
}
