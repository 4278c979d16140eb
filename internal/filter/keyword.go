package filter

import (
	"strings"

	"github.com/Geun-Oh/qlog/internal/entry"
)

// KeywordFilter matches entries whose text contains a specific keyword.
type KeywordFilter struct {
	keyword string
}

// NewKeywordFilter creates a filter that matches entries containing the keyword.
func NewKeywordFilter(keyword string) *KeywordFilter {
	return &KeywordFilter{keyword: keyword}
}

// Match returns true if the entry text contains the keyword.
func (f *KeywordFilter) Match(e entry.LogEntry) bool {
	return strings.Contains(e.Text(), f.keyword)
}

// Name returns the filter description.
func (f *KeywordFilter) Name() string {
	return "keyword:" + f.keyword
}
