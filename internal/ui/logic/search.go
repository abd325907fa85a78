package logic

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"gridsel/internal/domain"
)

// rowSource adapts dataset rows for fuzzy matching by joining each
// row's cells into a single searchable string.
type rowSource []domain.Row

func (s rowSource) String(i int) string {
	return strings.Join(s[i].Cells, " ")
}

func (s rowSource) Len() int { return len(s) }

// SearchRows returns the indices of rows matching the query, best match
// first. An empty query matches nothing.
func SearchRows(query string, rows []domain.Row) []int {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	matches := fuzzy.FindFrom(query, rowSource(rows))
	indices := make([]int, 0, len(matches))
	for _, m := range matches {
		indices = append(indices, m.Index)
	}
	return indices
}
