// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package review

import "github.com/pdiddy/thesaurus-engine/pkg/types"

// Page is one batch of records for display.
type Page struct {
	Number  int                `json:"number" yaml:"number"`
	Total   int                `json:"total" yaml:"total"`
	Size    int                `json:"size" yaml:"size"`
	Records []types.TermRecord `json:"records" yaml:"records"`
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a following page exists.
func (p Page) HasNext() bool { return p.Number < p.Total }

// Paginate splits records into batches of size and returns batch n
// (1-based). n is clamped to the valid range; an empty collection yields
// page 1 of 1 with no records. The returned records are a copy.
func Paginate(records []types.TermRecord, n, size int) Page {
	if size <= 0 {
		size = DefaultBatchSize
	}
	total := (len(records) + size - 1) / size
	if total == 0 {
		total = 1
	}
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}

	start := (n - 1) * size
	end := start + size
	if start > len(records) {
		start = len(records)
	}
	if end > len(records) {
		end = len(records)
	}

	return Page{
		Number:  n,
		Total:   total,
		Size:    size,
		Records: append([]types.TermRecord{}, records[start:end]...),
	}
}
