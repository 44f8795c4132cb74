// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/pdiddy/thesaurus-engine/pkg/types"
)

// ReadText reads the whole of r as text. Input is UTF-8 unless it starts
// with a UTF-8 or UTF-16 byte-order mark, which is honoured and removed.
func ReadText(r io.Reader) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return "", fmt.Errorf("decoding term list: %w", err)
	}
	return string(data), nil
}

// ReadFile reads a term list from disk. See ReadText.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening term list: %w", err)
	}
	defer f.Close()

	return ReadText(f)
}

// File reads and parses the term list at path.
func File(path string) ([]types.TermRecord, []Warning, error) {
	raw, err := ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	records, warnings := Parse(raw)
	return records, warnings, nil
}
