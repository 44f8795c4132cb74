// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package review

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/thesaurus-engine/pkg/types"
)

// DecisionsFile is the on-disk list of decisions a reviewer wants applied to
// a term list. It lets a review be replayed from the command line:
//
//	decisions:
//	  - id: 3
//	    action: MERGE
//	    merge_target: urban ecology
//	  - id: 7
//	    action: ELIMINATE
type DecisionsFile struct {
	Decisions []Decision `yaml:"decisions"`
}

// ReadDecisionsFile loads a decisions file from disk.
func ReadDecisionsFile(path string) (*DecisionsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading decisions file: %w", err)
	}
	var df DecisionsFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parsing decisions file: %w", err)
	}
	return &df, nil
}

// WriteDecisionsFile saves the decisions recorded on records (validated
// records only) so they can be replayed later with Apply.
func WriteDecisionsFile(path string, records []types.TermRecord) error {
	var df DecisionsFile
	for _, r := range records {
		if !r.Validated {
			continue
		}
		df.Decisions = append(df.Decisions, Decision{ID: r.ID, Action: r.FinalAction, MergeTarget: r.MergeTarget})
	}

	data, err := yaml.Marshal(&df)
	if err != nil {
		return fmt.Errorf("marshaling decisions file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ApplyError reports a decision that was rejected by Apply.
type ApplyError struct {
	Index    int
	Decision Decision
	Err      error
}

func (e ApplyError) Error() string {
	return fmt.Sprintf("decision %d (id %d): %v", e.Index+1, e.Decision.ID, e.Err)
}

func (e ApplyError) Unwrap() error { return e.Err }

// Apply applies decisions to records in order and returns the updated copy.
// records itself is not modified. A rejected decision changes nothing and
// is reported; the rest are still applied.
func Apply(records []types.TermRecord, decisions []Decision) ([]types.TermRecord, []ApplyError) {
	out := append([]types.TermRecord(nil), records...)
	index := make(map[int]int, len(out))
	for i, r := range out {
		index[r.ID] = i
	}

	var errs []ApplyError
	for n, d := range decisions {
		v, err := d.validate()
		if err != nil {
			errs = append(errs, ApplyError{Index: n, Decision: d, Err: err})
			continue
		}
		i, ok := index[v.ID]
		if !ok {
			err := fmt.Errorf("%w: id %d", ErrRecordNotFound, v.ID)
			errs = append(errs, ApplyError{Index: n, Decision: d, Err: err})
			continue
		}
		out[i] = v.apply(out[i])
	}
	return out, errs
}
