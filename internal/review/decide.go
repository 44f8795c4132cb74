// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package review records human decisions on classified terms. A decision
// sets Validated, FinalAction, and MergeTarget together on one record,
// found by id. Later decisions overwrite earlier ones.
package review

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/thesaurus-engine/pkg/types"
)

var (
	// ErrUnknownAction is returned for anything other than KEEP, MERGE, or ELIMINATE.
	ErrUnknownAction = errors.New("unknown action: use KEEP, MERGE, or ELIMINATE")

	// ErrMergeTargetRequired is returned for a MERGE decision with a blank target.
	ErrMergeTargetRequired = errors.New("merge decision requires a target term")

	// ErrInvalidMergeTarget is returned for a merge target that spans more
	// than one thesaurus cell.
	ErrInvalidMergeTarget = errors.New("merge target must not contain tabs or line breaks")

	// ErrRecordNotFound is returned when no record has the requested id.
	ErrRecordNotFound = errors.New("term not found")
)

// Decision is one human decision on a term.
type Decision struct {
	ID          int          `json:"id" yaml:"id"`
	Action      types.Action `json:"action" yaml:"action"`
	MergeTarget string       `json:"merge_target,omitempty" yaml:"merge_target,omitempty"`
}

// validate normalizes d and checks it against the decision rules.
func (d Decision) validate() (Decision, error) {
	d.Action = types.Action(strings.ToUpper(strings.TrimSpace(string(d.Action))))
	if !d.Action.IsFinal() {
		return d, fmt.Errorf("%w: %q", ErrUnknownAction, d.Action)
	}

	d.MergeTarget = strings.TrimSpace(d.MergeTarget)
	if d.Action != types.ActionMerge {
		d.MergeTarget = ""
	} else if d.MergeTarget == "" {
		return d, ErrMergeTargetRequired
	} else if strings.ContainsAny(d.MergeTarget, "\t\r\n") {
		return d, fmt.Errorf("%w: %q", ErrInvalidMergeTarget, d.MergeTarget)
	}
	return d, nil
}

// apply returns r with the decision recorded.
func (d Decision) apply(r types.TermRecord) types.TermRecord {
	r.Validated = true
	r.FinalAction = d.Action
	r.MergeTarget = d.MergeTarget
	return r
}

// Decide returns a copy of records with the decision applied to the record
// whose ID is id. records itself is not modified. On error the returned
// slice is nil and no record changes.
func Decide(records []types.TermRecord, id int, action types.Action, mergeTarget string) ([]types.TermRecord, error) {
	d, err := Decision{ID: id, Action: action, MergeTarget: mergeTarget}.validate()
	if err != nil {
		return nil, err
	}

	for i, r := range records {
		if r.ID != id {
			continue
		}
		out := make([]types.TermRecord, len(records))
		copy(out, records)
		out[i] = d.apply(r)
		return out, nil
	}
	return nil, fmt.Errorf("%w: id %d", ErrRecordNotFound, id)
}
