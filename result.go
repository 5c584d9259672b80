// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

package conform

import (
	"github.com/go-openapi/errors"
)

// Defaulter applies a default value to a validated input, in place.
type Defaulter interface {
	Apply()
}

// DefaulterFunc is a function literal Defaulter.
type DefaulterFunc func()

// Apply calls the function literal.
func (f DefaulterFunc) Apply() {
	f()
}

// extraField locates one undeclared input key, keeping hold of its container
// so it can be pruned after validation.
type extraField struct {
	path      string
	key       string
	value     interface{}
	container map[string]interface{}
	reported  bool
}

// Result represents a validation result set, composed of errors and warnings.
//
// It is used to report all found errors and warnings in one pass: validation
// does not stop at the first violation.
type Result struct {
	Errors     []error
	Warnings   []error
	MatchCount int

	// Defaulters want to mutate the original input with the defaults the
	// validator substituted. They are only applied through the post package.
	Defaulters []Defaulter

	record *Record
	extras []extraField
}

// Merge merges this result with the other one, preserving match counts etc.
//
// The coerced record is not merged: it belongs to the validator that built it.
func (r *Result) Merge(other *Result) *Result {
	if other == nil {
		return r
	}
	r.AddErrors(other.Errors...)
	r.AddWarnings(other.Warnings...)
	r.MatchCount += other.MatchCount
	r.Defaulters = append(r.Defaulters, other.Defaulters...)
	r.extras = append(r.extras, other.extras...)
	return r
}

// MergeAsErrors merges this result with the other one, folding the other's
// warnings into errors.
func (r *Result) MergeAsErrors(others ...*Result) *Result {
	for _, other := range others {
		if other == nil {
			continue
		}
		r.AddErrors(other.Errors...)
		r.AddErrors(other.Warnings...)
		r.MatchCount += other.MatchCount
		r.Defaulters = append(r.Defaulters, other.Defaulters...)
		r.extras = append(r.extras, other.extras...)
	}
	return r
}

// MergeAsWarnings merges this result with the other one, demoting the other's
// errors to warnings.
func (r *Result) MergeAsWarnings(others ...*Result) *Result {
	for _, other := range others {
		if other == nil {
			continue
		}
		r.AddWarnings(other.Errors...)
		r.AddWarnings(other.Warnings...)
		r.MatchCount += other.MatchCount
	}
	return r
}

// AddErrors adds errors to this validation result (if not already reported).
//
// Several validators may report the same violation while exploring nested
// values, so errors are deduplicated on their message.
func (r *Result) AddErrors(errs ...error) {
	for _, e := range errs {
		if e == nil {
			continue
		}
		found := false
		for _, isReported := range r.Errors {
			if e.Error() == isReported.Error() {
				found = true
				break
			}
		}
		if !found {
			r.Errors = append(r.Errors, e)
		}
	}
}

// AddWarnings adds warnings to this validation result (if not already reported).
func (r *Result) AddWarnings(warns ...error) {
	for _, w := range warns {
		if w == nil {
			continue
		}
		found := false
		for _, isReported := range r.Warnings {
			if w.Error() == isReported.Error() {
				found = true
				break
			}
		}
		if !found {
			r.Warnings = append(r.Warnings, w)
		}
	}
}

// IsValid returns true when this result is valid.
//
// Warnings do not affect validity.
func (r *Result) IsValid() bool {
	if r == nil {
		return true
	}
	return len(r.Errors) == 0
}

// HasErrors returns true when this result is invalid.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return !r.IsValid()
}

// HasWarnings indicates that the result contains warnings.
func (r *Result) HasWarnings() bool {
	if r == nil {
		return false
	}
	return len(r.Warnings) > 0
}

// Inc increments the match count.
func (r *Result) Inc() {
	r.MatchCount++
}

// AsError renders this result as an error interface.
//
// Returns nil when the result is valid; all violations otherwise, flattened
// into a single composite error.
func (r *Result) AsError() error {
	if r.IsValid() {
		return nil
	}
	return errors.CompositeValidationError(r.Errors...)
}

// ApplyDefaults mutates the original validated input, filling in the defaults
// the validator substituted for absent fields.
func (r *Result) ApplyDefaults() {
	for _, d := range r.Defaulters {
		d.Apply()
	}
}

// PruneExtras mutates the original validated input, deleting every
// undeclared key recorded during validation. Pruning does not depend on the
// extra-fields policy: an input validated under ExtraIgnore prunes the same
// as one validated under ExtraCollect.
func (r *Result) PruneExtras() {
	for _, x := range r.extras {
		if x.container != nil {
			delete(x.container, x.key)
		}
	}
}

// Record yields the coerced record built during validation.
//
// The record is only complete when the result is valid.
func (r *Result) Record() *Record {
	if r == nil {
		return nil
	}
	return r.record
}

// Extras lists the dotted paths of undeclared input keys, in the order they
// were encountered. Keys skipped by the ExtraIgnore policy are not listed.
func (r *Result) Extras() []string {
	if r == nil || len(r.extras) == 0 {
		return nil
	}
	paths := make([]string, 0, len(r.extras))
	for _, x := range r.extras {
		if x.reported {
			paths = append(paths, x.path)
		}
	}
	if len(paths) == 0 {
		return nil
	}
	return paths
}

func (r *Result) addExtra(x extraField) {
	r.extras = append(r.extras, x)
}
