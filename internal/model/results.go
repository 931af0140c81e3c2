package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnresolvedAudit is returned when a subitem references an audit key
// that is not present in Results.Audits. A reference like this means the
// input tree violates its own referential integrity, so it is reported as
// an explicit error instead of being skipped silently.
var ErrUnresolvedAudit = errors.New("subitem references unknown audit")

// Results is the root of one audit run. It is an immutable snapshot: the
// output layer reads it, never mutates it, and hands it back to the caller
// unchanged after delivery.
type Results struct {
	// URL is the audited page address.
	URL string `json:"url"`

	// Aggregations groups audits into report categories, in display order.
	Aggregations []Aggregation `json:"aggregations"`

	// Audits maps audit keys to their results. Subitems given by reference
	// resolve against this map.
	Audits map[string]AuditResult `json:"audits"`

	// Version is the version of the audit pipeline that produced the run.
	Version string `json:"version"`
}

// Aggregation is one report category (e.g. "Performance") and its items,
// in display order.
type Aggregation struct {
	Name  string            `json:"name"`
	Items []AggregationItem `json:"items"`
}

// AggregationItem is one scored row inside an aggregation.
type AggregationItem struct {
	// Overall is the item score in [0, 1]. Renderers display it as a
	// rounded percentage.
	Overall float64 `json:"overall"`

	// Name is the item label. Items with an empty name render only their
	// subitems.
	Name string `json:"name"`

	// Scored reports whether Overall is meaningful for this item.
	// Unscored items never display a percentage.
	Scored bool `json:"scored"`

	// SubItems lists the audits belonging to this item, in display order.
	SubItems []SubItem `json:"subItems"`
}

// SubItem is one entry of AggregationItem.SubItems: either an inline audit
// result or a string key into Results.Audits. Exactly one of the two fields
// is set after unmarshaling.
type SubItem struct {
	// Ref is the Results.Audits key when the subitem is given by reference.
	Ref string

	// Audit is the result when the subitem is given inline.
	Audit *AuditResult
}

// InlineSubItem wraps an audit result as an inline subitem.
func InlineSubItem(a AuditResult) SubItem {
	return SubItem{Audit: &a}
}

// RefSubItem creates a subitem referencing an audit key.
func RefSubItem(key string) SubItem {
	return SubItem{Ref: key}
}

// IsRef reports whether the subitem is a reference into Results.Audits.
func (s SubItem) IsRef() bool {
	return s.Audit == nil
}

// MarshalJSON writes the reference form as a bare JSON string and the
// inline form as an audit result object, matching the upstream wire format.
func (s SubItem) MarshalJSON() ([]byte, error) {
	if s.Audit != nil {
		return json.Marshal(s.Audit)
	}
	return json.Marshal(s.Ref)
}

// UnmarshalJSON accepts either a JSON string (reference) or an object
// (inline audit result).
func (s *SubItem) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		s.Audit = nil
		return json.Unmarshal(data, &s.Ref)
	}

	var audit AuditResult
	if err := json.Unmarshal(data, &audit); err != nil {
		return err
	}
	s.Ref = ""
	s.Audit = &audit
	return nil
}

// Resolve returns the audit result a subitem stands for. Inline subitems
// are returned directly; references are looked up in Results.Audits. A
// reference with no matching key returns ErrUnresolvedAudit wrapped with
// the offending key.
func (r *Results) Resolve(s SubItem) (AuditResult, error) {
	if !s.IsRef() {
		return *s.Audit, nil
	}
	audit, ok := r.Audits[s.Ref]
	if !ok {
		return AuditResult{}, fmt.Errorf("%w: %q", ErrUnresolvedAudit, s.Ref)
	}
	return audit, nil
}
