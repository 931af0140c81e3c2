package model

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

// TestSubItemJSON tests the inline/reference union on the wire.
func TestSubItemJSON(t *testing.T) {
	t.Parallel()

	t.Run("reference marshals as a bare string", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(RefSubItem("uses-https"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != `"uses-https"` {
			t.Errorf("marshal = %s, want %q", data, "uses-https")
		}
	})

	t.Run("inline marshals as an object", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(InlineSubItem(AuditResult{
			Score:       BoolScore(true),
			Description: "redirects HTTP to HTTPS",
		}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(string(data), `"description":"redirects HTTP to HTTPS"`) {
			t.Errorf("expected audit object, got %s", data)
		}
	})

	t.Run("unmarshal distinguishes string from object", func(t *testing.T) {
		t.Parallel()

		var ref SubItem
		if err := json.Unmarshal([]byte(`"first-paint"`), &ref); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ref.IsRef() || ref.Ref != "first-paint" {
			t.Errorf("expected reference to first-paint, got %+v", ref)
		}

		var inline SubItem
		wire := `{"displayValue":"","debugString":"","score":55,"description":"speed index"}`
		if err := json.Unmarshal([]byte(wire), &inline); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inline.IsRef() {
			t.Fatalf("expected inline audit, got reference %+v", inline)
		}
		if inline.Audit.Description != "speed index" {
			t.Errorf("expected description %q, got %q", "speed index", inline.Audit.Description)
		}
	})
}

// TestResolve tests subitem resolution against the audits map.
func TestResolve(t *testing.T) {
	t.Parallel()

	results := &Results{
		URL: "https://example.com",
		Audits: map[string]AuditResult{
			"uses-https": {Score: BoolScore(true), Description: "uses HTTPS"},
		},
		Version: "1.0",
	}

	t.Run("inline subitem resolves to itself", func(t *testing.T) {
		t.Parallel()

		want := AuditResult{Score: NumberScore(80), Description: "inline"}
		got, err := results.Resolve(InlineSubItem(want))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("reference resolves via audits map", func(t *testing.T) {
		t.Parallel()

		got, err := results.Resolve(RefSubItem("uses-https"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Description != "uses HTTPS" {
			t.Errorf("expected description %q, got %q", "uses HTTPS", got.Description)
		}
	})

	t.Run("missing key is ErrUnresolvedAudit", func(t *testing.T) {
		t.Parallel()

		_, err := results.Resolve(RefSubItem("no-such-audit"))
		if !errors.Is(err, ErrUnresolvedAudit) {
			t.Fatalf("expected ErrUnresolvedAudit, got %v", err)
		}
		if !strings.Contains(err.Error(), "no-such-audit") {
			t.Errorf("expected offending key in error, got %q", err.Error())
		}
	})
}

// TestResultsRoundTrip tests that a mixed tree survives JSON untouched.
func TestResultsRoundTrip(t *testing.T) {
	t.Parallel()

	original := &Results{
		URL: "https://example.com",
		Aggregations: []Aggregation{
			{
				Name: "Performance",
				Items: []AggregationItem{
					{
						Overall: 0.8,
						Name:    "Metrics",
						Scored:  true,
						SubItems: []SubItem{
							RefSubItem("first-paint"),
							InlineSubItem(AuditResult{Score: NumberScore(55), Description: "speed index"}),
						},
					},
				},
			},
		},
		Audits: map[string]AuditResult{
			"first-paint": {DisplayValue: "1,204ms", Score: NumberScore(90), Description: "first paint"},
		},
		Version: "1.0",
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}

	var parsed Results
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if !reflect.DeepEqual(&parsed, original) {
		t.Errorf("round-trip mismatch:\ngot  %+v\nwant %+v", &parsed, original)
	}
}
