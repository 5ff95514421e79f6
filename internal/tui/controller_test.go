package tui

import (
	"errors"
	"testing"

	"github.com/pipdeck/pipdeck/internal/model"
	"github.com/pipdeck/pipdeck/internal/pip"
)

func records(pairs ...string) []model.PackageRecord {
	var out []model.PackageRecord
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, model.PackageRecord{
			Name:      pairs[i],
			Version:   pairs[i+1],
			SizeBytes: model.SizeUnknown,
		})
	}
	return out
}

func TestApplyListLoadedRoundTrip(t *testing.T) {
	c := NewController()
	c.ApplyListLoaded(records("alpha", "1.0", "beta", "2.0"))

	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	for _, r := range c.Rows() {
		if c.State(r.Name) != model.RowUnloaded {
			t.Errorf("row %s state = %v, want Unloaded", r.Name, c.State(r.Name))
		}
	}
	got := c.Rows()
	if got[0].Name != "alpha" || got[0].Version != "1.0" {
		t.Errorf("row 0 = %+v", got[0])
	}
	if got[1].Name != "beta" || got[1].Version != "2.0" {
		t.Errorf("row 1 = %+v", got[1])
	}
}

func TestApplyListLoadedReplacesEverything(t *testing.T) {
	c := NewController()
	c.ApplyListLoaded(records("alpha", "1.0"))
	c.RequestDetail("alpha")
	c.ApplyOutdatedChecked([]model.OutdatedEntry{{Name: "alpha", LatestVersion: "9.9"}})

	c.ApplyListLoaded(records("beta", "2.0"))

	if c.Len() != 1 || c.Rows()[0].Name != "beta" {
		t.Fatalf("rows = %+v", c.Rows())
	}
	if c.State("beta") != model.RowUnloaded {
		t.Errorf("fresh row not Unloaded")
	}
	if _, ok := c.LatestVersion("alpha"); ok {
		t.Errorf("outdated tags survived a refresh")
	}
}

func TestRequestDetailIdempotent(t *testing.T) {
	c := NewController()
	c.ApplyListLoaded(records("alpha", "1.0"))

	if !c.RequestDetail("alpha") {
		t.Fatal("first request should be issued")
	}
	if c.RequestDetail("alpha") {
		t.Fatal("second request before completion must be dropped")
	}
	if c.State("alpha") != model.RowLoading {
		t.Errorf("state = %v, want Loading", c.State("alpha"))
	}
}

func TestRequestDetailUnknownName(t *testing.T) {
	c := NewController()
	if c.RequestDetail("ghost") {
		t.Fatal("request for an unknown row must be dropped")
	}
}

func TestApplyDetailLoaded(t *testing.T) {
	c := NewController()
	c.ApplyListLoaded(records("alpha", "1.0"))
	c.RequestDetail("alpha")

	applied := c.ApplyDetailLoaded("alpha", pip.Detail{
		Version:      "1.0",
		SizeBytes:    2621440, // 2.50 MB
		Dependencies: []string{"beta"},
	}, nil)

	if !applied {
		t.Fatal("detail for a live row must apply")
	}
	if c.State("alpha") != model.RowLoaded {
		t.Errorf("state = %v, want Loaded", c.State("alpha"))
	}
	r := c.Rows()[0]
	if r.Version != "1.0" || len(r.Dependencies) != 1 || r.Dependencies[0] != "beta" {
		t.Errorf("row = %+v", r)
	}
	if model.FormatSize(r.SizeBytes) != "2.50 MB" {
		t.Errorf("size renders as %q, want 2.50 MB", model.FormatSize(r.SizeBytes))
	}
}

func TestApplyDetailLoadedStaleTargetIsNoop(t *testing.T) {
	c := NewController()
	c.ApplyListLoaded(records("alpha", "1.0"))

	if c.ApplyDetailLoaded("removed", pip.Detail{Version: "9"}, nil) {
		t.Fatal("detail for an absent row must be dropped")
	}
	if c.Len() != 1 {
		t.Fatal("no row may be created for a stale message")
	}
}

func TestApplyDetailLoadedError(t *testing.T) {
	c := NewController()
	c.ApplyListLoaded(records("alpha", "1.0"))
	c.RequestDetail("alpha")

	c.ApplyDetailLoaded("alpha", pip.Detail{}, errors.New("pip show failed"))
	if c.State("alpha") != model.RowError {
		t.Errorf("state = %v, want Error", c.State("alpha"))
	}
}

func TestApplyOutdatedChecked(t *testing.T) {
	c := NewController()
	c.ApplyListLoaded(records("alpha", "1.0", "beta", "2.0"))

	matched := c.ApplyOutdatedChecked([]model.OutdatedEntry{
		{Name: "alpha", CurrentVersion: "1.0", LatestVersion: "1.5"},
		{Name: "gone", CurrentVersion: "0.1", LatestVersion: "0.2"},
	})

	if matched != 1 {
		t.Fatalf("matched = %d, want 1", matched)
	}
	if v, ok := c.LatestVersion("alpha"); !ok || v != "1.5" {
		t.Errorf("alpha latest = %q, %v", v, ok)
	}
	if _, ok := c.LatestVersion("beta"); ok {
		t.Errorf("beta must not be tagged")
	}
	if names := c.OutdatedNames(); len(names) != 1 || names[0] != "alpha" {
		t.Errorf("OutdatedNames = %v", names)
	}
}

func TestApplyOutdatedCheckedEmptyLeavesTagsUnchanged(t *testing.T) {
	c := NewController()
	c.ApplyListLoaded(records("alpha", "1.0"))

	if matched := c.ApplyOutdatedChecked(nil); matched != 0 {
		t.Fatalf("matched = %d, want 0", matched)
	}
	if len(c.OutdatedNames()) != 0 {
		t.Errorf("tags appeared from an empty payload")
	}
}

func TestSortBySizeUnknownLast(t *testing.T) {
	c := NewController()
	c.ApplyListLoaded(records("alpha", "1.0", "beta", "2.0", "gamma", "3.0"))
	c.RequestDetail("beta")
	c.ApplyDetailLoaded("beta", pip.Detail{Version: "2.0", SizeBytes: 10}, nil)
	c.RequestDetail("gamma")
	c.ApplyDetailLoaded("gamma", pip.Detail{Version: "3.0", SizeBytes: 500}, nil)

	c.SortBy(SortBySize)
	got := c.Rows()
	if got[0].Name != "gamma" || got[1].Name != "beta" || got[2].Name != "alpha" {
		t.Errorf("size order = %s, %s, %s", got[0].Name, got[1].Name, got[2].Name)
	}
}

func TestSortSurvivesDetailUpdates(t *testing.T) {
	c := NewController()
	c.ApplyListLoaded(records("b", "1", "a", "1"))

	// Default sort is by name regardless of listing order.
	if c.Rows()[0].Name != "a" {
		t.Fatalf("rows = %+v", c.Rows())
	}
	c.RequestDetail("b")
	c.ApplyDetailLoaded("b", pip.Detail{Version: "1", SizeBytes: 1}, nil)
	if c.Rows()[0].Name != "a" {
		t.Errorf("name sort disturbed by a detail update")
	}
}
