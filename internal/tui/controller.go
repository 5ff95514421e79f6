package tui

import (
	"sort"
	"strings"

	"github.com/pipdeck/pipdeck/internal/model"
	"github.com/pipdeck/pipdeck/internal/pip"
)

// SortKey selects the table sort column.
type SortKey int

const (
	SortByName SortKey = iota
	SortByVersion
	SortBySize
)

func (k SortKey) String() string {
	switch k {
	case SortByVersion:
		return "version"
	case SortBySize:
		return "size"
	default:
		return "name"
	}
}

// Controller owns the package table and all per-row state. It is the
// only writer of both and runs exclusively on the UI loop inside the
// poll-tick consumer, so no locking is needed.
type Controller struct {
	rows     []model.PackageRecord
	index    map[string]int            // name -> position in rows
	states   map[string]model.RowState // keyed by name, defaults to RowUnloaded
	outdated map[string]string         // name -> latest version, from the last check

	sortKey SortKey
}

// NewController returns an empty controller sorted by name.
func NewController() *Controller {
	return &Controller{
		index:    make(map[string]int),
		states:   make(map[string]model.RowState),
		outdated: make(map[string]string),
	}
}

// Rows returns the current row set in display order. Callers must treat
// the slice as read-only.
func (c *Controller) Rows() []model.PackageRecord {
	return c.rows
}

// Len returns the number of rows.
func (c *Controller) Len() int { return len(c.rows) }

// Row returns the record at display position i.
func (c *Controller) Row(i int) (model.PackageRecord, bool) {
	if i < 0 || i >= len(c.rows) {
		return model.PackageRecord{}, false
	}
	return c.rows[i], true
}

// State returns the loading state for name. Unknown names are Unloaded.
func (c *Controller) State(name string) model.RowState {
	return c.states[name]
}

// LatestVersion returns the newer version tagged by the last outdated
// check, if any.
func (c *Controller) LatestVersion(name string) (string, bool) {
	v, ok := c.outdated[name]
	return v, ok
}

// OutdatedNames returns the tagged package names in display order.
func (c *Controller) OutdatedNames() []string {
	names := make([]string, 0, len(c.outdated))
	for _, r := range c.rows {
		if _, ok := c.outdated[r.Name]; ok {
			names = append(names, r.Name)
		}
	}
	return names
}

// ApplyListLoaded replaces the entire row set. Every row starts
// Unloaded and all selection-dependent state (detail states, outdated
// tags) is cleared: the new listing is the only source of truth.
func (c *Controller) ApplyListLoaded(records []model.PackageRecord) {
	c.rows = append([]model.PackageRecord(nil), records...)
	c.states = make(map[string]model.RowState, len(records))
	c.outdated = make(map[string]string)
	c.resort()
}

// RequestDetail marks name as loading and reports whether a fetch
// should be issued. Any non-Unloaded state means a fetch is in flight
// or already done, so re-selection never spawns a duplicate worker.
func (c *Controller) RequestDetail(name string) bool {
	if _, ok := c.index[name]; !ok {
		return false
	}
	if c.states[name] != model.RowUnloaded {
		return false
	}
	c.states[name] = model.RowLoading
	return true
}

// ApplyDetailLoaded overwrites the named row's fields and marks it
// Loaded, or Error when the fetch failed. A message for a row removed
// by an intervening refresh is dropped without effect.
func (c *Controller) ApplyDetailLoaded(name string, d pip.Detail, fetchErr error) bool {
	i, ok := c.index[name]
	if !ok {
		return false // stale target: row vanished between post and drain
	}

	if fetchErr != nil {
		c.states[name] = model.RowError
		return true
	}

	c.rows[i].Version = d.Version
	c.rows[i].SizeBytes = d.SizeBytes
	c.rows[i].Dependencies = append([]string(nil), d.Dependencies...)
	c.rows[i].Location = d.Location
	c.states[name] = model.RowLoaded
	if c.sortKey == SortBySize || c.sortKey == SortByVersion {
		c.resort()
	}
	return true
}

// ApplyOutdatedChecked tags rows named in the payload and returns how
// many matched. Entries for packages no longer listed are ignored.
func (c *Controller) ApplyOutdatedChecked(entries []model.OutdatedEntry) int {
	c.outdated = make(map[string]string, len(entries))
	matched := 0
	for _, e := range entries {
		if _, ok := c.index[e.Name]; ok {
			c.outdated[e.Name] = e.LatestVersion
			matched++
		}
	}
	return matched
}

// SortBy sets the sort column and reorders the table.
func (c *Controller) SortBy(key SortKey) {
	c.sortKey = key
	c.resort()
}

// Sort returns the active sort column.
func (c *Controller) Sort() SortKey { return c.sortKey }

// CycleSort advances name → version → size → name.
func (c *Controller) CycleSort() SortKey {
	c.SortBy((c.sortKey + 1) % 3)
	return c.sortKey
}

func (c *Controller) resort() {
	switch c.sortKey {
	case SortBySize:
		// Unknown sizes sort last; ties fall back to name.
		sort.SliceStable(c.rows, func(i, j int) bool {
			a, b := c.rows[i].SizeBytes, c.rows[j].SizeBytes
			if a == b {
				return lessName(c.rows[i].Name, c.rows[j].Name)
			}
			if a == model.SizeUnknown {
				return false
			}
			if b == model.SizeUnknown {
				return true
			}
			return a > b
		})
	case SortByVersion:
		sort.SliceStable(c.rows, func(i, j int) bool {
			if c.rows[i].Version == c.rows[j].Version {
				return lessName(c.rows[i].Name, c.rows[j].Name)
			}
			return c.rows[i].Version < c.rows[j].Version
		})
	default:
		sort.SliceStable(c.rows, func(i, j int) bool {
			return lessName(c.rows[i].Name, c.rows[j].Name)
		})
	}
	c.reindex()
}

func (c *Controller) reindex() {
	c.index = make(map[string]int, len(c.rows))
	for i, r := range c.rows {
		c.index[r.Name] = i
	}
}

func lessName(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}
