package model

// SizeUnknown marks a package whose on-disk size could not be resolved
// (missing directory, permission error, renamed distribution). It renders
// as "N/A" and sorts below every known size.
const SizeUnknown int64 = -1

// RowState is the per-package loading lifecycle, independent of the
// record's data fields.
type RowState int

const (
	RowUnloaded RowState = iota // no detail fetch issued yet
	RowLoading                  // a detail fetch is in flight
	RowLoaded                   // detail fields are populated
	RowError                    // the last detail fetch failed
)

func (s RowState) String() string {
	switch s {
	case RowUnloaded:
		return "unloaded"
	case RowLoading:
		return "loading"
	case RowLoaded:
		return "loaded"
	case RowError:
		return "error"
	default:
		return "unknown"
	}
}

// PackageRecord is one installed distribution. Name is the stable
// identity; every other field is a refreshable projection that is not
// authoritative until a detail fetch has completed.
type PackageRecord struct {
	Name         string
	Version      string
	SizeBytes    int64 // SizeUnknown until fetched
	Dependencies []string
	Location     string
}

// OutdatedEntry annotates an installed package with the latest version
// available on the index. Ephemeral: produced by an outdated check,
// consumed by row tagging and the bulk-upgrade action, never persisted.
type OutdatedEntry struct {
	Name           string
	CurrentVersion string
	LatestVersion  string
}
