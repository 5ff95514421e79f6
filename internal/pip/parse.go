package pip

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pipdeck/pipdeck/internal/model"
)

// ParseWarning signals that pip output could not be parsed even after
// salvage. Callers treat it as a soft failure: the refresh proceeds with
// an empty result and the warning surfaces in the status line.
type ParseWarning struct {
	What string
	Err  error
}

func (w *ParseWarning) Error() string {
	return fmt.Sprintf("unparseable %s output: %v", w.What, w.Err)
}

func (w *ParseWarning) Unwrap() error { return w.Err }

// ListedPackage is one entry of `pip list --format=json`.
type ListedPackage struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type outdatedEntry struct {
	Name          string `json:"name"`
	Version       string `json:"version"`
	LatestVersion string `json:"latest_version"`
}

// ShowInfo is the parsed result of `pip show <name>`.
type ShowInfo struct {
	Version  string
	Requires []string
	Location string
}

// ParseList decodes `pip list --format=json` output. Malformed payloads
// are salvaged by re-parsing from the first '['; if that also fails the
// result is empty and the error is a *ParseWarning.
func ParseList(text string) ([]ListedPackage, error) {
	var entries []ListedPackage
	if err := unmarshalArray(text, &entries); err != nil {
		return nil, &ParseWarning{What: "list", Err: err}
	}
	return entries, nil
}

// ParseOutdated decodes `pip list --outdated --format=json` output with
// the same salvage behavior as ParseList.
func ParseOutdated(text string) ([]model.OutdatedEntry, error) {
	var entries []outdatedEntry
	if err := unmarshalArray(text, &entries); err != nil {
		return nil, &ParseWarning{What: "outdated", Err: err}
	}

	out := make([]model.OutdatedEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, model.OutdatedEntry{
			Name:           e.Name,
			CurrentVersion: e.Version,
			LatestVersion:  e.LatestVersion,
		})
	}
	return out, nil
}

// unmarshalArray parses a JSON array, falling back to the substring
// starting at the first '[' when pip prepends warnings or notices.
func unmarshalArray(text string, v any) error {
	err := json.Unmarshal([]byte(text), v)
	if err == nil {
		return nil
	}

	if idx := strings.Index(text, "["); idx > 0 {
		if retryErr := json.Unmarshal([]byte(text[idx:]), v); retryErr == nil {
			return nil
		}
	}
	return err
}

// ParseShow extracts Version, Requires, and Location from the
// colon-delimited key/value text of `pip show`.
func ParseShow(text string) ShowInfo {
	var info ShowInfo
	for _, line := range strings.Split(text, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		switch strings.ToLower(strings.TrimSpace(key)) {
		case "version":
			info.Version = value
		case "requires":
			info.Requires = splitRequires(value)
		case "location":
			info.Location = value
		}
	}
	return info
}

func splitRequires(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	deps := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			deps = append(deps, p)
		}
	}
	return deps
}
