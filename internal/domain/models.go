package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// HTMLExtension is the literal suffix a file name must carry to be listed
const HTMLExtension = ".html"

// TimestampLayout renders UTC timestamps with millisecond precision and a Z suffix
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// ScanMode selects how the reports directory is traversed
type ScanMode string

const (
	// ScanModeFlat lists files directly under the reports directory
	ScanModeFlat ScanMode = "flat"
	// ScanModeNested lists files one level down, labelling each with its store
	ScanModeNested ScanMode = "nested"
)

// ParseScanMode converts a string to a ScanMode
func ParseScanMode(s string) (ScanMode, error) {
	mode := ScanMode(strings.ToLower(strings.TrimSpace(s)))
	if !mode.IsValid() {
		return "", fmt.Errorf("%w: %q (use flat or nested)", ErrInvalidMode, s)
	}
	return mode, nil
}

// IsValid reports whether m is a known mode
func (m ScanMode) IsValid() bool {
	return m == ScanModeFlat || m == ScanModeNested
}

func (m ScanMode) String() string {
	return string(m)
}

// Timestamp is a point in time serialized as an ISO-8601 UTC string
type Timestamp struct {
	time.Time
}

// NewTimestamp returns t in UTC truncated to millisecond precision
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Millisecond)}
}

// String formats the timestamp with TimestampLayout
func (t Timestamp) String() string {
	return t.Time.UTC().Format(TimestampLayout)
}

// MarshalJSON implements json.Marshaler
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	t.Time = parsed.UTC()
	return nil
}

// ManifestEntry describes one discovered report file
type ManifestEntry struct {
	Name     string    `json:"name"`
	Path     string    `json:"path"`
	Store    string    `json:"store,omitempty"`
	Size     int64     `json:"size"`
	Modified Timestamp `json:"modified"`
	Title    string    `json:"title,omitempty"`
}

// Manifest is the document written to the output file.
// Count always equals len(Reports).
type Manifest struct {
	Generated Timestamp       `json:"generated"`
	Count     int             `json:"count"`
	Reports   []ManifestEntry `json:"reports"`
}

// NewManifest builds a manifest for entries generated at the given time.
// The entries are sorted by name; a nil slice becomes an empty one so the
// reports field serializes as [].
func NewManifest(generated time.Time, entries []ManifestEntry) *Manifest {
	reports := make([]ManifestEntry, len(entries))
	copy(reports, entries)
	SortEntries(reports)

	return &Manifest{
		Generated: NewTimestamp(generated),
		Count:     len(reports),
		Reports:   reports,
	}
}

// SortEntries orders entries by name using plain string comparison.
// Entries sharing a name keep their relative order.
func SortEntries(entries []ManifestEntry) {
	slices.SortStableFunc(entries, compareEntries)
}

// EntriesSorted reports whether entries are in SortEntries order
func EntriesSorted(entries []ManifestEntry) bool {
	return slices.IsSortedFunc(entries, compareEntries)
}

func compareEntries(a, b ManifestEntry) int {
	return strings.Compare(a.Name, b.Name)
}
