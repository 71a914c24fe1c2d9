package colorstore

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// FormatKey renders a key in the comma-joined "r,g,b" form used by the
// bulk-import mapping format.
func FormatKey(k Key) string {
	return fmt.Sprintf("%d,%d,%d", k.R, k.G, k.B)
}

// ParseKey parses a comma-joined "r,g,b" key. It returns a
// *MalformedRecordError when the key does not have exactly three
// components or a component is not an integer. Surrounding whitespace per
// component is tolerated.
func ParseKey(s string) (Key, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Key{}, &MalformedRecordError{Key: s, cause: fmt.Errorf("expected 3 components, got %d", len(parts))}
	}
	var vals [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Key{}, &MalformedRecordError{Key: s, cause: err}
		}
		vals[i] = v
	}
	return Key{R: vals[0], G: vals[1], B: vals[2]}, nil
}

// ParseRecords converts a bulk-import mapping of "r,g,b" keys to names
// into records. Any malformed key fails the whole batch with a
// *MalformedRecordError; no partial result is returned. Records are
// ordered by key so repeated imports of the same mapping behave
// identically.
func ParseRecords(colors map[string]string) ([]Record, error) {
	records := make([]Record, 0, len(colors))
	for rgb, name := range colors {
		key, err := ParseKey(rgb)
		if err != nil {
			return nil, err
		}
		records = append(records, Record{Key: key, Name: name})
	}
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i].Key, records[j].Key
		if a.R != b.R {
			return a.R < b.R
		}
		if a.G != b.G {
			return a.G < b.G
		}
		return a.B < b.B
	})
	return records, nil
}
