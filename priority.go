package repsample

import (
	"fmt"
	"io"
	"strings"
)

// DefaultPriorityLabel is the group whose members are always retained when
// no label is configured.
const DefaultPriorityLabel = "ChongqingHan"

// DefaultSeparator splits a sequence name into its base sample ID and suffix.
const DefaultSeparator = "_"

// ReadGroups parses whitespace-separated "sample_id group_label" records.
// Blank lines and lines with fewer than two fields are skipped, extra fields
// are ignored, and a repeated sample_id keeps its last label. Returns a
// *FormatError when no record could be read.
func ReadGroups(r io.Reader, source string) (map[string]string, error) {
	lr := newLineReader(r)
	groups := make(map[string]string)
	for {
		text, ok, err := lr.next()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", source, err)
		}
		if !ok {
			break
		}
		fields := strings.Fields(text)
		if len(fields) < 2 {
			continue
		}
		groups[fields[0]] = fields[1]
	}
	if len(groups) == 0 {
		return nil, &FormatError{Source: source, Msg: "metadata is empty or malformed"}
	}
	return groups, nil
}

// BaseID returns the part of name before the first occurrence of sep, or the
// whole name when sep does not occur. An empty sep returns name unchanged.
func BaseID(name, sep string) string {
	if sep == "" {
		return name
	}
	base, _, _ := strings.Cut(name, sep)
	return base
}

// ResolvePriority marks every name whose base ID is mapped to label in groups.
// Matching is exact string equality.
func ResolvePriority(names []string, groups map[string]string, label, sep string) []bool {
	ids := make(map[string]struct{})
	for id, g := range groups {
		if g == label {
			ids[id] = struct{}{}
		}
	}
	required := make([]bool, len(names))
	for i, name := range names {
		_, required[i] = ids[BaseID(name, sep)]
	}
	return required
}

// countRequired returns the number of true entries in required.
func countRequired(required []bool) int {
	c := 0
	for _, r := range required {
		if r {
			c++
		}
	}
	return c
}
