package initext

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lwd-temp/Winapp2/pkg/types"
)

// Parse reads a winapp2.ini document into a Ruleset.
//
// The dialect is line-oriented:
//   - [Name] opens an entry
//   - Key=Value appends a key to the current entry
//   - "; Section: X" comments between entries open a new top-level section
//   - other comments before the first entry form the preamble; comments
//     elsewhere are dropped (trimmed output never carries stale notes)
//
// Input must already be UTF-8 (see Decode). A document with no entries
// returns types.ErrEmptyRuleset.
func Parse(r io.Reader) (*types.Ruleset, error) {
	rs := &types.Ruleset{}
	cur := &types.Section{}
	rs.Sections = append(rs.Sections, cur)

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, ScannerInitialBufferSize)
	scanner.Buffer(buf, ScannerMaxLineSize)

	var entry *types.Entry
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, CommentPrefix) {
			if header, ok := cutSectionMarker(line); ok {
				cur = &types.Section{Header: header}
				rs.Sections = append(rs.Sections, cur)
				entry = nil
				continue
			}
			if entry == nil && len(cur.Entries) == 0 && cur.Header == "" {
				rs.Preamble = append(rs.Preamble, line)
			}
			continue
		}

		if strings.HasPrefix(line, EntryOpenBracket) && strings.HasSuffix(line, EntryCloseBracket) {
			name := strings.TrimSuffix(strings.TrimPrefix(line, EntryOpenBracket), EntryCloseBracket)
			entry = &types.Entry{Name: name}
			cur.Entries = append(cur.Entries, entry)
			continue
		}

		if name, value, ok := strings.Cut(line, ValueAssignment); ok && entry != nil {
			entry.Keys = append(entry.Keys, types.NewKey(strings.TrimSpace(name), strings.TrimSpace(value)))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning ruleset: %w", err)
	}

	// Drop the leading section if markers were used and it stayed empty.
	if len(rs.Sections) > 1 && rs.Sections[0].Header == "" && len(rs.Sections[0].Entries) == 0 {
		rs.Sections = rs.Sections[1:]
	}

	if rs.EntryCount() == 0 {
		return nil, types.ErrEmptyRuleset
	}
	return rs, nil
}

// cutSectionMarker extracts the header from a "; Section: X" line.
func cutSectionMarker(line string) (string, bool) {
	rest, ok := cutPrefixFold(line, SectionMarker)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

// cutPrefixFold is strings.CutPrefix with ASCII case folding.
func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}

// ParseNameSet loads an includes/excludes auxiliary ruleset into a
// case-folded set of entry names. An empty file yields an empty set.
func ParseNameSet(r io.Reader) (map[string]bool, error) {
	set := make(map[string]bool)
	rs, err := Parse(r)
	if err != nil {
		if err == types.ErrEmptyRuleset {
			return set, nil
		}
		return nil, err
	}
	for _, e := range rs.Entries() {
		set[strings.ToLower(e.Name)] = true
	}
	return set, nil
}
