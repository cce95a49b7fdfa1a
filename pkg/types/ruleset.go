package types

// Section is a top-level run of entries delimited by "; Section:" marker
// comments in the ruleset. The leading unlabeled run has Header "".
type Section struct {
	Header  string
	Entries []*Entry
}

// Ruleset is an ordered winapp2.ini document. Section order and
// intra-section entry order are preserved through a trim; only key
// numbering inside augmented entries changes.
type Ruleset struct {
	// Preamble holds the leading comment block (version line and notes)
	// verbatim, without trailing newlines.
	Preamble []string
	Sections []*Section
}

// Entries returns all entries in declared order across sections.
func (rs *Ruleset) Entries() []*Entry {
	var out []*Entry
	for _, s := range rs.Sections {
		out = append(out, s.Entries...)
	}
	return out
}

// EntryCount returns the number of entries across all sections.
func (rs *Ruleset) EntryCount() int {
	n := 0
	for _, s := range rs.Sections {
		n += len(s.Entries)
	}
	return n
}
