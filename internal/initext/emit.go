package initext

import (
	"bufio"
	"io"

	"github.com/lwd-temp/Winapp2/pkg/types"
)

// Emit serializes a Ruleset back into the winapp2.ini dialect as UTF-8:
// preamble, then each section with its marker comment, then entries with
// their keys in stored order, one blank line between entries.
func Emit(w io.Writer, rs *types.Ruleset) error {
	bw := bufio.NewWriter(w)

	for _, line := range rs.Preamble {
		bw.WriteString(line)
		bw.WriteString("\r\n")
	}
	if len(rs.Preamble) > 0 {
		bw.WriteString("\r\n")
	}

	for _, sec := range rs.Sections {
		if sec.Header != "" {
			bw.WriteString(SectionMarker + " " + sec.Header + "\r\n\r\n")
		}
		for _, e := range sec.Entries {
			bw.WriteString(EntryOpenBracket + e.Name + EntryCloseBracket + "\r\n")
			for _, k := range e.Keys {
				bw.WriteString(k.Name + ValueAssignment + k.Value + "\r\n")
			}
			bw.WriteString("\r\n")
		}
	}

	return bw.Flush()
}
